package huffman

// Symbol represents a symbol in the codec's alphabet: byte values 0..255
// plus the PseudoEOF sentinel.  Negative symbols are not valid.
type Symbol int32

const (
	// BitsPerWord is the width of one literal symbol in the input.
	BitsPerWord = 8

	// BitsPerSymbol is the width of a leaf symbol in the tree header.
	// One extra bit is needed to represent PseudoEOF.
	BitsPerSymbol = BitsPerWord + 1

	// BitsPerInt is the width of the magic number.
	BitsPerInt = 32

	// AlphabetSize is the number of literal symbols.
	AlphabetSize = 1 << BitsPerWord

	// NumSymbols is the number of symbols including PseudoEOF.
	NumSymbols = AlphabetSize + 1

	// MaxCodeSize is the longest code a strict binary tree with
	// NumSymbols leaves can produce.
	MaxCodeSize = NumSymbols - 1
)

// PseudoEOF marks the logical end of the data in an encoded stream.
const PseudoEOF = Symbol(AlphabetSize)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// HeaderMagic identifies the tree-header stream format.
const HeaderMagic uint32 = 0xface8200 | 1

// IsValid returns true if s is a literal byte value or PseudoEOF.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= PseudoEOF
}
