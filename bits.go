package huffman

import (
	"github.com/icza/bitio"
)

// BitReader is the subset of *bitio.Reader that decoding needs.  When the
// source is exhausted, ReadBits returns io.EOF or io.ErrUnexpectedEOF.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// BitWriter is the subset of *bitio.Writer that encoding needs.  The low n
// bits of r are written, most significant first.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)
