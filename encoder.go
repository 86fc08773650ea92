package huffman

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// EncodeStream reads src to exhaustion and writes the Code of each byte to
// w, followed by the Code of PseudoEOF.
//
// Every byte in src must have a Code; a missing one means codes was not
// derived from src's frequencies and is reported as ErrInvariant.
//
func EncodeStream(codes *CodeTable, src io.Reader, w BitWriter) error {
	br := bitio.NewReader(src)
	for {
		value, err := br.ReadBits(BitsPerWord)
		if isEOF(err) {
			break
		}
		if err != nil {
			return err
		}
		hc, found := codes.Lookup(Symbol(value))
		if !found {
			return errors.Wrapf(ErrInvariant, "no code for byte %d", value)
		}
		if err := hc.WriteBitsTo(w); err != nil {
			return err
		}
	}

	hc, found := codes.Lookup(PseudoEOF)
	if !found {
		return errors.Wrap(ErrInvariant, "no code for PseudoEOF")
	}
	return hc.WriteBitsTo(w)
}
