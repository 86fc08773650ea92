package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// ErrFormat is the cause of every error reported for a malformed stream:
// a bad magic number, a truncated or corrupt tree header, or a symbol
// stream that ends before the PseudoEOF code.
var ErrFormat = errors.New("huffman: invalid stream format")

// ErrInvariant is the cause of every error reported for a broken internal
// invariant, such as a tree node with exactly one child or a byte with no
// code.  These indicate a bug, not bad input.
var ErrInvariant = errors.New("huffman: internal invariant violated")

// IsFormatError returns true if err was caused by a malformed stream.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsInvariantError returns true if err was caused by a broken internal
// invariant.
func IsInvariantError(err error) bool {
	return errors.Is(err, ErrInvariant)
}

func isEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}

// formatErrorf turns end-of-input into ErrFormat and passes any other
// read error through unchanged.
func formatErrorf(err error, format string, args ...interface{}) error {
	if isEOF(err) {
		return errors.Wrapf(ErrFormat, format, args...)
	}
	return err
}
