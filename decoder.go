package huffman

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// DecodeStream walks the tree rooted at root one bit at a time, writing the
// byte of every leaf it reaches to dst, until it reaches the PseudoEOF leaf.
//
// If r runs out of bits first, the stream was truncated or corrupt and
// ErrFormat is returned; bytes decoded up to that point may already have
// been written.
//
// A root that is itself a leaf has no bits to read.  That is only valid for
// a PseudoEOF leaf, which decodes to nothing.
//
func DecodeStream(root *Node, r BitReader, dst io.Writer) (err error) {
	bw := bitio.NewWriter(dst)
	defer func() {
		if cerr := bw.Close(); err == nil {
			err = cerr
		}
	}()

	if root.IsLeaf() {
		if root.Symbol == PseudoEOF {
			return nil
		}
		return errors.Wrapf(ErrFormat, "tree is a single leaf for symbol %d", root.Symbol)
	}

	current := root
	for {
		bit, err := r.ReadBits(1)
		if err != nil {
			return formatErrorf(err, "symbol stream ended before PseudoEOF")
		}

		if bit == 0 {
			current = current.Left
		} else {
			current = current.Right
		}
		if current == nil {
			return errors.Wrap(ErrInvariant, "node with exactly one child")
		}
		if !current.IsLeaf() {
			continue
		}

		if current.Symbol == PseudoEOF {
			return nil
		}
		if err := bw.WriteBits(uint64(current.Symbol), BitsPerWord); err != nil {
			return err
		}
		current = root
	}
}
