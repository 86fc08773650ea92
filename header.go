package huffman

import (
	"github.com/pkg/errors"
)

// WriteHeader serializes the tree rooted at root in pre-order: a 0 bit for
// each internal node, followed by its left then right subtree, and a 1 bit
// followed by the BitsPerSymbol-bit Symbol for each leaf.
func WriteHeader(w BitWriter, root *Node) error {
	if root.IsLeaf() {
		if err := w.WriteBits(1, 1); err != nil {
			return err
		}
		return w.WriteBits(uint64(root.Symbol), BitsPerSymbol)
	}
	if root.Left == nil || root.Right == nil {
		return errors.Wrap(ErrInvariant, "cannot serialize node with exactly one child")
	}
	if err := w.WriteBits(0, 1); err != nil {
		return err
	}
	if err := WriteHeader(w, root.Left); err != nil {
		return err
	}
	return WriteHeader(w, root.Right)
}

// ReadHeader reconstructs a tree written by WriteHeader.  Weights are not
// transmitted and are left at zero.
func ReadHeader(r BitReader) (*Node, error) {
	return readHeader(r, 0)
}

func readHeader(r BitReader, depth int) (*Node, error) {
	bit, err := r.ReadBits(1)
	if err != nil {
		return nil, formatErrorf(err, "tree header truncated at depth %d", depth)
	}

	if bit == 1 {
		value, err := r.ReadBits(BitsPerSymbol)
		if err != nil {
			return nil, formatErrorf(err, "tree header truncated inside leaf at depth %d", depth)
		}
		symbol := Symbol(value)
		if !symbol.IsValid() {
			return nil, errors.Wrapf(ErrFormat, "tree header leaf has invalid symbol %d", value)
		}
		return &Node{Symbol: symbol}, nil
	}

	if depth >= MaxCodeSize {
		return nil, errors.Wrapf(ErrFormat, "tree header deeper than %d levels", MaxCodeSize)
	}
	left, err := readHeader(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readHeader(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Symbol: InvalidSymbol, Left: left, Right: right}, nil
}

// HeaderSize returns the number of bits WriteHeader emits for the tree
// rooted at root.
func HeaderSize(root *Node) int {
	leaves := root.NumLeaves()
	return (2*leaves - 1) + BitsPerSymbol*leaves
}
