package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// CodeTable maps each Symbol to its Code.  Symbols that are not leaves of
// the tree have a zero-sized Code.
type CodeTable [NumSymbols]Code

// MakeCodeTable assigns a Code to every leaf of the tree rooted at root:
// each step to the left appends a 0 bit, each step to the right a 1 bit.
//
// A tree whose root is a leaf yields a zero-sized code for that leaf.
//
func MakeCodeTable(root *Node) (CodeTable, error) {
	var codes CodeTable
	if root == nil {
		return codes, errors.Wrap(ErrInvariant, "nil tree")
	}
	err := codes.assign(root, Code{})
	return codes, err
}

func (codes *CodeTable) assign(n *Node, path Code) error {
	if n.IsLeaf() {
		if !n.Symbol.IsValid() {
			return errors.Wrapf(ErrInvariant, "leaf at %s has invalid symbol %d", path, n.Symbol)
		}
		codes[n.Symbol] = path
		return nil
	}
	if n.Left == nil || n.Right == nil {
		return errors.Wrapf(ErrInvariant, "node at %s has exactly one child", path)
	}
	if path.Size >= MaxCodeSize {
		return errors.Wrapf(ErrInvariant, "tree deeper than %d levels", MaxCodeSize)
	}
	if err := codes.assign(n.Left, path.Append(0)); err != nil {
		return err
	}
	return codes.assign(n.Right, path.Append(1))
}

// Lookup returns the Code for symbol, or false if symbol has none.
func (codes *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() {
		return Code{}, false
	}
	hc := codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols that have a Code.
func (codes *CodeTable) Len() int {
	var n int
	for _, hc := range codes {
		if hc.Size != 0 {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.  Symbols without a Code are omitted.
func (codes *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol, hc := range codes {
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
