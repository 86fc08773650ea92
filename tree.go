package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf has no children and carries a
// Symbol; an internal node has exactly two children and its Symbol is
// InvalidSymbol.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// NewLeaf constructs a leaf node.
func NewLeaf(symbol Symbol, weight uint64) *Node {
	assert.Assertf(symbol.IsValid(), "invalid leaf symbol %d", symbol)
	return &Node{Symbol: symbol, Weight: weight}
}

// NewInternal constructs an internal node that owns left and right.  The
// weight is the sum of the children's weights.
func NewInternal(left, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node needs two children")
	return &Node{
		Symbol: InvalidSymbol,
		Weight: left.Weight + right.Weight,
		Left:   left,
		Right:  right,
	}
}

// IsLeaf returns true if n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// NumLeaves counts the leaves below and including n.
func (n *Node) NumLeaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.NumLeaves() + n.Right.NumLeaves()
}

// SameShape returns true if n and other have identical shapes and leaf
// symbols.  Weights are ignored.
func (n *Node) SameShape(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.IsLeaf() != other.IsLeaf() {
		return false
	}
	if n.IsLeaf() {
		return n.Symbol == other.Symbol
	}
	return n.Left.SameShape(other.Left) && n.Right.SameShape(other.Right)
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.dump(&buf, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("\t", depth)
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%sLeaf(%d) weight=%d\n", indent, n.Symbol, n.Weight)
		return
	}
	fmt.Fprintf(buf, "%sNode weight=%d\n", indent, n.Weight)
	n.Left.dump(buf, depth+1)
	n.Right.dump(buf, depth+1)
}

// BuildTree constructs a Huffman tree from symbol frequencies by greedy
// pairwise merging of the two lightest nodes.
//
// Ties between equal weights are broken by insertion order: leaves are
// inserted in ascending Symbol order, merged nodes after all leaves in the
// order they were created.  The first node popped becomes the left child.
//
// The result always has at least two leaves.  If PseudoEOF is the only
// symbol present, it is paired with a zero-weight leaf for symbol 0, which
// never occurs in the data.
//
func BuildTree(freq Frequencies) *Node {
	assert.Assertf(freq[PseudoEOF] != 0, "PseudoEOF missing from frequencies")

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]nodeAndSeq, 0, NumSymbols)}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if weight := freq[symbol]; weight != 0 {
			h.list = append(h.list, nodeAndSeq{NewLeaf(symbol, weight), h.nextSeq})
			h.nextSeq++
		}
	}

	if len(h.list) == 1 {
		return NewInternal(h.list[0].node, NewLeaf(0, 0))
	}

	h.Init()

	// Step 2: pop the two lightest nodes, merge them, and push the merged
	// node back until only the root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{NewInternal(a.node, b.node), h.nextSeq})
		h.nextSeq++
	}

	return heap.Pop(&h).(nodeAndSeq).node
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list    []nodeAndSeq
	nextSeq uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
