package texthuffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Node is a vertex of the merge tree built by BuildTree.  A leaf carries a
// symbol and its count; an internal node carries InvalidSymbol, the combined
// weight of its children, and exactly two children.
//
// Nodes are immutable once constructed.
type Node struct {
	symbol Symbol
	weight uint64
	left   *Node
	right  *Node
}

func newLeaf(value byte, count uint64) *Node {
	return &Node{symbol: Symbol(value), weight: count}
}

func newInternal(left *Node, right *Node) *Node {
	// Compute weight using saturating addition
	weight := left.weight + right.weight
	if weight < left.weight {
		weight = math.MaxUint64
	}
	return &Node{symbol: InvalidSymbol, weight: weight, left: left, right: right}
}

// Symbol returns the node's symbol, or InvalidSymbol for an internal node.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Weight returns the occurrence count of a leaf, or the sum of the leaf
// weights below an internal node.
func (n *Node) Weight() uint64 {
	return n.weight
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true iff the node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Dump writes a programmer-readable debugging dump of the subtree rooted at
// this Node to the given writer.  Left children are printed before right
// children, one node per line, indented by depth.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Node{\n")
	dumpNode(&buf, n, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, depth int) {
	if n == nil {
		return
	}
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	if n.IsLeaf() {
		fmt.Fprintf(buf, "leaf(%d) = %d\n", n.symbol, n.weight)
		return
	}
	fmt.Fprintf(buf, "internal = %d\n", n.weight)
	dumpNode(buf, n.left, depth+1)
	dumpNode(buf, n.right, depth+1)
}
