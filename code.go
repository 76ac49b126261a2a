package texthuffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Code represents a root-to-leaf path as a string of '0' (left) and '1'
// (right) characters.
type Code string

// Size returns the number of characters in the code.
func (hc Code) Size() int {
	return len(hc)
}

// String returns the quoted representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// CodeEntry is one (symbol, code) pair of a CodeTable.
type CodeEntry struct {
	Value byte
	Code  Code
}

// CodeTable maps byte values to codes.  It remembers insertion order, which
// is the order in which DeriveCodes reached each leaf.
type CodeTable struct {
	entries []CodeEntry
	index   map[byte]int
}

// NewCodeTable returns an empty CodeTable.
func NewCodeTable() *CodeTable {
	return &CodeTable{index: make(map[byte]int)}
}

// Set assigns a code to a byte value.  Re-assigning an existing value
// replaces its code in place, keeping its original position.
func (t *CodeTable) Set(value byte, hc Code) {
	if t.index == nil {
		t.index = make(map[byte]int)
	}
	if i, found := t.index[value]; found {
		t.entries[i].Code = hc
		return
	}
	t.index[value] = len(t.entries)
	t.entries = append(t.entries, CodeEntry{Value: value, Code: hc})
}

// Lookup returns the code for a byte value.
func (t *CodeTable) Lookup(value byte) (Code, bool) {
	if t == nil {
		return "", false
	}
	i, found := t.index[value]
	if !found {
		return "", false
	}
	return t.entries[i].Code, true
}

// Len returns the number of entries.
func (t *CodeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the entries in insertion order.
func (t *CodeTable) Entries() []CodeEntry {
	if t == nil {
		return nil
	}
	out := make([]CodeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Degenerate returns true iff the table holds an entry with an empty code,
// which happens when the tree was a lone leaf.  Such a symbol is listed in
// the header but contributes nothing to the payload.
func (t *CodeTable) Degenerate() bool {
	if t == nil {
		return false
	}
	for _, entry := range t.entries {
		if entry.Code.Size() == 0 {
			return true
		}
	}
	return false
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, entry := range t.Entries() {
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", entry.Value, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DeriveCodes walks the tree rooted at root and returns the resulting
// CodeTable.
//
// The walk follows a single branch.  At each node it descends into the left
// child (appending '0') when one exists, and into the right child (appending
// '1') only when there is no left child.  It never visits both children of a
// node.  The walk stops at the first node without children; that node's path
// is recorded unless the node carries InvalidSymbol.
//
// As a consequence, a tree from BuildTree yields at most one entry: the
// leftmost leaf.  Symbols reachable only through the right child of a node
// that also has a left child get no code, and encoding them fails with an
// EncodingError.  A root that is itself a leaf is recorded with an empty
// code.
func DeriveCodes(root *Node) *CodeTable {
	table := NewCodeTable()

	var path []byte
	for n := root; n != nil; {
		if n.IsLeaf() {
			if n.symbol != InvalidSymbol {
				table.Set(byte(n.symbol), Code(path))
			}
			break
		}
		if n.left != nil {
			path = append(path, '0')
			n = n.left
		} else {
			path = append(path, '1')
			n = n.right
		}
	}
	return table
}
