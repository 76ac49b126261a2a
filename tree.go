package texthuffman

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// BuildTree builds a merge tree from the given symbol table and returns its
// root.  Each pair becomes a leaf.  The working list of unmerged nodes is
// kept sorted by ascending symbol value, and the two front nodes are merged
// into a new internal node (first to the left, second to the right) until a
// single node remains.
//
// The ordering is by symbol value, not by weight.  Internal nodes carry
// InvalidSymbol and therefore sort ahead of every leaf.  The sort is stable:
// duplicate symbols keep their input order, and internal nodes keep their
// creation order.
//
// A table with a single entry yields that leaf as the root.  An empty table
// is rejected with a *ConstructionError.
func BuildTree(symbols []SymbolCount) (*Node, error) {
	if len(symbols) == 0 {
		return nil, &ConstructionError{Inner: ErrEmptySymbolTable}
	}

	list := make(byValue, 0, len(symbols))
	for _, sc := range symbols {
		list = append(list, newLeaf(sc.Value, sc.Count))
	}
	list.Sort()

	for len(list) > 1 {
		first, second := list[0], list[1]
		parent := newInternal(first, second)

		rest := make(byValue, 0, len(list)-1)
		rest = append(rest, list[2:]...)
		rest = append(rest, parent)
		rest.Sort()
		list = rest
	}

	root := list[0]
	assert.Assertf(root != nil, "BuildTree produced a nil root from %d symbols", len(symbols))
	return root, nil
}

// type byValue {{{

type byValue []*Node

func (list byValue) Sort() {
	sort.Stable(list)
}

func (list byValue) Len() int {
	return len(list)
}

func (list byValue) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byValue) Less(i, j int) bool {
	return list[i].symbol < list[j].symbol
}

var _ sort.Interface = byValue(nil)

// }}}
