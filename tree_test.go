package texthuffman

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countNodes(n *Node) (leaves int, internal int) {
	if n == nil {
		return 0, 0
	}
	if n.IsLeaf() {
		return 1, 0
	}
	ll, li := countNodes(n.Left())
	rl, ri := countNodes(n.Right())
	return ll + rl, li + ri + 1
}

func TestBuildTree_Empty(t *testing.T) {
	root, err := BuildTree(nil)
	assert.Nil(t, root)
	require.Error(t, err)

	var constructionErr *ConstructionError
	assert.True(t, errors.As(err, &constructionErr))
	assert.ErrorIs(t, err, ErrEmptySymbolTable)
	assert.Equal(t, "texthuffman: tree construction failed: empty symbol table", err.Error())
}

func TestBuildTree_Counts(t *testing.T) {
	tests := map[string][]SymbolCount{
		"two":        {{65, 3}, {66, 1}},
		"three":      {{1, 1}, {2, 2}, {3, 3}},
		"unsorted":   {{200, 7}, {3, 0}, {90, 12}, {4, 4}, {17, 1}},
		"duplicates": {{65, 1}, {65, 2}, {65, 3}},
		"zero":       {{0, 0}, {255, 0}},
	}

	for name, symbols := range tests {
		t.Run(name, func(t *testing.T) {
			root, err := BuildTree(symbols)
			require.NoError(t, err)

			var sum uint64
			for _, sc := range symbols {
				sum += sc.Count
			}

			leaves, internal := countNodes(root)
			assert.Equal(t, len(symbols), leaves)
			assert.Equal(t, len(symbols)-1, internal)
			assert.Equal(t, sum, root.Weight())
			assert.Equal(t, InvalidSymbol, root.Symbol())
		})
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root, err := BuildTree([]SymbolCount{{65, 5}})
	require.NoError(t, err)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, Symbol(65), root.Symbol())
	assert.Equal(t, uint64(5), root.Weight())
}

func TestBuildTree_MergeOrder(t *testing.T) {
	// Leaves are merged by ascending symbol value regardless of weight, and
	// each new internal node sorts ahead of the remaining leaves.
	root, err := BuildTree([]SymbolCount{{3, 1}, {1, 100}, {2, 50}})
	require.NoError(t, err)

	expectDump := strings.Join([]string{
		"Node{\n",
		"\tinternal = 151\n",
		"\t\tinternal = 150\n",
		"\t\t\tleaf(1) = 100\n",
		"\t\t\tleaf(2) = 50\n",
		"\t\tleaf(3) = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = root.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_StableDuplicates(t *testing.T) {
	root, err := BuildTree([]SymbolCount{{65, 1}, {65, 2}})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), root.Left().Weight())
	assert.Equal(t, uint64(2), root.Right().Weight())
}

func TestBuildTree_Deterministic(t *testing.T) {
	symbols := []SymbolCount{{9, 4}, {2, 8}, {77, 1}, {5, 5}, {130, 2}}

	dump := func() string {
		root, err := BuildTree(symbols)
		require.NoError(t, err)
		var buf strings.Builder
		_, _ = root.Dump(&buf)
		return buf.String()
	}

	first := dump()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, dump())
	}
}

func TestBuildTree_SaturatingWeight(t *testing.T) {
	root, err := BuildTree([]SymbolCount{{1, math.MaxUint64}, {2, 10}})
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), root.Weight())
}
