package texthuffman

// Symbol represents a symbol in the byte alphabet.  Leaves carry a value in
// [0, MaxSymbol]; internal nodes carry InvalidSymbol.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(255)

// InvalidSymbol marks internal tree nodes, which have no direct symbol.
const InvalidSymbol = Symbol(-1)

// SymbolCount pairs a byte value with its number of occurrences.
type SymbolCount struct {
	Value byte
	Count uint64
}

// CountSymbols tallies the bytes of src into a frequency table, ordered by
// ascending byte value.  Bytes that never occur are omitted.
func CountSymbols(src []byte) []SymbolCount {
	var counts [int(MaxSymbol) + 1]uint64
	for _, b := range src {
		counts[b]++
	}

	out := make([]SymbolCount, 0, len(counts))
	for value, count := range counts {
		if count != 0 {
			out = append(out, SymbolCount{Value: byte(value), Count: count})
		}
	}
	return out
}
