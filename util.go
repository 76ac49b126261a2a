package texthuffman

import (
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

const (
	lengthHeaderWidth = 16
	entryFieldWidth   = 8
)

// appendDigits writes value as a decimal number left-padded with '0' to
// exactly width characters.
func appendDigits(sb *strings.Builder, width int, value uint64) {
	digits := strconv.FormatUint(value, 10)
	assert.Assertf(len(digits) <= width, "value %d does not fit in %d digits", value, width)
	for i := len(digits); i < width; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(digits)
}

// parseDigits parses a fixed-width zero-padded decimal field.
func parseDigits(field string) (uint64, bool) {
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, false
		}
	}
	value, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func isBitString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}
