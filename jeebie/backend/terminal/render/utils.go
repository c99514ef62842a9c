package render

import (
	"strings"

	"github.com/valerio/jeebie-bitunit/jeebie/bit"
)

// Truncate shortens text to width runes, marking the cut with "...".
func Truncate(text string, width int) string {
	runes := []rune(text)
	if width <= 0 {
		return ""
	}
	if len(runes) <= width {
		return text
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// BitHeader labels the columns of BitCells, most significant bit first.
const BitHeader = "7 6 5 4 3 2 1 0"

// BitCells renders value as "1 0 1 0 0 0 0 0", most significant bit first.
func BitCells(value uint8) string {
	cells := make([]string, 8)
	for i := range cells {
		cells[i] = string('0' + rune(bit.GetBitValue(uint8(7-i), value)))
	}
	return strings.Join(cells, " ")
}

// BitColumn returns the x offset of bit index within BitHeader and BitCells.
func BitColumn(index uint8) int {
	return int(7-index) * 2
}
