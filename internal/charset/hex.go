package charset

import (
	"fmt"
	"strings"
)

// Hex renders every codepoint of symbol as uppercase hex padded to four
// digits, joined by single spaces.
func Hex(symbol string) string {
	parts := make([]string, 0, len(symbol))
	for _, r := range symbol {
		parts = append(parts, fmt.Sprintf("%04X", r))
	}
	return strings.Join(parts, " ")
}

// CodeHex renders a single codepoint value the way Hex renders one rune.
func CodeHex(code int) string {
	return fmt.Sprintf("%04X", code)
}

// HexFromHexcode converts a hyphen-joined emoji hexcode to the space-joined form.
func HexFromHexcode(hexcode string) string {
	return strings.ReplaceAll(hexcode, "-", " ")
}
