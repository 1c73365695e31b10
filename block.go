package feistel

import (
	"fmt"
	"unicode/utf8"
)

const (
	// BlockBits is the size of a block or key in bits.
	BlockBits = 16

	// HalfBits is the size of a half-block or subkey in bits.
	HalfBits = BlockBits / 2
)

// ParseBlock parses a block given as exactly 16 binary digits, most
// significant bit first.
func ParseBlock(s string) (uint16, error) {
	return parseBits("block", s)
}

// ParseKey parses a key. Keys share the block format.
func ParseKey(s string) (uint16, error) {
	return parseBits("key", s)
}

func parseBits(field, s string) (uint16, error) {
	if len(s) != BlockBits {
		return 0, &FormatError{Field: field, Input: s, Offset: -1}
	}

	var v uint16
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return 0, &FormatError{Field: field, Input: s, Offset: i, Char: r}
		}
	}
	return v, nil
}

// FormatBlock returns the canonical 16-digit binary form of v.
func FormatBlock(v uint16) string {
	return fmt.Sprintf("%016b", v)
}

// FormatHalf returns the 8-digit binary form of a half-block or subkey.
func FormatHalf(v uint8) string {
	return fmt.Sprintf("%08b", v)
}

// splitBlock divides v into its high and low halves.
func splitBlock(v uint16) (hi, lo uint8) {
	return uint8(v >> HalfBits), uint8(v)
}

// joinHalves concatenates hi and lo into a block.
func joinHalves(hi, lo uint8) uint16 {
	return uint16(hi)<<HalfBits | uint16(lo)
}
