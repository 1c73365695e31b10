package feistel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSBoxBijective verifies that the S-box maps the 16 nibbles onto the 16
// nibbles with no value unmapped or duplicated
func TestSBoxBijective(t *testing.T) {
	var seen [16]bool
	for n := uint8(0); n < 16; n++ {
		out := SBox(n)
		require.Less(t, out, uint8(16), "S-box output for %x is not a nibble", n)
		require.False(t, seen[out], "S-box output %x produced twice", out)
		seen[out] = true
	}
	for v, ok := range seen {
		require.True(t, ok, "nibble %x is never produced", v)
	}
}

// TestSBoxTable pins the table entries
func TestSBoxTable(t *testing.T) {
	expected := [16]uint8{6, 7, 8, 9, 0xA, 0xB, 0xC, 0xD, 0xE, 0xF, 0, 1, 2, 3, 4, 5}
	for n, want := range expected {
		if got := SBox(uint8(n)); got != want {
			t.Errorf("SBox(%x): got %x, expected %x", n, got, want)
		}
	}
}

// TestInverseSBox verifies that the inverse table undoes the S-box in both
// directions
func TestInverseSBox(t *testing.T) {
	for n := uint8(0); n < 16; n++ {
		require.Equal(t, n, InverseSBox(SBox(n)))
		require.Equal(t, n, SBox(InverseSBox(n)))
	}
}

// TestSBoxIgnoresHighBits verifies that only the low nibble selects an entry
func TestSBoxIgnoresHighBits(t *testing.T) {
	for n := uint8(0); n < 16; n++ {
		require.Equal(t, SBox(n), SBox(n|0xf0))
		require.Equal(t, InverseSBox(n), InverseSBox(n|0x30))
	}
}

// TestRoundFunction checks F against hand-computed values
func TestRoundFunction(t *testing.T) {
	testCases := []struct {
		name   string
		half   uint8
		subkey uint8
		want   uint8
	}{
		// 10101100 ^ 10101010 = 0000|0110 -> 0110|1100
		{"documented_example", 0b10101100, 0b10101010, 0b01101100},
		{"zero", 0x00, 0x00, 0x66},
		{"all_ones", 0xff, 0x00, 0x55},
		{"cancelling_subkey", 0x3c, 0x3c, 0x66},
		{"nibbles_independent", 0xa5, 0x00, 0x0b},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := roundFunction(tc.half, tc.subkey)
			if got != tc.want {
				t.Errorf("F(%08b, %08b): got %08b, expected %08b",
					tc.half, tc.subkey, got, tc.want)
			}
		})
	}
}

// TestRoundFunctionSymmetric verifies that F depends only on half ^ subkey
func TestRoundFunctionSymmetric(t *testing.T) {
	for h := 0; h < 256; h++ {
		for k := 0; k < 256; k += 17 {
			require.Equal(t,
				roundFunction(uint8(h), uint8(k)),
				roundFunction(uint8(k), uint8(h)),
			)
			require.Equal(t,
				roundFunction(uint8(h), uint8(k)),
				roundFunction(uint8(h^k), 0),
			)
		}
	}
}
