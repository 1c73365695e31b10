package feistel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraceEncrypt(t *testing.T) {
	tr, err := NewCipher(0xaa55).Trace(Encrypt, 0xacaa)
	require.NoError(t, err)
	require.Equal(t, Encrypt, tr.Mode)
	require.Equal(t, uint16(0xacaa), tr.Input)
	require.Equal(t, uint16(0x9175), tr.Output)

	expected := []Round{
		{Step: 0, L: 0b10101100, R: 0b10101010},
		{Step: 1, Number: 1, Subkey: 0xaa, F: 0b01100110, L: 0b10101010, R: 0b11001010},
		{Step: 2, Number: 2, Subkey: 0x55, F: 0b11110101, L: 0b11001010, R: 0b01011111},
		{Step: 3, Number: 3, Subkey: 0xaa, F: 0b01011011, L: 0b01011111, R: 0b10010001},
		{Step: 4, Number: 4, Subkey: 0x55, F: 0b00101010, L: 0b10010001, R: 0b01110101},
	}
	require.Equal(t, expected, tr.Rounds)
}

// TestTraceDecryptMirrorsEncrypt verifies that decryption revisits the
// encryption states in reverse with the halves swapped, and applies each
// round's subkey and F output again
func TestTraceDecryptMirrorsEncrypt(t *testing.T) {
	c := NewCipher(0x1234)

	for _, block := range []uint16{0x0000, 0xacaa, 0xffff, 0x8001} {
		enc, err := c.Trace(Encrypt, block)
		require.NoError(t, err)
		dec, err := c.Trace(Decrypt, enc.Output)
		require.NoError(t, err)

		require.Len(t, enc.Rounds, Rounds+1)
		require.Len(t, dec.Rounds, Rounds+1)
		require.Equal(t, block, dec.Output)

		for j, d := range dec.Rounds {
			e := enc.Rounds[Rounds-j]
			require.Equal(t, e.L, d.R, "step %d", j)
			require.Equal(t, e.R, d.L, "step %d", j)

			if j == 0 {
				continue
			}
			require.Equal(t, Rounds+1-j, d.Number)
			forward := enc.Rounds[d.Number]
			require.Equal(t, forward.Subkey, d.Subkey, "step %d", j)
			require.Equal(t, forward.F, d.F, "step %d", j)
		}
	}
}

// TestDecryptSubkeyOrder pins the decrypt subkey sequence K2, K1, K2, K1
func TestDecryptSubkeyOrder(t *testing.T) {
	tr, err := NewCipher(0xaa55).Trace(Decrypt, 0x9175)
	require.NoError(t, err)

	var subkeys []uint8
	for _, r := range tr.Rounds[1:] {
		subkeys = append(subkeys, r.Subkey)
	}
	require.Equal(t, []uint8{0x55, 0xaa, 0x55, 0xaa}, subkeys)
}

func TestTraceInvalidMode(t *testing.T) {
	tr, err := NewCipher(0).Trace(Mode(2), 0)
	require.Nil(t, tr)
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestTraceString(t *testing.T) {
	tr, err := NewCipher(0).Trace(Encrypt, 0)
	require.NoError(t, err)

	s := tr.String()
	require.Contains(t, s, "encrypt 0000000000000000:")
	require.Contains(t, s, "entry L=00000000 R=00000000;")
	require.Contains(t, s, "step 1 (round 1, k=00000000, F=01100110) L=00000000 R=01100110;")
	require.Contains(t, s, "output 0100010001100110")
}
