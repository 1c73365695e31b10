package feistel

// sbox maps every 4-bit nibble to its substitute. Each input nibble n maps to
// n+6 mod 16.
var sbox = [16]uint8{
	0x6, 0x7, 0x8, 0x9, 0xA, 0xB, 0xC, 0xD,
	0xE, 0xF, 0x0, 0x1, 0x2, 0x3, 0x4, 0x5,
}

// inverseSBox is the inverse permutation of sbox.
var inverseSBox = computeInverseSBox(&sbox)

// computeInverseSBox computes the inverse permutation of an S-box.
// For each i, inv[sbox[i]] = i.
func computeInverseSBox(s *[16]uint8) [16]uint8 {
	var inv [16]uint8
	for i := 0; i < len(s); i++ {
		inv[s[i]] = uint8(i)
	}
	return inv
}

// SBox returns the substitute of the nibble n. Only the low 4 bits of n are
// used.
func SBox(n uint8) uint8 {
	return sbox[n&0x0f]
}

// InverseSBox returns the nibble whose substitute is n. Only the low 4 bits of
// n are used.
func InverseSBox(n uint8) uint8 {
	return inverseSBox[n&0x0f]
}

// substitute passes both nibbles of x through the S-box independently.
func substitute(x uint8) uint8 {
	return sbox[x>>4]<<4 | sbox[x&0x0f]
}

// roundFunction is the Feistel round function F: the half is mixed with the
// subkey and the result is substituted nibble by nibble.
func roundFunction(half, subkey uint8) uint8 {
	return substitute(half ^ subkey)
}
