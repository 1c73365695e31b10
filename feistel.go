package feistel

// Rounds is the number of Feistel rounds applied in each direction.
const Rounds = 4

var (
	// encryptSchedule lists round numbers in the order encryption applies
	// them.
	encryptSchedule = [Rounds]int{1, 2, 3, 4}

	// decryptSchedule walks the same rounds backwards.
	decryptSchedule = [Rounds]int{4, 3, 2, 1}
)

// Cipher is a 4-round Feistel network keyed with a 16-bit key.
// A Cipher is immutable and safe for concurrent use.
type Cipher struct {
	k1 uint8 // high half of the key, used by odd rounds
	k2 uint8 // low half of the key, used by even rounds
}

// NewCipher creates a new Cipher from a 16-bit key.
func NewCipher(key uint16) *Cipher {
	k1, k2 := splitBlock(key)
	return &Cipher{k1: k1, k2: k2}
}

// Subkeys returns the two round subkeys derived from the key.
func (c *Cipher) Subkeys() (k1, k2 uint8) {
	return c.k1, c.k2
}

// subkey returns the subkey used by encryption round n (1-based).
func (c *Cipher) subkey(n int) uint8 {
	if n%2 == 1 {
		return c.k1
	}
	return c.k2
}

// Encrypt transforms a plaintext block into a ciphertext block.
func (c *Cipher) Encrypt(block uint16) uint16 {
	return c.process(Encrypt, block, nil)
}

// Decrypt transforms a ciphertext block back into the plaintext block.
// For every key and block, Decrypt(Encrypt(block)) == block.
func (c *Cipher) Decrypt(block uint16) uint16 {
	return c.process(Decrypt, block, nil)
}

// Apply transforms block in the given direction. It returns an
// *InvalidModeError if mode is not Encrypt or Decrypt.
func (c *Cipher) Apply(mode Mode, block uint16) (uint16, error) {
	if !mode.Valid() {
		return 0, &InvalidModeError{Mode: mode.String()}
	}
	return c.process(mode, block, nil), nil
}

// process runs the round schedule for mode over block. When visit is non-nil
// it is called with the entry state and with the state after every round.
// The caller must have validated mode.
func (c *Cipher) process(mode Mode, block uint16, visit func(Round)) uint16 {
	l, r := splitBlock(block)
	schedule := &encryptSchedule
	if mode == Decrypt {
		// Decryption enters with the halves swapped, which turns each
		// round into the inverse of the matching encryption round.
		l, r = r, l
		schedule = &decryptSchedule
	}

	if visit != nil {
		visit(Round{L: l, R: r})
	}

	for step, n := range schedule {
		k := c.subkey(n)
		f := roundFunction(r, k)
		l, r = r, l^f

		if visit != nil {
			visit(Round{
				Step:   step + 1,
				Number: n,
				Subkey: k,
				F:      f,
				L:      l,
				R:      r,
			})
		}
	}

	if mode == Decrypt {
		// Undo the entry swap.
		return joinHalves(r, l)
	}
	return joinHalves(l, r)
}
