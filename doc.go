// Package feistel implements a small didactic Feistel cipher: a 4-round
// Feistel network over a 16-bit block with a 16-bit key and a fixed 4-bit
// S-box.
//
// The cipher exists to show the Feistel construction at a size that can be
// followed by hand. Each round mixes one half of the block into the other
// through a round function and swaps the halves. Decryption reuses the same
// round function and subkeys, walking the rounds in reverse order.
//
// # Construction
//
//   - The block splits into two 8-bit halves L and R. The key splits into
//     subkeys K1 (high byte) and K2 (low byte).
//   - Round i computes L, R = R, L ^ F(R, K), where K is K1 for odd i and K2
//     for even i.
//   - F(h, k) XORs h with k and substitutes each nibble of the result through
//     the S-box n -> n+6 mod 16.
//   - Decryption swaps the halves on entry, runs rounds 4, 3, 2, 1 and swaps
//     them back on exit.
//
// # Security
//
// None. With 8-bit halves, four rounds and an affine S-box the cipher can be
// broken by exhaustive search over its 65536 keys in well under a second. Use
// it to learn, never to protect data.
//
// # Basic Usage
//
//	c := feistel.NewCipher(0xAA55)
//	ct := c.Encrypt(0xACAA)
//	pt := c.Decrypt(ct) // 0xACAA
//
// Blocks and keys may also be given as 16-digit binary strings:
//
//	out, err := feistel.Transform("1010110010101010", "1010101001010101", "encrypt")
//	if err != nil {
//	    // err is a *FormatError or an *InvalidModeError
//	}
//
// TransformCompat returns the all-zero Sentinel instead of an error and
// logs the failure.
//
// # Logging
//
// The package logs through a btclog.Logger that is disabled by default.
// Install one with UseLogger.
//
// # Thread Safety
//
// Cipher instances are immutable and safe for concurrent use. The S-box is a
// package-level table that is never modified.
package feistel
