package feistel

import "fmt"

// Mode selects the direction of the transform.
type Mode int

const (
	// Encrypt applies the rounds in schedule order.
	Encrypt Mode = iota

	// Decrypt applies the rounds in reverse schedule order.
	Decrypt
)

// String returns "encrypt" or "decrypt".
func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is Encrypt or Decrypt.
func (m Mode) Valid() bool {
	return m == Encrypt || m == Decrypt
}

// ParseMode parses the literal mode names "encrypt" and "decrypt". Any other
// value, including differently cased ones, yields an *InvalidModeError.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "encrypt":
		return Encrypt, nil
	case "decrypt":
		return Decrypt, nil
	}
	return 0, &InvalidModeError{Mode: s}
}
