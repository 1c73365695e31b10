package feistel

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when a block or key is not a string of exactly
	// 16 binary digits.
	ErrFormat = errors.New("feistel: invalid format, must be 16 binary digits")

	// ErrInvalidMode is returned when the mode is neither encrypt nor decrypt.
	ErrInvalidMode = errors.New("feistel: invalid mode, must be encrypt or decrypt")
)

// FormatError describes why a block or key failed validation.
// It unwraps to ErrFormat.
type FormatError struct {
	// Field is the name of the rejected input ("block" or "key").
	Field string

	// Input is the rejected value as it was supplied.
	Input string

	// Offset is the byte offset of the first non-binary character, or -1
	// when the input has the wrong length.
	Offset int

	// Char is the offending character. Zero when Offset is -1.
	Char rune
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("feistel: %s must be %d binary digits, got %d characters",
			e.Field, BlockBits, len(e.Input))
	}
	return fmt.Sprintf("feistel: %s has non-binary character %q at offset %d",
		e.Field, e.Char, e.Offset)
}

// Unwrap returns ErrFormat.
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// InvalidModeError reports an unrecognized mode. It unwraps to ErrInvalidMode.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("feistel: invalid mode %q, must be %q or %q",
		e.Mode, Encrypt, Decrypt)
}

// Unwrap returns ErrInvalidMode.
func (e *InvalidModeError) Unwrap() error {
	return ErrInvalidMode
}
