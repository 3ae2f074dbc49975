package uuid

import (
	"errors"
	"fmt"
)

// ParseError reports text that is not a UUID in any accepted encoding.
type ParseError struct {
	// Input is the text as given, before whitespace or prefix stripping.
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid UUID '%s': %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownSchemeError reports a version token that names no supported
// generation scheme.
type UnknownSchemeError struct {
	Token string
}

func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("unknown UUID version '%s'. Supported: v4, v7", e.Token)
}

// NormalizeLengthError reports a GUID payload that is not 32 hex characters
// once the prefix and hyphens are removed.
type NormalizeLengthError struct {
	Length int
}

func (e *NormalizeLengthError) Error() string {
	return fmt.Sprintf("invalid UUID length: expected 32 hex characters, got %d", e.Length)
}

// NormalizeHexError reports the first two-character chunk of a GUID payload
// that is not a hex byte.
type NormalizeHexError struct {
	Chunk string
}

func (e *NormalizeHexError) Error() string {
	return fmt.Sprintf("invalid hex character in '%s'", e.Chunk)
}

// IsInputError reports whether err stems from invalid user input rather than
// a failure of the environment (such as the random source).
func IsInputError(err error) bool {
	var (
		parseErr  *ParseError
		schemeErr *UnknownSchemeError
		lengthErr *NormalizeLengthError
		hexErr    *NormalizeHexError
	)
	return errors.As(err, &parseErr) ||
		errors.As(err, &schemeErr) ||
		errors.As(err, &lengthErr) ||
		errors.As(err, &hexErr) ||
		errors.Is(err, ErrInvalidLength) ||
		errors.Is(err, ErrUnknownShape)
}
