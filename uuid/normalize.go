package uuid

import (
	"encoding/hex"
	"strings"
)

// NormalizeNativeOrder reads a GUID written out in .NET System.Guid byte
// order (for example a hex dump of Guid.ToByteArray) and returns the
// equivalent RFC 4122 UUID as 32 uppercase hex digits.
//
// The input is not checked against the UUID text grammar: after trimming
// whitespace, dropping an optional "0x"/"0X" prefix and removing every
// hyphen, it only has to be exactly 32 hex digits.
func NormalizeNativeOrder(s string) (string, error) {
	u, err := DecodeNativeOrder(s)
	if err != nil {
		return "", err
	}
	return Format(u, FormatOptions{Shape: ShapeCompact, Uppercase: true}), nil
}

// DecodeNativeOrder is NormalizeNativeOrder without the final rendering.
func DecodeNativeOrder(s string) (UUID, error) {
	cleaned := stripHexPrefix(strings.TrimSpace(s))
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	if len(cleaned) != 2*Size {
		return Nil, &NormalizeLengthError{Length: len(cleaned)}
	}

	var native [Size]byte
	for i := range native {
		chunk := cleaned[2*i : 2*i+2]
		if _, err := hex.Decode(native[i:i+1], []byte(chunk)); err != nil {
			return Nil, &NormalizeHexError{Chunk: chunk}
		}
	}

	return FromNativeOrder(native), nil
}
