package uuid

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Shape selects the textual layout produced by Format.
type Shape int

const (
	// ShapeCanonical is the hyphenated 8-4-4-4-12 form.
	ShapeCanonical Shape = iota
	// ShapeCompact is 32 contiguous hex digits.
	ShapeCompact
	// ShapeHex is the compact form prefixed with "0x".
	ShapeHex
)

const hexPrefix = "0x"

var ErrUnknownShape = fmt.Errorf("uuid: unknown shape")

// FormatOptions is the per-call output selection. The zero value renders
// canonical lowercase text.
type FormatOptions struct {
	Shape     Shape
	Uppercase bool
}

func (s Shape) String() string {
	switch s {
	case ShapeCanonical:
		return "canonical"
	case ShapeCompact:
		return "compact"
	case ShapeHex:
		return "hex"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(name) {
	case "canonical", "":
		return ShapeCanonical, nil
	case "compact":
		return ShapeCompact, nil
	case "hex":
		return ShapeHex, nil
	default:
		return ShapeCanonical, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// Format renders u in the selected shape. Uppercasing is applied last, to the
// whole string, so a hex-shaped result starts with "0X".
func Format(u UUID, opts FormatOptions) string {
	var s string
	switch opts.Shape {
	case ShapeCompact:
		s = u.Compact()
	case ShapeHex:
		s = u.Hex()
	case ShapeCanonical:
		fallthrough
	default:
		s = u.String()
	}

	if opts.Uppercase {
		return strings.ToUpper(s)
	}
	return s
}

// Compact returns the 32 lowercase hex digits of u with no separators.
func (u UUID) Compact() string {
	var buf [2 * Size]byte
	hex.Encode(buf[:], u[:])
	return string(buf[:])
}

// Hex returns the compact form with a "0x" prefix.
func (u UUID) Hex() string {
	var buf [len(hexPrefix) + 2*Size]byte
	copy(buf[:], hexPrefix)
	hex.Encode(buf[len(hexPrefix):], u[:])
	return string(buf[:])
}
