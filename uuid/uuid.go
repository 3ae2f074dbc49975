// Package uuid implements the identifier codec behind the uuid command: a
// 16-byte UUID value in RFC 4122 byte order, parsing and formatting of its
// textual encodings, field inspection, conversion to and from the
// mixed-endian layout used by .NET System.Guid, and selection between the
// random (v4) and time-ordered (v7) generation schemes.
package uuid

import (
	"encoding/hex"
	"errors"
)

const (
	Size = 16

	V1 byte = 1
	V4 byte = 4
	V6 byte = 6
	V7 byte = 7
)

// Variant is the family of layout semantics encoded in the top bits of byte 8.
type Variant int

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

var ErrInvalidLength = errors.New("uuid: invalid length, expected 16 bytes")

type UUID [Size]byte

// Nil is the UUID with all 128 bits set to zero.
var Nil UUID

func FromBytes(b []byte) (UUID, error) {
	var u UUID
	if len(b) != Size {
		return u, ErrInvalidLength
	}
	copy(u[:], b)
	return u, nil
}

func (u UUID) Version() byte {
	return u[6] >> 4
}

func (u UUID) Variant() Variant {
	switch {
	case (u[8] >> 7) == 0x00:
		return VariantNCS
	case (u[8] >> 6) == 0x02:
		return VariantRFC4122
	case (u[8] >> 5) == 0x06:
		return VariantMicrosoft
	case (u[8] >> 5) == 0x07:
		fallthrough
	default:
		return VariantFuture
	}
}

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	case VariantFuture:
		return "Future"
	default:
		return "Unknown"
	}
}

func (u UUID) IsNil() bool {
	return u == Nil
}

// Bytes returns a copy of the 16 bytes in RFC 4122 order.
func (u UUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// String returns the canonical lowercase 8-4-4-4-12 form.
func (u UUID) String() string {
	var buf [36]byte
	encodeCanonical(buf[:], u)
	return string(buf[:])
}

func encodeCanonical(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	hex.Encode(dst[9:13], u[4:6])
	hex.Encode(dst[14:18], u[6:8])
	hex.Encode(dst[19:23], u[8:10])
	hex.Encode(dst[24:36], u[10:16])
	dst[8] = '-'
	dst[13] = '-'
	dst[18] = '-'
	dst[23] = '-'
}
