package uuid

import (
	"fmt"
	"strings"

	guuid "github.com/google/uuid"
)

// Scheme is a supported generation scheme.
type Scheme int

const (
	// SchemeRandom produces version 4 UUIDs from a CSPRNG.
	SchemeRandom Scheme = iota
	// SchemeTimeOrderedRandom produces version 7 UUIDs: a 48-bit Unix
	// millisecond timestamp followed by random bits.
	SchemeTimeOrderedRandom
)

func (s Scheme) String() string {
	switch s {
	case SchemeRandom:
		return "v4"
	case SchemeTimeOrderedRandom:
		return "v7"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// LookupScheme maps a version token to a scheme. Matching is
// case-insensitive and exact: "v4" and "4" select SchemeRandom, "v7" and "7"
// select SchemeTimeOrderedRandom, and anything else reports false.
func LookupScheme(token string) (Scheme, bool) {
	switch strings.ToLower(token) {
	case "v4", "4":
		return SchemeRandom, true
	case "v7", "7":
		return SchemeTimeOrderedRandom, true
	default:
		return SchemeRandom, false
	}
}

// ParseScheme is LookupScheme with an *UnknownSchemeError for unknown tokens.
func ParseScheme(token string) (Scheme, error) {
	s, ok := LookupScheme(token)
	if !ok {
		return s, &UnknownSchemeError{Token: token}
	}
	return s, nil
}

// Generate returns a new UUID of the given scheme. It fails only if the
// system random source does.
func Generate(scheme Scheme) (UUID, error) {
	switch scheme {
	case SchemeTimeOrderedRandom:
		return NewV7()
	case SchemeRandom:
		return NewV4()
	default:
		return Nil, fmt.Errorf("uuid: cannot generate %s", scheme)
	}
}

func NewV4() (UUID, error) {
	g, err := guuid.NewRandom()
	if err != nil {
		return Nil, fmt.Errorf("uuid: generating v4: %w", err)
	}
	return UUID(g), nil
}

func NewV7() (UUID, error) {
	g, err := guuid.NewV7()
	if err != nil {
		return Nil, fmt.Errorf("uuid: generating v7: %w", err)
	}
	return UUID(g), nil
}

func Must(u UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return u
}
