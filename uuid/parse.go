package uuid

import (
	"errors"
	"strings"

	guuid "github.com/google/uuid"

	"github.com/replicate/uuidtool/must"
)

var errBraces = errors.New("invalid UUID format: expected surrounding braces")

// Parse decodes a UUID from text. Surrounding whitespace and a single "0x"
// prefix (in either case) are stripped, and the remainder must be one of
//
//	xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//	xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx
//	{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//	urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//
// with hex digits in any case. Failures are returned as *ParseError.
func Parse(s string) (UUID, error) {
	cleaned := stripHexPrefix(strings.TrimSpace(s))

	if len(cleaned) == 38 && (cleaned[0] != '{' || cleaned[37] != '}') {
		return Nil, &ParseError{Input: s, Err: errBraces}
	}

	g, err := guuid.Parse(cleaned)
	if err != nil {
		return Nil, &ParseError{Input: s, Err: err}
	}
	return UUID(g), nil
}

// MustParse is like Parse but panics if s is not a UUID. It is meant for
// package-level fixtures.
func MustParse(s string) UUID {
	return must.Get(Parse(s))
}

func stripHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
