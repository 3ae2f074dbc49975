package uuid

import (
	"fmt"
	"strings"
)

// Report is the set of facts Inspect derives from a UUID.
type Report struct {
	Version byte
	Variant Variant

	// Random is set for version 4, which embeds no timestamp.
	Random bool

	// Timestamp is set for versions 1 and 7.
	Timestamp *Timestamp

	// TimestampMillis is set for version 7 only.
	TimestampMillis *uint64
}

func Inspect(u UUID) Report {
	r := Report{
		Version: u.Version(),
		Variant: u.Variant(),
	}

	switch r.Version {
	case V4:
		r.Random = true
	case V1, V7:
		ts, ok := u.Timestamp()
		if !ok {
			break
		}
		r.Timestamp = &ts
		if r.Version == V7 {
			ms := ts.Millis()
			r.TimestampMillis = &ms
		}
	}

	return r
}

// String renders the report one "key: value" pair per line.
func (r Report) String() string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "version: %d\n", r.Version)
	_, _ = fmt.Fprintf(&sb, "variant: %s\n", r.Variant)
	if r.Random {
		_, _ = sb.WriteString("type: random\n")
	}
	if r.Timestamp != nil {
		_, _ = fmt.Fprintf(&sb, "timestamp: %s (Unix epoch)\n", r.Timestamp)
	}
	if r.TimestampMillis != nil {
		_, _ = fmt.Fprintf(&sb, "timestamp_ms: %d\n", *r.TimestampMillis)
	}

	return sb.String()
}
