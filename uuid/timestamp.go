package uuid

import (
	"encoding/binary"
	"fmt"
	"time"
)

const (
	// gregorianOffset is the number of 100ns ticks between the start of the
	// Gregorian calendar (1582-10-15) and the Unix epoch.
	gregorianOffset = uint64(122_192_928_000_000_000)

	ticksPerSecond = uint64(10_000_000)
)

// Timestamp is a point in time embedded in a UUID, as whole seconds since the
// Unix epoch plus a sub-second nanosecond remainder.
type Timestamp struct {
	Seconds uint64
	Nanos   uint32
}

// String renders the timestamp as "<seconds>.<nanoseconds>", with the
// nanoseconds zero-padded to nine digits.
func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", t.Seconds, t.Nanos)
}

// Millis returns the whole milliseconds since the Unix epoch.
func (t Timestamp) Millis() uint64 {
	return t.Seconds*1000 + uint64(t.Nanos/1_000_000)
}

func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t.Seconds), int64(t.Nanos)).UTC()
}

// Timestamp decodes the time embedded in a v1, v6 or v7 UUID. The second
// return value is false for every other version, and for v1/v6 values whose
// tick count predates the Unix epoch.
//
// The UUIDv7 bit layout is
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           unix_ts_ms                          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|          unix_ts_ms           |  ver  |       rand_a          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|var|                        rand_b                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                            rand_b                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// and the UUIDv1 layout is
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           time_low                            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           time_mid            |  ver  |       time_high       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|var|         clock_seq         |             node              |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                              node                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// where the 60-bit time is a count of 100ns ticks since 1582-10-15. UUIDv6
// carries the same count with the fields in most-significant-first order.
func (u UUID) Timestamp() (Timestamp, bool) {
	switch u.Version() {
	case V1:
		return fromTicks(u.v1Ticks())
	case V6:
		return fromTicks(u.v6Ticks())
	case V7:
		ms := u.unixMillis()
		return Timestamp{
			Seconds: ms / 1000,
			Nanos:   uint32(ms%1000) * 1_000_000,
		}, true
	default:
		return Timestamp{}, false
	}
}

func (u UUID) unixMillis() uint64 {
	return 0 |
		uint64(u[5]) |
		uint64(u[4])<<8 |
		uint64(u[3])<<16 |
		uint64(u[2])<<24 |
		uint64(u[1])<<32 |
		uint64(u[0])<<40
}

func (u UUID) v1Ticks() uint64 {
	low := binary.BigEndian.Uint32(u[0:4])
	mid := binary.BigEndian.Uint16(u[4:6])
	high := binary.BigEndian.Uint16(u[6:8]) & 0x0FFF
	return uint64(high)<<48 | uint64(mid)<<32 | uint64(low)
}

func (u UUID) v6Ticks() uint64 {
	high := binary.BigEndian.Uint32(u[0:4])
	mid := binary.BigEndian.Uint16(u[4:6])
	low := binary.BigEndian.Uint16(u[6:8]) & 0x0FFF
	return uint64(high)<<28 | uint64(mid)<<12 | uint64(low)
}

func fromTicks(ticks uint64) (Timestamp, bool) {
	if ticks < gregorianOffset {
		return Timestamp{}, false
	}
	d := ticks - gregorianOffset
	return Timestamp{
		Seconds: d / ticksPerSecond,
		Nanos:   uint32(d%ticksPerSecond) * 100,
	}, true
}

func TimeFromV7(u UUID) (time.Time, error) {
	if u.Version() != V7 {
		return time.UnixMilli(0), fmt.Errorf("uuid: %s is version %d, not version 7", u, u.Version())
	}
	return time.UnixMilli(int64(u.unixMillis())), nil
}
