package uuid

import "encoding/binary"

// ToNativeOrder converts 16 bytes in RFC 4122 (big-endian) order to the
// mixed-endian order of .NET System.Guid and the Windows GUID struct, which
// store the first three fields little-endian:
//
//	time_low  (bytes 0-3)  reversed
//	time_mid  (bytes 4-5)  swapped
//	time_high (bytes 6-7)  swapped
//	clock_seq, node (bytes 8-15) unchanged
//
// The permutation is its own inverse.
func ToNativeOrder(b [Size]byte) [Size]byte {
	var out [Size]byte

	binary.LittleEndian.PutUint32(out[0:4], binary.BigEndian.Uint32(b[0:4]))
	binary.LittleEndian.PutUint16(out[4:6], binary.BigEndian.Uint16(b[4:6]))
	binary.LittleEndian.PutUint16(out[6:8], binary.BigEndian.Uint16(b[6:8]))
	copy(out[8:], b[8:])

	return out
}

// FromNativeOrder converts mixed-endian GUID bytes back to RFC 4122 order.
func FromNativeOrder(b [Size]byte) [Size]byte {
	return ToNativeOrder(b)
}

// NativeBytes returns u laid out as .NET's Guid.ToByteArray would.
func (u UUID) NativeBytes() [Size]byte {
	return ToNativeOrder(u)
}
