// Package endian fixes the byte order used for seeds and record headers.
//
// Seeds are decomposed least significant byte first on every host, so a
// checksum computed on a big-endian machine matches one computed elsewhere.
package endian

import (
	"encoding/binary"
)

// Endian is the binary.ByteOrder used by seedcrc.
var Endian = binary.LittleEndian

func Uint32(b []byte) uint32 {
	return Endian.Uint32(b)
}

func PutUint32(b []byte, u uint32) {
	Endian.PutUint32(b, u)
}

// SeedBytes returns the four bytes of seed in the order they are folded into
// a checksum.
func SeedBytes(seed uint32) [4]byte {
	var b [4]byte
	Endian.PutUint32(b[:], seed)
	return b
}
