// lebytes.go - little-endian byte packing helpers
//
// To the extent possible under law, the author has waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package aesgcmsiv

import "encoding/binary"

// putUint32LE writes v to dst[0:4] as a little-endian 32-bit integer.
func putUint32LE(dst []byte, v uint32) {
	binary.LittleEndian.PutUint32(dst, v)
}

// getUint32LE reads a little-endian 32-bit integer from src[0:4].
func getUint32LE(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// putUint64LE writes v to dst[0:8] as a little-endian 64-bit integer.
func putUint64LE(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}

// getUint64LE reads a little-endian 64-bit integer from src[0:8].
func getUint64LE(src []byte) uint64 {
	return binary.LittleEndian.Uint64(src)
}
