// ctr.go - AES-CTR keystream with a 32-bit wrapping counter
//
// To the extent possible under law, the author has waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package aesgcmsiv

// ctrXOR applies the AES-CTR keystream generated from block cipher enc,
// starting at counter block c0, to src, writing into dst (which may alias
// src). Only bytes 0..3 of the counter block are treated as the counter;
// they wrap modulo 2^32 without propagating a carry into byte 4, per
// spec §4.5.
func ctrXOR(enc *blockCipher, c0 []byte, dst, src []byte) {
	var counter [16]byte
	copy(counter[:], c0)

	var keystream [16]byte
	for len(src) > 0 {
		enc.encryptBlock(keystream[:], counter[:])

		n := len(src)
		if n > 16 {
			n = 16
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ keystream[i]
		}
		dst = dst[n:]
		src = src[n:]

		incrementCounter32(&counter)
	}
}

// incrementCounter32 adds 1 to the little-endian 32-bit counter held in
// bytes 0..3 of block, wrapping modulo 2^32. Bytes 4..15 are never modified.
func incrementCounter32(block *[16]byte) {
	c := getUint32LE(block[0:4])
	c++
	putUint32LE(block[0:4], c)
}
