// kdf.go - message-authentication/-encryption subkey derivation
//
// To the extent possible under law, the author has waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package aesgcmsiv

// deriveKeys turns (master key, nonce) into a 16-byte message-authentication
// key and a message-encryption key (16 bytes for AES-128 master keys, 32 for
// AES-256), per spec §4.4.
//
// A 16-byte counter block B = ctr_le32 ∥ nonce is encrypted under the master
// key for each counter value in turn; the low 8 bytes of each resulting
// ciphertext block are concatenated in counter order.
func deriveKeys(master *blockCipher, nonce []byte, masterKeyLen int) (authKey, encKey []byte) {
	numHalves := 4
	if masterKeyLen == 32 {
		numHalves = 6
	}

	halves := make([]byte, numHalves*8)
	var block, out [16]byte
	copy(block[4:16], nonce)

	for c := 0; c < numHalves; c++ {
		putUint32LE(block[0:4], uint32(c))
		master.encryptBlock(out[:], block[:])
		copy(halves[c*8:c*8+8], out[0:8])
	}

	authKey = halves[0:16]
	encKey = halves[16:]
	return authKey, encKey
}
