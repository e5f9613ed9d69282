// aesgcmsiv.go - AES-GCM-SIV AEAD construction (RFC 8452)
//
// To the extent possible under law, the author has waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package aesgcmsiv implements AES-GCM-SIV, the nonce-misuse-resistant
// authenticated encryption with associated data (AEAD) construction defined
// by RFC 8452.
//
// Reusing a nonce under AES-GCM-SIV reveals only that identical
// (key, nonce, plaintext, associated data) tuples produce identical
// ciphertext (it does not catastrophically leak the authentication key the
// way nonce reuse does under AES-GCM).
package aesgcmsiv

import (
	"crypto/subtle"
)

const (
	// NonceSize is the size of a nonce in bytes.
	NonceSize = 12

	// TagSize is the size of an authentication tag in bytes.
	TagSize = 16

	// KeySize128 is the AES-128 key size in bytes.
	KeySize128 = 16

	// KeySize256 is the AES-256 key size in bytes.
	KeySize256 = 32
)

// AEAD is a keyed AES-GCM-SIV instance, implementing crypto/cipher.AEAD.
//
// An AEAD holds only the master key's length and its AES key schedule; it
// carries no mutable per-message state, so Seal and Open may be called
// concurrently on a shared instance (spec §5).
type AEAD struct {
	keyLen int
	master *blockCipher
}

// New returns a new keyed AES-GCM-SIV instance. key must be 16 (AES-128) or
// 32 (AES-256) bytes.
func New(key []byte) (*AEAD, error) {
	if len(key) != KeySize128 && len(key) != KeySize256 {
		return nil, ErrInvalidKeySize
	}
	master, err := newBlockCipher(key)
	if err != nil {
		return nil, err
	}
	return &AEAD{keyLen: len(key), master: master}, nil
}

// NonceSize returns the size of the nonce that must be passed to Seal and
// Open.
func (a *AEAD) NonceSize() int {
	return NonceSize
}

// Overhead returns the maximum difference between the lengths of a
// plaintext and its ciphertext.
func (a *AEAD) Overhead() int {
	return TagSize
}

// Seal encrypts and authenticates plaintext, authenticates additionalData,
// and appends the result to dst, returning the updated slice. nonce must be
// NonceSize bytes and, for a given key, must never repeat for distinct
// (plaintext, additionalData) pairs if the nonce-misuse-resistance property
// is to provide its full benefit.
//
// The plaintext and dst must overlap exactly or not at all. To reuse
// plaintext's storage for the encrypted output, use plaintext[:0] as dst.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic(ErrInvalidNonceSize)
	}

	authKey, encKey := deriveKeys(a.master, nonce, a.keyLen)
	defer zeroize(authKey)
	defer zeroize(encKey)

	encCipher, err := newBlockCipher(encKey)
	if err != nil {
		panic(err)
	}

	tag := computeTag(encCipher, authKey, nonce, additionalData, plaintext)

	ret, out := sliceForAppend(dst, len(plaintext)+TagSize)
	c0 := tag
	c0[15] |= 0x80
	ctrXOR(encCipher, c0[:], out[:len(plaintext)], plaintext)
	copy(out[len(plaintext):], tag[:])
	zeroize(c0[:])

	return ret
}

// Open decrypts and authenticates ciphertext, authenticates additionalData
// and, if successful, appends the resulting plaintext to dst, returning the
// updated slice. nonce must be NonceSize bytes and match the value passed
// to Seal; if authentication fails, the returned slice is nil and err is
// ErrOpen.
//
// The ciphertext and dst must overlap exactly or not at all. To reuse
// ciphertext's storage for the decrypted output, use ciphertext[:0] as dst.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic(ErrInvalidNonceSize)
	}
	if len(ciphertext) < TagSize {
		return nil, ErrOpen
	}

	n := len(ciphertext) - TagSize
	e := ciphertext[:n]
	var receivedTag [16]byte
	copy(receivedTag[:], ciphertext[n:])

	authKey, encKey := deriveKeys(a.master, nonce, a.keyLen)
	defer zeroize(authKey)
	defer zeroize(encKey)

	encCipher, err := newBlockCipher(encKey)
	if err != nil {
		panic(err)
	}

	c0 := receivedTag
	c0[15] |= 0x80

	ret, out := sliceForAppend(dst, n)
	ctrXOR(encCipher, c0[:], out, e)
	zeroize(c0[:])

	expectedTag := computeTag(encCipher, authKey, nonce, additionalData, out)

	if subtle.ConstantTimeCompare(expectedTag[:], receivedTag[:]) != 1 {
		if len(out) > 0 {
			zeroize(out)
			ret = nil
		}
		return nil, ErrOpen
	}
	return ret, nil
}

// computeTag runs the POLYVAL framing of spec §4.6 over (additionalData,
// message) under authKey, masks the digest with the nonce, and encrypts it
// under encCipher to produce the 16-byte synthetic tag.
func computeTag(encCipher *blockCipher, authKey, nonce, additionalData, message []byte) [16]byte {
	h := newPolyval(authKey)
	h.updatePadded(additionalData)
	h.updatePadded(message)

	var lenBlock [16]byte
	putUint64LE(lenBlock[0:8], uint64(len(additionalData))*8)
	putUint64LE(lenBlock[8:16], uint64(len(message))*8)
	h.update(lenBlock[:])

	s := h.digest()
	for i := 0; i < NonceSize; i++ {
		s[i] ^= nonce[i]
	}
	s[15] &= 0x7F

	var tag [16]byte
	encCipher.encryptBlock(tag[:], s[:])
	return tag
}

// sliceForAppend extends in by n bytes, reusing its backing array when
// there's room, and returns the extended slice along with the n-byte tail
// that was appended.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
