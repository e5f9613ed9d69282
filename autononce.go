// autononce.go - automatic nonce-generating AEAD wrapper
//
// To the extent possible under law, the author has waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package aesgcmsiv

import (
	"crypto/cipher"
	"crypto/rand"
)

// autoNonceAEAD wraps an AEAD to generate a fresh nonce per Seal and
// prepend it to the ciphertext, implementing spec §4.6's seal_auto/
// open_auto convenience mode. Its NonceSize is 0: callers pass no nonce.
type autoNonceAEAD struct {
	inner *AEAD
}

// NewAutoNonce returns an AEAD that manages its own nonces: Seal generates a
// fresh cryptographically random 12-byte nonce and prepends it to the
// ciphertext; Open splits the leading 12 bytes off as the nonce before
// delegating.
func NewAutoNonce(key []byte) (cipher.AEAD, error) {
	inner, err := New(key)
	if err != nil {
		return nil, err
	}
	return &autoNonceAEAD{inner: inner}, nil
}

func (a *autoNonceAEAD) NonceSize() int {
	return 0
}

func (a *autoNonceAEAD) Overhead() int {
	return NonceSize + TagSize
}

func (a *autoNonceAEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != 0 {
		panic(ErrInvalidNonceSize)
	}

	if total := len(dst) + NonceSize + len(plaintext) + TagSize; cap(dst) < total {
		tmp := make([]byte, len(dst), total)
		copy(tmp, dst)
		dst = tmp
	}

	n := dst[len(dst) : len(dst)+NonceSize]
	if _, err := rand.Read(n); err != nil {
		panic(err)
	}
	dst = dst[:len(dst)+NonceSize]

	return a.inner.Seal(dst, n, plaintext, additionalData)
}

// Open requires len(ciphertext) >= NonceSize; per spec §4.6, a shorter
// input returns the same ErrOpen as an authentication failure rather than a
// distinct invalid-argument error.
func (a *autoNonceAEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != 0 {
		panic(ErrInvalidNonceSize)
	}
	if len(ciphertext) < NonceSize {
		return nil, ErrOpen
	}

	n, ct := ciphertext[:NonceSize], ciphertext[NonceSize:]
	return a.inner.Open(dst, n, ct, additionalData)
}
