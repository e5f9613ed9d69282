// errors.go - sentinel errors
//
// To the extent possible under law, the author has waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package aesgcmsiv

import "errors"

var (
	// ErrInvalidKeySize is returned when a key is not 16 or 32 bytes.
	ErrInvalidKeySize = errors.New("aesgcmsiv: invalid key size")

	// ErrInvalidNonceSize is the error thrown via a panic when a nonce is
	// not NonceSize bytes long.
	ErrInvalidNonceSize = errors.New("aesgcmsiv: invalid nonce size")

	// ErrOpen is returned when message authentication fails during Open.
	ErrOpen = errors.New("aesgcmsiv: message authentication failed")
)
