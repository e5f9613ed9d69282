// blockcipher.go - single-block AES adapter
//
// To the extent possible under law, the author has waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package aesgcmsiv

import (
	"crypto/aes"
	"crypto/cipher"
)

// blockCipher wraps a single-block AES-ECB encrypt operation keyed with
// either a 16-byte (AES-128) or 32-byte (AES-256) key. It retains the key
// schedule and is stateless across blocks: no mode of operation is added
// here, callers drive CTR/tag framing themselves.
type blockCipher struct {
	block cipher.Block
}

// newBlockCipher schedules an AES key. Key-schedule failure (only possible
// if len(key) is neither 16 nor 32) is a programmer error.
func newBlockCipher(key []byte) (*blockCipher, error) {
	if len(key) != 16 && len(key) != 32 {
		return nil, ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &blockCipher{block: block}, nil
}

// encryptBlock computes AES-ECB on exactly one 16-byte block.
func (b *blockCipher) encryptBlock(dst, src []byte) {
	b.block.Encrypt(dst, src)
}
