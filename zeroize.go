// zeroize.go - secret material scrubbing helper
//
// To the extent possible under law, the author has waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package aesgcmsiv

// zeroize overwrites b with zero bytes. Used to scrub derived subkeys,
// counter blocks, and candidate plaintexts on every exit path, including
// the authentication-failure path in Open (spec §5).
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
