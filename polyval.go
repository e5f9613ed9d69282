// polyval.go - POLYVAL universal hash over GF(2^128)
//
// To the extent possible under law, the author has waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package aesgcmsiv

// polyval implements the POLYVAL universal hash over GF(2^128) (RFC 8452
// §3), reduced modulo x^128 + x^127 + x^126 + x^121 + 1.
//
// POLYVAL(H, X) is byte-reverse(GHASH(H·x^-1, byte-reverse(X))): the hash
// key is pre-multiplied once by x^-1 (mulXGHASH below) so the inner loop can
// use a GHASH-shaped right-shifting multiplier while staying in POLYVAL's
// little-endian byte order at the boundary. See spec §4.3 and §9.
//
// A polyval value is consumed by exactly one message; it is never reset and
// reused (spec §3 invariants).
type polyval struct {
	// hHi, hLo hold H' = H·x^-1 mod the reducing polynomial, immutable
	// once constructed.
	hHi, hLo uint64

	// hi, lo hold the running 128-bit accumulator, in the same
	// GHASH-domain word layout as hHi/hLo.
	hi, lo uint64
}

const ghashReductionConst = 0xE100000000000000

// newPolyval constructs a POLYVAL hasher from a 16-byte hash key.
func newPolyval(h []byte) *polyval {
	p := &polyval{}
	p.hHi, p.hLo = mulXGHASH(h)
	return p
}

// mulXGHASH computes H·x^-1 mod (x^128 + x^127 + x^126 + x^121 + 1) for a
// little-endian 16-byte H: a one-bit right shift of the 128-bit value, with
// the top word XORed by 0xE1000000 whenever the shifted-out low bit was 1.
func mulXGHASH(h []byte) (hi, lo uint64) {
	hi = getUint64LE(h[8:16])
	lo = getUint64LE(h[0:8])

	lsb := lo & 1
	lo = (lo >> 1) | (hi << 63)
	hi >>= 1
	if lsb == 1 {
		hi ^= ghashReductionConst
	}
	return hi, lo
}

// mulGHASH multiplies (xHi,xLo) by (hHi,hLo) in GF(2^128) using a bit-serial
// right-shift algorithm: walk 127 bits of x (xHi's bits first, then xLo's),
// for each bit conditionally XOR the current (running, shifted) H' into the
// output and then shift H' right by one bit, reducing whenever the
// shifted-out low bit was 1. The 128th (final) bit contributes to the
// output without a further shift of H'.
func mulGHASH(xHi, xLo, hHi, hLo uint64) (zHi, zLo uint64) {
	curHi, curLo := hHi, hLo

	for i := 0; i < 63; i++ {
		if (xHi>>(63-i))&1 == 1 {
			zHi ^= curHi
			zLo ^= curLo
		}
		curHi, curLo = shiftReduce(curHi, curLo)
	}
	// Bit 63 of xHi: the 64th bit overall.
	if xHi&1 == 1 {
		zHi ^= curHi
		zLo ^= curLo
	}
	curHi, curLo = shiftReduce(curHi, curLo)

	for i := 0; i < 63; i++ {
		if (xLo>>(63-i))&1 == 1 {
			zHi ^= curHi
			zLo ^= curLo
		}
		curHi, curLo = shiftReduce(curHi, curLo)
	}
	// 128th (final) bit: no further shift of H' afterwards.
	if xLo&1 == 1 {
		zHi ^= curHi
		zLo ^= curLo
	}
	return zHi, zLo
}

func shiftReduce(hi, lo uint64) (uint64, uint64) {
	lsb := lo & 1
	lo = (lo >> 1) | (hi << 63)
	hi >>= 1
	if lsb == 1 {
		hi ^= ghashReductionConst
	}
	return hi, lo
}

// update hashes one 16-byte block into the running accumulator.
func (p *polyval) update(block []byte) {
	bLo := getUint64LE(block[0:8])
	bHi := getUint64LE(block[8:16])

	xHi := p.hi ^ bHi
	xLo := p.lo ^ bLo

	p.hi, p.lo = mulGHASH(xHi, xLo, p.hHi, p.hLo)
}

// updateBlocks hashes zero or more full 16-byte blocks in order.
func (p *polyval) updateBlocks(data []byte) {
	for len(data) >= 16 {
		p.update(data[:16])
		data = data[16:]
	}
}

// updatePadded hashes data, zero-padding a trailing partial block to 16
// bytes if len(data) is not a multiple of 16.
func (p *polyval) updatePadded(data []byte) {
	n := len(data) &^ 15
	p.updateBlocks(data[:n])
	data = data[n:]
	if len(data) > 0 {
		var block [16]byte
		copy(block[:], data)
		p.update(block[:])
	}
}

// digest emits the accumulator as 16 little-endian bytes.
func (p *polyval) digest() [16]byte {
	var out [16]byte
	putUint64LE(out[0:8], p.lo)
	putUint64LE(out[8:16], p.hi)
	return out
}
