package compress_pure

import (
	"encoding/binary"
	"math/bits"

	"github.com/zeebo/rsha256/internal/consts"
)

// Compress runs the SHA-256 compression function over one 64 byte block and
// adds the result into state. Nothing is cached between calls.
func Compress(state *[8]uint32, block *[consts.BlockLen]byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		w[i] = Sigma1(w[i-2]) + w[i-7] + Sigma0(w[i-15]) + w[i-16]
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i++ {
		t1 := h + Sum1(e) + Ch(e, f, g) + consts.K[i] + w[i]
		t2 := Sum0(a) + Maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

func Ch(e, f, g uint32) uint32  { return (e & f) ^ (^e & g) }
func Maj(a, b, c uint32) uint32 { return (a & b) ^ (a & c) ^ (b & c) }

func Sum0(a uint32) uint32 {
	return bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
}

func Sum1(e uint32) uint32 {
	return bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
}

// Sigma0 and Sigma1 are the schedule recurrence's small sigmas.
func Sigma0(w uint32) uint32 {
	return bits.RotateLeft32(w, -7) ^ bits.RotateLeft32(w, -18) ^ w>>3
}

func Sigma1(w uint32) uint32 {
	return bits.RotateLeft32(w, -17) ^ bits.RotateLeft32(w, -19) ^ w>>10
}
