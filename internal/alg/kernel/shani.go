package kernel

import (
	"github.com/zeebo/rsha256/internal/alg/compress/compress_pure"
	"github.com/zeebo/rsha256/internal/consts"
)

// SHANI models the x86 SHA extensions as recurse_shani drives them. State is
// held as ABEF and CDGH with A and C in the top word, so word 0 is F and H.
type SHANI struct{}

var (
	shaniABEF = Vec{consts.IV5, consts.IV4, consts.IV1, consts.IV0}
	shaniCDGH = Vec{consts.IV7, consts.IV6, consts.IV3, consts.IV2}
)

func (SHANI) Init() (Vec, Vec) { return shaniABEF, shaniCDGH }

func (SHANI) Rounds(s0, s1 *Vec, wk Vec) {
	*s1 = rnds2(*s1, *s0, wk)
	*s0 = rnds2(*s0, *s1, pshufd(wk, 0x0e))
}

func (SHANI) Expand(w0, w1, w2, w3 Vec) Vec {
	return msg2(msg1(w0, w1).Add(alignr(w3, w2, 1)), w3)
}

func (SHANI) Finish(s0, s1 Vec) (Vec, Vec) {
	s0 = pshufd(s0.Add(shaniABEF), 0x1b)
	s1 = pshufd(s1.Add(shaniCDGH), 0xb1)
	return blend(s0, s1), alignr(s1, s0, 2)
}

// rnds2 is SHA256RNDS2: two rounds on the state split across cdgh and abef
// using words 0 and 1 of wk. It returns the new ABEF; the old abef is the new
// CDGH.
func rnds2(cdgh, abef, wk Vec) Vec {
	a, b, e, f := abef[3], abef[2], abef[1], abef[0]
	c, d, g, h := cdgh[3], cdgh[2], cdgh[1], cdgh[0]

	for i := 0; i < 2; i++ {
		t1 := h + compress_pure.Sum1(e) + compress_pure.Ch(e, f, g) + wk[i]
		t2 := compress_pure.Sum0(a) + compress_pure.Maj(a, b, c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	return Vec{f, e, b, a}
}

// msg1 is SHA256MSG1: the small sigma0 half of the schedule recurrence.
func msg1(a, b Vec) Vec {
	return Vec{
		a[0] + compress_pure.Sigma0(a[1]),
		a[1] + compress_pure.Sigma0(a[2]),
		a[2] + compress_pure.Sigma0(a[3]),
		a[3] + compress_pure.Sigma0(b[0]),
	}
}

// msg2 is SHA256MSG2: the small sigma1 half, where b holds the previous four
// schedule words.
func msg2(a, b Vec) (x Vec) {
	x[0] = a[0] + compress_pure.Sigma1(b[2])
	x[1] = a[1] + compress_pure.Sigma1(b[3])
	x[2] = a[2] + compress_pure.Sigma1(x[0])
	x[3] = a[3] + compress_pure.Sigma1(x[1])
	return x
}

// alignr is PALIGNR counted in words: hi:lo shifted right by n words.
func alignr(hi, lo Vec, n int) (x Vec) {
	cat := [8]uint32{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
	copy(x[:], cat[n:n+4])
	return x
}

// pshufd is PSHUFD with an immediate selector.
func pshufd(v Vec, imm uint8) Vec {
	return Vec{v[imm&3], v[imm>>2&3], v[imm>>4&3], v[imm>>6&3]}
}

// blend is PBLENDW $0xf0: the low half of lo and the high half of hi.
func blend(lo, hi Vec) Vec {
	return Vec{lo[0], lo[1], hi[2], hi[3]}
}
