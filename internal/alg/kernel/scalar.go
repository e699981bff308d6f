package kernel

import (
	"github.com/zeebo/rsha256/internal/alg/compress/compress_pure"
	"github.com/zeebo/rsha256/internal/consts"
)

// Scalar is the portable unit. State is held as {a, b, c, d} and {e, f, g, h}.
type Scalar struct{}

var (
	scalarInit0 = vec(consts.IV[0:4])
	scalarInit1 = vec(consts.IV[4:8])
)

func (Scalar) Init() (Vec, Vec) { return scalarInit0, scalarInit1 }

func (Scalar) Rounds(s0, s1 *Vec, wk Vec) {
	a, b, c, d := s0[0], s0[1], s0[2], s0[3]
	e, f, g, h := s1[0], s1[1], s1[2], s1[3]

	for i := 0; i < 4; i++ {
		t1 := h + compress_pure.Sum1(e) + compress_pure.Ch(e, f, g) + wk[i]
		t2 := compress_pure.Sum0(a) + compress_pure.Maj(a, b, c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	*s0 = Vec{a, b, c, d}
	*s1 = Vec{e, f, g, h}
}

func (Scalar) Expand(w0, w1, w2, w3 Vec) (x Vec) {
	x[0] = compress_pure.Sigma1(w3[2]) + w2[1] + compress_pure.Sigma0(w0[1]) + w0[0]
	x[1] = compress_pure.Sigma1(w3[3]) + w2[2] + compress_pure.Sigma0(w0[2]) + w0[1]
	x[2] = compress_pure.Sigma1(x[0]) + w2[3] + compress_pure.Sigma0(w0[3]) + w0[2]
	x[3] = compress_pure.Sigma1(x[1]) + w3[0] + compress_pure.Sigma0(w1[0]) + w0[3]
	return x
}

func (Scalar) Finish(s0, s1 Vec) (Vec, Vec) {
	return s0.Add(scalarInit0), s1.Add(scalarInit1)
}
