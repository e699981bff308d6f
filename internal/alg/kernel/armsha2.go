package kernel

import "github.com/zeebo/rsha256/internal/alg/compress/compress_pure"

// ARMSHA2 models the ARMv8 SHA2 instructions as recurse_armce drives them.
// State is held as {a, b, c, d} and {e, f, g, h}.
type ARMSHA2 struct{}

func (ARMSHA2) Init() (Vec, Vec) { return scalarInit0, scalarInit1 }

func (ARMSHA2) Rounds(s0, s1 *Vec, wk Vec) {
	*s0, *s1 = sha256h(*s0, *s1, wk), sha256h2(*s1, *s0, wk)
}

func (ARMSHA2) Expand(w0, w1, w2, w3 Vec) Vec {
	return sha256su1(sha256su0(w0, w1), w2, w3)
}

func (ARMSHA2) Finish(s0, s1 Vec) (Vec, Vec) {
	return s0.Add(scalarInit0), s1.Add(scalarInit1)
}

func rounds4(abcd, efgh, wk Vec) (Vec, Vec) {
	a, b, c, d := abcd[0], abcd[1], abcd[2], abcd[3]
	e, f, g, h := efgh[0], efgh[1], efgh[2], efgh[3]

	for i := 0; i < 4; i++ {
		t1 := h + compress_pure.Sum1(e) + compress_pure.Ch(e, f, g) + wk[i]
		t2 := compress_pure.Sum0(a) + compress_pure.Maj(a, b, c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	return Vec{a, b, c, d}, Vec{e, f, g, h}
}

// sha256h returns abcd after four rounds.
func sha256h(abcd, efgh, wk Vec) Vec {
	x, _ := rounds4(abcd, efgh, wk)
	return x
}

// sha256h2 returns efgh after four rounds. It needs abcd from before them.
func sha256h2(efgh, abcd, wk Vec) Vec {
	_, y := rounds4(abcd, efgh, wk)
	return y
}

// sha256su0 is the small sigma0 half of the schedule recurrence.
func sha256su0(w0, w1 Vec) Vec { return msg1(w0, w1) }

// sha256su1 finishes four schedule words from SHA256SU0's output and the
// previous eight words.
func sha256su1(x, w2, w3 Vec) (y Vec) {
	y[0] = x[0] + w2[1] + compress_pure.Sigma1(w3[2])
	y[1] = x[1] + w2[2] + compress_pure.Sigma1(w3[3])
	y[2] = x[2] + w2[3] + compress_pure.Sigma1(y[0])
	y[3] = x[3] + w3[0] + compress_pure.Sigma1(y[1])
	return y
}
