package kernel

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/rsha256/internal/alg/recurse/recurse_ref"
	"github.com/zeebo/rsha256/internal/consts"
)

// The assembly backends split Expand across quads and drop the steps whose
// inputs are all padding. These replay one iteration in exactly that order.

func iterSHANI(m *[4]Vec) {
	s0, s1 := SHANI{}.Init()
	m[2], m[3] = pad[0], pad[1]

	for q, quad := range Quads {
		a, b, d := q%4, (q+1)%4, (q+3)%4

		x0 := padK[q%2]
		if !quad.Pad {
			x0 = m[a].Add(kv[q])
		}

		s1 = rnds2(s1, s0, x0)
		if quad.Msg2 {
			if quad.Align {
				m[b] = m[b].Add(alignr(m[a], m[d], 1))
			}
			m[b] = msg2(m[b], m[a])
		}
		s0 = rnds2(s0, s1, pshufd(x0, 0x0e))
		if quad.Msg1 {
			m[d] = msg1(m[d], m[a])
		}
	}

	m[0], m[1] = SHANI{}.Finish(s0, s1)
}

func iterARMSHA2(m *[4]Vec) {
	s0, s1 := ARMSHA2{}.Init()
	m[2], m[3] = pad[0], pad[1]

	for q, quad := range Quads {
		a, b, c, d := q%4, (q+1)%4, (q+2)%4, (q+3)%4

		wk := padK[q%2]
		if !quad.Pad {
			wk = m[a].Add(kv[q])
		}

		sv := s0
		s0 = sha256h(s0, s1, wk)
		s1 = sha256h2(s1, sv, wk)
		if quad.SU1 {
			m[d] = sha256su1(m[d], m[b], m[c])
		}
		if quad.SU0 {
			m[a] = sha256su0(m[a], m[b])
		}
	}

	m[0], m[1] = ARMSHA2{}.Finish(s0, s1)
}

func testSchedule(t *testing.T, iter func(*[4]Vec)) {
	for _, n := range []uint64{1, 2, 50} {
		for i := 0; i < 20; i++ {
			buf := randHashes(1)

			var m [4]Vec
			m[0], m[1] = load(buf), load(buf[16:])
			for j := uint64(0); j < n; j++ {
				iter(&m)
			}

			var got [consts.Size]byte
			store(got[:], m[0])
			store(got[16:], m[1])

			var exp [consts.Size]byte
			copy(exp[:], buf)
			recurse_ref.Recurse(&exp, n)

			assert.Equal(t, got, exp)
		}
	}
}

func TestScheduleSHANI(t *testing.T)   { testSchedule(t, iterSHANI) }
func TestScheduleARMSHA2(t *testing.T) { testSchedule(t, iterARMSHA2) }

func TestPaddingShortcuts(t *testing.T) {
	// msg1 and su0 over two padding quads leave the first unchanged
	assert.Equal(t, msg1(pad[0], pad[1]), pad[0])
	assert.Equal(t, sha256su0(pad[0], pad[1]), pad[0])

	// and the realignment term of the first msg2 is zero
	assert.Equal(t, alignr(pad[1], pad[0], 1), Vec{})
}

func TestQuads(t *testing.T) {
	var pads, expands, msg2s, su1s int
	for q, quad := range Quads {
		if quad.Pad {
			pads++
			assert.That(t, q == 2 || q == 3)
			assert.That(t, !quad.Align)
		}
		if quad.Align {
			assert.That(t, quad.Msg2)
		}
		if quad.Msg2 {
			// Msg1 for the same slot ran two quads earlier, or only read padding
			assert.That(t, Quads[q-2].Msg1 || Quads[q-2].Pad)
		}
		if quad.Expand {
			expands++
		}
		if quad.Msg2 {
			msg2s++
		}
		if quad.SU1 {
			su1s++
		}
	}

	// rounds 16..63 need 48 schedule words, four per expansion
	assert.Equal(t, pads, 2)
	assert.Equal(t, expands, 12)
	assert.Equal(t, msg2s, 12)
	assert.Equal(t, su1s, 12)
}
