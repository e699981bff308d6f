package kernel

import (
	"encoding/binary"

	"github.com/zeebo/rsha256/internal/consts"
)

// Vec is four consecutive 32 bit words, as held by one 128 bit register.
type Vec [4]uint32

func (v Vec) Add(o Vec) Vec {
	return Vec{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Unit is a round engine that works four rounds and four schedule words at a
// time, the granularity of the fused SHA-256 instructions.
type Unit interface {
	// Init returns the initial chaining value in the unit's state layout.
	Init() (s0, s1 Vec)

	// Rounds advances the state four rounds. wk holds the message words with
	// their round constants already added.
	Rounds(s0, s1 *Vec, wk Vec)

	// Expand returns schedule words t through t+3 given words t-16 through t-1.
	Expand(w0, w1, w2, w3 Vec) Vec

	// Finish adds the initial chaining value into the state and returns the
	// digest as message words 0 through 7 of the next block.
	Finish(s0, s1 Vec) (h0, h1 Vec)
}

var (
	// message words 8 through 15, with and without round constants
	pad  = [2]Vec{vec(consts.Pad[0:4]), vec(consts.Pad[4:8])}
	padK = [2]Vec{vec(consts.PadK[0:4]), vec(consts.PadK[4:8])}

	kv = func() (kv [16]Vec) {
		for q := range kv {
			kv[q] = vec(consts.K[4*q : 4*q+4])
		}
		return kv
	}()
)

func vec(w []uint32) Vec { return Vec{w[0], w[1], w[2], w[3]} }

func load(b []byte) Vec {
	return Vec{
		binary.BigEndian.Uint32(b[0:]),
		binary.BigEndian.Uint32(b[4:]),
		binary.BigEndian.Uint32(b[8:]),
		binary.BigEndian.Uint32(b[12:]),
	}
}

func store(b []byte, v Vec) {
	binary.BigEndian.PutUint32(b[0:], v[0])
	binary.BigEndian.PutUint32(b[4:], v[1])
	binary.BigEndian.PutUint32(b[8:], v[2])
	binary.BigEndian.PutUint32(b[12:], v[3])
}

// Recurse replaces every 32 byte lane of hashes with its SHA-256 digest n
// times. Lanes never interact: all of them advance through each group of
// four rounds before the next group starts. Message words 8 through 15 are
// the fixed padding, so their first use takes precomputed round inputs.
//
// It panics unless hashes holds between 1 and consts.MaxLanes lanes.
func Recurse[U Unit](u U, hashes []byte, n uint64) {
	lanes := len(hashes) / consts.Size
	if lanes < 1 || lanes > consts.MaxLanes || len(hashes)%consts.Size != 0 {
		panic("kernel: lane buffer must hold 1 to 4 hashes")
	}

	var (
		s0, s1       [consts.MaxLanes]Vec
		m            [consts.MaxLanes][4]Vec
		init0, init1 = u.Init()
	)

	for l := 0; l < lanes; l++ {
		m[l][0] = load(hashes[consts.Size*l:])
		m[l][1] = load(hashes[consts.Size*l+16:])
	}

	for ; n > 0; n-- {
		for l := 0; l < lanes; l++ {
			s0[l], s1[l] = init0, init1
			m[l][2], m[l][3] = pad[0], pad[1]
		}

		for q := 0; q < 16; q++ {
			for l := 0; l < lanes; l++ {
				w := &m[l]

				wk := padK[q%2]
				if !Quads[q].Pad {
					wk = w[q%4].Add(kv[q])
				}
				u.Rounds(&s0[l], &s1[l], wk)

				if Quads[q].Expand {
					w[q%4] = u.Expand(w[q%4], w[(q+1)%4], w[(q+2)%4], w[(q+3)%4])
				}
			}
		}

		for l := 0; l < lanes; l++ {
			m[l][0], m[l][1] = u.Finish(s0[l], s1[l])
		}
	}

	for l := 0; l < lanes; l++ {
		store(hashes[consts.Size*l:], m[l][0])
		store(hashes[consts.Size*l+16:], m[l][1])
	}
}
