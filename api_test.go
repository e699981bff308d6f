package rsha256

import (
	"crypto/sha256"
	"fmt"
	"testing"

	simd "github.com/minio/sha256-simd"
	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"

	"github.com/zeebo/rsha256/internal/vectors"
)

func requireAccelerated(t testing.TB) {
	if !Accelerated() {
		t.SkipNow()
	}
}

func randHash() (h [Size]byte) {
	for i := range h {
		h[i] = byte(pcg.Uint32())
	}
	return h
}

func TestAPI_Vectors(t *testing.T) {
	requireAccelerated(t)

	h0 := vectors.Seed(0)

	t.Run("Identity", func(t *testing.T) {
		h := h0
		Recurse(&h, 0)
		assert.Equal(t, h, h0)
	})

	t.Run("Single", func(t *testing.T) {
		h := h0
		Recurse(&h, 1)
		exp, _ := vectors.Lookup(0, 1)
		assert.Equal(t, h, exp)
	})

	t.Run("10M", func(t *testing.T) {
		if testing.Short() {
			t.SkipNow()
		}
		exp, _ := vectors.Lookup(0, 10e6)
		assert.Equal(t, Sum(h0, 10e6), exp)
	})
}

func TestAPI_SingleStep(t *testing.T) {
	requireAccelerated(t)

	for i := 0; i < 1000; i++ {
		h := randHash()
		exp := sha256.Sum256(h[:])
		assert.Equal(t, simd.Sum256(h[:]), exp)

		Recurse(&h, 1)
		assert.Equal(t, h, exp)
	}
}

func TestAPI_ReferenceAgrees(t *testing.T) {
	requireAccelerated(t)

	for _, n := range []uint64{0, 1, 10, 1000} {
		for i := 0; i < 20; i++ {
			h := randHash()
			exp := h
			Reference(&exp, n)
			assert.Equal(t, Sum(h, n), exp)
		}
	}
}

func TestAPI_LaneIndependence(t *testing.T) {
	requireAccelerated(t)

	check := func(t *testing.T, buf []byte, n uint64, fn func()) {
		var exp [][Size]byte
		for l := 0; l < len(buf)/Size; l++ {
			var h [Size]byte
			copy(h[:], buf[Size*l:])
			exp = append(exp, Sum(h, n))
		}

		fn()

		for l := range exp {
			assert.Equal(t, buf[Size*l:Size*(l+1)], exp[l][:])
		}
	}

	for _, n := range []uint64{0, 1, 5, 300} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			var x2 [2 * Size]byte
			var x3 [3 * Size]byte
			var x4 [4 * Size]byte
			for _, buf := range [][]byte{x2[:], x3[:], x4[:]} {
				for i := range buf {
					buf[i] = byte(pcg.Uint32())
				}
			}

			check(t, x2[:], n, func() { Recurse2(&x2, n) })
			check(t, x3[:], n, func() { Recurse3(&x3, n) })
			check(t, x4[:], n, func() { Recurse4(&x4, n) })
		})
	}
}

func TestAPI_LaneVectors(t *testing.T) {
	requireAccelerated(t)

	for _, n := range []uint64{0, 1} {
		var x2 [2 * Size]byte
		var x3 [3 * Size]byte
		var x4 [4 * Size]byte
		copy(x2[:], vectors.Seeds(2))
		copy(x3[:], vectors.Seeds(3))
		copy(x4[:], vectors.Seeds(4))

		Recurse2(&x2, n)
		Recurse3(&x3, n)
		Recurse4(&x4, n)

		assert.That(t, vectors.Check(x2[:], n))
		assert.That(t, vectors.Check(x3[:], n))
		assert.That(t, vectors.Check(x4[:], n))
	}
}

func TestAPI_SameInputAllLanes(t *testing.T) {
	requireAccelerated(t)

	h := randHash()
	var x4 [4 * Size]byte
	for l := 0; l < 4; l++ {
		copy(x4[Size*l:], h[:])
	}

	Recurse4(&x4, 77)
	exp := Sum(h, 77)
	for l := 0; l < 4; l++ {
		assert.Equal(t, x4[Size*l:Size*(l+1)], exp[:])
	}
}

func TestAPI_Deterministic(t *testing.T) {
	requireAccelerated(t)

	h := randHash()
	a, b := Sum(h, 123), Sum(h, 123)
	assert.Equal(t, a, b)

	// chaining calls is the same as one longer call
	assert.Equal(t, Sum(Sum(h, 100), 23), a)
}

func TestAPI_Batch(t *testing.T) {
	requireAccelerated(t)

	for count := 0; count <= 5; count++ {
		hashes := make([][Size]byte, count)
		exp := make([][Size]byte, count)
		for i := range hashes {
			hashes[i] = randHash()
			exp[i] = Sum(hashes[i], 50)
		}

		Batch(hashes, 50)
		assert.DeepEqual(t, hashes, exp)
	}
}

func TestAPI_Backend(t *testing.T) {
	switch Backend() {
	case "sha-ni", "armv8-sha2", "pure":
	default:
		t.Fatalf("unknown backend %q", Backend())
	}
	if Backend() == "pure" {
		assert.That(t, Accelerated())
	}
}
