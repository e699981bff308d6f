package recurse_shani

import (
	"fmt"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"

	"github.com/zeebo/rsha256/internal/alg/recurse/recurse_ref"
	"github.com/zeebo/rsha256/internal/consts"
	"github.com/zeebo/rsha256/internal/vectors"
)

func call(buf []byte, n uint64) {
	switch len(buf) {
	case 32:
		Recurse1((*[32]byte)(buf), n)
	case 64:
		Recurse2((*[64]byte)(buf), n)
	case 96:
		Recurse3((*[96]byte)(buf), n)
	case 128:
		Recurse4((*[128]byte)(buf), n)
	default:
		panic("bad width")
	}
}

func TestRecurse(t *testing.T) {
	if !consts.HasSHANI {
		t.SkipNow()
	}

	for lanes := 1; lanes <= consts.MaxLanes; lanes++ {
		for _, n := range []uint64{0, 1, 2, 10, 1000} {
			for i := 0; i < 10; i++ {
				buf := make([]byte, lanes*consts.Size)
				for j := range buf {
					buf[j] = byte(pcg.Uint32())
				}

				exp := append([]byte(nil), buf...)
				for l := 0; l < lanes; l++ {
					recurse_ref.Recurse((*[32]byte)(exp[32*l:]), n)
				}

				call(buf, n)
				assert.Equal(t, buf, exp)
			}
		}
	}
}

func TestVectors(t *testing.T) {
	if !consts.HasSHANI {
		t.SkipNow()
	}

	iters := []uint64{0, 1, 10e6}
	if testing.Short() {
		iters = iters[:2]
	}

	for lanes := 1; lanes <= consts.MaxLanes; lanes++ {
		for _, n := range iters {
			buf := vectors.Seeds(lanes)
			call(buf, n)
			assert.That(t, vectors.Check(buf, n))
		}
	}
}

func BenchmarkRecurse(b *testing.B) {
	if !consts.HasSHANI {
		b.SkipNow()
	}

	for lanes := 1; lanes <= consts.MaxLanes; lanes++ {
		b.Run(fmt.Sprintf("x%d", lanes), func(b *testing.B) {
			buf := make([]byte, lanes*consts.Size)
			b.ReportAllocs()
			b.SetBytes(int64(lanes * consts.BlockLen))
			b.ResetTimer()

			call(buf, uint64(b.N))
		})
	}
}
