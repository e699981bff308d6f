package recurse_pure

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/rsha256/internal/consts"
	"github.com/zeebo/rsha256/internal/vectors"
)

func TestVectors(t *testing.T) {
	for _, n := range []uint64{0, 1} {
		var x1 [consts.Size]byte
		var x2 [2 * consts.Size]byte
		var x3 [3 * consts.Size]byte
		var x4 [4 * consts.Size]byte

		copy(x1[:], vectors.Seeds(1))
		copy(x2[:], vectors.Seeds(2))
		copy(x3[:], vectors.Seeds(3))
		copy(x4[:], vectors.Seeds(4))

		Recurse1(&x1, n)
		Recurse2(&x2, n)
		Recurse3(&x3, n)
		Recurse4(&x4, n)

		assert.That(t, vectors.Check(x1[:], n))
		assert.That(t, vectors.Check(x2[:], n))
		assert.That(t, vectors.Check(x3[:], n))
		assert.That(t, vectors.Check(x4[:], n))
	}
}

func TestVectorsLong(t *testing.T) {
	if testing.Short() {
		t.SkipNow()
	}

	var x2 [2 * consts.Size]byte
	copy(x2[:], vectors.Seeds(2))
	Recurse2(&x2, 10e6)
	assert.That(t, vectors.Check(x2[:], 10e6))
}
