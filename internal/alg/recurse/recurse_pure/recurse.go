package recurse_pure

import (
	"github.com/zeebo/rsha256/internal/alg/kernel"
	"github.com/zeebo/rsha256/internal/consts"
)

func Recurse1(hash *[consts.Size]byte, n uint64) {
	kernel.Recurse(kernel.Scalar{}, hash[:], n)
}

func Recurse2(hashes *[2 * consts.Size]byte, n uint64) {
	kernel.Recurse(kernel.Scalar{}, hashes[:], n)
}

func Recurse3(hashes *[3 * consts.Size]byte, n uint64) {
	kernel.Recurse(kernel.Scalar{}, hashes[:], n)
}

func Recurse4(hashes *[4 * consts.Size]byte, n uint64) {
	kernel.Recurse(kernel.Scalar{}, hashes[:], n)
}
