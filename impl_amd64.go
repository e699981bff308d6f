//go:build !purego

package rsha256

import (
	"github.com/zeebo/rsha256/internal/alg/recurse/recurse_shani"
	"github.com/zeebo/rsha256/internal/consts"
)

const backend = "sha-ni"

func accelerated() bool { return consts.HasSHANI }

func recurse1(hash *[Size]byte, n uint64)       { recurse_shani.Recurse1(hash, n) }
func recurse2(hashes *[2 * Size]byte, n uint64) { recurse_shani.Recurse2(hashes, n) }
func recurse3(hashes *[3 * Size]byte, n uint64) { recurse_shani.Recurse3(hashes, n) }
func recurse4(hashes *[4 * Size]byte, n uint64) { recurse_shani.Recurse4(hashes, n) }
