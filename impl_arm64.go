//go:build !purego

package rsha256

import (
	"github.com/zeebo/rsha256/internal/alg/recurse/recurse_armce"
	"github.com/zeebo/rsha256/internal/consts"
)

const backend = "armv8-sha2"

func accelerated() bool { return consts.HasARMSHA2 }

func recurse1(hash *[Size]byte, n uint64)       { recurse_armce.Recurse1(hash, n) }
func recurse2(hashes *[2 * Size]byte, n uint64) { recurse_armce.Recurse2(hashes, n) }
func recurse3(hashes *[3 * Size]byte, n uint64) { recurse_armce.Recurse3(hashes, n) }
func recurse4(hashes *[4 * Size]byte, n uint64) { recurse_armce.Recurse4(hashes, n) }
