//go:build !arm64 || purego

package recurse_armce

import "github.com/zeebo/rsha256/internal/alg/recurse/recurse_pure"

func Recurse1(hash *[32]byte, n uint64)  { recurse_pure.Recurse1(hash, n) }
func Recurse2(hash *[64]byte, n uint64)  { recurse_pure.Recurse2(hash, n) }
func Recurse3(hash *[96]byte, n uint64)  { recurse_pure.Recurse3(hash, n) }
func Recurse4(hash *[128]byte, n uint64) { recurse_pure.Recurse4(hash, n) }
