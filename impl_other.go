//go:build (!amd64 && !arm64) || purego

package rsha256

import "github.com/zeebo/rsha256/internal/alg/recurse/recurse_pure"

const backend = "pure"

func accelerated() bool { return true }

func recurse1(hash *[Size]byte, n uint64)       { recurse_pure.Recurse1(hash, n) }
func recurse2(hashes *[2 * Size]byte, n uint64) { recurse_pure.Recurse2(hashes, n) }
func recurse3(hashes *[3 * Size]byte, n uint64) { recurse_pure.Recurse3(hashes, n) }
func recurse4(hashes *[4 * Size]byte, n uint64) { recurse_pure.Recurse4(hashes, n) }
