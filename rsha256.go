// Package rsha256 computes recursive SHA-256: a 32 byte value replaced by its
// own digest n times, sha256(sha256(...sha256(h))).
//
// Every iteration hashes exactly one block whose second half is fixed
// padding, so the fast paths precompute that half once per call and keep the
// value in the instruction set's native word order until the last iteration.
// The backend is chosen at build time: SHA extensions on amd64, the ARMv8
// SHA2 instructions on arm64, portable Go elsewhere or with the purego build
// tag. The engine never checks the CPU itself; see Accelerated.
//
// Recurse2, Recurse3, Recurse4 and Batch advance several independent chains
// at once to keep the hash unit busy. They only help when the chains really
// are independent, for example when verifying checkpoints. A single long
// chain, such as the creation of a delay proof, is strictly sequential and
// must use Recurse.
package rsha256

import (
	"unsafe"

	"github.com/zeebo/rsha256/internal/alg/recurse/recurse_ref"
)

// Size is the size of a chain value in bytes.
const Size = 32

// Recurse replaces hash with its SHA-256 digest n times. n == 0 leaves it
// unchanged.
func Recurse(hash *[Size]byte, n uint64) { recurse1(hash, n) }

// Recurse2 runs Recurse on both 32 byte chains in hashes, interleaved.
func Recurse2(hashes *[2 * Size]byte, n uint64) { recurse2(hashes, n) }

// Recurse3 runs Recurse on the three 32 byte chains in hashes, interleaved.
func Recurse3(hashes *[3 * Size]byte, n uint64) { recurse3(hashes, n) }

// Recurse4 runs Recurse on the four 32 byte chains in hashes, interleaved.
func Recurse4(hashes *[4 * Size]byte, n uint64) { recurse4(hashes, n) }

// Reference computes the same result as Recurse with the generic compression
// function, rebuilding the padded block every iteration. It is slow and
// exists to check the other entry points.
func Reference(hash *[Size]byte, n uint64) { recurse_ref.Recurse(hash, n) }

// Sum returns seed after n iterations.
func Sum(seed [Size]byte, n uint64) [Size]byte {
	recurse1(&seed, n)
	return seed
}

// Batch advances every chain in hashes by n iterations, two at a time. The
// chains must be independent of each other.
func Batch(hashes [][Size]byte, n uint64) {
	i := 0
	for ; i+2 <= len(hashes); i += 2 {
		recurse2((*[2 * Size]byte)(unsafe.Pointer(&hashes[i])), n)
	}
	if i < len(hashes) {
		recurse1(&hashes[i], n)
	}
}

// Backend names the implementation compiled in: "sha-ni", "armv8-sha2" or
// "pure".
func Backend() string { return backend }

// Accelerated reports whether this CPU can run the compiled-in backend. The
// hardware backends execute their instructions unconditionally; calling them
// when Accelerated is false faults with an illegal instruction.
func Accelerated() bool { return accelerated() }
