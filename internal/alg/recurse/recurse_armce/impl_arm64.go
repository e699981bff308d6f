//go:build !purego

package recurse_armce

// Recurse1 through Recurse4 replace each 32 byte hash with its SHA-256 digest
// n times using the ARMv8 SHA2 instructions. Callers check consts.HasARMSHA2.

//go:noescape
func Recurse1(hash *[32]byte, n uint64)

//go:noescape
func Recurse2(hash *[64]byte, n uint64)

//go:noescape
func Recurse3(hash *[96]byte, n uint64)

//go:noescape
func Recurse4(hash *[128]byte, n uint64)
