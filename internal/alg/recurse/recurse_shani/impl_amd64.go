//go:build !purego

package recurse_shani

// Recurse1 through Recurse4 replace each 32 byte hash with its SHA-256 digest
// n times. They execute SHA256RNDS2 unconditionally: callers check
// consts.HasSHANI first.
//
// The assembly is generated by the avo module at the repository root. Every
// lane keeps its state in registers; at widths 3 and 4 the message schedule
// of the later lanes lives in the stack frame.

//go:noescape
func Recurse1(hash *[32]byte, n uint64)

//go:noescape
func Recurse2(hash *[64]byte, n uint64)

//go:noescape
func Recurse3(hash *[96]byte, n uint64)

//go:noescape
func Recurse4(hash *[128]byte, n uint64)
