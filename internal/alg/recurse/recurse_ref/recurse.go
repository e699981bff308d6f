package recurse_ref

import (
	"encoding/binary"

	"github.com/zeebo/rsha256/internal/alg/compress/compress_pure"
	"github.com/zeebo/rsha256/internal/consts"
)

// Recurse replaces hash with its SHA-256 digest n times. Every iteration
// builds the full padded block, resets the state, and compresses it.
func Recurse(hash *[consts.Size]byte, n uint64) {
	var block [consts.BlockLen]byte

	for ; n > 0; n-- {
		copy(block[:consts.Size], hash[:])
		block[consts.Size] = 0x80
		for i := consts.Size + 1; i < consts.BlockLen-8; i++ {
			block[i] = 0
		}
		binary.BigEndian.PutUint64(block[consts.BlockLen-8:], consts.MsgBits)

		state := consts.IV
		compress_pure.Compress(&state, &block)

		for i, v := range state {
			binary.BigEndian.PutUint32(hash[4*i:], v)
		}
	}
}
