package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"

	"github.com/zeebo/rsha256/internal/consts"
)

//go:generate go run . -out ../internal/alg/recurse/recurse_shani/recurse_amd64.s

type ctx struct {
	k256  Mem
	init  Mem
	pad   Mem
	padk  Mem
	bswap Mem
}

func main() {
	ConstraintExpr("!purego")

	var c ctx

	c.k256 = GLOBL("k256", RODATA|NOPTR)
	for i, k := range consts.K {
		DATA(4*i, U32(k))
	}

	// ABEF then CDGH, A and C in the top word
	c.init = GLOBL("init", RODATA|NOPTR)
	for i, v := range []uint32{
		consts.IV5, consts.IV4, consts.IV1, consts.IV0,
		consts.IV7, consts.IV6, consts.IV3, consts.IV2,
	} {
		DATA(4*i, U32(v))
	}

	c.pad = GLOBL("pad", RODATA|NOPTR)
	for i, v := range consts.Pad {
		DATA(4*i, U32(v))
	}

	c.padk = GLOBL("padk", RODATA|NOPTR)
	for i, v := range consts.PadK {
		DATA(4*i, U32(v))
	}

	c.bswap = GLOBL("bswap", RODATA|NOPTR)
	DATA(0, U64(0x0405060700010203))
	DATA(8, U64(0x0c0d0e0f08090a0b))

	for lanes := 1; lanes <= consts.MaxLanes; lanes++ {
		Recurse(c, lanes)
	}

	Generate()
}
