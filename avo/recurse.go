package main

import (
	"fmt"

	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"

	"github.com/zeebo/rsha256/internal/alg/kernel"
)

// msg is the implicit message operand of SHA256RNDS2.
var msg = X0

var tmp = X15

// lane is one hash. The state pair always lives in registers. Schedule slots
// are handed out lane by lane from what is left and the rest go to the frame.
type lane struct {
	s0, s1 Register
	m      [4]Op
}

func newLanes(n int) []lane {
	xs := []Register{X1, X2, X3, X4, X5, X6, X7, X8, X9, X10, X11, X12, X13, X14}

	ls := make([]lane, n)
	for l := range ls {
		ls[l].s0, ls[l].s1 = xs[2*l], xs[2*l+1]
	}
	free := xs[2*n:]

	var frame Mem
	if spill := 4*n - len(free); spill > 0 {
		frame = AllocLocal(16 * spill)
	}

	slot := 0
	for l := range ls {
		for j := range ls[l].m {
			if len(free) > 0 {
				ls[l].m[j], free = free[0], free[1:]
				continue
			}
			ls[l].m[j] = frame.Offset(16 * slot)
			slot++
		}
	}
	return ls
}

func inFrame(op Op) bool {
	_, ok := op.(Mem)
	return ok
}

func mov(src, dst Op) {
	if inFrame(src) || inFrame(dst) {
		MOVOU(src, dst)
	} else {
		MOVO(src, dst)
	}
}

// use returns op as a register, loading it into r if it lives in the frame.
func use(op Op, r Register) Op {
	if !inFrame(op) {
		return op
	}
	MOVOU(op, r)
	return r
}

func Recurse(c ctx, n int) {
	TEXT(fmt.Sprintf("Recurse%d", n), NOSPLIT,
		fmt.Sprintf("func(hash *[%d]byte, n uint64)", 32*n))

	ls := newLanes(n)

	Load(Param("n"), CX)
	TESTQ(CX, CX)
	JZ(LabelRef("done"))
	Load(Param("hash"), DI)

	Comment("Load the hashes as message words 0..7")
	for l, ln := range ls {
		for j := 0; j < 2; j++ {
			ln.load(c, Mem{Base: DI}.Offset(32*l+16*j), ln.m[j])
		}
	}

	Label("loop")
	for _, ln := range ls {
		ln.reset(c)
	}
	for q, quad := range kernel.Quads {
		for _, ln := range ls {
			ln.quad(c, q, quad)
		}
	}
	for _, ln := range ls {
		ln.finish(c)
	}
	DECQ(CX)
	JNZ(LabelRef("loop"))

	for l, ln := range ls {
		for j := 0; j < 2; j++ {
			ln.store(c, ln.m[j], Mem{Base: DI}.Offset(32*l+16*j))
		}
	}

	Label("done")
	RET()
}

func (ln lane) load(c ctx, src Mem, m Op) {
	var r Register = tmp
	if !inFrame(m) {
		r = m.(Register)
	}
	MOVOU(src, r)
	PSHUFB(c.bswap, r)
	if inFrame(m) {
		MOVOU(r, m)
	}
}

func (ln lane) store(c ctx, m Op, dst Mem) {
	r := use(m, tmp)
	PSHUFB(c.bswap, r)
	MOVOU(r, dst)
}

// reset starts an iteration: the chaining value and message words 8..15.
func (ln lane) reset(c ctx) {
	MOVOU(c.init, ln.s0)
	MOVOU(c.init.Offset(16), ln.s1)
	for j := 2; j < 4; j++ {
		if inFrame(ln.m[j]) {
			MOVOU(c.pad.Offset(16*(j-2)), tmp)
			MOVOU(tmp, ln.m[j])
		} else {
			MOVOU(c.pad.Offset(16*(j-2)), ln.m[j])
		}
	}
}

// resident reports if every slot quad q touches is a register.
func (ln lane) resident(q int, quad kernel.Quad) bool {
	a, b, d := ln.m[q%4], ln.m[(q+1)%4], ln.m[(q+3)%4]
	if inFrame(a) {
		return false
	}
	if quad.Msg2 && inFrame(b) {
		return false
	}
	if (quad.Msg1 || quad.Align) && inFrame(d) {
		return false
	}
	return true
}

func (ln lane) quad(c ctx, q int, quad kernel.Quad) {
	a, b, d := ln.m[q%4], ln.m[(q+1)%4], ln.m[(q+3)%4]

	if quad.Pad {
		MOVOU(c.padk.Offset(16*(q-2)), msg)
	} else {
		mov(a, msg)
		PADDD(c.k256.Offset(16*q), msg)
	}
	SHA256RNDS2(msg, ln.s0, ln.s1)

	if ln.resident(q, quad) {
		if quad.Msg2 {
			if quad.Align {
				MOVO(a, tmp)
				PALIGNR(U8(4), d, tmp)
				PADDD(tmp, b)
			}
			SHA256MSG2(a, b)
		}
		PSHUFD(U8(0x0e), msg, msg)
		SHA256RNDS2(msg, ln.s1, ln.s0)
		if quad.Msg1 {
			SHA256MSG1(a, d)
		}
		return
	}

	// Slots in the frame go through msg and tmp, so the rounds finish first.
	PSHUFD(U8(0x0e), msg, msg)
	SHA256RNDS2(msg, ln.s1, ln.s0)

	if quad.Msg2 {
		switch {
		case quad.Align && !inFrame(b):
			mov(a, tmp)
			PALIGNR(U8(4), use(d, msg), tmp)
			PADDD(tmp, b)
			SHA256MSG2(use(a, msg), b)
		case quad.Align:
			mov(a, tmp)
			PALIGNR(U8(4), use(d, msg), tmp)
			MOVOU(b, msg)
			PADDD(tmp, msg)
			SHA256MSG2(use(a, tmp), msg)
			MOVOU(msg, b)
		case !inFrame(b):
			SHA256MSG2(use(a, msg), b)
		default:
			MOVOU(b, msg)
			SHA256MSG2(use(a, tmp), msg)
			MOVOU(msg, b)
		}
	}

	if quad.Msg1 {
		if inFrame(d) {
			MOVOU(d, msg)
			SHA256MSG1(use(a, tmp), msg)
			MOVOU(msg, d)
		} else {
			SHA256MSG1(use(a, msg), d)
		}
	}
}

// finish feeds the chaining value forward and turns ABEF/CDGH back into
// message words 0..7.
func (ln lane) finish(c ctx) {
	PADDD(c.init, ln.s0)
	PADDD(c.init.Offset(16), ln.s1)
	PSHUFD(U8(0x1b), ln.s0, ln.s0)
	PSHUFD(U8(0xb1), ln.s1, ln.s1)

	var m0 Op = tmp
	if !inFrame(ln.m[0]) {
		m0 = ln.m[0]
	}
	MOVO(ln.s0, m0)
	PBLENDW(U8(0xf0), ln.s1, m0)
	if inFrame(ln.m[0]) {
		MOVOU(m0, ln.m[0])
	}

	PALIGNR(U8(8), ln.s0, ln.s1)
	mov(ln.s1, ln.m[1])
}
