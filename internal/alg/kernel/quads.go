package kernel

// Quad describes what one group of four rounds does to a lane. Schedule slot
// q%4 feeds the rounds unless Pad is set. The generic loop reads Pad and
// Expand; the SHA-NI and ARMv8 kernels split expansion into their two
// instruction halves and skip the halves whose inputs are all padding.
type Quad struct {
	// Pad rounds take the precomputed padding input padK[q-2].
	Pad bool

	// Expand advances slot q%4 by four schedule words after the rounds.
	Expand bool

	// Msg1 applies SHA256MSG1 from slot q%4 to slot (q+3)%4.
	Msg1 bool
	// Msg2 applies SHA256MSG2 from slot q%4 to slot (q+1)%4.
	Msg2 bool
	// Align first adds slots q%4:(q+3)%4 shifted right one word into slot
	// (q+1)%4. It is zero for the first Msg2, which reads only padding.
	Align bool

	// SU0 applies SHA256SU0 from slot (q+1)%4 to slot q%4.
	SU0 bool
	// SU1 applies SHA256SU1 from slots (q+1)%4 and (q+2)%4 to slot (q+3)%4.
	SU1 bool
}

// Quads is the schedule of one iteration, shared with the amd64 generator.
var Quads = func() (qs [16]Quad) {
	for q := range qs {
		qs[q] = Quad{
			Pad:    q == 2 || q == 3,
			Expand: q < 12,
			Msg1:   q >= 1 && q <= 12 && q != 3,
			Msg2:   q >= 3 && q <= 14,
			Align:  q >= 4 && q <= 14,
			SU0:    q <= 11 && q != 2,
			SU1:    q >= 1 && q <= 12,
		}
	}
	return qs
}()
