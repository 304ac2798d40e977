package poseidon

// The two permutation engines. Both are pure state transformations: each call
// works on freshly allocated buffers and reads the instance data without
// writing it, so a single instance serves concurrent callers.

// permuteNaive runs the reference schedule: every round adds that round's
// constants to all slots, applies the S-box to all slots (full rounds) or to
// slot 0 only (partial rounds), and multiplies the state by the MDS matrix.
func (h *Poseidon[E]) permuteNaive(state []E) {
	f := h.f
	t := h.width
	half := h.rounds.halfFull()

	cur := make([]E, t)
	next := make([]E, t)
	for i := range state {
		f.Set(&cur[i], &state[i])
	}
	c := 0

	fullRound := func() {
		for i := 0; i < t; i++ {
			f.Add(&cur[i], &cur[i], &h.arc[c])
			c++
			h.sbox(&cur[i])
		}
		matVec(f, h.mds, cur, next)
		cur, next = next, cur
	}

	for r := 0; r < half; r++ {
		fullRound()
	}
	for r := 0; r < h.rounds.Partial; r++ {
		for i := 0; i < t; i++ {
			f.Add(&cur[i], &cur[i], &h.arc[c])
			c++
		}
		h.sbox(&cur[0])
		matVec(f, h.mds, cur, next)
		cur, next = next, cur
	}
	for r := 0; r < half; r++ {
		fullRound()
	}

	for i := range state {
		f.Set(&state[i], &cur[i])
	}
}

// permuteOptimized runs the transformed schedule: constants are added after
// the S-box at their pushed positions, the last first-half full round mixes
// with the dense pre-sparse matrix, and each partial round touches slot 0
// only, mixing through that round's sparse matrix in O(t).
func (h *Poseidon[E]) permuteOptimized(state []E) {
	f := h.f
	t := h.width
	half := h.rounds.halfFull()
	opt := h.opt

	cur := make([]E, t)
	next := make([]E, t)
	for i := range state {
		f.Set(&cur[i], &state[i])
	}
	c := 0

	// Pre-round constants.
	for i := 0; i < t; i++ {
		f.Add(&cur[i], &cur[i], &opt.constants[c])
		c++
	}

	sboxAndAdd := func() {
		for i := 0; i < t; i++ {
			h.sbox(&cur[i])
			f.Add(&cur[i], &cur[i], &opt.constants[c])
			c++
		}
	}

	// First half-block; the last of these rounds mixes through the
	// pre-sparse matrix instead of the MDS matrix.
	for r := 0; r < half-1; r++ {
		sboxAndAdd()
		matVec(f, h.mds, cur, next)
		cur, next = next, cur
	}
	sboxAndAdd()
	vecMat(f, cur, opt.preSparse, next)
	cur, next = next, cur

	// Partial rounds: S-box and constant on slot 0 only.
	for r := 0; r < h.rounds.Partial; r++ {
		h.sbox(&cur[0])
		f.Add(&cur[0], &cur[0], &opt.constants[c])
		c++
		opt.sparse[r].apply(f, cur, next)
		cur, next = next, cur
	}

	// Second half-block; the final round has no pushed constants left.
	for r := 0; r < half-1; r++ {
		sboxAndAdd()
		matVec(f, h.mds, cur, next)
		cur, next = next, cur
	}
	for i := 0; i < t; i++ {
		h.sbox(&cur[i])
	}
	matVec(f, h.mds, cur, next)
	cur, next = next, cur

	for i := range state {
		f.Set(&state[i], &cur[i])
	}
}

// sbox applies x -> x^alpha in place, with short multiplication chains for
// the common exponents.
func (h *Poseidon[E]) sbox(x *E) {
	f := h.f
	switch h.alpha {
	case 3:
		var x2 E
		f.Mul(&x2, x, x)
		f.Mul(x, &x2, x)
	case 5:
		var x2, x4 E
		f.Mul(&x2, x, x)
		f.Mul(&x4, &x2, &x2)
		f.Mul(x, &x4, x)
	default:
		f.Exp(x, x, h.alphaBig)
	}
}
