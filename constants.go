package poseidon

import (
	"math/big"

	"github.com/vocdoni/poseidon/ff"
	"github.com/vocdoni/poseidon/internal/grain"
)

// S-box flag encoding of the constant generator's init vector.
func sboxFlag(alpha int) uint {
	switch alpha {
	case 3:
		return 0
	case 5:
		return 1
	case -1:
		return 2
	default:
		return 3
	}
}

// generateRoundConstants derives the (Full+Partial)*t round constants for a
// parameter tuple. The Grain register is seeded with the bit-packed tuple
// (and the extra instance seed), so different instances draw different
// streams; identical tuples always yield the identical sequence.
//
// Field elements are drawn as primeBitLen-bit chunks with rejection of any
// chunk >= p, avoiding modulo bias.
func generateRoundConstants[E any](f ff.Field[E], spec *Spec, rounds RoundCounts) []E {
	p := f.Modulus()
	primeBitLen := spec.primeBitLen(p)

	iv := grain.InitVector(
		uint(p.Bit(0)),
		sboxFlag(spec.Alpha),
		primeBitLen, spec.Width, rounds.Full, rounds.Partial,
		spec.Seed,
	)
	g := grain.New(iv)

	need := rounds.Total() * spec.Width
	out := make([]E, 0, need)
	v := new(big.Int)
	for len(out) < need {
		v.SetInt64(0)
		for i := 0; i < primeBitLen; i++ {
			v.Lsh(v, 1)
			if g.Next() == 1 {
				v.SetBit(v, 0, 1)
			}
		}
		if v.Cmp(p) >= 0 {
			continue // rejected, redraw
		}
		var e E
		f.SetBigInt(&e, v)
		out = append(out, e)
	}
	return out
}
