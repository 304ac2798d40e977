// Package poseidon implements the Poseidon family of algebraic hash functions
// over a prime field, in a reference (naive) form and a performance-optimized
// form using the sparse-matrix partial-round schedule. The two engines are
// numerically identical for every input.
//
// The core is generic over the ff.Field arithmetic capability; concrete
// instances use either the arbitrary-modulus ff.Prime field or the
// gnark-crypto adapters in ff/bls12381 and ff/bn254.
package poseidon

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/poseidon/ff"
)

// Spec describes a Poseidon instance. Modulus, SecurityLevel, Alpha, Rate and
// Width are required; the remaining fields are optional and are derived when
// left at their zero value. A Spec is copied at construction time and never
// retained.
type Spec struct {
	// Modulus is the prime field modulus. It may be nil, in which case the
	// field implementation's modulus is used; when set it must match.
	Modulus *big.Int
	// SecurityLevel is the target security in bits (M in the paper).
	SecurityLevel int
	// Alpha is the S-box exponent; x -> x^Alpha must be a bijection on the
	// field, i.e. gcd(Alpha, p-1) = 1.
	Alpha int
	// Rate is the number of input elements absorbed per hash call, 1..Width.
	Rate int
	// Width is the state size t.
	Width int

	// FullRounds and PartialRounds pin the round schedule explicitly.
	// Either both are set or both are zero (derived from the security
	// bounds). FullRounds must be even.
	FullRounds    int
	PartialRounds int

	// PrimeBitLen overrides ceil(log2 p) in the constant generator's seed,
	// e.g. 256 instead of 255 for byte-oriented consumers. Zero derives it
	// from the modulus.
	PrimeBitLen int

	// Seed separates otherwise identical instances; it is folded into the
	// constant generator's init vector. Zero reproduces the reference
	// constants.
	Seed uint32

	// RoundConstants optionally supplies the (FullRounds+PartialRounds)*Width
	// round constants verbatim, as hexadecimal field elements.
	RoundConstants []string
	// MDS optionally supplies the Width x Width mixing matrix verbatim, as
	// hexadecimal field elements.
	MDS [][]string
}

// validate checks the spec against the field modulus. Only shape and algebraic
// preconditions; round-count consistency with explicit constants is checked at
// construction once the schedule is known.
func (s *Spec) validate(p *big.Int) error {
	if s.Modulus != nil && s.Modulus.Cmp(p) != 0 {
		return fmt.Errorf("%w: spec modulus does not match field modulus", ErrConfiguration)
	}
	if s.Width < 1 {
		return fmt.Errorf("%w: state width must be at least 1, got %d", ErrConfiguration, s.Width)
	}
	if s.Rate < 1 || s.Rate > s.Width {
		return fmt.Errorf("%w: rate must be in [1, %d], got %d", ErrConfiguration, s.Width, s.Rate)
	}
	if s.SecurityLevel <= 0 {
		return fmt.Errorf("%w: security level must be positive", ErrConfiguration)
	}
	if s.Alpha < 3 {
		return fmt.Errorf("%w: s-box exponent must be at least 3, got %d", ErrConfiguration, s.Alpha)
	}
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	g := new(big.Int).GCD(nil, nil, big.NewInt(int64(s.Alpha)), pm1)
	if g.Cmp(big.NewInt(1)) != 0 {
		return fmt.Errorf("%w: alpha %d is not invertible mod p-1", ErrConfiguration, s.Alpha)
	}
	if (s.FullRounds == 0) != (s.PartialRounds == 0) {
		return fmt.Errorf("%w: full and partial round counts must be supplied together", ErrConfiguration)
	}
	if s.FullRounds != 0 {
		if s.FullRounds%2 != 0 || s.FullRounds < 2 {
			return fmt.Errorf("%w: full round count must be even and positive, got %d", ErrConfiguration, s.FullRounds)
		}
		if s.PartialRounds < 1 {
			return fmt.Errorf("%w: partial round count must be positive, got %d", ErrConfiguration, s.PartialRounds)
		}
	}
	if s.PrimeBitLen != 0 {
		if s.PrimeBitLen < p.BitLen() || s.PrimeBitLen >= 1<<12 {
			return fmt.Errorf("%w: prime bit length %d out of range [%d, 4095]", ErrConfiguration, s.PrimeBitLen, p.BitLen())
		}
	}
	return nil
}

// primeBitLen returns the effective bit length fed to the constant generator.
func (s *Spec) primeBitLen(p *big.Int) int {
	if s.PrimeBitLen != 0 {
		return s.PrimeBitLen
	}
	return p.BitLen()
}

// parseElements parses a verbatim hex constant list.
func parseElements[E any](f ff.Field[E], hex []string, want int) ([]E, error) {
	if len(hex) != want {
		return nil, fmt.Errorf("%w: expected %d round constants, got %d", ErrConfiguration, want, len(hex))
	}
	out := make([]E, want)
	for i, s := range hex {
		if err := f.SetString(&out[i], s); err != nil {
			return nil, fmt.Errorf("%w: round constant %d: %v", ErrParse, i, err)
		}
	}
	return out, nil
}

// parseMatrix parses a verbatim hex t x t matrix.
func parseMatrix[E any](f ff.Field[E], hex [][]string, t int) (matrix[E], error) {
	if len(hex) != t {
		return matrix[E]{}, fmt.Errorf("%w: expected a %d x %d matrix, got %d rows", ErrConfiguration, t, t, len(hex))
	}
	m := newMatrix[E](t)
	for i, row := range hex {
		if len(row) != t {
			return matrix[E]{}, fmt.Errorf("%w: matrix row %d has %d entries, expected %d", ErrConfiguration, i, len(row), t)
		}
		for j, s := range row {
			if err := f.SetString(m.at(i, j), s); err != nil {
				return matrix[E]{}, fmt.Errorf("%w: matrix entry (%d,%d): %v", ErrParse, i, j, err)
			}
		}
	}
	return m, nil
}
