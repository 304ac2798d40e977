package poseidon

import (
	"fmt"
	"math/big"

	bls381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/poseidon/ff"
	"github.com/vocdoni/poseidon/ff/bls12381"
	"github.com/vocdoni/poseidon/ff/bn254"
)

// Ready-made constructors for the named instances over their native
// gnark-crypto fields.

// NewBN254 returns the optimized x5-254-3 instance over the BN254 scalar
// field: width 3, rate 2, alpha 5.
func NewBN254() (*Poseidon[bn254fr.Element], error) {
	return NewOptimizedFromPreset[bn254fr.Element](bn254.Field{}, "x5-254-3")
}

// NewBLS12381 returns the optimized x5-255-5 instance over the BLS12-381
// scalar field: width 5, rate 4, alpha 5.
func NewBLS12381() (*Poseidon[bls381fr.Element], error) {
	return NewOptimizedFromPreset[bls381fr.Element](bls12381.Field{}, "x5-255-5")
}

// NewNeptune returns the optimized neptune-255-4 instance over the BLS12-381
// scalar field: width 4, rate 3, alpha 5.
func NewNeptune() (*Poseidon[bls381fr.Element], error) {
	return NewOptimizedFromPreset[bls381fr.Element](bls12381.Field{}, "neptune-255-4")
}

// NewPrimeField builds an instance over an arbitrary prime modulus, deriving
// every parameter from the spec. Elements are big.Int values.
func NewPrimeField(spec Spec, optimized bool) (*Poseidon[big.Int], error) {
	if spec.Modulus == nil {
		return nil, fmt.Errorf("%w: modulus is required", ErrConfiguration)
	}
	f, err := ff.NewPrime(spec.Modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return newInstance[big.Int](f, spec, optimized)
}
