package poseidon

import "errors"

// Error kinds surfaced by construction and hashing. All failures wrap one of
// these sentinels, so callers can classify with errors.Is.
var (
	// ErrConfiguration reports an invalid parameter set: bad state width,
	// an S-box exponent that is not invertible mod p-1, a rate outside
	// [1, t], or mismatched explicit round data.
	ErrConfiguration = errors.New("poseidon: invalid configuration")

	// ErrGeneration reports that parameter generation failed: the MDS
	// search exhausted its attempt budget, or the optimizer self-check
	// found a divergence between the naive and optimized engines.
	ErrGeneration = errors.New("poseidon: parameter generation failed")

	// ErrInputSize reports a hash input longer than the instance rate.
	ErrInputSize = errors.New("poseidon: input exceeds rate")

	// ErrParse reports a malformed externally supplied constant or matrix.
	ErrParse = errors.New("poseidon: malformed parameter encoding")
)
