package poseidon

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/vocdoni/poseidon/ff"
	"github.com/vocdoni/poseidon/logger"
)

// Poseidon is a fully parameterized hash instance. It is immutable after
// construction and safe for concurrent use: every call allocates its own
// state and performs no writes to shared data.
type Poseidon[E any] struct {
	f ff.Field[E]

	width         int
	rate          int
	alpha         int
	securityLevel int
	alphaBig      *big.Int

	rounds RoundCounts
	arc    []E
	mds    matrix[E]

	// opt is nil for a naive instance.
	opt *optimizedData[E]
}

func pkgLogger() zerolog.Logger {
	return logger.Logger().With().Str("component", "poseidon").Logger()
}

// New builds a naive-engine instance: round counts, round constants and MDS
// matrix are derived from the spec unless supplied explicitly.
func New[E any](f ff.Field[E], spec Spec) (*Poseidon[E], error) {
	return newInstance(f, spec, false)
}

// NewOptimized builds an instance running the optimized engine. The
// transformed round data is derived at construction time and cross-checked
// against the naive engine on fixed probe inputs; construction fails if the
// two ever diverge.
func NewOptimized[E any](f ff.Field[E], spec Spec) (*Poseidon[E], error) {
	return newInstance(f, spec, true)
}

func newInstance[E any](f ff.Field[E], spec Spec, optimized bool) (*Poseidon[E], error) {
	p := f.Modulus()
	if err := spec.validate(p); err != nil {
		return nil, err
	}
	log := pkgLogger().With().
		Int("t", spec.Width).Int("alpha", spec.Alpha).Int("m", spec.SecurityLevel).
		Logger()

	h := &Poseidon[E]{
		f:             f,
		width:         spec.Width,
		rate:          spec.Rate,
		alpha:         spec.Alpha,
		securityLevel: spec.SecurityLevel,
		alphaBig:      big.NewInt(int64(spec.Alpha)),
	}

	// Round schedule.
	if spec.FullRounds != 0 {
		h.rounds = RoundCounts{Full: spec.FullRounds, Partial: spec.PartialRounds}
	} else {
		var err error
		h.rounds, err = deriveRoundCounts(bigLog2(p), spec.SecurityLevel, spec.Width, spec.Alpha)
		if err != nil {
			return nil, err
		}
		log.Debug().Int("full", h.rounds.Full).Int("partial", h.rounds.Partial).
			Msg("derived round schedule")
	}

	// The instance cannot reach the requested security level when the
	// state is too small to hold 2^M values.
	pt := new(big.Int).Exp(p, big.NewInt(int64(spec.Width)), nil)
	if new(big.Int).Lsh(big.NewInt(1), uint(spec.SecurityLevel)).Cmp(pt) > 0 {
		log.Warn().Msg("state space smaller than 2^securityLevel; instance is not secure")
	}

	// Round constants.
	if spec.RoundConstants != nil {
		arc, err := parseElements(f, spec.RoundConstants, h.rounds.Total()*spec.Width)
		if err != nil {
			return nil, err
		}
		h.arc = arc
	} else {
		h.arc = generateRoundConstants(f, &spec, h.rounds)
		log.Debug().Int("count", len(h.arc)).Msg("generated round constants")
	}

	// Mixing matrix.
	if spec.MDS != nil {
		m, err := parseMatrix(f, spec.MDS, spec.Width)
		if err != nil {
			return nil, err
		}
		if err := checkMDSSecurity(f, m); err != nil {
			return nil, fmt.Errorf("%w: supplied matrix rejected: %v", ErrConfiguration, err)
		}
		h.mds = m
	} else {
		m, err := buildMDS(f, spec.Width)
		if err != nil {
			return nil, err
		}
		h.mds = m
		log.Debug().Msg("built MDS matrix")
	}

	if optimized {
		opt, err := optimize(f, h.arc, h.mds, h.rounds)
		if err != nil {
			return nil, err
		}
		h.opt = opt
		if err := h.selfCheck(); err != nil {
			return nil, err
		}
		log.Debug().Msg("optimized round data verified against naive engine")
	}
	return h, nil
}

// selfCheck re-runs both engines on fixed probe states and confirms identical
// outputs. The optimization's correctness is an algebraic identity, but a
// corrupted transform would silently produce wrong digests, so it is never
// trusted without this empirical guard.
func (h *Poseidon[E]) selfCheck() error {
	f := h.f
	probes := make([][]E, 0, 3)

	zero := make([]E, h.width)
	for i := range zero {
		f.SetZero(&zero[i])
	}
	probes = append(probes, zero)

	iota := make([]E, h.width)
	for i := range iota {
		f.SetUint64(&iota[i], uint64(i))
	}
	probes = append(probes, iota)

	// A pseudorandom probe, reusing the instance's own first constants.
	rnd := make([]E, h.width)
	for i := range rnd {
		f.Set(&rnd[i], &h.arc[i])
	}
	probes = append(probes, rnd)

	for n, probe := range probes {
		naive := make([]E, h.width)
		opt := make([]E, h.width)
		for i := range probe {
			f.Set(&naive[i], &probe[i])
			f.Set(&opt[i], &probe[i])
		}
		h.permuteNaive(naive)
		h.permuteOptimized(opt)
		for i := range naive {
			if !f.Equal(&naive[i], &opt[i]) {
				return fmt.Errorf("%w: engines diverge on probe %d slot %d", ErrGeneration, n, i)
			}
		}
	}
	return nil
}

// Hash absorbs up to rate input elements into a fresh all-zero state, runs
// the permutation once, and returns slot 0 as the digest.
func (h *Poseidon[E]) Hash(inputs ...E) (E, error) {
	var digest E
	if len(inputs) > h.rate {
		return digest, fmt.Errorf("%w: got %d elements, rate is %d", ErrInputSize, len(inputs), h.rate)
	}
	state := make([]E, h.width)
	for i := range state {
		h.f.SetZero(&state[i])
	}
	for i := range inputs {
		h.f.Set(&state[i], &inputs[i])
	}
	if err := h.Permute(state); err != nil {
		return digest, err
	}
	h.f.Set(&digest, &state[0])
	return digest, nil
}

// Permute applies the instance's permutation to a full-width state in place.
func (h *Poseidon[E]) Permute(state []E) error {
	if len(state) != h.width {
		return fmt.Errorf("%w: state length %d, width is %d", ErrConfiguration, len(state), h.width)
	}
	if h.opt != nil {
		h.permuteOptimized(state)
	} else {
		h.permuteNaive(state)
	}
	return nil
}

// Width returns the state size t.
func (h *Poseidon[E]) Width() int { return h.width }

// Rate returns the number of input elements absorbed per hash call.
func (h *Poseidon[E]) Rate() int { return h.rate }

// Rounds returns the instance's round schedule.
func (h *Poseidon[E]) Rounds() RoundCounts { return h.rounds }

// IsOptimized reports whether the instance runs the optimized engine.
func (h *Poseidon[E]) IsOptimized() bool { return h.opt != nil }
