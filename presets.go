package poseidon

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/vocdoni/poseidon/ff"
)

// Preset is a named, pre-validated parameter set: modulus, shape, pinned
// round counts and the full round-constant and matrix data in hexadecimal.
// Presets are consumed verbatim by the construction API; none of their data
// is re-generated.
type Preset struct {
	Name          string
	Modulus       string
	SecurityLevel int
	Alpha         int
	Width         int
	Rate          int
	FullRounds    int
	PartialRounds int

	RoundConstants []string
	MDS            [][]string
}

// presets is the static registry. The x5 sets follow the Poseidon reference
// instantiations over the BN254 and BLS12-381 scalar fields; neptune-255-4 is
// the width-4 Filecoin-style set used by the optimized engine's regression
// vectors.
var presets = map[string]*Preset{
	"x5-254-3":      &presetX5254x3,
	"x5-255-5":      &presetX5255x5,
	"neptune-255-4": &presetNeptune255x4,
}

// LookupPreset returns the named parameter set.
func LookupPreset(name string) (*Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the registered parameter sets in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Spec converts the preset into a construction spec.
func (p *Preset) Spec() (Spec, error) {
	mod, ok := new(big.Int).SetString(p.Modulus, 0)
	if !ok {
		return Spec{}, fmt.Errorf("%w: preset %s has a malformed modulus", ErrParse, p.Name)
	}
	return Spec{
		Modulus:        mod,
		SecurityLevel:  p.SecurityLevel,
		Alpha:          p.Alpha,
		Width:          p.Width,
		Rate:           p.Rate,
		FullRounds:     p.FullRounds,
		PartialRounds:  p.PartialRounds,
		RoundConstants: p.RoundConstants,
		MDS:            p.MDS,
	}, nil
}

// NewFromPreset builds a naive-engine instance from a named parameter set.
// The field implementation's modulus must match the preset's.
func NewFromPreset[E any](f ff.Field[E], name string) (*Poseidon[E], error) {
	return presetInstance(f, name, false)
}

// NewOptimizedFromPreset builds an optimized-engine instance from a named
// parameter set.
func NewOptimizedFromPreset[E any](f ff.Field[E], name string) (*Poseidon[E], error) {
	return presetInstance(f, name, true)
}

func presetInstance[E any](f ff.Field[E], name string, optimized bool) (*Poseidon[E], error) {
	p, ok := LookupPreset(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrConfiguration, name)
	}
	spec, err := p.Spec()
	if err != nil {
		return nil, err
	}
	return newInstance(f, spec, optimized)
}
