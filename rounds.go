package poseidon

import (
	"fmt"
	"math"
	"math/big"
)

// Security margin added on top of the closed-form round bounds, per the
// Poseidon security analysis: two extra full rounds and 7.5% extra partial
// rounds.
const (
	securityMarginFullRounds    = 2
	securityMarginPartialFactor = 1.075
)

// Search space of the round-count scan. The published parameter sets all fall
// well inside these limits.
const (
	maxFullRoundsScan    = 100
	maxPartialRoundsScan = 500
)

// RoundCounts holds the round schedule of an instance. Full is the total
// number of full rounds, applied as Full/2 before and after the partial-round
// block; it is always even.
type RoundCounts struct {
	Full    int
	Partial int
}

// Total returns the total number of rounds.
func (r RoundCounts) Total() int { return r.Full + r.Partial }

func (r RoundCounts) halfFull() int { return r.Full / 2 }

// deriveRoundCounts scans (R_F, R_P) pairs for the cheapest schedule (in
// S-box count, t*R_F + R_P) satisfying all closed-form security bounds, then
// applies the security margin. primeBits is log2(p) as a float; the
// fractional part matters for the statistical bound.
func deriveRoundCounts(primeBits float64, securityLevel, t, alpha int) (RoundCounts, error) {
	var best RoundCounts
	found := false
	minCost := math.MaxInt
	maxCostRf := 0

	for rp := 1; rp < maxPartialRoundsScan; rp++ {
		for rf := 4; rf < maxFullRoundsScan; rf += 2 {
			if !satisfiesSecurityBounds(primeBits, t, rf, rp, alpha, securityLevel) {
				continue
			}
			fullWithMargin := rf + securityMarginFullRounds
			partialWithMargin := int(math.Ceil(float64(rp) * securityMarginPartialFactor))
			cost := t*fullWithMargin + partialWithMargin
			if cost < minCost || (cost == minCost && fullWithMargin < maxCostRf) {
				best = RoundCounts{Full: fullWithMargin, Partial: partialWithMargin}
				minCost = cost
				maxCostRf = fullWithMargin
				found = true
			}
		}
	}
	if !found {
		return RoundCounts{}, fmt.Errorf("%w: no round schedule satisfies the security bounds", ErrGeneration)
	}
	return best, nil
}

// satisfiesSecurityBounds evaluates the closed-form bounds from the Poseidon
// paper: the statistical bound (eq. 2), the interpolation bound (eq. 3/4) and
// the two Groebner-basis bounds (eq. 5/6). alpha = -1 selects the inverse
// S-box bounds.
func satisfiesSecurityBounds(primeBits float64, t, rf, rp, alpha, securityLevel int) bool {
	m := float64(securityLevel)
	tf := float64(t)

	var c float64
	if alpha > 0 {
		c = math.Log2(float64(alpha - 1))
	} else {
		c = 2
	}
	rfStat := 6.0
	if m > (math.Floor(primeBits)-c)*(tf+1) {
		rfStat = 10
	}

	switch {
	case alpha > 0:
		// log base alpha of 2
		la := math.Log(2) / math.Log(float64(alpha))

		rfInter := math.Ceil(la*math.Min(m, math.Ceil(primeBits))) +
			math.Ceil(math.Log(tf)/math.Log(float64(alpha))) - float64(rp) + 1
		rfGroebner1 := la*math.Min(m/3, primeBits/2) - float64(rp) + 1
		rfGroebner2 := math.Min(la*m/(tf+1), la*primeBits/2) - float64(rp) + tf - 1

		need := math.Max(math.Ceil(rfStat),
			math.Max(math.Ceil(rfInter),
				math.Max(math.Ceil(rfGroebner1), math.Ceil(rfGroebner2))))
		return float64(rf) >= need

	case alpha == -1:
		rpInter := math.Ceil(0.5*math.Min(m, math.Ceil(primeBits))) +
			math.Ceil(math.Log2(tf)) - math.Floor(float64(rf)*math.Log2(tf)) + 1
		rpGroebner2 := math.Ceil(0.5*math.Min(math.Ceil(m/(tf+1)), math.Ceil(0.5*primeBits))) +
			math.Ceil(math.Log2(tf)) + tf - 1 - math.Floor(float64(rf)*math.Log2(tf))

		need := math.Max(math.Ceil(rpInter), math.Ceil(rpGroebner2))
		return float64(rf) >= math.Ceil(rfStat) && float64(rp) >= need

	default:
		return false
	}
}

// bigLog2 returns log2(p) as a float64.
func bigLog2(p *big.Int) float64 {
	f, _ := new(big.Float).SetInt(p).Float64()
	return math.Log2(f)
}
