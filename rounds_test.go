package poseidon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveRoundCountsReferenceVector(t *testing.T) {
	// Published vector for the 64-bit prime 0xfffffffffffffeff with t=5,
	// alpha=3, 128-bit security.
	rc, err := deriveRoundCounts(bigLog2(mustBig(t, p64Hex)), 128, 5, 3)
	require.NoError(t, err)
	require.Equal(t, RoundCounts{Full: 8, Partial: 41}, rc)
}

func TestDeriveRoundCountsKnownInstances(t *testing.T) {
	cases := []struct {
		name          string
		modulus       string
		t, alpha, m   int
		full, partial int
	}{
		{"bn254-t3-128", p254Hex, 3, 5, 128, 8, 56},
		{"bls381-t4-128", p255Hex, 4, 5, 128, 8, 56},
		{"bls381-t5-128", p255Hex, 5, 5, 128, 8, 56},
		{"bls381-t4-256", p255Hex, 4, 5, 256, 8, 114},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rc, err := deriveRoundCounts(bigLog2(mustBig(t, tc.modulus)), tc.m, tc.t, tc.alpha)
			require.NoError(t, err)
			require.Equal(t, RoundCounts{Full: tc.full, Partial: tc.partial}, rc)
		})
	}
}

func TestDerivedCountsExceedClosedFormBounds(t *testing.T) {
	// The margin constants must leave slack above the raw security bounds:
	// stripping the extra full rounds again must still satisfy every bound.
	for _, m := range []int{128, 256} {
		for _, width := range []int{3, 4, 5} {
			primeBits := bigLog2(mustBig(t, p255Hex))
			rc, err := deriveRoundCounts(primeBits, m, width, 5)
			require.NoError(t, err)

			require.Zero(t, rc.Full%2, "full rounds must be even")
			require.Positive(t, rc.Partial)
			require.True(t,
				satisfiesSecurityBounds(primeBits, width, rc.Full, rc.Partial, 5, m))
			require.True(t,
				satisfiesSecurityBounds(primeBits, width, rc.Full-securityMarginFullRounds, rc.Partial, 5, m),
				"M=%d t=%d: no slack above the closed-form bounds", m, width)
		}
	}
}

func TestSecurityBoundsInverseAlpha(t *testing.T) {
	primeBits := bigLog2(mustBig(t, p255Hex))
	// The inverse S-box needs far more partial rounds at the same R_F.
	require.False(t, satisfiesSecurityBounds(primeBits, 3, 8, 10, -1, 128))
	require.True(t, satisfiesSecurityBounds(primeBits, 3, 8, 200, -1, 128))
}
