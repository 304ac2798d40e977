package poseidon

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpecValidation(t *testing.T) {
	f := newPrimeField(t, p64Hex)

	mutate := func(fn func(*Spec)) Spec {
		s := spec64(t)
		fn(&s)
		return s
	}

	cases := []struct {
		name string
		spec Spec
	}{
		{"zero width", mutate(func(s *Spec) { s.Width = 0; s.Rate = 0 })},
		{"zero rate", mutate(func(s *Spec) { s.Rate = 0 })},
		{"rate above width", mutate(func(s *Spec) { s.Rate = 6 })},
		{"zero security level", mutate(func(s *Spec) { s.SecurityLevel = 0 })},
		{"alpha below 3", mutate(func(s *Spec) { s.Alpha = 2 })},
		{"alpha not coprime to p-1", mutate(func(s *Spec) { s.Alpha = 4 })},
		{"odd full rounds", mutate(func(s *Spec) { s.FullRounds = 7; s.PartialRounds = 10 })},
		{"full rounds without partial", mutate(func(s *Spec) { s.FullRounds = 8 })},
		{"prime bit length below modulus", mutate(func(s *Spec) { s.PrimeBitLen = 32 })},
		{"modulus mismatch", mutate(func(s *Spec) { s.Modulus = mustBig(t, p255Hex) })},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New[big.Int](f, tc.spec)
			require.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestSpecExplicitRoundsHonored(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	s := spec64(t)
	s.FullRounds = 10
	s.PartialRounds = 50
	h, err := New[big.Int](f, s)
	require.NoError(t, err)
	require.Equal(t, RoundCounts{Full: 10, Partial: 50}, h.Rounds())
}

func TestSpecConstantCountMismatch(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	s := spec64(t)
	s.RoundConstants = []string{"0x01", "0x02"}
	_, err := New[big.Int](f, s)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestSpecMalformedConstant(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	s := spec64(t)
	s.RoundConstants = make([]string, (8+41)*5)
	for i := range s.RoundConstants {
		s.RoundConstants[i] = "0x01"
	}
	s.RoundConstants[3] = "0xzz"
	_, err := New[big.Int](f, s)
	require.ErrorIs(t, err, ErrParse)
}

func TestSpecMatrixShapeMismatch(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	s := spec64(t)
	s.MDS = [][]string{{"0x01", "0x02"}}
	_, err := New[big.Int](f, s)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestSpecMalformedMatrixEntry(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	s := spec64(t)
	s.MDS = make([][]string, 5)
	for i := range s.MDS {
		s.MDS[i] = []string{"0x01", "0x01", "0x01", "0x01", "0x01"}
	}
	s.MDS[0][0] = "not-a-number"
	_, err := New[big.Int](f, s)
	require.ErrorIs(t, err, ErrParse)
}

func TestSpecSuppliedMatrixFailsSecurityCheck(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	s := spec64(t)
	// All-ones matrix: rank 1, so the Krylov space collapses immediately.
	s.MDS = make([][]string, 5)
	for i := range s.MDS {
		s.MDS[i] = []string{"0x01", "0x01", "0x01", "0x01", "0x01"}
	}
	_, err := New[big.Int](f, s)
	require.ErrorIs(t, err, ErrConfiguration)
}
