package poseidon

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestNaiveOptimizedEquivalence(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	naive, err := NewPrimeField(spec64(t), false)
	require.NoError(t, err)
	opt, err := NewPrimeField(spec64(t), true)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("both engines produce the same digest", prop.ForAll(
		func(a, b, c, d uint64, n int) bool {
			inputs := uintInputs(f, a, b, c, d)[:n]
			dn, err := naive.Hash(inputs...)
			if err != nil {
				return false
			}
			do, err := opt.Hash(inputs...)
			if err != nil {
				return false
			}
			return f.Equal(&dn, &do)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.IntRange(0, 4),
	))

	properties.Property("both engines produce the same permuted state", prop.ForAll(
		func(a, b, c, d, e uint64) bool {
			sn := uintInputs(f, a, b, c, d, e)
			so := uintInputs(f, a, b, c, d, e)
			if err := naive.Permute(sn); err != nil {
				return false
			}
			if err := opt.Permute(so); err != nil {
				return false
			}
			for i := range sn {
				if !f.Equal(&sn[i], &so[i]) {
					return false
				}
			}
			return true
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestOptimizedScheduleShape(t *testing.T) {
	h, err := NewPrimeField(spec64(t), true)
	require.NoError(t, err)
	require.True(t, h.IsOptimized())
	require.NotNil(t, h.opt)

	// t constants per full round, a single one per partial round.
	require.Len(t, h.opt.constants, 5*8+41)
	require.Len(t, h.opt.sparse, 41)
	require.Equal(t, 5, h.opt.preSparse.n)
}

func TestSparseApplyMatchesDense(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	h, err := NewPrimeField(spec64(t), true)
	require.NoError(t, err)

	src := uintInputs(f, 3, 1, 4, 1, 5)
	for r := range h.opt.sparse {
		sm := &h.opt.sparse[r]
		fast := make([]big.Int, 5)
		slow := make([]big.Int, 5)
		sm.apply(f, src, fast)
		vecMat(f, src, sm.dense(f, 5), slow)
		for i := range fast {
			require.True(t, f.Equal(&fast[i], &slow[i]),
				"round %d slot %d", r, i)
		}
	}
}

func TestOptimizeRejectsWidthOne(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	m := newMatrix[big.Int](1)
	f.SetUint64(m.at(0, 0), 2)
	arc := uintInputs(f, 1, 2, 3)
	_, err := optimize(f, arc, m, RoundCounts{Full: 2, Partial: 1})
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestSelfCheckDetectsCorruption(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	h, err := NewPrimeField(spec64(t), true)
	require.NoError(t, err)
	require.NoError(t, h.selfCheck())

	var one big.Int
	f.SetOne(&one)
	f.Add(&h.opt.constants[0], &h.opt.constants[0], &one)
	require.ErrorIs(t, h.selfCheck(), ErrGeneration)
}
