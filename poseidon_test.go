package poseidon

import (
	"math/big"
	"sync"
	"testing"

	bls381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/vocdoni/poseidon/ff/bls12381"
	"github.com/vocdoni/poseidon/ff/bn254"
)

func TestHashVectors64(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	for _, optimized := range []bool{false, true} {
		h, err := NewPrimeField(spec64(t), optimized)
		require.NoError(t, err)

		empty, err := h.Hash()
		require.NoError(t, err)
		requireDigest(t, "0xe2ee6d0af248d44c", &empty)

		full, err := h.Hash(uintInputs(f, 1, 2, 3, 4)...)
		require.NoError(t, err)
		requireDigest(t, "0x634ff3e288613ea5", &full)
	}
}

func TestHashVectorsNeptune(t *testing.T) {
	spec := Spec{
		Modulus:       mustBig(t, p255Hex),
		SecurityLevel: 128,
		Alpha:         5,
		Width:         4,
		Rate:          3,
	}
	f := newPrimeField(t, p255Hex)
	h, err := NewPrimeField(spec, true)
	require.NoError(t, err)
	require.Equal(t, RoundCounts{Full: 8, Partial: 56}, h.Rounds())

	empty, err := h.Hash()
	require.NoError(t, err)
	requireDigest(t, "0x1bb4f295fc09aeb01954b31967bae6d90e3caa05654d36e2f5eaa2685a6a9f0f", &empty)

	// Absorbing a zero into a zero-initialized slot is a no-op, so the
	// digest of [0] coincides with the empty digest.
	zero, err := h.Hash(uintInputs(f, 0)...)
	require.NoError(t, err)
	require.Zero(t, empty.Cmp(&zero))

	seq, err := h.Hash(uintInputs(f, 0, 1, 2)...)
	require.NoError(t, err)
	requireDigest(t, "0x10631e40687a84a68c766ec5fb26af185fd2c373cb9071e5eec1e8f464abcb94", &seq)
}

func TestHashVectorWidth4FullRate(t *testing.T) {
	spec := Spec{
		Modulus:       mustBig(t, p255Hex),
		SecurityLevel: 128,
		Alpha:         5,
		Width:         4,
		Rate:          4,
	}
	f := newPrimeField(t, p255Hex)
	h, err := NewPrimeField(spec, false)
	require.NoError(t, err)

	d, err := h.Hash(uintInputs(f, 0, 1, 2, 3)...)
	require.NoError(t, err)
	requireDigest(t, "0x716f5996c95c4391844f8a60c85238845fd4aed7b188c61b7ffe0012aef84b9d", &d)
}

func TestBN254PresetVector(t *testing.T) {
	h, err := NewBN254()
	require.NoError(t, err)
	require.Equal(t, 3, h.Width())
	require.Equal(t, 2, h.Rate())

	f := bn254.Field{}
	var a, b bn254fr.Element
	f.SetUint64(&a, 0)
	f.SetUint64(&b, 1)
	d, err := h.Hash(a, b)
	require.NoError(t, err)

	got := new(big.Int)
	f.BigInt(&d, got)
	requireDigest(t, "0x0b35e5b7e722c94975be0dad5fae278b128643cd5876bbb312efbfb55ec763d5", got)

	// The naive engine over the same preset must agree.
	naive, err := NewFromPreset[bn254fr.Element](f, "x5-254-3")
	require.NoError(t, err)
	dn, err := naive.Hash(a, b)
	require.NoError(t, err)
	require.True(t, f.Equal(&d, &dn))
}

func TestNeptunePresetMatchesDerived(t *testing.T) {
	// The preset pins the same parameters the generator derives, so the
	// preset instance over the native field and the derived instance over
	// the big.Int field must hash identically.
	h, err := NewNeptune()
	require.NoError(t, err)

	f := bls12381.Field{}
	var a, b, c bls381fr.Element
	f.SetUint64(&a, 0)
	f.SetUint64(&b, 1)
	f.SetUint64(&c, 2)
	d, err := h.Hash(a, b, c)
	require.NoError(t, err)

	got := new(big.Int)
	f.BigInt(&d, got)
	requireDigest(t, "0x10631e40687a84a68c766ec5fb26af185fd2c373cb9071e5eec1e8f464abcb94", got)
}

func TestBLS12381Preset(t *testing.T) {
	h, err := NewBLS12381()
	require.NoError(t, err)
	require.Equal(t, 5, h.Width())
	require.Equal(t, 4, h.Rate())
	require.Equal(t, RoundCounts{Full: 8, Partial: 60}, h.Rounds())
}

func TestHashInputBounds(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	h, err := NewPrimeField(spec64(t), true)
	require.NoError(t, err)

	_, err = h.Hash(uintInputs(f, 1, 2, 3, 4)...)
	require.NoError(t, err, "rate-many inputs must be accepted")

	_, err = h.Hash(uintInputs(f, 1, 2, 3, 4, 5)...)
	require.ErrorIs(t, err, ErrInputSize)
}

func TestPermuteWidthMismatch(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	h, err := NewPrimeField(spec64(t), false)
	require.NoError(t, err)
	require.ErrorIs(t, h.Permute(uintInputs(f, 1, 2)), ErrConfiguration)
}

func TestHashDoesNotAliasInputs(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	h, err := NewPrimeField(spec64(t), true)
	require.NoError(t, err)

	inputs := uintInputs(f, 7, 8, 9)
	want, err := h.Hash(inputs...)
	require.NoError(t, err)

	// Neither the inputs nor the returned digest may share storage with
	// internal state.
	for i := range inputs {
		require.Equal(t, uint64(7+i), inputs[i].Uint64())
	}
	want.Add(&want, big.NewInt(1))
	again, err := h.Hash(uintInputs(f, 7, 8, 9)...)
	require.NoError(t, err)
	want.Sub(&want, big.NewInt(1))
	require.Zero(t, want.Cmp(&again))
}

func TestHashConcurrent(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	h, err := NewPrimeField(spec64(t), true)
	require.NoError(t, err)

	want, err := h.Hash(uintInputs(f, 10, 20, 30, 40)...)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				d, err := h.Hash(uintInputs(f, 10, 20, 30, 40)...)
				if err != nil {
					errs <- err
					return
				}
				if d.Cmp(&want) != 0 {
					errs <- ErrGeneration
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestPresetRegistry(t *testing.T) {
	require.Equal(t, []string{"neptune-255-4", "x5-254-3", "x5-255-5"}, PresetNames())

	_, ok := LookupPreset("x5-254-3")
	require.True(t, ok)
	_, ok = LookupPreset("no-such-preset")
	require.False(t, ok)

	_, err := NewFromPreset[bn254fr.Element](bn254.Field{}, "no-such-preset")
	require.ErrorIs(t, err, ErrConfiguration)

	// A preset bound to a different modulus must be rejected by the field.
	_, err = NewFromPreset[bn254fr.Element](bn254.Field{}, "neptune-255-4")
	require.ErrorIs(t, err, ErrConfiguration)
}
