package poseidon

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vocdoni/poseidon/ff"
)

const (
	p64Hex  = "0xfffffffffffffeff"
	p254Hex = "0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001"
	p255Hex = "0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001"
)

func mustBig(t *testing.T, hex string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(hex, 0)
	require.True(t, ok, "bad literal %q", hex)
	return v
}

func newPrimeField(t *testing.T, hex string) *ff.Prime {
	t.Helper()
	f, err := ff.NewPrime(mustBig(t, hex))
	require.NoError(t, err)
	return f
}

// spec64 is the small, fast instance used throughout the tests: a 64-bit
// prime with t=5, rate 4, alpha 3 and the derived (8, 41) schedule.
func spec64(t *testing.T) Spec {
	t.Helper()
	return Spec{
		Modulus:       mustBig(t, p64Hex),
		SecurityLevel: 128,
		Alpha:         3,
		Width:         5,
		Rate:          4,
	}
}

func uintInputs(f ff.Field[big.Int], vs ...uint64) []big.Int {
	out := make([]big.Int, len(vs))
	for i, v := range vs {
		f.SetUint64(&out[i], v)
	}
	return out
}

func requireDigest(t *testing.T, want string, got *big.Int) {
	t.Helper()
	require.Equal(t, mustBig(t, want).Text(16), got.Text(16))
}
