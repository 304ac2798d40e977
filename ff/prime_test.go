package ff

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testField(t *testing.T) *Prime {
	t.Helper()
	p, _ := new(big.Int).SetString("0xfffffffffffffeff", 0)
	f, err := NewPrime(p)
	require.NoError(t, err)
	return f
}

func TestNewPrimeRejectsBadModuli(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    *big.Int
	}{
		{"nil", nil},
		{"zero", big.NewInt(0)},
		{"negative", big.NewInt(-7)},
		{"even", big.NewInt(10)},
		{"too small", big.NewInt(3)},
		{"composite", big.NewInt(15)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPrime(tc.p)
			require.Error(t, err)
		})
	}
}

func TestPrimeArithmetic(t *testing.T) {
	f := testField(t)
	p := f.Modulus()

	var a, b, z, one big.Int
	f.SetOne(&one)

	// x * x^-1 = 1 for a handful of non-zero values.
	for _, v := range []uint64{1, 2, 17, 1 << 40} {
		f.SetUint64(&a, v)
		f.Inverse(&b, &a)
		f.Mul(&z, &a, &b)
		require.True(t, f.Equal(&z, &one), "v=%d", v)
	}

	// The inverse of zero is pinned to zero.
	f.SetZero(&a)
	f.Inverse(&b, &a)
	require.True(t, f.IsZero(&b))

	// x + (-x) = 0.
	f.SetUint64(&a, 12345)
	f.Neg(&b, &a)
	f.Add(&z, &a, &b)
	require.True(t, f.IsZero(&z))

	// Values reduce into [0, p).
	f.SetBigInt(&a, new(big.Int).Add(p, big.NewInt(5)))
	require.Equal(t, "5", f.String(&a))
}

func TestPrimeExp(t *testing.T) {
	f := testField(t)
	var x, z, want big.Int
	f.SetUint64(&x, 3)
	f.Exp(&z, &x, big.NewInt(4))
	f.SetUint64(&want, 81)
	require.True(t, f.Equal(&z, &want))

	// Fermat: x^(p-1) = 1.
	pm1 := new(big.Int).Sub(f.Modulus(), big.NewInt(1))
	f.Exp(&z, &x, pm1)
	var one big.Int
	f.SetOne(&one)
	require.True(t, f.Equal(&z, &one))
}

func TestPrimeSetString(t *testing.T) {
	f := testField(t)
	var z big.Int

	require.NoError(t, f.SetString(&z, "0xff"))
	require.Equal(t, "255", f.String(&z))

	require.NoError(t, f.SetString(&z, "42"))
	require.Equal(t, "42", f.String(&z))

	require.Error(t, f.SetString(&z, "0xzz"))
	require.Error(t, f.SetString(&z, ""))
}
