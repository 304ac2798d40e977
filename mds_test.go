package poseidon

import (
	"math/big"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vocdoni/poseidon/ff"
)

func TestBuildMDSCauchyStructure(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	const width = 4
	m, err := buildMDS[big.Int](f, width)
	require.NoError(t, err)

	// First candidate: M[i][j] = 1/(i + width + j).
	var d, prod, one big.Int
	f.SetOne(&one)
	for i := 0; i < width; i++ {
		for j := 0; j < width; j++ {
			f.SetUint64(&d, uint64(i+width+j))
			f.Mul(&prod, m.at(i, j), &d)
			require.True(t, f.Equal(&prod, &one), "entry (%d,%d)", i, j)
		}
	}
}

func TestBuildMDSDeterministic(t *testing.T) {
	f := newPrimeField(t, p255Hex)
	a, err := buildMDS[big.Int](f, 5)
	require.NoError(t, err)
	b, err := buildMDS[big.Int](f, 5)
	require.NoError(t, err)
	require.True(t, a.equal(f, b))
}

// submatrix extracts the rows and columns selected by the two bitmasks.
func submatrix(f ff.Field[big.Int], m matrix[big.Int], rowMask, colMask uint) matrix[big.Int] {
	k := bits.OnesCount(rowMask)
	out := newMatrix[big.Int](k)
	ri := 0
	for i := 0; i < m.n; i++ {
		if rowMask&(1<<uint(i)) == 0 {
			continue
		}
		ci := 0
		for j := 0; j < m.n; j++ {
			if colMask&(1<<uint(j)) == 0 {
				continue
			}
			f.Set(out.at(ri, ci), m.at(i, j))
			ci++
		}
		ri++
	}
	return out
}

func TestMDSSubmatricesNonSingular(t *testing.T) {
	// Exhaustive over every square submatrix for small widths. This is the
	// defining MDS property of a Cauchy matrix.
	f := newPrimeField(t, p255Hex)
	for _, width := range []int{3, 4, 5} {
		m, err := buildMDS[big.Int](f, width)
		require.NoError(t, err)

		for rowMask := uint(1); rowMask < 1<<uint(width); rowMask++ {
			for colMask := uint(1); colMask < 1<<uint(width); colMask++ {
				if bits.OnesCount(rowMask) != bits.OnesCount(colMask) {
					continue
				}
				sub := submatrix(f, m, rowMask, colMask)
				det := sub.determinant(f)
				require.False(t, f.IsZero(&det),
					"t=%d rows=%b cols=%b: singular submatrix", width, rowMask, colMask)
			}
		}
	}
}

func TestMDSInverseRoundTrip(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	m, err := buildMDS[big.Int](f, 5)
	require.NoError(t, err)
	mInv, err := m.inverse(f)
	require.NoError(t, err)

	id := newMatrix[big.Int](5)
	for i := 0; i < 5; i++ {
		f.SetOne(id.at(i, i))
	}
	require.True(t, matMul(f, m, mInv).equal(f, id))
}

func TestMDSSecurityRejectsIdentity(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	id := newMatrix[big.Int](3)
	for i := 0; i < 3; i++ {
		f.SetOne(id.at(i, i))
	}
	// e_0 is an eigenvector of the identity, so the Krylov space never
	// grows past dimension 1.
	require.Error(t, checkMDSSecurity(f, id))
}

func TestMDSSecurityRejectsRankOne(t *testing.T) {
	f := newPrimeField(t, p64Hex)
	ones := newMatrix[big.Int](4)
	for i := range ones.a {
		f.SetOne(&ones.a[i])
	}
	require.Error(t, checkMDSSecurity(f, ones))
}

func TestBuildMDSModulusTooSmall(t *testing.T) {
	f, err := ff.NewPrime(big.NewInt(7))
	require.NoError(t, err)
	_, err = buildMDS[big.Int](f, 4)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestDrawDistinctSequences(t *testing.T) {
	p := mustBig(t, p64Hex)
	vals, err := drawDistinct(p, 10, 1)
	require.NoError(t, err)
	require.Len(t, vals, 10)
	seen := map[string]struct{}{}
	for _, v := range vals {
		require.Negative(t, v.Cmp(p))
		_, dup := seen[v.Text(16)]
		require.False(t, dup, "duplicate draw %s", v.Text(16))
		seen[v.Text(16)] = struct{}{}
	}
}
