package poseidon

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/vocdoni/poseidon/ff"
)

// mdsMaxAttempts bounds the MDS candidate search so construction always
// terminates.
const mdsMaxAttempts = 100

// buildMDS constructs a t x t Cauchy matrix M[i][j] = 1/(x_i - y_j) over the
// field and validates it against the partial-round security predicate. The
// first candidate uses the canonical sequences x_i = i, y_j = -(t+j); retries
// draw fresh sequences from a deterministic blake2b stream keyed by the
// attempt number. Every square submatrix of a Cauchy matrix is non-singular,
// so the MDS property holds by construction.
func buildMDS[E any](f ff.Field[E], t int) (matrix[E], error) {
	p := f.Modulus()
	if p.Cmp(big.NewInt(int64(2*t))) <= 0 {
		return matrix[E]{}, fmt.Errorf("%w: modulus too small for a %d x %d Cauchy matrix", ErrConfiguration, t, t)
	}

	for attempt := 0; attempt < mdsMaxAttempts; attempt++ {
		xs, ys, err := cauchySequences(p, t, attempt)
		if err != nil {
			return matrix[E]{}, err
		}
		m := cauchyMatrix(f, xs, ys)
		if err := checkMDSSecurity(f, m); err != nil {
			log := pkgLogger()
			log.Debug().Int("attempt", attempt).Err(err).Msg("mds candidate rejected")
			continue
		}
		return m, nil
	}
	return matrix[E]{}, fmt.Errorf("%w: no valid MDS matrix within %d attempts", ErrGeneration, mdsMaxAttempts)
}

// cauchySequences derives the x and y sequences for one candidate. All 2t
// values are pairwise distinct mod p.
func cauchySequences(p *big.Int, t, attempt int) (xs, ys []*big.Int, err error) {
	if attempt == 0 {
		// Canonical choice: x_i = i, y_j = -(t+j), so that
		// x_i - y_j = i + t + j, matching the reference matrices.
		xs = make([]*big.Int, t)
		ys = make([]*big.Int, t)
		for i := 0; i < t; i++ {
			xs[i] = big.NewInt(int64(i))
			ys[i] = new(big.Int).Sub(p, big.NewInt(int64(t+i)))
		}
		return xs, ys, nil
	}

	vals, err := drawDistinct(p, 2*t, attempt)
	if err != nil {
		return nil, nil, err
	}
	return vals[:t], vals[t:], nil
}

// drawDistinct draws n pairwise-distinct field elements from a blake2b stream
// keyed by the attempt number.
func drawDistinct(p *big.Int, n, attempt int) ([]*big.Int, error) {
	byteLen := (p.BitLen() + 7) / 8
	topMask := byte(0xff >> uint(8*byteLen-p.BitLen()))

	out := make([]*big.Int, 0, n)
	seen := make(map[string]struct{}, n)

	var block [16]byte
	binary.BigEndian.PutUint64(block[:8], uint64(attempt))
	// Bounded draw loop; overwhelmingly more than enough for any prime.
	for ctr := uint64(0); len(out) < n && ctr < uint64(n)*256; ctr++ {
		binary.BigEndian.PutUint64(block[8:], ctr)
		sum := blake2b.Sum512(block[:])
		buf := sum[:byteLen]
		tmp := make([]byte, byteLen)
		copy(tmp, buf)
		tmp[0] &= topMask
		v := new(big.Int).SetBytes(tmp)
		if v.Cmp(p) >= 0 {
			continue
		}
		key := v.Text(16)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	if len(out) < n {
		return nil, fmt.Errorf("%w: could not draw %d distinct elements", ErrGeneration, n)
	}
	return out, nil
}

func cauchyMatrix[E any](f ff.Field[E], xs, ys []*big.Int) matrix[E] {
	t := len(xs)
	m := newMatrix[E](t)
	var x, y, d E
	for i := 0; i < t; i++ {
		f.SetBigInt(&x, xs[i])
		for j := 0; j < t; j++ {
			f.SetBigInt(&y, ys[j])
			f.Sub(&d, &x, &y)
			f.Inverse(m.at(i, j), &d)
		}
	}
	return m
}

// checkMDSSecurity rejects matrices whose sparse-round structure could
// degenerate: the Krylov space of the matrix over the single S-boxed slot
// (span of e_0, M e_0, ..., M^(t-1) e_0) must reach full dimension t within t
// iterations, otherwise the partial-round block leaves a low-dimensional
// invariant subspace untouched by the non-linear layer.
func checkMDSSecurity[E any](f ff.Field[E], m matrix[E]) error {
	t := m.n
	if t == 1 {
		if f.IsZero(m.at(0, 0)) {
			return fmt.Errorf("zero 1x1 matrix")
		}
		return nil
	}

	vecs := make([][]E, t)
	cur := make([]E, t)
	next := make([]E, t)
	f.SetOne(&cur[0])
	for i := 1; i < t; i++ {
		f.SetZero(&cur[i])
	}
	for k := 0; k < t; k++ {
		vecs[k] = make([]E, t)
		for i := 0; i < t; i++ {
			f.Set(&vecs[k][i], &cur[i])
		}
		matVec(f, m, cur, next)
		cur, next = next, cur
	}

	if r := rank(f, vecs, t); r < t {
		return fmt.Errorf("invariant subspace of dimension %d under partial-round mixing", r)
	}
	return nil
}
