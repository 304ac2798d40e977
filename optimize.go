package poseidon

import (
	"fmt"

	"github.com/vocdoni/poseidon/ff"
)

// optimizedData is the algebraically equivalent representation of a round
// schedule: one dense pre-sparse matrix absorbing the linear effect of the
// partial-round block's start, one sparse matrix per partial round, and the
// re-derived round constants. Running the optimized engine with this data
// yields bit-identical outputs to the naive engine.
type optimizedData[E any] struct {
	// constants holds t*Full + Partial elements: t pre-round constants,
	// one t-row after each of the first Full-1 full rounds, and a single
	// constant per partial round (the optimization collapses the t
	// constants of a naive partial round into one).
	constants []E
	// preSparse replaces the mixing step of the last first-half full
	// round; applied in row convention.
	preSparse matrix[E]
	sparse    []sparseMatrix[E]
}

// sparseMatrix is a t x t matrix equal to the identity except for a dense
// first row and first column, stored compressed. Applying it costs O(t).
type sparseMatrix[E any] struct {
	m00 E
	row []E // first row, entries 1..t-1
	col []E // first column, entries 1..t-1
}

// dense expands the compressed form, used by the factorization check.
func (s *sparseMatrix[E]) dense(f ff.Field[E], t int) matrix[E] {
	m := newMatrix[E](t)
	for i := 1; i < t; i++ {
		f.SetOne(m.at(i, i))
		f.Set(m.at(0, i), &s.row[i-1])
		f.Set(m.at(i, 0), &s.col[i-1])
	}
	f.Set(m.at(0, 0), &s.m00)
	return m
}

// apply computes dst = src * s (row convention): slot 0 mixes with every
// other slot, the remaining slots pass through with a single cross term.
// dst and src must not alias.
func (s *sparseMatrix[E]) apply(f ff.Field[E], src, dst []E) {
	var term, acc E
	f.Mul(&acc, &s.m00, &src[0])
	for i := 0; i < len(src)-1; i++ {
		f.Mul(&term, &s.col[i], &src[i+1])
		f.Add(&acc, &acc, &term)

		f.Mul(&dst[i+1], &s.row[i], &src[0])
		f.Add(&dst[i+1], &dst[i+1], &src[i+1])
	}
	f.Set(&dst[0], &acc)
}

// optimize transforms (round constants, MDS matrix, round counts) into the
// equivalent optimized representation. The naive engine multiplies the state
// by M in column convention; the optimized schedule is derived for the
// transposed matrix and applied in row convention, which makes the two
// pipelines agree for any invertible matrix, symmetric or not.
func optimize[E any](f ff.Field[E], arc []E, mds matrix[E], rounds RoundCounts) (*optimizedData[E], error) {
	t := mds.n
	if t < 2 {
		return nil, fmt.Errorf("%w: the optimized schedule requires state width >= 2", ErrConfiguration)
	}
	if len(arc) != rounds.Total()*t {
		return nil, fmt.Errorf("%w: expected %d round constants, got %d", ErrConfiguration, rounds.Total()*t, len(arc))
	}

	a := mds.transpose(f)
	aInv, err := a.inverse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: mixing matrix is singular: %v", ErrGeneration, err)
	}

	constants := optimizeConstants(f, arc, a.n, rounds, aInv)
	preSparse, sparse, err := optimizeMatrices(f, a, rounds.Partial)
	if err != nil {
		return nil, err
	}
	return &optimizedData[E]{constants: constants, preSparse: preSparse, sparse: sparse}, nil
}

// optimizeConstants pushes each naive constant addition through the matrix
// multiplications it commutes with, producing the constant schedule of the
// optimized engine. Partial-round constants fold backwards through M^-1 into
// a single element per round.
func optimizeConstants[E any](f ff.Field[E], arc []E, t int, rounds RoundCounts, aInv matrix[E]) []E {
	half := rounds.halfFull()
	row := func(r int) []E { return arc[r*t : (r+1)*t] }

	out := make([]E, 0, t*rounds.Full+rounds.Partial)
	appendCopy := func(v []E) {
		for i := range v {
			var e E
			f.Set(&e, &v[i])
			out = append(out, e)
		}
	}
	pushed := func(v []E) []E {
		dst := make([]E, t)
		vecMat(f, v, aInv, dst)
		return dst
	}

	// Pre-round constants, then one pushed row per remaining first-half
	// full round.
	appendCopy(row(0))
	for r := 1; r < half; r++ {
		appendCopy(pushed(row(r)))
	}

	// Fold the partial-round constants backwards: each step peels off the
	// slot-0 component (the only slot whose constant must survive at its
	// round) and accumulates the rest into the preceding round.
	finalRound := half + rounds.Partial
	acc := make([]E, t)
	for i := 0; i < t; i++ {
		f.Set(&acc[i], &row(finalRound)[i])
	}
	partial := make([]E, rounds.Partial)
	for r := 0; r < rounds.Partial; r++ {
		acc1 := pushed(acc)
		f.Set(&partial[r], &acc1[0])
		f.SetZero(&acc1[0])
		prev := row(finalRound - r - 1)
		for i := 0; i < t; i++ {
			f.Add(&acc1[i], &acc1[i], &prev[i])
		}
		acc = acc1
	}
	appendCopy(pushed(acc))
	for r := rounds.Partial - 1; r >= 0; r-- {
		appendCopy(partial[r : r+1])
	}

	// Second-half full rounds, skipping the block's first row (already
	// folded into the partial schedule above).
	for r := 1; r < half; r++ {
		appendCopy(pushed(row(finalRound + r)))
	}
	return out
}

// optimizeMatrices repeatedly factors the running matrix into a sparse matrix
// and a residue folded back into the next partial round, leaving the dense
// pre-sparse matrix.
func optimizeMatrices[E any](f ff.Field[E], a matrix[E], partialRounds int) (matrix[E], []sparseMatrix[E], error) {
	sparse := make([]sparseMatrix[E], 0, partialRounds)
	m := a.clone(f)
	for r := 0; r < partialRounds; r++ {
		m1, sm, err := sparseFactor(f, m)
		if err != nil {
			return matrix[E]{}, nil, fmt.Errorf("partial round %d: %w", r, err)
		}
		sparse = append(sparse, sm)
		m = matMul(f, a, m1)
	}
	for i, j := 0, len(sparse)-1; i < j; i, j = i+1, j-1 {
		sparse[i], sparse[j] = sparse[j], sparse[i]
	}
	return m, sparse, nil
}

// sparseFactor decomposes m = m1 * m2, where m2 is sparse (identity plus a
// dense first row/column) and m1 leaves slot 0 untouched.
func sparseFactor[E any](f ff.Field[E], m matrix[E]) (matrix[E], sparseMatrix[E], error) {
	t := m.n

	m1 := m.clone(f)
	for j := 0; j < t; j++ {
		f.SetZero(m1.at(0, j))
	}
	for i := 0; i < t; i++ {
		f.SetZero(m1.at(i, 0))
	}
	f.SetOne(m1.at(0, 0))

	mHat := newMatrix[E](t - 1)
	w := make([]E, t-1)
	for i := 1; i < t; i++ {
		f.Set(&w[i-1], m.at(i, 0))
		for j := 1; j < t; j++ {
			f.Set(mHat.at(i-1, j-1), m.at(i, j))
		}
	}
	mHatInv, err := mHat.inverse(f)
	if err != nil {
		return matrix[E]{}, sparseMatrix[E]{}, fmt.Errorf("%w: sparse factorization: %v", ErrGeneration, err)
	}
	wHat := make([]E, t-1)
	matVec(f, mHatInv, w, wHat)

	sm := sparseMatrix[E]{row: make([]E, t-1), col: make([]E, t-1)}
	f.Set(&sm.m00, m.at(0, 0))
	for i := 0; i < t-1; i++ {
		f.Set(&sm.row[i], m.at(0, i+1))
		f.Set(&sm.col[i], &wHat[i])
	}

	m2 := sm.dense(f, t)
	if !matMul(f, m1, m2).equal(f, m) {
		return matrix[E]{}, sparseMatrix[E]{}, fmt.Errorf("%w: sparse factorization does not reproduce the matrix", ErrGeneration)
	}
	return m1, sm, nil
}
