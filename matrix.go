package poseidon

import (
	"fmt"

	"github.com/vocdoni/poseidon/ff"
)

// matrix is a dense n x n row-major matrix of field elements. Copies of
// elements always go through ff.Field.Set, never through struct assignment,
// so big.Int-backed elements cannot end up sharing storage.
type matrix[E any] struct {
	n int
	a []E
}

func newMatrix[E any](n int) matrix[E] {
	return matrix[E]{n: n, a: make([]E, n*n)}
}

func (m matrix[E]) at(i, j int) *E { return &m.a[i*m.n+j] }

func (m matrix[E]) clone(f ff.Field[E]) matrix[E] {
	out := newMatrix[E](m.n)
	for i := range m.a {
		f.Set(&out.a[i], &m.a[i])
	}
	return out
}

func (m matrix[E]) transpose(f ff.Field[E]) matrix[E] {
	out := newMatrix[E](m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			f.Set(out.at(j, i), m.at(i, j))
		}
	}
	return out
}

// matVec computes dst = m * src (column convention). dst and src must not
// alias.
func matVec[E any](f ff.Field[E], m matrix[E], src, dst []E) {
	var prod E
	for i := 0; i < m.n; i++ {
		f.SetZero(&dst[i])
		for j := 0; j < m.n; j++ {
			f.Mul(&prod, m.at(i, j), &src[j])
			f.Add(&dst[i], &dst[i], &prod)
		}
	}
}

// vecMat computes dst = src * m (row convention). dst and src must not alias.
func vecMat[E any](f ff.Field[E], src []E, m matrix[E], dst []E) {
	var prod E
	for j := 0; j < m.n; j++ {
		f.SetZero(&dst[j])
		for i := 0; i < m.n; i++ {
			f.Mul(&prod, &src[i], m.at(i, j))
			f.Add(&dst[j], &dst[j], &prod)
		}
	}
}

// matMul computes a * b.
func matMul[E any](f ff.Field[E], a, b matrix[E]) matrix[E] {
	n := a.n
	out := newMatrix[E](n)
	var prod E
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				f.Mul(&prod, a.at(i, k), b.at(k, j))
				f.Add(out.at(i, j), out.at(i, j), &prod)
			}
		}
	}
	return out
}

func (m matrix[E]) equal(f ff.Field[E], o matrix[E]) bool {
	if m.n != o.n {
		return false
	}
	for i := range m.a {
		if !f.Equal(&m.a[i], &o.a[i]) {
			return false
		}
	}
	return true
}

// inverse computes m^-1 by Gauss-Jordan elimination, or fails if m is
// singular.
func (m matrix[E]) inverse(f ff.Field[E]) (matrix[E], error) {
	n := m.n
	work := m.clone(f)
	out := newMatrix[E](n)
	for i := 0; i < n; i++ {
		f.SetOne(out.at(i, i))
	}

	var inv, factor, prod E
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !f.IsZero(work.at(r, col)) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return matrix[E]{}, fmt.Errorf("singular matrix (column %d)", col)
		}
		if pivot != col {
			swapRows(f, work, col, pivot)
			swapRows(f, out, col, pivot)
		}
		f.Inverse(&inv, work.at(col, col))
		scaleRow(f, work, col, &inv)
		scaleRow(f, out, col, &inv)
		for r := 0; r < n; r++ {
			if r == col || f.IsZero(work.at(r, col)) {
				continue
			}
			f.Set(&factor, work.at(r, col))
			for j := 0; j < n; j++ {
				f.Mul(&prod, &factor, work.at(col, j))
				f.Sub(work.at(r, j), work.at(r, j), &prod)
				f.Mul(&prod, &factor, out.at(col, j))
				f.Sub(out.at(r, j), out.at(r, j), &prod)
			}
		}
	}
	return out, nil
}

func swapRows[E any](f ff.Field[E], m matrix[E], a, b int) {
	var tmp E
	for j := 0; j < m.n; j++ {
		f.Set(&tmp, m.at(a, j))
		f.Set(m.at(a, j), m.at(b, j))
		f.Set(m.at(b, j), &tmp)
	}
}

func scaleRow[E any](f ff.Field[E], m matrix[E], r int, s *E) {
	for j := 0; j < m.n; j++ {
		f.Mul(m.at(r, j), m.at(r, j), s)
	}
}

// determinant computes det(m) by Gaussian elimination on a working copy.
func (m matrix[E]) determinant(f ff.Field[E]) E {
	n := m.n
	work := m.clone(f)
	var det, inv, factor, prod E
	f.SetOne(&det)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !f.IsZero(work.at(r, col)) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			f.SetZero(&det)
			return det
		}
		if pivot != col {
			swapRows(f, work, col, pivot)
			f.Neg(&det, &det)
		}
		f.Mul(&det, &det, work.at(col, col))
		f.Inverse(&inv, work.at(col, col))
		for r := col + 1; r < n; r++ {
			if f.IsZero(work.at(r, col)) {
				continue
			}
			f.Mul(&factor, work.at(r, col), &inv)
			for j := col; j < n; j++ {
				f.Mul(&prod, &factor, work.at(col, j))
				f.Sub(work.at(r, j), work.at(r, j), &prod)
			}
		}
	}
	return det
}

// rank computes the rank of a set of length-n row vectors by elimination.
func rank[E any](f ff.Field[E], vecs [][]E, n int) int {
	rows := make([][]E, len(vecs))
	for i, v := range vecs {
		rows[i] = make([]E, n)
		for j := 0; j < n; j++ {
			f.Set(&rows[i][j], &v[j])
		}
	}

	var inv, factor, prod E
	r := 0
	for col := 0; col < n && r < len(rows); col++ {
		pivot := -1
		for i := r; i < len(rows); i++ {
			if !f.IsZero(&rows[i][col]) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[r], rows[pivot] = rows[pivot], rows[r]
		f.Inverse(&inv, &rows[r][col])
		for j := col; j < n; j++ {
			f.Mul(&rows[r][j], &rows[r][j], &inv)
		}
		for i := 0; i < len(rows); i++ {
			if i == r || f.IsZero(&rows[i][col]) {
				continue
			}
			f.Set(&factor, &rows[i][col])
			for j := col; j < n; j++ {
				f.Mul(&prod, &factor, &rows[r][j])
				f.Sub(&rows[i][j], &rows[i][j], &prod)
			}
		}
		r++
	}
	return r
}
