package ring

import (
	"fmt"
)

// Matrix is a rectangular array of ring elements in canonical form, stored
// row-major. The row and column order is semantically significant for the
// transpose operations.
type Matrix []Vector

// NewMatrix allocates a zero [Matrix] with the given number of rows and
// columns.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = NewVector(cols)
	}
	return m
}

// Rows returns the number of rows of the matrix.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of the matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// CopyNew returns a deep copy of the matrix.
func (m Matrix) CopyNew() Matrix {
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = m[i].CopyNew()
	}
	return out
}

// MulMatVec computes out = A * v mod Q, with out[i] the inner product of row
// i of A with v. Requires Cols(A) == len(v) and Rows(A) == len(out).
func (r *Ring) MulMatVec(A Matrix, v Vector, out Vector) {

	if A.Cols() != len(v) {
		panic(fmt.Errorf("cannot MulMatVec: matrix has %d columns but vector has length %d", A.Cols(), len(v)))
	}

	if A.Rows() != len(out) {
		panic(fmt.Errorf("cannot MulMatVec: matrix has %d rows but receiver has length %d", A.Rows(), len(out)))
	}

	for i, row := range A {
		out[i] = r.DotProduct(row, v)
	}
}

// MulMatVecNew computes A * v mod Q and returns the result in a new [Vector]
// of length Rows(A).
func (r *Ring) MulMatVecNew(A Matrix, v Vector) (out Vector) {
	out = NewVector(A.Rows())
	r.MulMatVec(A, v, out)
	return
}

// MulMatTVec computes out = A^T * v mod Q without materializing the
// transpose, with out[j] the inner product of column j of A with v. Requires
// Rows(A) == len(v) and Cols(A) == len(out).
func (r *Ring) MulMatTVec(A Matrix, v Vector, out Vector) {

	if A.Rows() != len(v) {
		panic(fmt.Errorf("cannot MulMatTVec: matrix has %d rows but vector has length %d", A.Rows(), len(v)))
	}

	if A.Cols() != len(out) {
		panic(fmt.Errorf("cannot MulMatTVec: matrix has %d columns but receiver has length %d", A.Cols(), len(out)))
	}

	for j := range out {
		out[j] = 0
	}

	q := r.modulus
	for i, row := range A {
		vi := v[i]
		if vi == 0 {
			continue
		}
		for j, aij := range row {
			out[j] = CRed(out[j]+(aij*vi)%q, q)
		}
	}
}

// MulMatTVecNew computes A^T * v mod Q and returns the result in a new
// [Vector] of length Cols(A).
func (r *Ring) MulMatTVecNew(A Matrix, v Vector) (out Vector) {
	out = NewVector(A.Cols())
	r.MulMatTVec(A, v, out)
	return
}
