package ring

import (
	"fmt"
)

// Vector is an ordered sequence of ring elements in canonical form.
type Vector []uint64

// NewVector allocates a zero [Vector] of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// CopyNew returns a copy of the vector.
func (v Vector) CopyNew() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Add adds a to b element-wise with modular reduction, returning the result
// on out. All three vectors must have the same length.
func (r *Ring) Add(a, b, out Vector) {

	if len(a) != len(b) || len(a) != len(out) {
		panic(fmt.Errorf("cannot Add: vector lengths do not match (%d, %d, %d)", len(a), len(b), len(out)))
	}

	q := r.modulus
	for i := range a {
		out[i] = CRed(a[i]+b[i], q)
	}
}

// AddNew adds a to b element-wise with modular reduction and returns the
// result in a new [Vector].
func (r *Ring) AddNew(a, b Vector) (out Vector) {
	out = NewVector(len(a))
	r.Add(a, b, out)
	return
}

// DotProduct returns the inner product of a and b mod Q, as a canonical
// representative. Both vectors must have the same length.
func (r *Ring) DotProduct(a, b Vector) (dot uint64) {

	if len(a) != len(b) {
		panic(fmt.Errorf("cannot DotProduct: vector lengths do not match (%d != %d)", len(a), len(b)))
	}

	q := r.modulus
	for i := range a {
		dot = CRed(dot+(a[i]*b[i])%q, q)
	}

	return
}
