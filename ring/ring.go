// Package ring implements modular arithmetic over the ring of integers
// modulo a fixed modulus Q, with vectors and matrices of canonical
// representatives in [0, Q) and samplers for the distributions used by the
// scheme.
package ring

import (
	"fmt"
	"math/bits"
)

// MaxModulusBits is the largest bit-size allowed for a modulus. The cap
// guarantees that a product of two canonical representatives fits in 63 bits
// once reduced and added to a canonical accumulator, so dot products of any
// length never overflow an uint64.
const MaxModulusBits = 31

// Ring is the ring of integers modulo a fixed modulus Q. All operations
// return canonical representatives in [0, Q), correcting negative
// intermediate values.
type Ring struct {
	modulus uint64
	mask    uint64
}

// NewRing creates a new [Ring] with modulus q. Returns an error if q < 2 or
// if q exceeds [MaxModulusBits] bits.
func NewRing(q uint64) (r *Ring, err error) {

	if q < 2 {
		return nil, fmt.Errorf("invalid modulus: %d < 2", q)
	}

	if bits.Len64(q) > MaxModulusBits {
		return nil, fmt.Errorf("invalid modulus: %d exceeds %d bits", q, MaxModulusBits)
	}

	return &Ring{
		modulus: q,
		mask:    (1 << uint64(bits.Len64(q-1))) - 1,
	}, nil
}

// Modulus returns the ring modulus Q.
func (r *Ring) Modulus() uint64 {
	return r.modulus
}

// Mask returns the smallest 2^n - 1 mask covering Q - 1, used for rejection
// sampling.
func (r *Ring) Mask() uint64 {
	return r.mask
}

// Reduce returns the canonical representative of x in [0, Q), valid for any
// signed x.
func (r *Ring) Reduce(x int64) uint64 {
	q := int64(r.modulus)
	return uint64(((x % q) + q) % q)
}

// CenterLift maps a canonical representative to the centered interval
// (-Q/2, Q/2].
func (r *Ring) CenterLift(x uint64) int64 {
	if x > r.modulus>>1 {
		return int64(x) - int64(r.modulus)
	}
	return int64(x)
}

// CRed reduces a mod q, for a in the range [0, 2q).
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}
