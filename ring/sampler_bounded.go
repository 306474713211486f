package ring

import (
	"fmt"
	"math/bits"

	"github.com/Whosayin7/lwe/utils/sampling"
)

// BoundedSampler wraps a [sampling.PRNG] and represents the state of a
// sampler of symmetric small errors, uniform over the 2*bound+1 integers in
// [-bound, bound] and stored as canonical representatives in [0, Q).
type BoundedSampler struct {
	*baseSampler
	*randomBuffer
	bound uint64
	span  uint64
	mask  uint64
}

// NewBoundedSampler creates a new instance of [BoundedSampler] from a PRNG,
// a ring definition and a non-negative bound. Returns an error if the
// support [-bound, bound] does not fit the ring, i.e. if 2*bound+1 > Q.
func NewBoundedSampler(prng sampling.PRNG, baseRing *Ring, bound int) (b *BoundedSampler, err error) {

	if bound < 0 {
		return nil, fmt.Errorf("invalid bound: %d < 0", bound)
	}

	span := 2*uint64(bound) + 1
	if span > baseRing.modulus {
		return nil, fmt.Errorf("invalid bound: support size %d exceeds modulus %d", span, baseRing.modulus)
	}

	b = new(BoundedSampler)
	b.baseSampler = &baseSampler{
		prng:     prng,
		baseRing: baseRing,
	}
	b.randomBuffer = newRandomBuffer()
	b.bound = uint64(bound)
	b.span = span
	b.mask = (1 << uint64(bits.Len64(span-1))) - 1
	return
}

// Bound returns the bound of the sampler support.
func (b *BoundedSampler) Bound() int {
	return int(b.bound)
}

// Read populates v with symmetric errors in [-bound, bound], in canonical
// form.
func (b *BoundedSampler) Read(v Vector) {
	b.read(v, func(a, b, c uint64) uint64 {
		return b
	})
}

// ReadAndAdd adds symmetric errors in [-bound, bound] on v, with modular
// reduction.
func (b *BoundedSampler) ReadAndAdd(v Vector) {
	b.read(v, func(a, b, c uint64) uint64 {
		return CRed(a+b, c)
	})
}

// ReadNew samples a new vector of n symmetric errors in [-bound, bound], in
// canonical form.
func (b *BoundedSampler) ReadNew(n int) (v Vector) {
	v = NewVector(n)
	b.Read(v)
	return
}

func (b *BoundedSampler) read(v Vector, f func(a, b, c uint64) uint64) {

	q := b.baseRing.modulus

	var randomUint uint64

	for i := range v {

		// Samples an integer in [0, 2*bound], rejecting masked draws
		// outside the support
		for {
			randomUint = b.next64(b.prng) & b.mask
			if randomUint < b.span {
				break
			}
		}

		// Shifts [0, 2*bound] onto [-bound, bound] and lifts back to [0, Q)
		if randomUint < b.bound {
			randomUint += q - b.bound
		} else {
			randomUint -= b.bound
		}

		v[i] = f(v[i], randomUint, q)
	}
}
