package ring

import (
	"github.com/Whosayin7/lwe/utils/sampling"
)

// UniformSampler wraps a [sampling.PRNG] and represents the state of a
// sampler of uniform ring elements in [0, Q).
type UniformSampler struct {
	*baseSampler
	*randomBuffer
}

// NewUniformSampler creates a new instance of [UniformSampler] from a PRNG
// and a ring definition.
func NewUniformSampler(prng sampling.PRNG, baseRing *Ring) (u *UniformSampler) {
	u = new(UniformSampler)
	u.baseSampler = &baseSampler{
		prng:     prng,
		baseRing: baseRing,
	}
	u.randomBuffer = newRandomBuffer()
	return
}

// Read populates v with uniform ring elements in [0, Q).
func (u *UniformSampler) Read(v Vector) {
	u.read(v, func(a, b, c uint64) uint64 {
		return b
	})
}

// ReadAndAdd adds uniform ring elements in [0, Q) on v, with modular
// reduction.
func (u *UniformSampler) ReadAndAdd(v Vector) {
	u.read(v, func(a, b, c uint64) uint64 {
		return CRed(a+b, c)
	})
}

// ReadNew samples a new vector of n uniform ring elements.
func (u *UniformSampler) ReadNew(n int) (v Vector) {
	v = NewVector(n)
	u.Read(v)
	return
}

func (u *UniformSampler) read(v Vector, f func(a, b, c uint64) uint64) {

	q := u.baseRing.modulus
	mask := u.baseRing.mask

	var randomUint uint64

	for i := range v {

		// Samples an integer in [0, q-1], rejecting masked draws >= q
		for {
			randomUint = u.next64(u.prng) & mask
			if randomUint < q {
				break
			}
		}

		v[i] = f(v[i], randomUint, q)
	}
}
