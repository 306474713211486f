package ring

import (
	"github.com/Whosayin7/lwe/utils/sampling"
)

// BinarySampler wraps a [sampling.PRNG] and represents the state of a
// sampler of uniform elements in {0, 1}.
type BinarySampler struct {
	*baseSampler
	*randomBuffer
}

// NewBinarySampler creates a new instance of [BinarySampler] from a PRNG and
// a ring definition.
func NewBinarySampler(prng sampling.PRNG, baseRing *Ring) (b *BinarySampler) {
	b = new(BinarySampler)
	b.baseSampler = &baseSampler{
		prng:     prng,
		baseRing: baseRing,
	}
	b.randomBuffer = newRandomBuffer()
	return
}

// Read populates v with uniform elements in {0, 1}.
func (b *BinarySampler) Read(v Vector) {
	b.read(v, func(a, b, c uint64) uint64 {
		return b
	})
}

// ReadAndAdd adds uniform elements in {0, 1} on v, with modular reduction.
func (b *BinarySampler) ReadAndAdd(v Vector) {
	b.read(v, func(a, b, c uint64) uint64 {
		return CRed(a+b, c)
	})
}

// ReadNew samples a new vector of n uniform elements in {0, 1}.
func (b *BinarySampler) ReadNew(n int) (v Vector) {
	v = NewVector(n)
	b.Read(v)
	return
}

func (b *BinarySampler) read(v Vector, f func(a, b, c uint64) uint64) {

	q := b.baseRing.modulus

	var pool uint64
	var bitsLeft int

	for i := range v {

		// One 64-bit draw yields 64 coin flips
		if bitsLeft == 0 {
			pool = b.next64(b.prng)
			bitsLeft = 64
		}

		v[i] = f(v[i], pool&1, q)
		pool >>= 1
		bitsLeft--
	}
}
