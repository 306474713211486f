package ring

import (
	"encoding/binary"

	"github.com/Whosayin7/lwe/utils/sampling"
)

// Sampler is an interface for samplers of ring element vectors. It has a
// single Read method which takes as argument the vector to be populated
// according to the Sampler's distribution.
type Sampler interface {
	Read(v Vector)
	ReadNew(n int) Vector
	ReadAndAdd(v Vector)
}

type baseSampler struct {
	prng     sampling.PRNG
	baseRing *Ring
}

type randomBuffer struct {
	randomBufferN []byte
	ptr           int
}

func newRandomBuffer() *randomBuffer {
	return &randomBuffer{
		randomBufferN: make([]byte, 1024),
	}
}

// next64 returns the next buffered uint64, refilling the buffer from the
// PRNG when it runs empty.
func (rb *randomBuffer) next64(prng sampling.PRNG) uint64 {

	if rb.ptr == len(rb.randomBufferN) || rb.ptr == 0 {
		if _, err := prng.Read(rb.randomBufferN); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		rb.ptr = 0
	}

	randomUint := binary.BigEndian.Uint64(rb.randomBufferN[rb.ptr : rb.ptr+8])
	rb.ptr += 8

	return randomUint
}

// RandUniform samples a uniform randomInt variable in the range [0, mask] until randomInt is in the range [0, v-1].
// mask needs to be of the form 2^n -1.
func RandUniform(prng sampling.PRNG, v uint64, mask uint64) (randomInt uint64) {
	for {
		randomInt = randInt64(prng, mask)
		if randomInt < v {
			return randomInt
		}
	}
}

// randInt64 samples a uniform variable in the range [0, mask], where mask is of the form 2^n-1, with n in [0, 64].
func randInt64(prng sampling.PRNG, mask uint64) uint64 {

	randomBytes := make([]byte, 8)
	if _, err := prng.Read(randomBytes); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return mask & binary.BigEndian.Uint64(randomBytes)
}
