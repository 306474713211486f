package lwe

import (
	"fmt"

	"github.com/Whosayin7/lwe/ring"
	"github.com/Whosayin7/lwe/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to generate
// new key pairs. A KeyGenerator is not safe for concurrent use; see
// [KeyGenerator.ShallowCopy].
type KeyGenerator struct {
	params         Parameters
	uniformSampler *ring.UniformSampler
	boundedSampler *ring.BoundedSampler
}

// NewKeyGenerator creates a new [KeyGenerator] sampling from the system
// entropy source.
func NewKeyGenerator(params Parameters) *KeyGenerator {

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return newKeyGenerator(params, prng)
}

func newKeyGenerator(params Parameters, prng sampling.PRNG) *KeyGenerator {

	boundedSampler, err := ring.NewBoundedSampler(prng, params.RingQ(), params.ErrorBound())
	if err != nil {
		// Sanity check, this error should not happen (the parameters are
		// validated at creation).
		panic(fmt.Errorf("newKeyGenerator: %w", err))
	}

	return &KeyGenerator{
		params:         params,
		uniformSampler: ring.NewUniformSampler(prng, params.RingQ()),
		boundedSampler: boundedSampler,
	}
}

// WithPRNG returns a [KeyGenerator] over the same parameters that samples
// from the given PRNG. With a [sampling.KeyedPRNG], generation becomes
// deterministic and replayable.
func (kgen *KeyGenerator) WithPRNG(prng sampling.PRNG) *KeyGenerator {
	return newKeyGenerator(kgen.params, prng)
}

// ShallowCopy creates a copy of the receiver sampling from a fresh system
// PRNG. The receiver and the returned [KeyGenerator] can be used
// concurrently.
func (kgen *KeyGenerator) ShallowCopy() *KeyGenerator {
	return NewKeyGenerator(kgen.params)
}

// GenSecretKeyNew generates a new [SecretKey] of dimension N with entries
// drawn from the symmetric noise distribution [-ErrorBound, ErrorBound].
func (kgen *KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	sk = NewSecretKey(kgen.params)
	kgen.boundedSampler.Read(sk.Value)
	return
}

// GenPublicKeyNew generates a new [PublicKey] for the given secret key: a
// uniform matrix A of shape M x N and B = A*s + e mod Q, with e a fresh
// noise vector of length M. The noise vector exists only within this call
// and is folded into B.
func (kgen *KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey) {

	params := kgen.params

	if len(sk.Value) != params.N() {
		panic(fmt.Errorf("cannot GenPublicKeyNew: secret key has dimension %d but parameters expect %d", len(sk.Value), params.N()))
	}

	pk = NewPublicKey(params)

	for i := range pk.A {
		kgen.uniformSampler.Read(pk.A[i])
	}

	params.RingQ().MulMatVec(pk.A, sk.Value, pk.B)
	kgen.boundedSampler.ReadAndAdd(pk.B)

	return
}

// GenKeyPairNew generates a new [SecretKey] and matching [PublicKey],
// returned as a [KeyPair].
func (kgen *KeyGenerator) GenKeyPairNew() KeyPair {
	sk := kgen.GenSecretKeyNew()
	return KeyPair{
		Public: kgen.GenPublicKeyNew(sk),
		Secret: sk,
	}
}

// GenKeyPairAsync starts key generation in a background goroutine and
// returns a channel that delivers the [KeyPair] once, when ready. The
// channel is buffered so a caller that abandons the result leaks nothing.
// There is no cancellation: the work either completes or its result is
// discarded with the channel. The receiver must not be used for other
// operations until the channel has delivered.
func (kgen *KeyGenerator) GenKeyPairAsync() <-chan KeyPair {
	ch := make(chan KeyPair, 1)
	go func() {
		ch <- kgen.GenKeyPairNew()
		close(ch)
	}()
	return ch
}
