package lwe

import (
	"fmt"

	"github.com/Whosayin7/lwe/ring"
	"github.com/Whosayin7/lwe/utils"
	"github.com/Whosayin7/lwe/utils/sampling"
)

// MaxTraceBits is the number of leading bits for which
// [Encryptor.EncryptNewWithTrace] records diagnostics.
const MaxTraceBits = 64

// BitTrace is a fixed-shape diagnostic record for one encrypted bit: the
// plaintext bit, the raw combination v = b.r before message encoding, and
// the emitted value (v + bit*floor(Q/2)) mod Q. Traces are observability
// only and play no role in decryption.
type BitTrace struct {
	Bit     uint8
	Raw     uint64
	Encoded uint64
}

// Encryptor is a structure holding a public key and the sampler used to
// encrypt messages. An Encryptor is not safe for concurrent use; see
// [Encryptor.ShallowCopy].
type Encryptor struct {
	params        Parameters
	pk            *PublicKey
	binarySampler *ring.BinarySampler
	buffR         ring.Vector
}

// NewEncryptor creates a new [Encryptor] from a public key, sampling from
// the system entropy source.
func NewEncryptor(params Parameters, pk *PublicKey) *Encryptor {

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return newEncryptor(params, pk, prng)
}

func newEncryptor(params Parameters, pk *PublicKey, prng sampling.PRNG) *Encryptor {

	if pk.A.Rows() != params.M() || pk.A.Cols() != params.N() || len(pk.B) != params.M() {
		panic(fmt.Errorf("cannot NewEncryptor: public key dimensions (A %dx%d, b %d) do not match parameters (M=%d, N=%d)",
			pk.A.Rows(), pk.A.Cols(), len(pk.B), params.M(), params.N()))
	}

	return &Encryptor{
		params:        params,
		pk:            pk,
		binarySampler: ring.NewBinarySampler(prng, params.RingQ()),
		buffR:         ring.NewVector(params.M()),
	}
}

// WithPRNG returns an [Encryptor] over the same key that samples from the
// given PRNG. With a [sampling.KeyedPRNG], encryption becomes deterministic
// and replayable.
func (enc *Encryptor) WithPRNG(prng sampling.PRNG) *Encryptor {
	return newEncryptor(enc.params, enc.pk, prng)
}

// WithKey returns an [Encryptor] over the given public key, sampling from a
// fresh system PRNG.
func (enc *Encryptor) WithKey(pk *PublicKey) *Encryptor {
	return NewEncryptor(enc.params, pk)
}

// ShallowCopy creates a copy of the receiver with fresh sampler state and a
// fresh system PRNG, sharing the public key. The receiver and the returned
// [Encryptor] can be used concurrently.
func (enc *Encryptor) ShallowCopy() *Encryptor {
	return NewEncryptor(enc.params, enc.pk)
}

// EncryptNew encrypts the UTF-8 string msg and returns a new [Ciphertext]
// holding one block per plaintext bit, most-significant bit first within
// each byte. An empty msg yields a valid ciphertext with zero blocks.
func (enc *Encryptor) EncryptNew(msg string) (ct *Ciphertext) {
	ct, _ = enc.encrypt(msg, false)
	return
}

// EncryptNewWithTrace encrypts msg like [Encryptor.EncryptNew] and also
// returns per-bit diagnostics for the first [MaxTraceBits] bits.
func (enc *Encryptor) EncryptNewWithTrace(msg string) (*Ciphertext, []BitTrace) {
	return enc.encrypt(msg, true)
}

// EncryptTransport encrypts msg and returns its transport string along with
// the per-bit diagnostics of the leading bits.
func (enc *Encryptor) EncryptTransport(msg string) (s string, traces []BitTrace, err error) {

	ct, traces := enc.encrypt(msg, true)

	if s, err = ct.MarshalTransport(); err != nil {
		return "", nil, err
	}

	return s, traces, nil
}

func (enc *Encryptor) encrypt(msg string, trace bool) (ct *Ciphertext, traces []BitTrace) {

	bits := BytesToBits([]byte(msg))

	ct = NewCiphertext(enc.params, len(bits))

	if trace {
		traces = make([]BitTrace, 0, utils.Min(len(bits), MaxTraceBits))
	}

	ringQ := enc.params.RingQ()
	q := ringQ.Modulus()
	delta := enc.params.Delta()

	for i, bit := range bits {

		block := &ct.Blocks[i]

		enc.binarySampler.Read(enc.buffR)
		ringQ.MulMatTVec(enc.pk.A, enc.buffR, block.U)

		v := ringQ.DotProduct(enc.pk.B, enc.buffR)
		block.V = ring.CRed(v+uint64(bit)*delta, q)

		if trace && i < MaxTraceBits {
			traces = append(traces, BitTrace{Bit: bit, Raw: v, Encoded: block.V})
		}
	}

	return
}
