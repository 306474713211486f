// Package lwe implements a toy Learning-With-Errors (Regev) public-key
// cryptosystem: key generation, bitwise encryption with noise injection and
// threshold-based decryption over the ring of integers modulo Q. Messages
// are encrypted one bit per ciphertext block; a quarter-modulus margin
// absorbs the injected noise at decryption.
package lwe

import (
	"encoding/json"
	"fmt"

	"github.com/Whosayin7/lwe/ring"
)

// MaxDimension is the largest value allowed for the dimensions N and M.
const MaxDimension = 1 << 20

// MinModulus is the smallest modulus for which the message encoding
// floor(Q/2) and the decision margin floor(Q/4) are meaningfully distinct.
const MinModulus = 16

// ParametersLiteral is a literal representation of LWE parameters. It has
// public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The [NewParametersFromLiteral] function is used
// to generate the actual checked parameters from the literal representation.
//
//   - N: dimension of the secret, and of the u component of each block.
//   - M: number of noisy samples forming the public key.
//   - Q: modulus of the ring.
//   - ErrorBound: bound of the symmetric noise distribution [-b, b].
type ParametersLiteral struct {
	N          int
	M          int
	Q          uint64
	ErrorBound int
}

// Parameters represents a parameter set for the LWE cryptosystem. Its fields
// are private and immutable. See [ParametersLiteral] for user-specified
// parameters. The same set must be shared by key generation, encryption and
// decryption for the outputs to be compatible.
type Parameters struct {
	n          int
	m          int
	q          uint64
	errorBound int
	ringQ      *ring.Ring
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a
// [ParametersLiteral] and checks their validity.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {

	if paramDef.N < 1 || paramDef.N > MaxDimension {
		return Parameters{}, fmt.Errorf("invalid parameters: N = %d must lie in [1, %d]", paramDef.N, MaxDimension)
	}

	if paramDef.M < 1 || paramDef.M > MaxDimension {
		return Parameters{}, fmt.Errorf("invalid parameters: M = %d must lie in [1, %d]", paramDef.M, MaxDimension)
	}

	if paramDef.Q < MinModulus {
		return Parameters{}, fmt.Errorf("invalid parameters: Q = %d < %d", paramDef.Q, MinModulus)
	}

	ringQ, err := ring.NewRing(paramDef.Q)
	if err != nil {
		return Parameters{}, fmt.Errorf("invalid parameters: %w", err)
	}

	if paramDef.ErrorBound < 0 {
		return Parameters{}, fmt.Errorf("invalid parameters: ErrorBound = %d < 0", paramDef.ErrorBound)
	}

	if span := 2*uint64(paramDef.ErrorBound) + 1; span > paramDef.Q {
		return Parameters{}, fmt.Errorf("invalid parameters: noise support size %d exceeds Q = %d", span, paramDef.Q)
	}

	return Parameters{
		n:          paramDef.N,
		m:          paramDef.M,
		q:          paramDef.Q,
		errorBound: paramDef.ErrorBound,
		ringQ:      ringQ,
	}, nil
}

// N returns the dimension of the secret vector.
func (p Parameters) N() int {
	return p.n
}

// M returns the number of noisy samples in the public key.
func (p Parameters) M() int {
	return p.m
}

// Q returns the ring modulus.
func (p Parameters) Q() uint64 {
	return p.q
}

// ErrorBound returns the bound of the symmetric noise distribution.
func (p Parameters) ErrorBound() int {
	return p.errorBound
}

// RingQ returns the underlying [ring.Ring].
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// Delta returns floor(Q/2), the encoding of a 1 bit.
func (p Parameters) Delta() uint64 {
	return p.q >> 1
}

// Margin returns floor(Q/4), the decision margin of the threshold decoder.
func (p Parameters) Margin() uint64 {
	return p.q >> 2
}

// WrapThreshold returns Q - floor(Q/4). Decrypted values above it are mapped
// back below zero before the threshold decision, handling wraparound near
// the modulus boundary.
func (p Parameters) WrapThreshold() uint64 {
	return p.q - p.q>>2
}

// MaxNoise returns ErrorBound * M, the largest noise magnitude a decrypted
// block can accumulate. Decryption is deterministic-correct whenever
// MaxNoise is below Margin.
func (p Parameters) MaxNoise() uint64 {
	return uint64(p.errorBound) * uint64(p.m)
}

// ParametersLiteral returns the [ParametersLiteral] of the receiver.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:          p.n,
		M:          p.m,
		Q:          p.q,
		ErrorBound: p.errorBound,
	}
}

// Equal checks two Parameter structs for equality.
func (p Parameters) Equal(other *Parameters) (res bool) {
	res = p.n == other.n
	res = res && (p.m == other.m)
	res = res && (p.q == other.q)
	res = res && (p.errorBound == other.errorBound)
	return
}

// MarshalJSON returns a JSON representation of this parameter set. See
// Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the
// receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
