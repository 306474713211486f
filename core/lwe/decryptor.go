package lwe

import (
	"fmt"
	"unicode/utf8"

	"github.com/Whosayin7/lwe/ring"
	"github.com/Whosayin7/lwe/utils"
)

// Decryptor is a structure used to decrypt ciphertexts. It stores the
// secret key.
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor instantiates a new [Decryptor] for the given secret key.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	if len(sk.Value) != params.N() {
		panic(fmt.Errorf("cannot NewDecryptor: secret key has dimension %d but parameters expect %d", len(sk.Value), params.N()))
	}

	return &Decryptor{
		params: params,
		sk:     sk,
	}
}

// ShallowCopy creates a shallow copy of the receiver in which all the
// read-only data-structures are shared. The receiver and the returned
// [Decryptor] can be used concurrently.
func (d *Decryptor) ShallowCopy() *Decryptor {
	return &Decryptor{
		params: d.params,
		sk:     d.sk,
	}
}

// WithKey creates a shallow copy of the receiver with a new decryption key.
// The receiver and the returned [Decryptor] can be used concurrently.
func (d *Decryptor) WithKey(sk *SecretKey) *Decryptor {
	return NewDecryptor(d.params, sk)
}

// DecryptTransport decodes a transport string and decrypts it, returning
// the recovered plaintext. It fails with a [DecodeError] if the string is
// not valid ciphertext for this codec or if the reassembled bytes are not
// valid UTF-8. No partial plaintext is ever returned alongside an error.
func (d *Decryptor) DecryptTransport(s string) (msg string, err error) {

	ct, err := UnmarshalTransport(d.params, s)
	if err != nil {
		return "", err
	}

	return d.DecryptNew(ct)
}

// DecryptNew decrypts ct block by block and reassembles the plaintext, 8
// bits per byte with the most-significant bit first, zero-padding an
// incomplete trailing group. It fails with a [DecodeError] if the
// reassembled bytes are not valid UTF-8.
func (d *Decryptor) DecryptNew(ct *Ciphertext) (msg string, err error) {

	bits := make([]uint8, len(ct.Blocks))
	for i := range ct.Blocks {
		bits[i] = d.decryptBlock(&ct.Blocks[i])
	}

	data := BitsToBytes(bits)

	if !utf8.Valid(data) {
		return "", newDecodeError(StageUTF8, fmt.Errorf("reassembled bytes are not valid UTF-8"))
	}

	return string(data), nil
}

// decryptBlock recovers one bit with the noise-tolerant threshold rule.
// True values cluster near 0 (bit 0) or near floor(Q/2) (bit 1); the
// quarter-modulus margin absorbs the injected error. A value outside both
// clusters is classified by the rule as-is.
func (d *Decryptor) decryptBlock(block *Block) uint8 {

	if utils.Abs(d.phase(block)-int64(d.params.Delta())) < int64(d.params.Margin()) {
		return 1
	}

	return 0
}

// phase computes v - <s, u> mod Q and centers it on the representative
// range (-floor(Q/4), Q - floor(Q/4)], which keeps both bit clusters
// contiguous for the threshold rule.
func (d *Decryptor) phase(block *Block) int64 {

	params := d.params
	q := params.Q()

	sTu := params.RingQ().DotProduct(d.sk.Value, block.U)
	dec := int64(ring.CRed(block.V+q-sTu, q))

	// Values above Q - floor(Q/4) wrap back below zero
	if dec > int64(params.WrapThreshold()) {
		dec -= int64(q)
	}

	return dec
}
