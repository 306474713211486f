package lwe

import (
	"bytes"
	"encoding/binary"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"

	"github.com/Whosayin7/lwe/ring"
)

// FingerprintSize is the byte length of a public-key fingerprint.
const FingerprintSize = 32

// SecretKey is a type for LWE secret keys. Its entries are the canonical
// representatives of symmetric small errors in [-ErrorBound, ErrorBound].
type SecretKey struct {
	Value ring.Vector
}

// NewSecretKey generates a new [SecretKey] with zero values.
func NewSecretKey(params Parameters) *SecretKey {
	return &SecretKey{Value: ring.NewVector(params.N())}
}

// CopyNew returns a copy of the secret key.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{Value: sk.Value.CopyNew()}
}

// Equal checks two SecretKey structs for equality.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return cmp.Equal(sk.Value, other.Value)
}

// PublicKey is a type for LWE public keys, storing the uniform sample matrix
// A (M x N) and the noisy combination B = A*s + e mod Q.
type PublicKey struct {
	A ring.Matrix
	B ring.Vector
}

// NewPublicKey returns a new [PublicKey] with zero values.
func NewPublicKey(params Parameters) (pk *PublicKey) {
	return &PublicKey{
		A: ring.NewMatrix(params.M(), params.N()),
		B: ring.NewVector(params.M()),
	}
}

// CopyNew returns a copy of the public key.
func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{A: pk.A.CopyNew(), B: pk.B.CopyNew()}
}

// Equal checks two PublicKey structs for equality.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return cmp.Equal(pk.A, other.A) && cmp.Equal(pk.B, other.B)
}

// Fingerprint returns a [FingerprintSize]-byte blake3 digest of the public
// key, including its dimensions. It identifies a key across processes, e.g.
// in logs or a key-selection UI.
func (pk *PublicKey) Fingerprint() []byte {
	hasher := blake3.New()
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.BigEndian, int64(pk.A.Rows()))
	binary.Write(buf, binary.BigEndian, int64(pk.A.Cols()))
	for _, row := range pk.A {
		binary.Write(buf, binary.BigEndian, []uint64(row))
	}
	binary.Write(buf, binary.BigEndian, []uint64(pk.B))

	hasher.Write(buf.Bytes())

	return hasher.Sum(nil)[:FingerprintSize]
}

// KeyPair bundles the public and secret halves of a freshly generated key.
// The secret half must never leave the owning process; only the public half
// is shared with encrypting parties.
type KeyPair struct {
	Public *PublicKey
	Secret *SecretKey
}
