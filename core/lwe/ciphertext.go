package lwe

import (
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Whosayin7/lwe/ring"
)

// AlgorithmName is the algorithm tag carried in ciphertext metadata.
const AlgorithmName = "LWE-Regev"

// Block is one unit of ciphertext, encoding exactly one plaintext bit as the
// pair u = A^T * r and v = b.r + bit*floor(Q/2) mod Q.
type Block struct {
	U ring.Vector `json:"u"`
	V uint64      `json:"v"`
}

// Metadata describes a ciphertext: the Unix-millisecond timestamp of its
// creation and the algorithm tag. It carries no key material.
type Metadata struct {
	Timestamp int64  `json:"timestamp"`
	Algorithm string `json:"algorithm"`
}

// Ciphertext is an ordered sequence of blocks plus metadata. Block order is
// the bit order of the original message, most-significant bit first within
// each byte. A Ciphertext is immutable once produced by encryption;
// decryption reads it only.
type Ciphertext struct {
	Blocks []Block  `json:"blocks"`
	Meta   Metadata `json:"meta"`
}

// NewCiphertext returns a new [Ciphertext] with numBlocks zero blocks of the
// dimension set by params, and freshly stamped metadata.
func NewCiphertext(params Parameters, numBlocks int) (ct *Ciphertext) {
	ct = &Ciphertext{
		Blocks: make([]Block, numBlocks),
		Meta:   newMetadata(),
	}
	for i := range ct.Blocks {
		ct.Blocks[i].U = ring.NewVector(params.N())
	}
	return
}

func newMetadata() Metadata {
	return Metadata{
		Timestamp: time.Now().UnixMilli(),
		Algorithm: AlgorithmName,
	}
}

// BitCount returns the number of blocks, i.e. the number of encrypted bits.
func (ct *Ciphertext) BitCount() int {
	return len(ct.Blocks)
}

// CopyNew returns a deep copy of the ciphertext.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	cpy := &Ciphertext{
		Blocks: make([]Block, len(ct.Blocks)),
		Meta:   ct.Meta,
	}
	for i := range ct.Blocks {
		cpy.Blocks[i] = Block{U: ct.Blocks[i].U.CopyNew(), V: ct.Blocks[i].V}
	}
	return cpy
}

// Equal performs a deep equal.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return cmp.Equal(ct.Blocks, other.Blocks) && ct.Meta == other.Meta
}
