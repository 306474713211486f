package lwe

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/Whosayin7/lwe/ring"
)

// transportBlock and transportBody mirror the wire structure with signed
// fields, so decoding tolerates negative or oversized integers from foreign
// producers; values are canonicalized mod Q on arrival.
type transportBlock struct {
	U []int64 `json:"u"`
	V int64   `json:"v"`
}

type transportBody struct {
	Blocks *[]transportBlock `json:"blocks"`
	Meta   Metadata          `json:"meta"`
}

// MarshalTransport serializes the ciphertext to its transport string: the
// block sequence and metadata as JSON, encoded as a standard base64 string
// with padding. This format is the compatibility surface; two
// implementations agreeing on it can exchange ciphertexts.
func (ct *Ciphertext) MarshalTransport() (string, error) {

	data, err := json.Marshal(ct)
	if err != nil {
		return "", fmt.Errorf("cannot MarshalTransport: %w", err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// UnmarshalTransport decodes a transport string into a [Ciphertext] with
// canonical values, validating the structure against params: the blocks
// field must be present (an array, possibly empty) and every block's u must
// have length N. Any failure is reported as a [DecodeError]; no partially
// decoded ciphertext is returned.
func UnmarshalTransport(params Parameters, s string) (ct *Ciphertext, err error) {

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, newDecodeError(StageBase64, err)
	}

	var body transportBody
	if err = json.Unmarshal(data, &body); err != nil {
		return nil, newDecodeError(StageJSON, err)
	}

	if body.Blocks == nil {
		return nil, newDecodeError(StageStructure, fmt.Errorf("missing blocks"))
	}

	blocks := *body.Blocks
	ringQ := params.RingQ()

	ct = &Ciphertext{
		Blocks: make([]Block, len(blocks)),
		Meta:   body.Meta,
	}

	for i := range blocks {

		if len(blocks[i].U) != params.N() {
			return nil, newDecodeError(StageStructure, fmt.Errorf("block %d: u has length %d but parameters expect %d", i, len(blocks[i].U), params.N()))
		}

		u := ring.NewVector(params.N())
		for j, x := range blocks[i].U {
			u[j] = ringQ.Reduce(x)
		}

		ct.Blocks[i] = Block{U: u, V: ringQ.Reduce(blocks[i].V)}
	}

	return ct, nil
}
