package lwe

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func testCodec(tc *TestContext, t *testing.T) {

	params := tc.params

	// The wire layout is the compatibility surface: exactly the keys
	// {blocks, meta}, blocks entries exactly {u, v}, meta exactly
	// {timestamp, algorithm}.
	t.Run(testString(params, "Codec/Transport/Structure"), func(t *testing.T) {

		s, _, err := tc.enc.EncryptTransport("@")
		require.NoError(t, err)

		data, err := base64.StdEncoding.DecodeString(s)
		require.NoError(t, err)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &body))
		require.Len(t, body, 2)
		require.Contains(t, body, "blocks")
		require.Contains(t, body, "meta")

		var blocks []map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body["blocks"], &blocks))
		require.Len(t, blocks, 8)
		for _, block := range blocks {
			require.Len(t, block, 2)
			require.Contains(t, block, "u")
			require.Contains(t, block, "v")
		}

		var meta map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body["meta"], &meta))
		require.Len(t, meta, 2)
		require.Contains(t, meta, "timestamp")
		require.Contains(t, meta, "algorithm")
		require.Equal(t, fmt.Sprintf("%q", AlgorithmName), string(meta["algorithm"]))
	})

	// Nothing derived from the secret key may reach the wire.
	t.Run(testString(params, "Codec/Transport/KeyIsolation"), func(t *testing.T) {

		s, _, err := tc.enc.EncryptTransport("key isolation")
		require.NoError(t, err)

		data, err := base64.StdEncoding.DecodeString(s)
		require.NoError(t, err)

		skJSON, err := json.Marshal(tc.sk.Value)
		require.NoError(t, err)
		require.NotContains(t, string(data), string(skJSON))
	})

	t.Run(testString(params, "Codec/Transport/RoundTrip"), func(t *testing.T) {

		ct := tc.enc.EncryptNew("transport round trip")

		s, err := ct.MarshalTransport()
		require.NoError(t, err)

		decoded, err := UnmarshalTransport(params, s)
		require.NoError(t, err)
		require.True(t, ct.Equal(decoded))
	})

	t.Run(testString(params, "Codec/Transport/EncryptDecrypt"), func(t *testing.T) {

		msg := "boundary api"
		s, traces, err := tc.enc.EncryptTransport(msg)
		require.NoError(t, err)
		require.Len(t, traces, 8*len(msg))

		dec, err := tc.dec.DecryptTransport(s)
		require.NoError(t, err)
		require.Equal(t, msg, dec)
	})

	// Foreign producers may emit negative or oversized integers; they are
	// accepted and reduced mod Q.
	t.Run(testString(params, "Codec/Transport/Canonicalization"), func(t *testing.T) {

		u := make([]int64, params.N())
		u[0] = -1

		uJSON, err := json.Marshal(u)
		require.NoError(t, err)

		body := fmt.Sprintf(`{"blocks":[{"u":%s,"v":%d}],"meta":{"timestamp":1,"algorithm":%q}}`,
			uJSON, params.Q()+5, AlgorithmName)

		ct, err := UnmarshalTransport(params, b64(body))
		require.NoError(t, err)
		require.Len(t, ct.Blocks, 1)
		require.Equal(t, params.Q()-1, ct.Blocks[0].U[0])
		require.Equal(t, uint64(5), ct.Blocks[0].V)
	})

	// Metadata is carried but not validated, for compatibility with foreign
	// producers that tag differently or omit it.
	t.Run(testString(params, "Codec/Transport/ForeignMeta"), func(t *testing.T) {

		ct, err := UnmarshalTransport(params, b64(`{"blocks":[]}`))
		require.NoError(t, err)
		require.Zero(t, ct.Meta.Timestamp)
		require.Empty(t, ct.Meta.Algorithm)

		ct, err = UnmarshalTransport(params, b64(`{"blocks":[],"meta":{"timestamp":-3,"algorithm":"OTHER","extra":true}}`))
		require.NoError(t, err)
		require.Equal(t, int64(-3), ct.Meta.Timestamp)
		require.Equal(t, "OTHER", ct.Meta.Algorithm)
	})

	t.Run(testString(params, "Codec/Transport/EmptyMessage"), func(t *testing.T) {

		s, traces, err := tc.enc.EncryptTransport("")
		require.NoError(t, err)
		require.Empty(t, traces)

		data, err := base64.StdEncoding.DecodeString(s)
		require.NoError(t, err)
		require.Contains(t, string(data), `"blocks":[]`)

		msg, err := tc.dec.DecryptTransport(s)
		require.NoError(t, err)
		require.Equal(t, "", msg)
	})

	// A block count that is not a multiple of 8 zero-pads the trailing
	// group of bits.
	t.Run(testString(params, "Codec/Transport/PartialByte"), func(t *testing.T) {

		blocks := make([]transportBlock, 4)
		for i, bit := range []int64{0, 1, 0, 0} {
			blocks[i] = transportBlock{U: make([]int64, params.N()), V: bit * int64(params.Delta())}
		}

		body, err := json.Marshal(transportBody{Blocks: &blocks})
		require.NoError(t, err)

		dec := NewDecryptor(params, NewSecretKey(params))
		msg, err := dec.DecryptTransport(b64(string(body)))
		require.NoError(t, err)
		require.Equal(t, "@", msg)
	})

	t.Run(testString(params, "Codec/Transport/Malformed"), func(t *testing.T) {

		shortU, err := json.Marshal(make([]int64, params.N()+1))
		require.NoError(t, err)

		for _, tcase := range []struct {
			name  string
			s     string
			stage string
		}{
			{"NotBase64", "###not base64###", StageBase64},
			{"NotJSON", b64("this is not json"), StageJSON},
			{"EmptyObject", b64(`{}`), StageStructure},
			{"NullBlocks", b64(`{"blocks":null}`), StageStructure},
			{"BlocksNotArray", b64(`{"blocks":"x"}`), StageJSON},
			{"UNotArray", b64(`{"blocks":[{"u":5,"v":0}]}`), StageJSON},
			{"ULengthMismatch", b64(fmt.Sprintf(`{"blocks":[{"u":%s,"v":0}]}`, shortU)), StageStructure},
			{"VNotInteger", b64(`{"blocks":[{"u":[],"v":1.5}]}`), StageJSON},
		} {
			t.Run(tcase.name, func(t *testing.T) {

				_, err := UnmarshalTransport(params, tcase.s)
				require.Error(t, err)
				require.ErrorIs(t, err, ErrDecode)

				var decodeErr *DecodeError
				require.ErrorAs(t, err, &decodeErr)
				require.Equal(t, tcase.stage, decodeErr.Stage)

				_, err = tc.dec.DecryptTransport(tcase.s)
				require.ErrorIs(t, err, ErrDecode)
			})
		}
	})
}
