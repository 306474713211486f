package lwe

import (
	"encoding/json"
	"testing"
)

const benchMessage = "The quick brown fox jumps over the lazy dog"

func BenchmarkLWE(b *testing.B) {

	var err error

	defaultParamsLiteral := testParametersLiteral

	if *flagParamString != "" {
		var jsonParams ParametersLiteral
		if err = json.Unmarshal([]byte(*flagParamString), &jsonParams); err != nil {
			b.Fatal(err)
		}
		defaultParamsLiteral = []ParametersLiteral{jsonParams} // the custom benchmark suite reads the parameters from the -params flag
	}

	for _, paramsLit := range defaultParamsLiteral[:] {

		var params Parameters
		if params, err = NewParametersFromLiteral(paramsLit); err != nil {
			b.Fatal(err)
		}

		tc := NewTestContext(params)

		for _, benchSet := range []func(tc *TestContext, b *testing.B){
			benchKeyGenerator,
			benchEncryptor,
			benchDecryptor,
			benchCodec,
		} {
			benchSet(tc, b)
		}
	}
}

func benchKeyGenerator(tc *TestContext, b *testing.B) {

	params := tc.params
	kgen := tc.kgen

	b.Run(testString(params, "KeyGenerator/GenSecretKey"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			kgen.GenSecretKeyNew()
		}
	})

	b.Run(testString(params, "KeyGenerator/GenKeyPair"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			kgen.GenKeyPairNew()
		}
	})
}

func benchEncryptor(tc *TestContext, b *testing.B) {

	params := tc.params

	b.Run(testString(params, "Encryptor/EncryptNew"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tc.enc.EncryptNew(benchMessage)
		}
	})
}

func benchDecryptor(tc *TestContext, b *testing.B) {

	params := tc.params

	b.Run(testString(params, "Decryptor/DecryptNew"), func(b *testing.B) {
		ct := tc.enc.EncryptNew(benchMessage)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := tc.dec.DecryptNew(ct); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func benchCodec(tc *TestContext, b *testing.B) {

	params := tc.params

	b.Run(testString(params, "Codec/MarshalTransport"), func(b *testing.B) {
		ct := tc.enc.EncryptNew(benchMessage)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := ct.MarshalTransport(); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString(params, "Codec/UnmarshalTransport"), func(b *testing.B) {
		s, err := tc.enc.EncryptNew(benchMessage).MarshalTransport()
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := UnmarshalTransport(params, s); err != nil {
				b.Fatal(err)
			}
		}
	})
}
