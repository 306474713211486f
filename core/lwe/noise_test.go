package lwe

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Whosayin7/lwe/utils"
)

func testNoise(tc *TestContext, t *testing.T) {

	params := tc.params

	t.Run(testString(params, "Noise/Residuals"), func(t *testing.T) {

		msg := "nois"
		ct := tc.enc.EncryptNew(msg)

		residuals := Noise(ct, tc.dec)
		require.Len(t, residuals, 8*len(msg))

		maxNoise := int64(params.MaxNoise())
		for _, r := range residuals {
			require.LessOrEqual(t, utils.Abs(r), maxNoise)
		}

		if params.ErrorBound() == 0 {
			for _, r := range residuals {
				require.Zero(t, r)
			}
		}
	})

	// Reconstructing B from the extracted error vector must give back the
	// public key exactly.
	t.Run(testString(params, "Noise/NoisePublicKey"), func(t *testing.T) {

		ringQ := params.RingQ()

		e := NoisePublicKey(tc.pk, tc.sk, params)
		require.Len(t, e, params.M())

		for i := range e {
			as := ringQ.DotProduct(tc.pk.A[i], tc.sk.Value)
			require.Equal(t, tc.pk.B[i], ringQ.Reduce(int64(as)+e[i]))
		}
	})

	t.Run(testString(params, "Noise/NoiseStats"), func(t *testing.T) {

		ct := tc.enc.EncryptNew("statistics")
		report := NoiseStats(ct, tc.dec)

		require.Equal(t, ct.BitCount(), report.Samples)
		require.Equal(t, params.Margin(), report.Margin)
		require.LessOrEqual(t, report.Min, report.Max)
		require.LessOrEqual(t, report.Mean, float64(report.Max))
		require.GreaterOrEqual(t, report.Mean, float64(report.Min))
		require.GreaterOrEqual(t, report.StdDev, 0.0)
		require.Equal(t, utils.Max(utils.Abs(report.Min), utils.Abs(report.Max)), report.MaxAbs)
		require.LessOrEqual(t, report.MaxAbs, int64(params.MaxNoise()))

		empty := NoiseStats(NewCiphertext(params, 0), tc.dec)
		require.Zero(t, empty.Samples)
		require.Zero(t, empty.MaxAbs)
		require.Equal(t, params.Margin(), empty.Margin)
	})

	// All test parameter sets satisfy ErrorBound*M < floor(Q/4), so their
	// failure bound is exactly zero.
	t.Run(testString(params, "Noise/DecryptionFailureBound"), func(t *testing.T) {
		require.Zero(t, DecryptionFailureBound(params, 128).Sign())
	})
}

func TestDecryptionFailureBound(t *testing.T) {

	// ErrorBound*M = 192 >= floor(Q/4) = 64: failures are possible and the
	// Hoeffding bound is 2*exp(-2*64^2/(64*6^2)).
	params, err := NewParametersFromLiteral(ParametersLiteral{N: 8, M: 64, Q: 257, ErrorBound: 3})
	require.NoError(t, err)

	bound := DecryptionFailureBound(params, 128)
	require.Positive(t, bound.Sign())
	require.Negative(t, bound.Cmp(big.NewFloat(1)))

	got, _ := bound.Float64()
	want := 2 * math.Exp(-2*64.0*64.0/(64.0*36.0))
	require.InDelta(t, want, got, 1e-12)

	// the bound degrades as more error terms accumulate
	wider, err := NewParametersFromLiteral(ParametersLiteral{N: 8, M: 128, Q: 257, ErrorBound: 3})
	require.NoError(t, err)
	require.Negative(t, bound.Cmp(DecryptionFailureBound(wider, 128)))
}
