package lwe

import (
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/Whosayin7/lwe/ring"
	"github.com/Whosayin7/lwe/utils"
	"github.com/Whosayin7/lwe/utils/bignum"
)

// Noise returns the centered residual of each block of ct with respect to the
// cluster center selected by the threshold rule, under the key of dec. For a
// ciphertext produced with a matching key pair, the residual of a block is the
// accumulated error of that block, i.e. the subset sum of the public key error
// terms selected by the binary vector of the block.
func Noise(ct *Ciphertext, dec *Decryptor) (residuals []int64) {

	delta := int64(dec.params.Delta())

	residuals = make([]int64, len(ct.Blocks))
	for i := range ct.Blocks {
		block := &ct.Blocks[i]
		residuals[i] = dec.phase(block)
		if dec.decryptBlock(block) == 1 {
			residuals[i] -= delta
		}
	}

	return
}

// NoisePublicKey returns the centered error vector e = B - A*s of pk with
// respect to sk. Entries of a key pair produced by
// [KeyGenerator.GenKeyPairNew] lie within [-ErrorBound, ErrorBound].
func NoisePublicKey(pk *PublicKey, sk *SecretKey, params Parameters) (e []int64) {

	ringQ := params.RingQ()
	q := params.Q()

	e = make([]int64, len(pk.B))
	for i := range pk.B {
		as := ringQ.DotProduct(pk.A[i], sk.Value)
		e[i] = ringQ.CenterLift(ring.CRed(pk.B[i]+q-as, q))
	}

	return
}

// NoiseReport summarizes the block residuals of a ciphertext.
type NoiseReport struct {
	Samples int     // number of blocks measured
	Mean    float64 // sample mean of the residuals
	Median  float64
	StdDev  float64 // population standard deviation
	Min     int64
	Max     int64
	MaxAbs  int64  // worst observed distance to a cluster center
	Margin  uint64 // decision margin floor(Q/4) of the measured parameters
}

// NoiseStats measures ct under the key of dec and returns a [NoiseReport] of
// its block residuals. The report of a ciphertext without blocks carries zero
// samples and zero statistics.
func NoiseStats(ct *Ciphertext, dec *Decryptor) (report NoiseReport) {

	report.Margin = dec.params.Margin()

	residuals := Noise(ct, dec)
	if len(residuals) == 0 {
		return
	}

	values := make([]float64, len(residuals))
	report.Min = residuals[0]
	report.Max = residuals[0]
	for i, r := range residuals {
		values[i] = float64(r)
		report.Min = utils.Min(report.Min, r)
		report.Max = utils.Max(report.Max, r)
		report.MaxAbs = utils.Max(report.MaxAbs, utils.Abs(r))
	}

	report.Samples = len(residuals)
	report.Mean, _ = stats.Mean(values)
	report.Median, _ = stats.Median(values)
	report.StdDev, _ = stats.StandardDeviation(values)

	return
}

// DecryptionFailureBound returns an upper bound on the probability that the
// threshold rule misclassifies a single block of a ciphertext produced with
// an honestly generated key pair, computed with prec bits of precision.
//
// Each of the M terms of the accumulated error has zero mean and lies in
// [-ErrorBound, ErrorBound], so by Hoeffding's inequality
//
//	P[|error| >= floor(Q/4)] <= 2*exp(-2*floor(Q/4)^2/(M*(2*ErrorBound)^2)).
//
// When ErrorBound*M < floor(Q/4) the accumulated error cannot reach the
// margin and the returned bound is exactly zero.
func DecryptionFailureBound(params Parameters, prec uint) *big.Float {

	if params.MaxNoise() < params.Margin() {
		return bignum.NewFloat(0, prec)
	}

	margin := bignum.NewFloat(params.Margin(), prec)
	width := bignum.NewFloat(2*params.ErrorBound(), prec)

	num := new(big.Float).Mul(margin, margin)
	num.Mul(num, bignum.NewFloat(-2, prec))

	den := new(big.Float).Mul(width, width)
	den.Mul(den, bignum.NewFloat(params.M(), prec))

	bound := bignum.Exp(num.Quo(num, den))

	return bound.Mul(bound, bignum.NewFloat(2, prec))
}
