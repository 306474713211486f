package lwe

var (
	// ExampleParametersN128M256Q3329 is the reference parameter set: secret
	// dimension 128, 256 noisy samples, modulus 3329 and noise bound 3. The
	// worst-case accumulated noise (3*256 = 768) stays below the decision
	// margin floor(3329/4) = 832, so decryption always round-trips. These
	// parameters are for demonstration and offer no cryptographic security.
	ExampleParametersN128M256Q3329 = ParametersLiteral{
		N:          128,
		M:          256,
		Q:          3329,
		ErrorBound: 3,
	}
)
