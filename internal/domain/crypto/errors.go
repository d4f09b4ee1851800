package crypto

import "errors"

// Sentinel errors for key generation failures. They follow Go 1.13+ error
// wrapping conventions and can be checked with errors.Is() after being
// wrapped with fmt.Errorf("...: %w", err) by the implementations.
var (
	// ErrInvalidParameter indicates a security-strength parameter that cannot be
	// honored, e.g. a modulus bit-length too small to admit the required
	// bit-length split. Detected before any sampling begins.
	ErrInvalidParameter = errors.New("rsa: invalid key generation parameter")

	// ErrKeyConstruction indicates the public exponent is not invertible modulo
	// the totient of the sampled primes (gcd(e, t) != 1). The RSA precondition
	// is violated and no usable private exponent exists; callers may recover by
	// regenerating with fresh primes.
	ErrKeyConstruction = errors.New("rsa: key construction failed, public exponent not invertible")
)
