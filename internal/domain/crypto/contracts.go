package crypto

import (
	"math/big"

	"textbook_rsa_service/internal/domain/keys"
)

// Arithmetic is the arbitrary-precision integer capability set the RSA core is
// implemented against. The default backend delegates to math/big with
// crypto/rand entropy; alternate big-integer back-ends may satisfy this
// interface instead. Implementations must be safe for concurrent use.
type Arithmetic interface {
	// Add returns a + b as a new integer.
	Add(a, b *big.Int) *big.Int

	// Sub returns a - b as a new integer.
	Sub(a, b *big.Int) *big.Int

	// Mul returns a * b as a new integer.
	Mul(a, b *big.Int) *big.Int

	// GCD returns the greatest common divisor of a and b.
	GCD(a, b *big.Int) *big.Int

	// LCM returns the least common multiple of a and b.
	LCM(a, b *big.Int) *big.Int

	// ModInverse returns the multiplicative inverse of a modulo m,
	// or nil if a is not invertible modulo m.
	ModInverse(a, m *big.Int) *big.Int

	// ModPow returns base^exp mod modulus computed by repeated squaring under
	// the modulus. The full unreduced power is never materialized.
	ModPow(base, exp, modulus *big.Int) *big.Int

	// IsPrime reports whether n is prime with negligible error probability.
	IsPrime(n *big.Int) bool

	// NextPrime returns the smallest prime greater than or equal to n.
	NextPrime(n *big.Int) *big.Int

	// RandomBelow returns a uniformly distributed integer in [0, bound).
	// It returns an error if the entropy source fails or bound is not positive.
	RandomBelow(bound *big.Int) (*big.Int, error)
}

// PrimeSampler produces prime factors for RSA moduli.
type PrimeSampler interface {
	// SamplePrime returns a prime p with
	// sqrt(2)*2^(nlen/2-1) <= p <= 2^(nlen/2)-1, where nlen is the target
	// modulus bit-length. Each factor of the modulus gets half of nlen.
	// It returns ErrInvalidParameter when nlen is below MinModulusBits.
	SamplePrime(nlen uint) (*big.Int, error)
}

// RSAProcessor handles textbook RSA key generation and the raw
// encrypt/decrypt transforms. No padding scheme is applied; messages and
// ciphertexts are integers and must already satisfy 0 <= m < n, which the
// transforms intentionally do not validate.
type RSAProcessor interface {
	// GenerateKeys samples two distinct primes for the given modulus
	// bit-length and derives the keypair with the fixed public exponent
	// DefaultPublicExponent. nlen should be even; odd values are split via
	// integer halving. It returns ErrInvalidParameter for unusable nlen and
	// ErrKeyConstruction when no keypair could be derived.
	GenerateKeys(nlen uint) (*keys.PublicKey, *keys.PrivateKey, error)

	// BuildKeyPair derives a keypair from the given primes and public
	// exponent: n = p*q, t = lcm(p-1, q-1), d = e^-1 mod t. It returns
	// ErrKeyConstruction when p equals q or gcd(e, t) != 1.
	BuildKeyPair(p, q, e *big.Int) (*keys.PublicKey, *keys.PrivateKey, error)

	// Encrypt computes the ciphertext m^e mod n with the public key.
	Encrypt(m *big.Int, publicKey *keys.PublicKey) (*big.Int, error)

	// Decrypt computes the message c^d mod n with the private key.
	Decrypt(c *big.Int, privateKey *keys.PrivateKey) (*big.Int, error)
}
