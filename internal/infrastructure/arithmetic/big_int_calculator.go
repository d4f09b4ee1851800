// Package arithmetic provides the math/big backed implementation of the
// arbitrary-precision arithmetic capability set the RSA core is built against.
package arithmetic

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"textbook_rsa_service/internal/domain/crypto"
)

// millerRabinRounds is the number of Miller-Rabin rounds for primality tests.
// math/big additionally always runs a Baillie-PSW test, so the combined error
// probability is negligible for randomly chosen candidates.
const millerRabinRounds = 20

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// bigIntCalculator implements the crypto.Arithmetic interface on top of
// math/big, drawing entropy from a cryptographically secure source.
type bigIntCalculator struct {
	entropy io.Reader
}

// NewBigIntCalculator creates a new math/big backed Arithmetic instance
// seeded from the operating system's entropy source.
func NewBigIntCalculator() crypto.Arithmetic {
	return &bigIntCalculator{
		entropy: rand.Reader,
	}
}

// Add returns a + b as a new integer.
func (c *bigIntCalculator) Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// Sub returns a - b as a new integer.
func (c *bigIntCalculator) Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

// Mul returns a * b as a new integer.
func (c *bigIntCalculator) Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// GCD returns the greatest common divisor of a and b.
func (c *bigIntCalculator) GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// LCM returns the least common multiple of a and b, computed as
// |a*b| / gcd(a, b). LCM(0, 0) is 0.
func (c *bigIntCalculator) LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 && b.Sign() == 0 {
		return new(big.Int)
	}
	product := new(big.Int).Mul(a, b)
	product.Abs(product)
	return product.Div(product, c.GCD(a, b))
}

// ModInverse returns the multiplicative inverse of a modulo m, or nil if a is
// not invertible modulo m.
func (c *bigIntCalculator) ModInverse(a, m *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, m)
}

// ModPow returns base^exp mod modulus via repeated squaring under the
// modulus. The full unreduced power is never materialized.
func (c *bigIntCalculator) ModPow(base, exp, modulus *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, modulus)
}

// IsPrime reports whether n is prime with negligible error probability.
func (c *bigIntCalculator) IsPrime(n *big.Int) bool {
	return n.ProbablyPrime(millerRabinRounds)
}

// NextPrime returns the smallest prime greater than or equal to n.
func (c *bigIntCalculator) NextPrime(n *big.Int) *big.Int {
	candidate := new(big.Int).Set(n)
	if candidate.Cmp(two) <= 0 {
		return two
	}
	// Primes beyond 2 are odd; advance to the next odd candidate and step by 2.
	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, one)
	}
	for !c.IsPrime(candidate) {
		candidate.Add(candidate, two)
	}
	return candidate
}

// RandomBelow returns a uniformly distributed integer in [0, bound).
func (c *bigIntCalculator) RandomBelow(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, errors.New("random bound must be positive")
	}
	value, err := rand.Int(c.entropy, bound)
	if err != nil {
		return nil, err
	}
	return value, nil
}
