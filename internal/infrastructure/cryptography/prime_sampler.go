package cryptography

import (
	"fmt"
	"math/big"

	"textbook_rsa_service/internal/domain/crypto"
	"textbook_rsa_service/internal/pkg/logger"
)

// maxSampleAttempts bounds the redraws performed when the next prime at or
// above a random candidate overshoots the upper interval bound. Overshoot is
// only realistic for toy bit-lengths where the interval holds few primes.
const maxSampleAttempts = 100

// boundedPrimeSampler implements the crypto.PrimeSampler interface. It draws
// uniform candidates inside the standardized prime interval and advances to
// the next prime, redrawing whenever that advance leaves the interval.
type boundedPrimeSampler struct {
	arith  crypto.Arithmetic
	logger logger.Logger
}

// NewBoundedPrimeSampler creates and returns a new instance of boundedPrimeSampler
func NewBoundedPrimeSampler(arith crypto.Arithmetic, logger logger.Logger) (crypto.PrimeSampler, error) {
	if arith == nil {
		return nil, fmt.Errorf("arithmetic backend cannot be nil")
	}
	return &boundedPrimeSampler{
		arith:  arith,
		logger: logger,
	}, nil
}

// SamplePrime returns a prime p with sqrt(2)*2^(nlen/2-1) <= p <= 2^(nlen/2)-1.
// The selection is biased toward primes following dense random points, the
// accepted trade-off for a tractable prime search at real key sizes.
func (s *boundedPrimeSampler) SamplePrime(nlen uint) (*big.Int, error) {
	if nlen < crypto.MinModulusBits {
		return nil, fmt.Errorf("modulus bit-length %d is below the minimum of %d bits: %w",
			nlen, crypto.MinModulusBits, crypto.ErrInvalidParameter)
	}

	lower, upper := primeBounds(nlen)

	// One more than the distance between the bounds, so candidates cover the
	// closed interval [lower, upper].
	span := s.arith.Add(s.arith.Sub(upper, lower), big.NewInt(1))

	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		offset, err := s.arith.RandomBelow(span)
		if err != nil {
			return nil, fmt.Errorf("failed to draw prime candidate: %w", err)
		}

		candidate := s.arith.Add(lower, offset)
		prime := s.arith.NextPrime(candidate)
		if prime.Cmp(upper) <= 0 {
			return prime, nil
		}
		// The advance to the next prime left the interval; redraw instead of
		// returning an out-of-bound factor.
	}

	return nil, fmt.Errorf("no prime found in [%s, %s] after %d attempts: %w",
		lower, upper, maxSampleAttempts, crypto.ErrKeyConstruction)
}

// primeBounds computes the closed prime interval for the given modulus
// bit-length: [round(sqrt(2)*2^(nlen/2-1)), 2^(nlen/2)-1]. The lower bound is
// evaluated at a floating-point precision of at least nlen bits and rounded to
// the nearest integer, so truncation cannot push it outside the standardized
// interval at large key sizes.
func primeBounds(nlen uint) (lower, upper *big.Int) {
	half := nlen / 2

	prec := nlen
	if prec < 64 {
		prec = 64
	}

	sqrt2 := new(big.Float).SetPrec(prec)
	sqrt2.Sqrt(new(big.Float).SetPrec(prec).SetInt64(2))

	scale := new(big.Int).Lsh(big.NewInt(1), half-1)
	bound := new(big.Float).SetPrec(prec).SetInt(scale)
	bound.Mul(bound, sqrt2)

	// Round to nearest by adding 1/2 before truncating.
	bound.Add(bound, big.NewFloat(0.5))
	lower, _ = bound.Int(nil)

	upper = new(big.Int).Lsh(big.NewInt(1), half)
	upper.Sub(upper, big.NewInt(1))

	return lower, upper
}
