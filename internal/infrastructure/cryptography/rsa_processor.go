package cryptography

import (
	"errors"
	"fmt"
	"math/big"

	"textbook_rsa_service/internal/domain/crypto"
	"textbook_rsa_service/internal/domain/keys"
	"textbook_rsa_service/internal/pkg/logger"
)

// maxKeyPairAttempts bounds the explicit regeneration retries performed when
// the sampled primes are unusable (equal, too close, or with a totient the
// public exponent does not divide into). At real key sizes a single attempt
// succeeds; the bound matters for deliberately tiny test parameters.
const maxKeyPairAttempts = 10

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	sampler crypto.PrimeSampler
	arith   crypto.Arithmetic
	logger  logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(sampler crypto.PrimeSampler, arith crypto.Arithmetic, logger logger.Logger) (crypto.RSAProcessor, error) {
	if sampler == nil {
		return nil, fmt.Errorf("prime sampler cannot be nil")
	}
	if arith == nil {
		return nil, fmt.Errorf("arithmetic backend cannot be nil")
	}
	return &rsaProcessor{
		sampler: sampler,
		arith:   arith,
		logger:  logger,
	}, nil
}

// GenerateKeys generates an RSA keypair with the specified modulus bit-length.
// Recommended sizes: 2048 (minimum), 3072, 4096 bits.
func (r *rsaProcessor) GenerateKeys(nlen uint) (*keys.PublicKey, *keys.PrivateKey, error) {
	if nlen < crypto.MinModulusBits {
		return nil, nil, fmt.Errorf("modulus bit-length %d is below the minimum of %d bits: %w",
			nlen, crypto.MinModulusBits, crypto.ErrInvalidParameter)
	}

	e := big.NewInt(crypto.DefaultPublicExponent)

	var lastErr error
	for attempt := 0; attempt < maxKeyPairAttempts; attempt++ {
		p, err := r.sampler.SamplePrime(nlen)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to sample first prime factor: %w", err)
		}
		q, err := r.sampler.SamplePrime(nlen)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to sample second prime factor: %w", err)
		}

		if !primesSeparated(p, q, nlen) {
			lastErr = fmt.Errorf("prime factors are too close for a %d-bit modulus: %w",
				nlen, crypto.ErrKeyConstruction)
			continue
		}

		publicKey, privateKey, err := r.BuildKeyPair(p, q, e)
		if err != nil {
			if errors.Is(err, crypto.ErrKeyConstruction) {
				lastErr = err
				continue
			}
			return nil, nil, err
		}

		r.logger.Info("Generated RSA keypair with a ", privateKey.N.BitLen(), "-bit modulus")
		return publicKey, privateKey, nil
	}

	return nil, nil, fmt.Errorf("no usable keypair after %d attempts: %w", maxKeyPairAttempts, lastErr)
}

// BuildKeyPair derives a keypair from the given primes and public exponent:
// n = p*q, t = lcm(p-1, q-1), d = e^-1 mod t. The primes are not retained in
// either key. A public exponent sharing a factor with the totient surfaces
// ErrKeyConstruction rather than a silently substituted exponent.
func (r *rsaProcessor) BuildKeyPair(p, q, e *big.Int) (*keys.PublicKey, *keys.PrivateKey, error) {
	if p == nil || q == nil || e == nil {
		return nil, nil, fmt.Errorf("prime factors and public exponent cannot be nil")
	}
	if p.Cmp(q) == 0 {
		return nil, nil, fmt.Errorf("prime factors must be distinct: %w", crypto.ErrKeyConstruction)
	}

	n := r.arith.Mul(p, q)

	one := big.NewInt(1)
	totient := r.arith.LCM(r.arith.Sub(p, one), r.arith.Sub(q, one))

	d := r.arith.ModInverse(e, totient)
	if d == nil {
		return nil, nil, fmt.Errorf("no modular inverse of e=%s modulo the totient: %w",
			e, crypto.ErrKeyConstruction)
	}

	// The private key owns its own copy of the modulus so both halves remain
	// independently usable.
	publicKey := &keys.PublicKey{E: new(big.Int).Set(e), N: n}
	privateKey := &keys.PrivateKey{D: d, N: new(big.Int).Set(n)}
	return publicKey, privateKey, nil
}

// Encrypt computes the ciphertext m^e mod n with the public key.
// NOTE: textbook RSA applies no padding; the caller must keep 0 <= m < n or
// the message cannot be uniquely recovered.
func (r *rsaProcessor) Encrypt(m *big.Int, publicKey *keys.PublicKey) (*big.Int, error) {
	if m == nil {
		return nil, fmt.Errorf("message cannot be nil")
	}
	if publicKey == nil || publicKey.E == nil || publicKey.N == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}
	return r.arith.ModPow(m, publicKey.E, publicKey.N), nil
}

// Decrypt computes the message c^d mod n with the private key. Same modulus
// precondition on c as Encrypt has on m.
func (r *rsaProcessor) Decrypt(c *big.Int, privateKey *keys.PrivateKey) (*big.Int, error) {
	if c == nil {
		return nil, fmt.Errorf("ciphertext cannot be nil")
	}
	if privateKey == nil || privateKey.D == nil || privateKey.N == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}
	return r.arith.ModPow(c, privateKey.D, privateKey.N), nil
}

// primesSeparated reports whether the two primes are distinct and, for real
// key sizes, further apart than 2^(nlen/2-100). Primes closer than that admit
// Fermat-style factorization shortcuts.
func primesSeparated(p, q *big.Int, nlen uint) bool {
	if p.Cmp(q) == 0 {
		return false
	}

	half := nlen / 2
	if half <= crypto.MinPrimeSeparationShift {
		return true
	}

	distance := new(big.Int).Sub(p, q)
	distance.Abs(distance)
	minDistance := new(big.Int).Lsh(big.NewInt(1), half-crypto.MinPrimeSeparationShift)
	return distance.Cmp(minDistance) > 0
}
