//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"textbook_rsa_service/internal/domain/crypto"
	"textbook_rsa_service/internal/infrastructure/arithmetic"
	pkgTesting "textbook_rsa_service/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRSAProcessor(t *testing.T) crypto.RSAProcessor {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	calc := arithmetic.NewBigIntCalculator()
	sampler, err := NewBoundedPrimeSampler(calc, logger)
	require.NoError(t, err)
	processor, err := NewRSAProcessor(sampler, calc, logger)
	require.NoError(t, err)
	return processor
}

func TestRSAProcessor_KnownAnswer(t *testing.T) {
	processor := setupRSAProcessor(t)

	t.Run("WikiScenario", func(t *testing.T) {
		publicKey, privateKey, err := processor.BuildKeyPair(big.NewInt(61), big.NewInt(53), big.NewInt(17))
		require.NoError(t, err)

		assert.Equal(t, int64(3233), publicKey.N.Int64())
		assert.Equal(t, int64(3233), privateKey.N.Int64())
		assert.Equal(t, int64(17), publicKey.E.Int64())
		assert.Equal(t, int64(413), privateKey.D.Int64())

		// (e * d) mod lcm(60, 52) == 1
		totient := big.NewInt(780)
		product := new(big.Int).Mul(publicKey.E, privateKey.D)
		assert.Equal(t, int64(1), product.Mod(product, totient).Int64())

		c, err := processor.Encrypt(big.NewInt(65), publicKey)
		require.NoError(t, err)
		assert.Equal(t, int64(2790), c.Int64())

		m, err := processor.Decrypt(big.NewInt(2790), privateKey)
		require.NoError(t, err)
		assert.Equal(t, int64(65), m.Int64())
	})

	t.Run("AlternateExponentScenario", func(t *testing.T) {
		publicKey, privateKey, err := processor.BuildKeyPair(big.NewInt(653), big.NewInt(877), big.NewInt(13))
		require.NoError(t, err)

		assert.Equal(t, int64(572681), publicKey.N.Int64())

		// The Carmichael totient lcm(652, 876) = 142788 yields the minimal
		// valid private exponent; 395413, its lift modulo the Euler totient
		// 571152, decrypts identically.
		totient := big.NewInt(142788)
		assert.Equal(t, int64(109837), privateKey.D.Int64())
		product := new(big.Int).Mul(publicKey.E, privateKey.D)
		assert.Equal(t, int64(1), product.Mod(product, totient).Int64())

		c, err := processor.Encrypt(big.NewInt(12345), publicKey)
		require.NoError(t, err)
		assert.Equal(t, int64(536754), c.Int64())

		m, err := processor.Decrypt(big.NewInt(536754), privateKey)
		require.NoError(t, err)
		assert.Equal(t, int64(12345), m.Int64())
	})
}

func TestRSAProcessor_BuildKeyPair(t *testing.T) {
	processor := setupRSAProcessor(t)

	t.Run("ExponentSharesFactorWithTotient", func(t *testing.T) {
		// lcm(4, 12) = 12 shares the factor 3 with e = 3.
		_, _, err := processor.BuildKeyPair(big.NewInt(5), big.NewInt(13), big.NewInt(3))
		require.Error(t, err)
		assert.ErrorIs(t, err, crypto.ErrKeyConstruction)
	})

	t.Run("EqualPrimes", func(t *testing.T) {
		_, _, err := processor.BuildKeyPair(big.NewInt(61), big.NewInt(61), big.NewInt(17))
		require.Error(t, err)
		assert.ErrorIs(t, err, crypto.ErrKeyConstruction)
	})

	t.Run("NilInputs", func(t *testing.T) {
		_, _, err := processor.BuildKeyPair(nil, big.NewInt(53), big.NewInt(17))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, crypto.ErrKeyConstruction)
	})

	t.Run("KeysOwnSeparateModulusCopies", func(t *testing.T) {
		publicKey, privateKey, err := processor.BuildKeyPair(big.NewInt(61), big.NewInt(53), big.NewInt(17))
		require.NoError(t, err)
		assert.NotSame(t, publicKey.N, privateKey.N)
		assert.Equal(t, 0, publicKey.N.Cmp(privateKey.N))
	})
}

func TestRSAProcessor_GenerateKeys(t *testing.T) {
	processor := setupRSAProcessor(t)

	t.Run("InvalidParameter", func(t *testing.T) {
		for _, nlen := range []uint{0, 1, 2, 3} {
			_, _, err := processor.GenerateKeys(nlen)
			require.Error(t, err, "nlen=%d", nlen)
			assert.ErrorIs(t, err, crypto.ErrInvalidParameter)
		}
	})

	t.Run("ModulusBitLength", func(t *testing.T) {
		publicKey, privateKey, err := processor.GenerateKeys(64)
		require.NoError(t, err)
		assert.Equal(t, 64, publicKey.N.BitLen())
		assert.Equal(t, int64(crypto.DefaultPublicExponent), publicKey.E.Int64())
		assert.NotNil(t, privateKey.D)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		publicKey, privateKey, err := processor.GenerateKeys(128)
		require.NoError(t, err)

		for _, message := range []int64{0, 1, 65, 123456789} {
			m := big.NewInt(message)
			c, err := processor.Encrypt(m, publicKey)
			require.NoError(t, err)
			recovered, err := processor.Decrypt(c, privateKey)
			require.NoError(t, err)
			assert.Equal(t, 0, m.Cmp(recovered), "round trip failed for message %d", message)
		}
	})

	t.Run("DistinctPrimeFactors", func(t *testing.T) {
		// p == q would make the modulus a perfect square. Toy bit-lengths are
		// where collisions are realistic, so hammer those.
		for i := 0; i < 30; i++ {
			publicKey, _, err := processor.GenerateKeys(16)
			require.NoError(t, err)

			root := new(big.Int).Sqrt(publicKey.N)
			square := new(big.Int).Mul(root, root)
			assert.NotEqual(t, 0, square.Cmp(publicKey.N), "modulus %s is a perfect square", publicKey.N)
		}
	})

	t.Run("RoundTripAtToySize", func(t *testing.T) {
		publicKey, privateKey, err := processor.GenerateKeys(16)
		require.NoError(t, err)

		m := big.NewInt(65)
		require.True(t, m.Cmp(publicKey.N) < 0)

		c, err := processor.Encrypt(m, publicKey)
		require.NoError(t, err)
		recovered, err := processor.Decrypt(c, privateKey)
		require.NoError(t, err)
		assert.Equal(t, int64(65), recovered.Int64())
	})
}

func TestRSAProcessor_CipherValidation(t *testing.T) {
	processor := setupRSAProcessor(t)

	publicKey, privateKey, err := processor.BuildKeyPair(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	require.NoError(t, err)

	t.Run("EncryptWithNilInputs", func(t *testing.T) {
		_, err := processor.Encrypt(nil, publicKey)
		assert.Error(t, err)

		_, err = processor.Encrypt(big.NewInt(65), nil)
		assert.Error(t, err)
	})

	t.Run("DecryptWithNilInputs", func(t *testing.T) {
		_, err := processor.Decrypt(nil, privateKey)
		assert.Error(t, err)

		_, err = processor.Decrypt(big.NewInt(2790), nil)
		assert.Error(t, err)
	})

	t.Run("OversizedMessageWrapsAround", func(t *testing.T) {
		// 0 <= m < n is the caller's responsibility; the transform reduces
		// modulo n instead of rejecting, so the bijection is lost.
		oversized := new(big.Int).Add(publicKey.N, big.NewInt(65))
		c, err := processor.Encrypt(oversized, publicKey)
		require.NoError(t, err)

		recovered, err := processor.Decrypt(c, privateKey)
		require.NoError(t, err)
		assert.Equal(t, int64(65), recovered.Int64())
	})
}

func TestNewRSAProcessor_NilDependencies(t *testing.T) {
	logger := pkgTesting.SetupTestLogger(t)
	calc := arithmetic.NewBigIntCalculator()
	sampler, err := NewBoundedPrimeSampler(calc, logger)
	require.NoError(t, err)

	_, err = NewRSAProcessor(nil, calc, logger)
	assert.Error(t, err)

	_, err = NewRSAProcessor(sampler, nil, logger)
	assert.Error(t, err)
}

func TestPrimesSeparated(t *testing.T) {
	t.Run("EqualPrimes", func(t *testing.T) {
		assert.False(t, primesSeparated(big.NewInt(61), big.NewInt(61), 16))
	})

	t.Run("DistinctToyPrimes", func(t *testing.T) {
		assert.True(t, primesSeparated(big.NewInt(181), big.NewInt(191), 16))
	})

	t.Run("AdjacentLargePrimesRejected", func(t *testing.T) {
		// At nlen=2048 the factors must differ beyond 2^(1024-100).
		p := new(big.Int).Lsh(big.NewInt(1), 1023)
		q := new(big.Int).Add(p, big.NewInt(2))
		assert.False(t, primesSeparated(p, q, 2048))
	})

	t.Run("WellSeparatedLargePrimesAccepted", func(t *testing.T) {
		p := new(big.Int).Lsh(big.NewInt(1), 1023)
		q := new(big.Int).Add(p, new(big.Int).Lsh(big.NewInt(1), 960))
		assert.True(t, primesSeparated(p, q, 2048))
	})
}
