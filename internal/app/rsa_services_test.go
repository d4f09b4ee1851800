//go:build unit
// +build unit

package app

import (
	"context"
	"math/big"
	"testing"

	"textbook_rsa_service/internal/domain/crypto"
	"textbook_rsa_service/internal/domain/keys"
	"textbook_rsa_service/internal/infrastructure/arithmetic"
	"textbook_rsa_service/internal/infrastructure/cryptography"
	pkgTesting "textbook_rsa_service/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServices(t *testing.T) (keys.KeyGenerationService, keys.CipherService) {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)

	calc := arithmetic.NewBigIntCalculator()
	sampler, err := cryptography.NewBoundedPrimeSampler(calc, logger)
	require.NoError(t, err)
	processor, err := cryptography.NewRSAProcessor(sampler, calc, logger)
	require.NoError(t, err)

	keyGenerationService, err := NewKeyGenerationService(processor, logger)
	require.NoError(t, err)
	cipherService, err := NewCipherService(processor, logger)
	require.NoError(t, err)

	return keyGenerationService, cipherService
}

func TestKeyGenerationService_Generate(t *testing.T) {
	keyGenerationService, _ := setupServices(t)

	t.Run("ProducesKeyMaterialWithMetadata", func(t *testing.T) {
		keyPair, err := keyGenerationService.Generate(context.Background(), 128)
		require.NoError(t, err)

		require.NotNil(t, keyPair.PublicKey)
		require.NotNil(t, keyPair.PrivateKey)
		assert.Equal(t, 128, keyPair.PublicKey.N.BitLen())

		require.Len(t, keyPair.Metas, 2)
		assert.Equal(t, keyPair.Metas[0].KeyPairID, keyPair.Metas[1].KeyPairID)
		assert.NotEqual(t, keyPair.Metas[0].ID, keyPair.Metas[1].ID)

		types := map[string]bool{}
		for _, meta := range keyPair.Metas {
			require.NoError(t, meta.Validate())
			assert.Equal(t, crypto.AlgorithmRSA, meta.Algorithm)
			assert.Equal(t, uint32(128), meta.KeySize)
			types[meta.Type] = true
		}
		assert.True(t, types[crypto.KeyTypePublic])
		assert.True(t, types[crypto.KeyTypePrivate])
	})

	t.Run("InvalidParameter", func(t *testing.T) {
		_, err := keyGenerationService.Generate(context.Background(), 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, crypto.ErrInvalidParameter)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := keyGenerationService.Generate(ctx, 128)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCipherService_RoundTrip(t *testing.T) {
	keyGenerationService, cipherService := setupServices(t)

	keyPair, err := keyGenerationService.Generate(context.Background(), 128)
	require.NoError(t, err)

	m := big.NewInt(123456789)
	c, err := cipherService.Encrypt(context.Background(), m, keyPair.PublicKey)
	require.NoError(t, err)
	assert.NotEqual(t, 0, c.Cmp(m))

	recovered, err := cipherService.Decrypt(context.Background(), c, keyPair.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Cmp(recovered))
}

func TestCipherService_CancelledContext(t *testing.T) {
	keyGenerationService, cipherService := setupServices(t)

	keyPair, err := keyGenerationService.Generate(context.Background(), 64)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = cipherService.Encrypt(ctx, big.NewInt(42), keyPair.PublicKey)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = cipherService.Decrypt(ctx, big.NewInt(42), keyPair.PrivateKey)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewServices_NilProcessor(t *testing.T) {
	logger := pkgTesting.SetupTestLogger(t)

	_, err := NewKeyGenerationService(nil, logger)
	assert.Error(t, err)

	_, err = NewCipherService(nil, logger)
	assert.Error(t, err)
}
