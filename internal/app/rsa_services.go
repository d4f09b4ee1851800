package app

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"textbook_rsa_service/internal/domain/crypto"
	"textbook_rsa_service/internal/domain/keys"
	"textbook_rsa_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyGenerationService implements the KeyGenerationService interface for
// generating RSA keypairs and describing them with metadata
type keyGenerationService struct {
	rsaProcessor crypto.RSAProcessor
	logger       logger.Logger
}

// NewKeyGenerationService creates a new keyGenerationService instance
func NewKeyGenerationService(rsaProcessor crypto.RSAProcessor, logger logger.Logger) (keys.KeyGenerationService, error) {
	if rsaProcessor == nil {
		return nil, fmt.Errorf("rsa processor cannot be nil")
	}
	return &keyGenerationService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Generate generates an RSA keypair with the requested modulus bit-length.
// It returns the generated key material together with metadata for both
// halves, and any error encountered during the generation process.
func (s *keyGenerationService) Generate(ctx context.Context, keySize uint32) (*keys.GeneratedKeyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	publicKey, privateKey, err := s.rsaProcessor.GenerateKeys(uint(keySize))
	if err != nil {
		return nil, err
	}

	keyPairID := uuid.New().String()
	createdAt := time.Now().UTC()

	metas := []*keys.KeyMeta{
		{
			ID:              uuid.New().String(),
			KeyPairID:       keyPairID,
			Type:            crypto.KeyTypePublic,
			Algorithm:       crypto.AlgorithmRSA,
			KeySize:         keySize,
			DateTimeCreated: createdAt,
		},
		{
			ID:              uuid.New().String(),
			KeyPairID:       keyPairID,
			Type:            crypto.KeyTypePrivate,
			Algorithm:       crypto.AlgorithmRSA,
			KeySize:         keySize,
			DateTimeCreated: createdAt,
		},
	}

	for _, meta := range metas {
		if err := meta.Validate(); err != nil {
			return nil, fmt.Errorf("invalid key metadata: %w", err)
		}
	}

	s.logger.Info("Generated RSA keypair ", keyPairID)

	return &keys.GeneratedKeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		Metas:      metas,
	}, nil
}

// cipherService implements the CipherService interface for applying the raw
// RSA trapdoor transforms
type cipherService struct {
	rsaProcessor crypto.RSAProcessor
	logger       logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(rsaProcessor crypto.RSAProcessor, logger logger.Logger) (keys.CipherService, error) {
	if rsaProcessor == nil {
		return nil, fmt.Errorf("rsa processor cannot be nil")
	}
	return &cipherService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Encrypt computes the ciphertext of message m under the public key.
func (s *cipherService) Encrypt(ctx context.Context, m *big.Int, publicKey *keys.PublicKey) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := s.rsaProcessor.Encrypt(m, publicKey)
	if err != nil {
		return nil, err
	}

	s.logger.Info("RSA encryption succeeded")
	return c, nil
}

// Decrypt recovers the message from ciphertext c under the private key.
func (s *cipherService) Decrypt(ctx context.Context, c *big.Int, privateKey *keys.PrivateKey) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := s.rsaProcessor.Decrypt(c, privateKey)
	if err != nil {
		return nil, err
	}

	s.logger.Info("RSA decryption succeeded")
	return m, nil
}
