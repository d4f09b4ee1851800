//go:build unit
// +build unit

package v1

import (
	"context"
	"math/big"

	"textbook_rsa_service/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyGenerationService is a mock implementation of KeyGenerationService
type MockKeyGenerationService struct {
	mock.Mock
}

func (m *MockKeyGenerationService) Generate(ctx context.Context, keySize uint32) (*keys.GeneratedKeyPair, error) {
	args := m.Called(ctx, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.GeneratedKeyPair), args.Error(1)
}

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, msg *big.Int, publicKey *keys.PublicKey) (*big.Int, error) {
	args := m.Called(ctx, msg, publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, c *big.Int, privateKey *keys.PrivateKey) (*big.Int, error) {
	args := m.Called(ctx, c, privateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
