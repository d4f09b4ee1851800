package keys

import (
	"context"
	"math/big"
)

// KeyGenerationService defines methods for generating RSA keypairs.
type KeyGenerationService interface {
	// Generate generates an RSA keypair with the requested modulus bit-length.
	// It returns the generated key material together with metadata for both
	// halves, and any error encountered during the generation process.
	Generate(ctx context.Context, keySize uint32) (*GeneratedKeyPair, error)
}

// CipherService defines methods for applying the raw RSA trapdoor transforms.
// Messages and ciphertexts are integers; callers are responsible for keeping
// them in [0, n) since textbook RSA applies no padding.
type CipherService interface {
	// Encrypt computes the ciphertext of message m under the public key.
	Encrypt(ctx context.Context, m *big.Int, publicKey *PublicKey) (*big.Int, error)

	// Decrypt recovers the message from ciphertext c under the private key.
	Decrypt(ctx context.Context, c *big.Int, privateKey *PrivateKey) (*big.Int, error)
}
