package keys

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
)

// PublicKey is the public half of an RSA keypair: the public exponent e and
// the modulus n. It is created once by the key generator and treated as
// immutable afterwards.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the private half of an RSA keypair: the private exponent d and
// its own copy of the modulus n, so the two halves are independently usable
// without a shared-ownership link. Treated as immutable after construction.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyMeta holds the metadata of a single generated key.
type KeyMeta struct {
	ID              string    `validate:"required" json:"id"`
	KeyPairID       string    `validate:"required" json:"keyPairId"`
	Type            string    `validate:"required,oneof=private public" json:"type"`
	Algorithm       string    `validate:"required,oneof=RSA" json:"algorithm"`
	KeySize         uint32    `validate:"required" json:"keySize"`
	DateTimeCreated time.Time `validate:"required" json:"dateTimeCreated"`
}

// Validate for validating KeyMeta struct
func (k *KeyMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// GeneratedKeyPair bundles freshly generated key material with the metadata of
// both halves. The prime factors of the modulus are not retained anywhere.
type GeneratedKeyPair struct {
	PublicKey  *PublicKey
	PrivateKey *PrivateKey
	Metas      []*KeyMeta
}
