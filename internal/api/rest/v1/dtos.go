package v1

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"textbook_rsa_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// GenerateKeyRequest represents the request payload for generating an RSA keypair.
// Empty fields fall back to the configured defaults.
type GenerateKeyRequest struct {
	Algorithm string `json:"algorithm" validate:"omitempty,oneof=RSA"`
	KeySize   uint32 `json:"keySize" validate:"omitempty,keysize"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	err := validate.Struct(r)
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

// EncryptRequest represents the request payload for the encrypt transform.
// Big integers travel as base-10 strings.
type EncryptRequest struct {
	Message        string `json:"message" validate:"required"`
	PublicExponent string `json:"publicExponent" validate:"required"`
	Modulus        string `json:"modulus" validate:"required"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateStruct(r)
}

// DecryptRequest represents the request payload for the decrypt transform.
// Big integers travel as base-10 strings.
type DecryptRequest struct {
	Ciphertext      string `json:"ciphertext" validate:"required"`
	PrivateExponent string `json:"privateExponent" validate:"required"`
	Modulus         string `json:"modulus" validate:"required"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateStruct(r)
}

// KeyMetaResponse represents metadata of a single generated key in responses.
type KeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"keyPairId"`
	Type            string    `json:"type"`
	Algorithm       string    `json:"algorithm"`
	KeySize         uint32    `json:"keySize"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

// KeyPairResponse represents a freshly generated keypair. Exponents and
// modulus are base-10 strings.
type KeyPairResponse struct {
	KeyPairID       string            `json:"keyPairId"`
	PublicExponent  string            `json:"publicExponent"`
	PrivateExponent string            `json:"privateExponent"`
	Modulus         string            `json:"modulus"`
	Metas           []KeyMetaResponse `json:"metas"`
}

// CipherResponse represents the result of an encrypt or decrypt transform as
// a base-10 string.
type CipherResponse struct {
	Value string `json:"value"`
}

// ErrorResponse represents an error message returned by the API
type ErrorResponse struct {
	Message string `json:"message"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
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

// parseBigInt parses a base-10 integer field of a request payload.
func parseBigInt(field, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("field %s is not a base-10 integer", field)
	}
	return n, nil
}
