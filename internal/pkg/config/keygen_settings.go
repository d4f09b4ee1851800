package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeyGenSettings holds configuration settings for RSA keypair generation.
type KeyGenSettings struct {
	DefaultKeySize uint32 `mapstructure:"default_key_size" validate:"required,min=16,max=16384"`
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	if s.DefaultKeySize%2 != 0 {
		return fmt.Errorf("default key size must be even, got %d", s.DefaultKeySize)
	}

	return nil
}
