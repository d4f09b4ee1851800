package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestSettings holds the configuration of the REST application: the listen
// port, the logger and the key generation defaults.
type RestSettings struct {
	Port   string         `mapstructure:"port" validate:"required"`
	Logger LoggerSettings `mapstructure:"logger"`
	KeyGen KeyGenSettings `mapstructure:"keygen"`
}

// Validate checks that all fields in RestSettings are valid
func (s *RestSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RestSettings: %w", err)
	}

	if err := s.Logger.Validate(); err != nil {
		return err
	}

	return s.KeyGen.Validate()
}

// InitializeRestConfig loads the REST application settings from the yaml file
// at configPath, with environment variable overrides (e.g. LOGGER_LOG_LEVEL).
func InitializeRestConfig(configPath string) (*RestSettings, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("keygen.default_key_size", 2048)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var settings RestSettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}
