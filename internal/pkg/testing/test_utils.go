package testing

import (
	"math/big"
	"testing"

	"textbook_rsa_service/internal/pkg/config"
	"textbook_rsa_service/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// MustBigInt parses a base-10 integer literal and fails the test on malformed input.
func MustBigInt(t *testing.T, value string) *big.Int {
	t.Helper()

	n, ok := new(big.Int).SetString(value, 10)
	require.True(t, ok, "invalid base-10 integer literal: %s", value)
	return n
}
