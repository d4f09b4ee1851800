package commands

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

// Key files hold two base-10 lines: the exponent followed by the modulus.
// This deliberately is not PEM/DER; standardized encodings are out of scope
// for a textbook keypair.

// writeKeyFile writes the exponent/modulus pair to path with owner-only permissions.
func writeKeyFile(path string, exponent, modulus *big.Int) error {
	content := fmt.Sprintf("%s\n%s\n", exponent.String(), modulus.String())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write key file %s: %w", path, err)
	}
	return nil
}

// readKeyFile reads an exponent/modulus pair from path.
func readKeyFile(path string) (exponent, modulus *big.Int, err error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	lines := strings.Fields(string(data))
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("key file %s must hold exactly two base-10 integers", path)
	}

	exponent, ok := new(big.Int).SetString(lines[0], 10)
	if !ok {
		return nil, nil, fmt.Errorf("key file %s holds a malformed exponent", path)
	}
	modulus, ok = new(big.Int).SetString(lines[1], 10)
	if !ok {
		return nil, nil, fmt.Errorf("key file %s holds a malformed modulus", path)
	}

	return exponent, modulus, nil
}
