// Package main is the entry point for the textbook-rsa-cli application.
// It initializes the root command, registers the RSA sub-commands for the CLI,
// then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "textbook_rsa_service/cmd/textbook-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA operations CLI tool",
		Long: `textbook-rsa-cli is a command-line tool for textbook RSA operations.
Supports keypair generation with standardized prime bounds, and the raw
encrypt/decrypt transforms on base-10 integer messages.

No padding scheme is applied: messages must already be integers below the
modulus, and no confidentiality guarantee of a padded scheme applies.`,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
