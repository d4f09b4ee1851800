package commands

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"textbook_rsa_service/internal/app"
	"textbook_rsa_service/internal/domain/keys"
	"textbook_rsa_service/internal/infrastructure/arithmetic"
	"textbook_rsa_service/internal/infrastructure/cryptography"
	"textbook_rsa_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	keyGenerationService keys.KeyGenerationService
	cipherService        keys.CipherService
	logger               logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging, the
// math/big arithmetic backend and the textbook RSA services on top of it.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	arith := arithmetic.NewBigIntCalculator()

	primeSampler, err := cryptography.NewBoundedPrimeSampler(arith, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime sampler: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(primeSampler, arith, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	keyGenerationService, err := app.NewKeyGenerationService(rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation service: %w", err)
	}

	cipherService, err := app.NewCipherService(rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	return &RSACommandHandler{
		keyGenerationService: keyGenerationService,
		cipherService:        cipherService,
		logger:               loggerInstance,
	}, nil
}

// GenerateRSAKeysCmd generates an RSA keypair and persists both halves in a selected directory
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetUint32("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	keyPair, err := commandHandler.keyGenerationService.Generate(context.Background(), keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyPairID := keyPair.Metas[0].KeyPairID

	publicKeyFilePath := fmt.Sprintf("%s/%s-public-key.txt", keyDir, keyPairID)
	if err := writeKeyFile(publicKeyFilePath, keyPair.PublicKey.E, keyPair.PublicKey.N); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKeyFilePath := fmt.Sprintf("%s/%s-private-key.txt", keyDir, keyPairID)
	if err := writeKeyFile(privateKeyFilePath, keyPair.PrivateKey.D, keyPair.PrivateKey.N); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Public key path ", publicKeyFilePath)
	commandHandler.logger.Info("Private key path ", privateKeyFilePath)
}

// EncryptRSACmd encrypts a base-10 integer message using a stored public key
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}

	m, ok := new(big.Int).SetString(message, 10)
	if !ok {
		commandHandler.logger.Error("message must be a base-10 integer")
		return
	}

	e, n, err := readKeyFile(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if m.Sign() < 0 || m.Cmp(n) >= 0 {
		commandHandler.logger.Error("message must lie in [0, modulus)")
		return
	}

	c, err := commandHandler.cipherService.Encrypt(context.Background(), m, &keys.PublicKey{E: e, N: n})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if outputFile == "" {
		commandHandler.logger.Info("Ciphertext ", c.String())
		return
	}
	if err := os.WriteFile(outputFile, []byte(c.String()+"\n"), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptRSACmd decrypts a base-10 integer ciphertext using a stored private key
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) {
	ciphertext, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		commandHandler.logger.Error("invalid ciphertext flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}

	c, ok := new(big.Int).SetString(ciphertext, 10)
	if !ok {
		commandHandler.logger.Error("ciphertext must be a base-10 integer")
		return
	}

	d, n, err := readKeyFile(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if c.Sign() < 0 || c.Cmp(n) >= 0 {
		commandHandler.logger.Error("ciphertext must lie in [0, modulus)")
		return
	}

	m, err := commandHandler.cipherService.Decrypt(context.Background(), c, &keys.PrivateKey{D: d, N: n})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if outputFile == "" {
		commandHandler.logger.Info("Message ", m.String())
		return
	}
	if err := os.WriteFile(outputFile, []byte(m.String()+"\n"), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate an RSA keypair",
		Run:   handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().Uint32P("key-size", "", 2048, "RSA modulus bit-length (e.g. 2048 for RSA-2048)")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSACmd = &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt a base-10 integer message using RSA",
		Run:   handler.EncryptRSACmd,
	}
	encryptRSACmd.Flags().StringP("message", "", "", "Message as a base-10 integer below the modulus")
	encryptRSACmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	encryptRSACmd.Flags().StringP("output-file", "", "", "Path to ciphertext output file (printed when omitted)")
	rootCmd.AddCommand(encryptRSACmd)

	var decryptRSACmd = &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt a base-10 integer ciphertext using RSA",
		Run:   handler.DecryptRSACmd,
	}
	decryptRSACmd.Flags().StringP("ciphertext", "", "", "Ciphertext as a base-10 integer below the modulus")
	decryptRSACmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	decryptRSACmd.Flags().StringP("output-file", "", "", "Path to message output file (printed when omitted)")
	rootCmd.AddCommand(decryptRSACmd)

	return nil
}
