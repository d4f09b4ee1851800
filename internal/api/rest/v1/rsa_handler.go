package v1

import (
	"errors"
	"fmt"
	"net/http"

	"textbook_rsa_service/internal/domain/crypto"
	"textbook_rsa_service/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// RSAHandler defines the interface for handling RSA keypair and cipher operations
type RSAHandler interface {
	GenerateKeys(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// rsaHandler struct holds the services
type rsaHandler struct {
	keyGenerationService keys.KeyGenerationService
	cipherService        keys.CipherService
	defaultKeySize       uint32
}

// NewRSAHandler creates a new RSAHandler
func NewRSAHandler(keyGenerationService keys.KeyGenerationService, cipherService keys.CipherService, defaultKeySize uint32) RSAHandler {
	return &rsaHandler{
		keyGenerationService: keyGenerationService,
		cipherService:        cipherService,
		defaultKeySize:       defaultKeySize,
	}
}

// GenerateKeys handles the POST request to generate an RSA keypair
// @Summary Generate an RSA keypair
// @Description Generate an RSA keypair with the requested modulus bit-length and return both halves with metadata.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key Generation Parameters"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /keys [post]
func (handler *rsaHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid key generation data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	keySize := request.KeySize
	if keySize == 0 {
		keySize = handler.defaultKeySize
	}

	keyPair, err := handler.keyGenerationService.Generate(ctx, keySize)
	if err != nil {
		handler.writeGenerationError(ctx, err)
		return
	}

	response := KeyPairResponse{
		PublicExponent:  keyPair.PublicKey.E.String(),
		PrivateExponent: keyPair.PrivateKey.D.String(),
		Modulus:         keyPair.PublicKey.N.String(),
	}
	for _, meta := range keyPair.Metas {
		response.KeyPairID = meta.KeyPairID
		response.Metas = append(response.Metas, KeyMetaResponse{
			ID:              meta.ID,
			KeyPairID:       meta.KeyPairID,
			Type:            meta.Type,
			Algorithm:       meta.Algorithm,
			KeySize:         meta.KeySize,
			DateTimeCreated: meta.DateTimeCreated,
		})
	}

	ctx.JSON(http.StatusCreated, response)
}

// Encrypt handles the POST request to apply the raw RSA encrypt transform
// @Summary Encrypt an integer message
// @Description Compute message^e mod n for a message in [0, n). No padding is applied; keeping the message below the modulus is the caller's responsibility.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Message and Public Key"
// @Success 200 {object} CipherResponse
// @Failure 400 {object} ErrorResponse
// @Router /cipher/encrypt [post]
func (handler *rsaHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid encrypt data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	m, err := parseBigInt("message", request.Message)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	e, err := parseBigInt("publicExponent", request.PublicExponent)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	n, err := parseBigInt("modulus", request.Modulus)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	c, err := handler.cipherService.Encrypt(ctx, m, &keys.PublicKey{E: e, N: n})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error encrypting message: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, CipherResponse{Value: c.String()})
}

// Decrypt handles the POST request to apply the raw RSA decrypt transform
// @Summary Decrypt an integer ciphertext
// @Description Compute ciphertext^d mod n for a ciphertext in [0, n).
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Ciphertext and Private Key"
// @Success 200 {object} CipherResponse
// @Failure 400 {object} ErrorResponse
// @Router /cipher/decrypt [post]
func (handler *rsaHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid decrypt data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	c, err := parseBigInt("ciphertext", request.Ciphertext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	d, err := parseBigInt("privateExponent", request.PrivateExponent)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}
	n, err := parseBigInt("modulus", request.Modulus)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	m, err := handler.cipherService.Decrypt(ctx, c, &keys.PrivateKey{D: d, N: n})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error decrypting ciphertext: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, CipherResponse{Value: m.String()})
}

// writeGenerationError maps the named key generation failures onto distinct,
// actionable responses: invalid parameters are the caller's fault, a
// construction failure is not.
func (handler *rsaHandler) writeGenerationError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, crypto.ErrInvalidParameter):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid key generation parameter: %v", err),
		})
	case errors.Is(err, crypto.ErrKeyConstruction):
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("key construction failed, retry with fresh parameters: %v", err),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("error generating keypair: %v", err),
		})
	}
}
