package v1

import (
	"textbook_rsa_service/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyGenerationService keys.KeyGenerationService,
	cipherService keys.CipherService,
	defaultKeySize uint32) {

	v1 := r.Group(BasePath) // lookup in version file

	rsaHandler := NewRSAHandler(keyGenerationService, cipherService, defaultKeySize)
	v1.POST("/keys", rsaHandler.GenerateKeys)
	v1.POST("/cipher/encrypt", rsaHandler.Encrypt)
	v1.POST("/cipher/decrypt", rsaHandler.Decrypt)
}
