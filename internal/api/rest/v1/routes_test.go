//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	keyGenerationService := new(MockKeyGenerationService)
	keyGenerationService.On("Generate", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	cipherService := new(MockCipherService)

	SetupRoutes(r, keyGenerationService, cipherService, 2048)

	routes := []struct {
		method string
		path   string
	}{
		{"POST", BasePath + "/keys"},
		{"POST", BasePath + "/cipher/encrypt"},
		{"POST", BasePath + "/cipher/decrypt"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req, _ := http.NewRequest(route.method, route.path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify the route exists (status != 404); payloads are
			// exercised in the handler tests.
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}
