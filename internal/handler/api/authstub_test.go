//go:build unit

package api_test

import (
	"net/http"

	"puntoenvio-gateway/internal/domain/apikey"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// stubKey mirrors what the auth middleware stores after validating a key.
func stubKey() *apikey.Key {
	return apikey.ReconstructKey(
		uuid.New(), "integration partner", "pe_live_ab",
		apikey.NewPermissionSet(apikey.PermissionRead, apikey.PermissionWrite),
		true, nil,
	)
}

// stubAuth rejects requests without an Authorization header and otherwise
// places the given key in the context, like the real middleware does.
func stubAuth(key *apikey.Key) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "MissingAuthorization"})
			return
		}
		c.Set("api_key", key)
		c.Next()
	}
}

// stubOptionalAuth sets the key only when a header is present.
func stubOptionalAuth(key *apikey.Key) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("api_key", key)
		}
		c.Next()
	}
}
