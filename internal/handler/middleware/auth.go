package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"puntoenvio-gateway/internal/domain/apikey"
	"puntoenvio-gateway/internal/handler/httperr"
	"puntoenvio-gateway/internal/pkg/errs"
	"puntoenvio-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	keyValidator usecase.KeyValidator
}

const ctxAPIKeyKey = "api_key"

func NewAuthMiddleware(keyValidator usecase.KeyValidator) *AuthMiddleware {
	return &AuthMiddleware{
		keyValidator: keyValidator,
	}
}

// RequireKey authenticates the bearer API key and checks the required
// permission. A missing or malformed header is 401; a key that fails
// validation for any reason is 403 with a single undifferentiated error code.
func (m *AuthMiddleware) RequireKey(required apikey.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := extractBearerKey(c)
		if rawKey == "" {
			httperr.AbortWithError(c, errs.ErrMissingAuthorization, httperr.Response{
				Status: http.StatusUnauthorized,
				Error:  "MissingAuthorization",
			})
			return
		}

		key, err := m.keyValidator.ValidateKey(c.Request.Context(), rawKey, required)
		if err != nil {
			slog.Warn("API key validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, err, httperr.Response{
				Status: http.StatusForbidden,
				Error:  "InvalidApiKey",
			})
			return
		}

		c.Set(ctxAPIKeyKey, key)
		c.Next()
	}
}

// OptionalKey authenticates the request if a key is present, but does not
// abort on failure: the handler falls back to the public view.
func (m *AuthMiddleware) OptionalKey(required apikey.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := extractBearerKey(c)
		if rawKey == "" {
			c.Next()
			return
		}

		key, err := m.keyValidator.ValidateKey(c.Request.Context(), rawKey, required)
		if err != nil {
			// Invalid key; continue without aborting.
			c.Next()
			return
		}

		c.Set(ctxAPIKeyKey, key)
		c.Next()
	}
}

func extractBearerKey(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetAPIKey(c *gin.Context) (*apikey.Key, bool) {
	value, exists := c.Get(ctxAPIKeyKey)
	if !exists {
		return nil, false
	}

	key, ok := value.(*apikey.Key)
	return key, ok
}
