package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"betpix-backend/pkg/helpers"
	"betpix-backend/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"

	bearerPrefix = "Bearer "
)

// Auth validates the Authorization bearer token and injects the caller's id
// into the Gin context. Every failure kind maps to the same 401 body; the
// distinction is logged only.
func Auth(tokens *helpers.TokenManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err == nil {
			var claims *helpers.Claims
			claims, err = tokens.Parse(token)
			if err == nil {
				c.Set(CtxUserIDKey, claims.UserID)
				c.Set(CtxUserEmailKey, claims.Email)
				c.Next()
				return
			}
		}

		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"path":       c.FullPath(),
				"request_id": c.GetString("request_id"),
			}).Debug("token rejected")
		}
		response.Error(c, http.StatusUnauthorized, "invalid or missing token")
		c.Abort()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", helpers.ErrTokenMissing
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", helpers.ErrTokenMalformed
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", helpers.ErrTokenMalformed
	}
	return token, nil
}
