package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bothrasports-ops/arena-manager/internal/handler/httperr"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/cookie"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/errs"
	"github.com/bothrasports-ops/arena-manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxSessionUserKey = "session_user"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		token = cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no session token in cookie or header"), "Session token required", nil)
			return
		}

		username, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxSessionUserKey, username)
		c.Next()
	}
}

func GetSessionUser(c *gin.Context) (string, bool) {
	sessionUser, exists := c.Get(ctxSessionUserKey)
	if !exists {
		return "", false
	}

	username, ok := sessionUser.(string)
	return username, ok
}

// SessionUserOrEmpty is a convenience for log enrichment where absence is fine.
func SessionUserOrEmpty(c *gin.Context) string {
	username, _ := GetSessionUser(c)
	return username
}
