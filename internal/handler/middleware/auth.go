package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"stay-marketplace/internal/domain/auth"
	"stay-marketplace/internal/handler/httperr"
	"stay-marketplace/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxPrincipalKey = "principal"
	accessTokenName = "access_token"

	MsgInvalidToken = "Given token not valid for any token type"
)

// TokenValidator is the identity provider's verification side.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// Authenticate resolves the principal for every request. A request without a
// token continues as anonymous; a bad token is rejected outright.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Set(ctxPrincipalKey, auth.Anonymous())
			c.Next()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.DebugContext(c.Request.Context(), "token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, MsgInvalidToken)
			return
		}

		c.Set(ctxPrincipalKey, auth.NewPrincipal(claims.UserID, claims.Username))
		c.Next()
	}
}

// Principal returns the request's principal, anonymous if none was resolved.
func Principal(c *gin.Context) auth.Principal {
	if v, ok := c.Get(ctxPrincipalKey); ok {
		if p, ok := v.(auth.Principal); ok {
			return p
		}
	}
	return auth.Anonymous()
}

func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if strings.HasPrefix(h, "Bearer ") {
			return strings.TrimSpace(h[len("Bearer "):])
		}
		return ""
	}
	if v, err := c.Cookie(accessTokenName); err == nil {
		return strings.TrimSpace(v)
	}
	return ""
}
