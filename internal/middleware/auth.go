package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estatehub/internal/domain"
	"estatehub/internal/service"
)

const principalKey = "principal"

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   domain.UserRole
}

// AuthMiddleware validates the bearer access token and attaches the caller's
// Principal to the request.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			deny(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid authorization header")
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			deny(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
			return
		}

		SetPrincipal(c, Principal{UserID: claims.UserID, Email: claims.Email, Role: claims.Role})
		c.Next()
	}
}

// RequireRole lets the request through only when the caller holds one of roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[domain.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			deny(c, http.StatusForbidden, "FORBIDDEN", "role not found in context")
			return
		}
		if _, ok := allowed[p.Role]; !ok {
			deny(c, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
			return
		}
		c.Next()
	}
}

// SetPrincipal attaches p to the request context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// CurrentPrincipal returns the caller attached by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	val, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := val.(Principal)
	return p, ok && p.UserID != uuid.Nil
}

// bearerToken extracts the token from an Authorization header. The scheme
// is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func deny(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": msg},
	})
}
