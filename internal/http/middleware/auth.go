package middleware

import (
	"net/http"
	"strings"

	"backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "auth_user"

// Auth validates the bearer token and stores the caller identity in the
// context. Requests without a valid token are rejected.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		ctx := domain.RequestContext{}
		if v, ok := claims["user_id"].(float64); ok {
			ctx.UserID = domain.ID(v)
		}
		if v, ok := claims["name"].(string); ok {
			ctx.Name = v
		}
		if v, ok := claims["role"].(string); ok {
			ctx.Role = v
		}
		if ctx.UserID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(userContextKey, ctx)
		c.Next()
	}
}

// CurrentUser extracts the authenticated caller from the context.
func CurrentUser(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	ctx, ok := v.(domain.RequestContext)
	return ctx, ok
}

// RequireRoles only lets listed roles through; it assumes Auth ran earlier.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		ctx, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(ctx.Role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
