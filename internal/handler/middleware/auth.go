package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"dynamic-pricing/internal/domain/operator"
	"dynamic-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxOperatorIDKey = "operator_id"
	ctxRoleKey       = "operator_role"
	ctxClaimsKey     = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		operatorID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		SetOperator(c, operatorID, role)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole operator.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			return
		}

		if !role.AtLeast(minRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			return
		}

		c.Next()
	}
}

// SetOperator stores the authenticated identity; the logging middleware
// reads it back through the claims map.
func SetOperator(c *gin.Context, operatorID uuid.UUID, role operator.Role) {
	c.Set(ctxOperatorIDKey, operatorID)
	c.Set(ctxRoleKey, role)
	c.Set(ctxClaimsKey, map[string]any{
		"operator_id": operatorID.String(),
		"role":        string(role),
	})
}

func GetOperatorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxOperatorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (operator.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(operator.Role)
	return role, ok
}
