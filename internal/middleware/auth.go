package middleware

import (
	"net/http"
	"strings"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/models"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

func AuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AbortResponse(c, http.StatusUnauthorized, "token not found")
			return
		}

		// 2. "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.AbortResponse(c, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		// 3. Signature, issuer, audience, expiry
		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			utils.AbortResponse(c, http.StatusUnauthorized, "invalid token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			utils.AbortResponse(c, http.StatusUnauthorized, "invalid token subject")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, models.Role(claims.Role))

		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles. It must run
// after AuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			utils.AbortResponse(c, http.StatusForbidden, "access denied")
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.AbortResponse(c, http.StatusForbidden, "access denied: requires role "+joinRoles(roles))
	}
}

func AdminOnly() gin.HandlerFunc  { return RequireRole(models.RoleAdmin) }
func DoctorOnly() gin.HandlerFunc { return RequireRole(models.RoleDoctor) }
func UserOnly() gin.HandlerFunc   { return RequireRole(models.RoleUser) }

// CurrentUserID returns the authenticated caller's id.
func CurrentUserID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func CurrentRole(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}

func joinRoles(roles []models.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, " or ")
}
