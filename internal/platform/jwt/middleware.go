package jwtmw

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"loomspace_backend/internal/platform/apperr"
	"loomspace_backend/internal/platform/http/httperr"
)

// Keys under which the verified identity is stored in the gin context.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// RoleAdmin is the role value required by RequireAdmin.
const RoleAdmin = "ADMIN"

var (
	errMissingToken  = apperr.Unauthorized("access denied")
	errInvalidToken  = apperr.Forbidden("invalid token")
	errAdminRequired = apperr.Forbidden("admin access required")
	errMisconfigured = apperr.Internal("server misconfigured: JWT secret missing")
)

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
// A missing token is answered with 401, a token that fails verification with 403.
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			httperr.Respond(c, errMissingToken)
			return
		}

		// 2. Refuse to verify anything with an empty key
		if len(key) == 0 {
			httperr.Respond(c, errMisconfigured)
			return
		}

		// 3. Parse and verify JWT signature and expiry (only HMAC allowed)
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		}, jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			httperr.Respond(c, errInvalidToken)
			return
		}

		// 4. Extract the {userId, role} payload
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Respond(c, errInvalidToken)
			return
		}
		userID, _ := claims[ClaimUserID].(string)
		if userID == "" {
			httperr.Respond(c, errInvalidToken)
			return
		}
		role, _ := claims[ClaimRole].(string)
		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)

		// 5. Pass control to the next handler
		c.Next()
	}
}

// RequireAdmin rejects requests whose verified role is not ADMIN.
// It must run after AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != RoleAdmin {
			httperr.Respond(c, errAdminRequired)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthRequired.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextUserID)
	return id, id != ""
}

// Role returns the authenticated role set by AuthRequired.
func Role(c *gin.Context) string {
	return c.GetString(ContextRole)
}
