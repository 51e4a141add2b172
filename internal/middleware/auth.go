package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"healthtrack-be/internal/jwt"
)

// Context keys under which the authenticated principal is stored for the
// remainder of the request.
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// AuthMiddleware returns the authentication gate applied to every protected
// route. A request with no bearer token is rejected with 401 before any
// verification is attempted; a request whose token fails verification
// (tampered, wrong secret, expired) is rejected with 403. Neither rejection
// carries a body. On success the principal is attached to the gin context
// and the downstream handler runs.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		principal, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(UserIDKey, principal.UserID)
		c.Set(UserEmailKey, principal.Email)
		c.Next()
	}
}

// extractBearerToken pulls the token out of an "Authorization: Bearer <tok>"
// header. Returns "" if the header is absent or not bearer-shaped.
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentUserID returns the authenticated user's ID from the gin context.
// The second return is false if the gate has not run on this request.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
