package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-office-api/internal/domain/token"
	"clinic-office-api/internal/domain/user"
	"clinic-office-api/internal/infrastructure/jwt"
)

// CurrentUser resolves the caller's identity from the Authorization header
// and puts it on the request context. It never rejects the request: any
// failure (missing header, bad token, revoked jti, unknown user) simply
// leaves the request anonymous and the guards downstream take it from there.
func CurrentUser(
	jwtService *jwt.Service,
	revokedTokens token.Repository,
	userRepository user.Repository,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.Next()
			return
		}

		claims, err := jwtService.Verify(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		revoked, err := revokedTokens.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			c.Next()
			return
		}

		id, err := claims.UserID()
		if err != nil {
			c.Next()
			return
		}

		// the single user lookup for this request
		u, err := userRepository.FetchUserByID(c.Request.Context(), user.ID(id))
		if err != nil || u == nil {
			c.Next()
			return
		}

		ctx := user.NewContext(c.Request.Context(), u)
		ctx = jwt.NewContext(ctx, claims)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
