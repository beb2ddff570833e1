package middleware

import (
	"github.com/gin-gonic/gin"

	"employee-graphql-api/pkg/helpers"
)

// Identity verifies the Authorization header, if any, and attaches the
// resulting identity to the request context. Verification failures are
// swallowed: an invalid token is indistinguishable from no token, and the
// request proceeds unauthenticated.
func Identity(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := jwt.Verify(c.GetHeader("Authorization")); ok {
			ctx := helpers.WithIdentity(c.Request.Context(), id)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
