package middleware

import (
	"strings"

	"pharma-search-srv/pkg/response"
	"pharma-search-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Auth attaches the caller identity to the request context when a token is sent.
// Requests without a token continue as anonymous; a token that fails verification is rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.GetHeader("Authorization"))
		if tokenString == "" || m.jwtManager == nil {
			c.Next()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// extractToken supports both "Bearer <token>" and a plain token.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	return header
}
