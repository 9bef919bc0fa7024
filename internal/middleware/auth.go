package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rohannso/Quiz-backend/internal/dto"
	"github.com/rohannso/Quiz-backend/internal/service"
)

// Context keys set by TokenAuth.
const (
	UserKey     = "user"
	TokenKeyKey = "token_key"
)

// TokenAuth gates a route behind a bearer token. Both the "Bearer <key>"
// and "Token <key>" schemes are accepted.
func TokenAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication credentials were not provided."})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid authorization header format."})
			return
		}

		user, err := authService.Authenticate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid token."})
			return
		}

		c.Set(UserKey, user)
		c.Set(TokenKeyKey, parts[1])
		c.Next()
	}
}
