package middleware

import (
	"net/http"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TokenAuth gates a route group behind the shared access token. The
// handler chain is aborted before any handler runs when the token is
// missing or wrong.
func TokenAuth(auth usecase.AuthUseCase, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			log.Warn("Middleware: Authorization header is missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"message": "Unauthorized: access token not found"})
			return
		}

		if !auth.ValidateToken(header) {
			log.Warn("Middleware: Invalid access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"message": "Unauthorized: invalid token"})
			return
		}

		c.Next()
	}
}
