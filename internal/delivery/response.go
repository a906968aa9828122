package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// mapErrorToStatus classifies use-case errors by message content. The
// use cases never produce status codes themselves; this is the only
// place an error becomes an HTTP status.
func mapErrorToStatus(err error) int {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "not found") {
		return http.StatusNotFound
	}
	if strings.Contains(errMsg, "already") ||
		strings.Contains(errMsg, "cannot be") ||
		strings.Contains(errMsg, "cannot exceed") ||
		strings.Contains(errMsg, "invalid") ||
		strings.Contains(errMsg, "must be") {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
