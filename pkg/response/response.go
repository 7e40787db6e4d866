package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire format for every non-2xx response.
type ErrorBody struct {
	Success    bool              `json:"success"`
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
}

// JSON writes a success payload as-is. Successful responses carry the
// resource JSON directly rather than an envelope.
func JSON(c *gin.Context, status int, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, data)
}

// Error writes the error envelope.
func Error(c *gin.Context, status int, message string, details map[string]string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorBody{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Details:    details,
	})
}

// AbortError writes the error envelope and stops the handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string, details map[string]string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Details:    details,
	})
}
