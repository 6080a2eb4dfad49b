package response

import (
	"github.com/gin-gonic/gin"
)

// ApiEnvelope is the single response shape of the API. Message carries the
// user-facing outcome text and Data the payload; both are optional.
type ApiEnvelope struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

// Message writes an outcome that is not an error, such as "already exists".
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, ApiEnvelope{
		Ok:      true,
		Message: message,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:      false,
		Message: message,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// ErrorWithData keeps the success payload shape on failure so readers of Data never break.
func ErrorWithData(c *gin.Context, status int, errorCode string, message string, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:      false,
		Message: message,
		Data:    data,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
		},
	})
}
