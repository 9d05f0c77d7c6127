package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	messageSuccess = "Success"

	internalErrorCode    = 500
	internalErrorMessage = "Something went wrong"
)

// Resp is the standard JSON envelope for every API response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// OK sends 200 with data wrapped in the envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		Message: messageSuccess,
		Data:    data,
	})
}

// Error sends 400 with the error message and optional detail payload.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500. The underlying error stays in the logs, the
// client only sees the generic message.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: internalErrorCode,
		Message:   internalErrorMessage,
	})
}
