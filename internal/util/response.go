package util

import (
	"errors"
	"net/http"

	"kidquiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误响应结构
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Fail translates any error into the envelope. Unknown errors are logged and
// surfaced as INTERNAL_ERROR so store internals never reach the client.
func Fail(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{Error: appErr})
		return
	}

	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	internal := InternalError()
	c.JSON(internal.Status, ErrorResponse{Error: internal})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, ValidationError(message))
}

func Unauthorized(c *gin.Context) {
	Fail(c, AuthRequiredError())
}

func Forbidden(c *gin.Context) {
	Fail(c, ForbiddenError())
}
