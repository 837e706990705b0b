package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. The "detail"
// field is what API consumers (including the schedule gateway) read.
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Detail:  "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, detail string) {
	logger := GetLogger()
	logger.Warn("Request failed", zap.Int("status", status), zap.String("detail", detail))
	c.JSON(status, ErrorResponse{Detail: detail})
}
