package middleware

import (
	"favliz/pkg/logger"
	"favliz/pkg/response"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers panics into a 500 reply.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				appLogger := logger.GetLogger()
				appLogger.Errorf("Panic recovered: %v", err)
				response.ServerError(c, "Lỗi hệ thống")
				c.Abort()
			}
		}()

		c.Next()
	}
}
