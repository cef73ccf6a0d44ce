package middleware

import (
	"fmt"
	"net/http"

	"gigbook/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// ErrorLogger logs errors attached to the context and any bare 5xx response.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if len(c.Errors) == 0 {
			if status >= http.StatusInternalServerError {
				logRequestError(c, "http_error", fmt.Sprintf("status=%d", status))
			}
			return
		}

		for _, err := range c.Errors {
			logRequestError(c, fmt.Sprintf("%v", err.Type), err.Error())
		}
	}
}

func logRequestError(c *gin.Context, errType, message string) {
	evt := logger.Warn()
	if c.Writer.Status() >= http.StatusInternalServerError {
		evt = logger.Error()
	}
	evt.
		Str("type", errType).
		Int("status", c.Writer.Status()).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("client_ip", c.ClientIP()).
		Int64("user_id", c.GetInt64("user_id")).
		Str("role", c.GetString("role")).
		Str("request_id", c.GetString("request_id")).
		Msg(message)
}
