package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx reply. Redirect tells the
// client which page to show instead.
type ErrorResponse struct {
	Message  string `json:"message"`
	Details  string `json:"details,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// ErrorHandler turns a panic in a later handler into a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			GetLogger().Error("Recovered from panic",
				zap.Any("panic", rec),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Something went wrong",
				Details: "The request could not be completed.",
			})
		}()
		c.Next()
	}
}

func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details), zap.Int("status", status), zap.String("path", c.Request.URL.Path))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONRedirect aborts with a message and the page the client should move to.
func JSONRedirect(c *gin.Context, status int, message, redirect string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Redirect: redirect})
}
