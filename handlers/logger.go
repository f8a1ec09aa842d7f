package handlers

import (
	"handyhub/middleware"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger prefers the device-tagged logger set by DeviceMiddleware.
func getLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(middleware.LoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return utils.GetLogger()
}
