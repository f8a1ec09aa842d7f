package middleware

import (
	"net"
	"net/http"
	"strings"

	"handyhub/services/device"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggerKey holds the device-tagged *zap.Logger in the gin context.
const LoggerKey = "logger"

const (
	DeviceHeader = "X-Device-ID"
	deviceQuery  = "deviceId"
	maxDeviceID  = 128
	deviceCtxKey = "device"
	deviceIDKey  = "deviceID"
	deviceIPKey  = "deviceIP"
)

func getClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 && ips[0] != "" {
			return strings.TrimSpace(ips[0])
		}
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}

// DeviceMiddleware attaches the device context named by X-Device-ID.
// Websocket clients cannot set headers, so a deviceId query parameter is
// accepted as well.
func DeviceMiddleware(reg *device.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(DeviceHeader))
		if id == "" {
			id = strings.TrimSpace(c.Query(deviceQuery))
		}
		if id == "" || len(id) > maxDeviceID {
			utils.JSONError(c, http.StatusBadRequest, "Missing required device details", "X-Device-ID header is required")
			return
		}

		ip := getClientIP(c)
		c.Set(deviceIDKey, id)
		c.Set(deviceIPKey, ip)
		c.Set(LoggerKey, utils.GetLogger().With(zap.String("deviceID", id), zap.String("ip", ip)))
		c.Set(deviceCtxKey, reg.Get(c.Request.Context(), id))
		c.Next()
	}
}

// GetDevice returns the device context set by DeviceMiddleware.
func GetDevice(c *gin.Context) (*device.Context, bool) {
	v, ok := c.Get(deviceCtxKey)
	if !ok {
		return nil, false
	}
	d, ok := v.(*device.Context)
	return d, ok
}
