package middleware

import (
	"net/http"
	"strings"

	"handyhub/models"
	"handyhub/services/guard"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
)

const insufficientAuth = "Insufficient authorization"

// RequireSession applies the route guard to an API group. required is the
// role the caller must hold; empty means any signed-in session.
//
// The device session alone is enough. When a Bearer token is sent it must
// be valid, issued to this device, and match the token bound to the session.
func RequireSession(issuer *utils.TokenIssuer, required models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, ok := GetDevice(c)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "Missing required device details", "X-Device-ID header is required")
			return
		}

		if header := c.GetHeader("Authorization"); header != "" {
			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header || tokenString == "" {
				utils.JSONError(c, http.StatusUnauthorized, insufficientAuth, "malformed Authorization header")
				return
			}
			claims, err := issuer.ExtractClaims(tokenString)
			if err != nil {
				utils.JSONError(c, http.StatusUnauthorized, insufficientAuth, err.Error())
				return
			}
			if claims.DeviceID != d.ID {
				utils.JSONError(c, http.StatusUnauthorized, insufficientAuth, "token was issued to another device")
				return
			}
			if bound := d.Store.TokenHash(); bound == "" || bound != utils.HashToken(tokenString) {
				utils.JSONError(c, http.StatusUnauthorized, insufficientAuth, "token does not match the current session")
				return
			}
		}

		decision := guard.Decide(d.Store.IsAuthenticated(), d.Store.UserType(), required)
		switch decision.Outcome {
		case guard.RedirectAuth:
			utils.JSONRedirect(c, http.StatusUnauthorized, "Please login to continue", decision.Target)
			return
		case guard.RedirectDashboard:
			utils.JSONRedirect(c, http.StatusForbidden, "This page is not available for your account", decision.Target)
			return
		}
		c.Next()
	}
}
