package middleware

import (
	"handyhub/models"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
)

// CustomerOnly admits signed-in customers; providers are sent to their dashboard.
func CustomerOnly(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return RequireSession(issuer, models.UserTypeCustomer)
}

// ProviderOnly admits signed-in providers; customers are sent to their dashboard.
func ProviderOnly(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return RequireSession(issuer, models.UserTypeProvider)
}

// Authenticated admits any signed-in session.
func Authenticated(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return RequireSession(issuer, "")
}
