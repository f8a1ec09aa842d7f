package handlers

import (
	"net/http"

	"handyhub/services/catalog"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
)

// GetCategoriesHandler lists every service category.
func GetCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

// GetCategoryHandler lists the services of a category. Unknown categories
// yield an empty list rather than an error.
func GetCategoryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.FindByCategory(c.Param("id")))
}

func GetServiceHandler(c *gin.Context) {
	id := c.Param("id")
	svc, ok := catalog.FindByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Service not found", "no service with id "+id)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetProviderProfileHandler returns the provider behind a service.
func GetProviderProfileHandler(c *gin.Context) {
	id := c.Param("id")
	profile, ok := catalog.ProviderProfile(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Provider not found", "no provider for service "+id)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// MessageProviderHandler pretends to deliver a message to a provider.
func MessageProviderHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if _, found := catalog.ProviderProfile(id); !found {
		utils.JSONError(c, http.StatusNotFound, "Provider not found", "no provider for service "+id)
		return
	}
	d.Notifier().Success("Message sent to provider")
	c.JSON(http.StatusAccepted, gin.H{"message": "Message sent to provider"})
}
