package handlers

import (
	"net/http"
	"strings"

	"handyhub/middleware"
	"handyhub/models"
	"handyhub/services/device"
	"handyhub/services/guard"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidationResponse is returned with 422 whenever input fails validation.
type ValidationResponse struct {
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors"`
	State   *models.WizardState `json:"state,omitempty"`
}

func validationFailed(c *gin.Context, errs []models.FieldError, state *models.WizardState) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationResponse{
		Message: "Validation failed",
		Errors:  errs,
		State:   state,
	})
}

func currentDevice(c *gin.Context) (*device.Context, bool) {
	d, ok := middleware.GetDevice(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Missing required device details", "X-Device-ID header is required")
		return nil, false
	}
	return d, true
}

// NavigationState describes where a device is and whether it may stay there.
type NavigationState struct {
	Current  string         `json:"current"`
	Route    guard.Match    `json:"route"`
	Decision guard.Decision `json:"decision"`
}

func navigationState(d *device.Context) NavigationState {
	current := d.Nav.Current()
	m, decision := guard.Check(current, d.Store.IsAuthenticated(), d.Store.UserType())
	return NavigationState{Current: current, Route: m, Decision: decision}
}

// GetNavigationHandler reports the device's current location.
func GetNavigationHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, navigationState(d))
}

// NavigateHandler moves the device to a path, applying the route guard.
// A redirect decision moves the device to the redirect target instead.
func NavigateHandler(c *gin.Context) {
	logger := getLogger(c)
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	var input struct {
		Path string `json:"path"`
		Back bool   `json:"back"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if input.Back {
		d.Nav.Back()
		c.JSON(http.StatusOK, navigationState(d))
		return
	}

	path := strings.TrimSpace(input.Path)
	if !strings.HasPrefix(path, "/") {
		validationFailed(c, []models.FieldError{{Field: "path", Message: "Path must start with /"}}, nil)
		return
	}

	m, decision := guard.Check(path, d.Store.IsAuthenticated(), d.Store.UserType())
	switch decision.Outcome {
	case guard.Render:
		d.Nav.Navigate(path)
	default:
		logger.Debug("Navigation redirected", zap.String("path", path), zap.String("target", decision.Target))
		d.Nav.Navigate(decision.Target)
	}
	c.JSON(http.StatusOK, gin.H{
		"requested":  path,
		"route":      m,
		"decision":   decision,
		"navigation": navigationState(d),
	})
}

// GetNotificationsHandler drains the device's pending notifications.
func GetNotificationsHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": d.Notices.Drain()})
}
