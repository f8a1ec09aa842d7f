package handlers

import (
	"net/http"

	"handyhub/services/device"
	"handyhub/services/guard"
	"handyhub/services/wizard"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RegistrationHandler struct {
	Auth *AuthHandler
}

func NewRegistrationHandler(auth *AuthHandler) *RegistrationHandler {
	return &RegistrationHandler{Auth: auth}
}

func (h *RegistrationHandler) active(c *gin.Context) (*device.Context, *wizard.Controller, bool) {
	d, ok := currentDevice(c)
	if !ok {
		return nil, nil, false
	}
	w, err := d.Registration()
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "No registration in progress", err.Error())
		return nil, nil, false
	}
	return d, w, true
}

// StartRegistrationHandler opens a fresh registration wizard, discarding any previous one.
func (h *RegistrationHandler) StartRegistrationHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	w := d.StartRegistration()
	d.Nav.Navigate(guard.PathAuth)
	c.JSON(http.StatusCreated, w.State())
}

// UpdateRegistrationHandler stores field values on the current step.
func (h *RegistrationHandler) UpdateRegistrationHandler(c *gin.Context) {
	_, w, ok := h.active(c)
	if !ok {
		return
	}
	if !bindFields(c, w) {
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// AdvanceRegistrationHandler validates the step and moves on; the last step creates the account.
func (h *RegistrationHandler) AdvanceRegistrationHandler(c *gin.Context) {
	d, w, ok := h.active(c)
	if !ok {
		return
	}
	res, err := w.Advance(c.Request.Context())
	if err != nil {
		wizardError(c, err, w)
		return
	}
	if !res.Completed {
		c.JSON(http.StatusOK, res)
		return
	}

	resp, err := h.Auth.signedIn(d)
	if err != nil {
		getLogger(c).Error("Failed to issue session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue session token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res, "session": resp})
}

// RetreatRegistrationHandler goes back a step, or leaves registration from the first one.
func (h *RegistrationHandler) RetreatRegistrationHandler(c *gin.Context) {
	_, w, ok := h.active(c)
	if !ok {
		return
	}
	res, err := w.Retreat()
	if err != nil {
		wizardError(c, err, w)
		return
	}
	c.JSON(http.StatusOK, res)
}
