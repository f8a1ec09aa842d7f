package handlers

import (
	"errors"
	"net/http"

	"handyhub/models"
	"handyhub/services/session"
	"handyhub/services/wizard"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bindFields reads a flat JSON object of field values and stores it in w.
func bindFields(c *gin.Context, w *wizard.Controller) bool {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return false
	}
	if err := w.SetAll(fields); err != nil {
		wizardError(c, err, w)
		return false
	}
	return true
}

// wizardError maps wizard failures onto HTTP responses.
func wizardError(c *gin.Context, err error, w *wizard.Controller) {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		state := w.State()
		validationFailed(c, verr.Errors, &state)
	case errors.Is(err, wizard.ErrUnknownField):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Unknown field", err.Error())
	case errors.Is(err, wizard.ErrBusy):
		utils.JSONError(c, http.StatusConflict, "This form is already being submitted", err.Error())
	case errors.Is(err, wizard.ErrFinished):
		utils.JSONError(c, http.StatusConflict, "This form has already been submitted", err.Error())
	case errors.Is(err, session.ErrInvalidUserType):
		state := w.State()
		validationFailed(c, []models.FieldError{{Field: "userType", Message: "Please choose customer or provider"}}, &state)
	default:
		getLogger(c).Error("Wizard completion failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not complete the form", err.Error())
	}
}
