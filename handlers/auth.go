package handlers

import (
	"errors"
	"net/http"
	"strings"

	"handyhub/models"
	"handyhub/services/device"
	"handyhub/services/guard"
	"handyhub/services/session"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Issuer *utils.TokenIssuer
}

func NewAuthHandler(issuer *utils.TokenIssuer) *AuthHandler {
	return &AuthHandler{Issuer: issuer}
}

func sessionResponse(d *device.Context) models.SessionResponse {
	sess, ok := d.Store.Current()
	if !ok {
		return models.SessionResponse{IsAuthenticated: false}
	}
	return models.SessionResponse{IsAuthenticated: true, UserType: sess.UserType, User: &sess}
}

// signedIn issues a token for the current session and moves the device to its dashboard.
func (h *AuthHandler) signedIn(d *device.Context) (models.SessionResponse, error) {
	resp := sessionResponse(d)
	token, err := d.IssueToken(h.Issuer)
	if err != nil {
		return resp, err
	}
	resp.Token = token
	resp.Redirect = guard.Dashboard(resp.UserType)
	d.Nav.Navigate(resp.Redirect)
	return resp, nil
}

// LoginHandler signs a device in with one of the known accounts.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	var missing []models.FieldError
	if strings.TrimSpace(input.Email) == "" {
		missing = append(missing, models.FieldError{Field: "email", Message: "Please fill in all fields"})
	}
	if input.Password == "" {
		missing = append(missing, models.FieldError{Field: "password", Message: "Please fill in all fields"})
	}
	if len(missing) > 0 {
		d.Notifier().Error("Please fill in all fields")
		validationFailed(c, missing, nil)
		return
	}

	if _, err := d.Store.Login(c.Request.Context(), strings.TrimSpace(input.Email), input.Password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Invalid email or password."})
			return
		}
		logger.Error("Login interrupted", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Login did not complete", err.Error())
		return
	}

	resp, err := h.signedIn(d)
	if err != nil {
		logger.Error("Failed to issue session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue session token", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler ends the session and everything tied to it.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	d.Logout(c.Request.Context())
	d.Nav.Navigate(guard.PathAuth)
	c.JSON(http.StatusOK, models.SessionResponse{IsAuthenticated: false, Redirect: guard.PathAuth})
}

// GetSessionHandler reports the device's session without issuing a token.
func (h *AuthHandler) GetSessionHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse(d))
}
