package handlers

import (
	"errors"
	"net/http"

	"handyhub/models"
	"handyhub/services/catalog"
	"handyhub/services/emergency"
	"handyhub/services/wizard"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func GetEmergencyTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": catalog.EmergencyTypes()})
}

// SubmitEmergencyHandler starts the dispatch script for the device.
func SubmitEmergencyHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	var req models.EmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	form := d.EmergencyForm()
	defer form.Close()
	if err := form.SetAll(wizard.EmergencyRequestFields(req)); err != nil {
		wizardError(c, err, form)
		return
	}
	if _, err := form.Advance(c.Request.Context()); err != nil {
		if errors.Is(err, emergency.ErrRequestInProgress) {
			utils.JSONError(c, http.StatusConflict, "An emergency request is already in progress", err.Error())
			return
		}
		wizardError(c, err, form)
		return
	}
	c.JSON(http.StatusAccepted, d.Emergency.Snapshot())
}

func GetEmergencyHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, d.Emergency.Snapshot())
}

// CancelEmergencyHandler is only accepted once a provider has been dispatched.
func CancelEmergencyHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	if err := d.Emergency.Cancel(); err != nil {
		utils.JSONError(c, http.StatusConflict, "Emergency request cannot be cancelled yet", err.Error())
		return
	}
	c.JSON(http.StatusOK, d.Emergency.Snapshot())
}

// EmergencyStreamHandler pushes every status change over a websocket.
func EmergencyStreamHandler(c *gin.Context) {
	logger := getLogger(c)
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Emergency stream: upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	snaps, stop := d.Emergency.Subscribe()
	defer stop()
	gone := watchClose(conn)

	for {
		select {
		case <-gone:
			return
		case snap, open := <-snaps:
			if !open {
				closeStream(conn, websocket.CloseGoingAway)
				return
			}
			if err := conn.WriteJSON(StreamMessage{Event: "status", Data: snap}); err != nil {
				logger.Debug("Emergency stream: write failed", zap.Error(err))
				return
			}
		}
	}
}
