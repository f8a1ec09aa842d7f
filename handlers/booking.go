package handlers

import (
	"errors"
	"net/http"

	"handyhub/services/catalog"
	"handyhub/services/device"
	"handyhub/services/wizard"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetTimeSlotsHandler lists the bookable hours.
func GetTimeSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": wizard.TimeSlots, "serviceFee": wizard.ServiceFee})
}

func activeBooking(c *gin.Context) (*device.Context, *wizard.Controller, bool) {
	d, ok := currentDevice(c)
	if !ok {
		return nil, nil, false
	}
	w, err := d.Booking(c.Param("serviceID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "No booking in progress for this service", err.Error())
		return nil, nil, false
	}
	return d, w, true
}

// StartBookingHandler opens a booking wizard for a catalog service.
func StartBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	serviceID := c.Param("serviceID")
	svc, found := catalog.FindByID(serviceID)
	if !found {
		utils.JSONError(c, http.StatusNotFound, "Service not found", "no service with id "+serviceID)
		return
	}

	w := d.StartBooking(svc)
	d.Nav.Navigate("/booking/" + svc.ID)
	logger.Info("Booking started", zap.String("serviceID", svc.ID))
	c.JSON(http.StatusCreated, gin.H{"service": svc, "state": w.State()})
}

// UpdateBookingHandler stores field values on the current step.
func UpdateBookingHandler(c *gin.Context) {
	_, w, ok := activeBooking(c)
	if !ok {
		return
	}
	if !bindFields(c, w) {
		return
	}
	c.JSON(http.StatusOK, w.State())
}

// AdvanceBookingHandler validates the step and moves on; the last step confirms the booking.
func AdvanceBookingHandler(c *gin.Context) {
	_, w, ok := activeBooking(c)
	if !ok {
		return
	}
	res, err := w.Advance(c.Request.Context())
	if err != nil {
		if errors.Is(err, wizard.ErrFinished) {
			utils.JSONError(c, http.StatusConflict, "This booking has already been confirmed", err.Error())
			return
		}
		wizardError(c, err, w)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RetreatBookingHandler goes back a step; from the first step it abandons the booking.
func RetreatBookingHandler(c *gin.Context) {
	d, w, ok := activeBooking(c)
	if !ok {
		return
	}
	res, err := w.Retreat()
	if err != nil {
		wizardError(c, err, w)
		return
	}
	if res.Exited {
		d.EndBooking(c.Param("serviceID"))
	}
	c.JSON(http.StatusOK, res)
}

// CancelBookingHandler abandons a booking wizard and any redirect it scheduled.
func CancelBookingHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	if !d.EndBooking(c.Param("serviceID")) {
		utils.JSONError(c, http.StatusNotFound, "No booking in progress for this service", "")
		return
	}
	c.Status(http.StatusNoContent)
}
