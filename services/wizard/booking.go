package wizard

import (
	"context"
	"slices"
	"strings"
	"time"

	"handyhub/models"
	"handyhub/services/guard"

	"github.com/google/uuid"
)

const (
	FlowBooking = "booking"

	// ServiceFee is added to every booking, in rand.
	ServiceFee = 50

	BookingConfirmed = "Booking confirmed! Your service is scheduled."
)

// TimeSlots are the bookable hours of a day.
var TimeSlots = []string{
	"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM", "06:00 PM",
}

// BookingOptions tunes the booking flow.
type BookingOptions struct {
	RedirectDelay time.Duration
	// NewReference defaults to a random UUID.
	NewReference func() string
}

// BookingFlow schedules one service: date and time, address, payment.
func BookingFlow(svc models.ServiceRecord, opts BookingOptions) Flow {
	newRef := opts.NewReference
	if newRef == nil {
		newRef = func() string { return uuid.NewString() }
	}
	return Flow{
		Name: FlowBooking,
		Steps: []Step{
			{Name: "schedule", Fields: []string{"date", "timeSlot"}, Validate: validateSchedule},
			{Name: "details", Fields: []string{"address", "issue"}, Validate: validateAddress},
			{Name: "payment", Fields: []string{"paymentMethod"}, Validate: validatePayment},
		},
		Defaults: map[string]string{"paymentMethod": string(models.PaymentCard)},
		Complete: func(_ context.Context, f map[string]string) (Completion, error) {
			summary := models.BookingSummary{
				Reference:     newRef(),
				ServiceID:     svc.ID,
				ServiceTitle:  svc.Title,
				ProviderName:  svc.ProviderName,
				Date:          f["date"],
				TimeSlot:      f["timeSlot"],
				Address:       strings.TrimSpace(f["address"]),
				Issue:         strings.TrimSpace(f["issue"]),
				PaymentMethod: models.PaymentMethod(f["paymentMethod"]),
				ServiceRate:   svc.Price,
				ServiceFee:    ServiceFee,
				Total:         svc.Price + ServiceFee,
				EstimatedTime: svc.EstimatedTime,
			}
			return Completion{
				Message:  BookingConfirmed,
				Redirect: guard.PathUserDashboard,
				Delay:    opts.RedirectDelay,
				Payload:  summary,
			}, nil
		},
	}
}

func validateSchedule(f map[string]string) []models.FieldError {
	var errs []models.FieldError
	if !present(f, "date") {
		errs = append(errs, models.FieldError{Field: "date", Message: "Please select both date and time"})
	} else if _, err := time.Parse(time.DateOnly, f["date"]); err != nil {
		errs = append(errs, models.FieldError{Field: "date", Message: "Please select a valid date"})
	}
	if !present(f, "timeSlot") {
		errs = append(errs, models.FieldError{Field: "timeSlot", Message: "Please select both date and time"})
	} else if !slices.Contains(TimeSlots, f["timeSlot"]) {
		errs = append(errs, models.FieldError{Field: "timeSlot", Message: "Please select one of the available time slots"})
	}
	return errs
}

func validateAddress(f map[string]string) []models.FieldError {
	if !present(f, "address") {
		return []models.FieldError{{Field: "address", Message: "Please enter your address"}}
	}
	return nil
}

func validatePayment(f map[string]string) []models.FieldError {
	switch models.PaymentMethod(f["paymentMethod"]) {
	case models.PaymentCard, models.PaymentCash:
		return nil
	}
	return []models.FieldError{{Field: "paymentMethod", Message: "Please choose a payment method"}}
}
