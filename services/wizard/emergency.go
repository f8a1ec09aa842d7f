package wizard

import (
	"context"
	"strconv"

	"handyhub/models"
	"handyhub/services/emergency"
	"handyhub/services/guard"
)

const FlowEmergency = "emergency"

// Dispatcher accepts a validated emergency request.
type Dispatcher interface {
	Submit(req models.EmergencyRequest) ([]models.FieldError, error)
}

// EmergencyRequestFields flattens a request into wizard fields.
func EmergencyRequestFields(req models.EmergencyRequest) map[string]string {
	return map[string]string{
		"serviceType":        req.ServiceType,
		"location":           req.Location,
		"contactNumber":      req.ContactNumber,
		"useCurrentLocation": strconv.FormatBool(req.UseCurrentLocation),
	}
}

func emergencyRequest(f map[string]string) models.EmergencyRequest {
	useCurrent, _ := strconv.ParseBool(f["useCurrentLocation"])
	return models.EmergencyRequest{
		ServiceType:        f["serviceType"],
		Location:           f["location"],
		ContactNumber:      f["contactNumber"],
		UseCurrentLocation: useCurrent,
	}
}

// EmergencyFlow is the one-step SOS form; completing it starts the dispatch script.
func EmergencyFlow(d Dispatcher) Flow {
	return Flow{
		Name: FlowEmergency,
		Steps: []Step{{
			Name:   "request",
			Fields: []string{"serviceType", "location", "contactNumber", "useCurrentLocation"},
			Validate: func(f map[string]string) []models.FieldError {
				return emergency.Validate(emergencyRequest(f))
			},
		}},
		Defaults: map[string]string{"useCurrentLocation": "false"},
		Complete: func(_ context.Context, f map[string]string) (Completion, error) {
			if _, err := d.Submit(emergencyRequest(f)); err != nil {
				return Completion{}, err
			}
			return Completion{Redirect: guard.PathEmergency}, nil
		},
	}
}
