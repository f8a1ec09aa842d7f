package models

// EmergencyStatus is the scripted dispatch state of an emergency request.
type EmergencyStatus string

const (
	EmergencyInitial    EmergencyStatus = "initial"
	EmergencySearching  EmergencyStatus = "searching"
	EmergencyFound      EmergencyStatus = "found"
	EmergencyDispatched EmergencyStatus = "dispatched"
)

// EmergencyType is one of the selectable emergency kinds.
type EmergencyType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// EmergencyRequest is what the customer submits.
type EmergencyRequest struct {
	ServiceType        string `json:"serviceType"`
	Location           string `json:"location"`
	ContactNumber      string `json:"contactNumber"`
	UseCurrentLocation bool   `json:"useCurrentLocation,omitempty"`
}

// DispatchedProvider is the fabricated responder attached to a dispatched request.
type DispatchedProvider struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Vehicle string `json:"vehicle"`
}

// EmergencySnapshot is a point-in-time view of the simulator.
type EmergencySnapshot struct {
	Status        EmergencyStatus     `json:"status"`
	ServiceType   string              `json:"serviceType,omitempty"`
	Location      string              `json:"location,omitempty"`
	ContactNumber string              `json:"contactNumber,omitempty"`
	ETA           string              `json:"eta,omitempty"`
	Provider      *DispatchedProvider `json:"provider,omitempty"`
}
