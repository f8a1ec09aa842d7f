package models

// Urgency of a pending job request.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Job is an entry on the provider dashboard, either upcoming or pending.
type Job struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Client      string  `json:"client"`
	Address     string  `json:"address"`
	Time        string  `json:"time,omitempty"`
	RequestTime string  `json:"requestTime,omitempty"`
	Price       int     `json:"price"`
	Distance    string  `json:"distance"`
	Urgency     Urgency `json:"urgency,omitempty"`
}

// ProviderDashboard is what a provider sees after login.
type ProviderDashboard struct {
	Greeting        string `json:"greeting"`
	UpcomingJobs    []Job  `json:"upcomingJobs"`
	PendingRequests []Job  `json:"pendingRequests"`
}

// UserDashboard is what a customer sees after login.
type UserDashboard struct {
	Greeting          string          `json:"greeting"`
	Categories        []Category      `json:"categories"`
	PopularServices   []ServiceRecord `json:"popularServices"`
	NearbyServices    []ServiceRecord `json:"nearbyServices"`
	EmergencyServices []ServiceRecord `json:"emergencyServices"`
}
