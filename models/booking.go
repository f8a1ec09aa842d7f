package models

// PaymentMethod chosen on the last booking step.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// BookingSummary is produced when a booking wizard completes. Nothing is persisted.
type BookingSummary struct {
	Reference     string        `json:"reference"`
	ServiceID     string        `json:"serviceId"`
	ServiceTitle  string        `json:"serviceTitle"`
	ProviderName  string        `json:"providerName"`
	Date          string        `json:"date"`
	TimeSlot      string        `json:"timeSlot"`
	Address       string        `json:"address"`
	Issue         string        `json:"issue,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	ServiceRate   int           `json:"serviceRate"`
	ServiceFee    int           `json:"serviceFee"`
	Total         int           `json:"total"`
	EstimatedTime string        `json:"estimatedTime"`
}
