// models/service.go
package models

// ServiceRecord is a static catalog entry. It is never mutated at runtime.
type ServiceRecord struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl"`
	Rating        float64 `json:"rating"`
	Price         int     `json:"price"`
	ProviderName  string  `json:"providerName"`
	EstimatedTime string  `json:"estimatedTime"`
	Distance      string  `json:"distance"`
	IsEmergency   bool    `json:"isEmergency,omitempty"`
	IsPopular     bool    `json:"isPopular,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// Category groups services on the home screen.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryListing is the result of a category lookup.
type CategoryListing struct {
	CategoryName string          `json:"categoryName"`
	Services     []ServiceRecord `json:"services"`
}

// Review is a customer review shown on a provider profile.
type Review struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	Date         string `json:"date"`
	Comment      string `json:"comment"`
	ServiceTitle string `json:"serviceTitle"`
}

// ProviderProfile is the public page of a service provider.
type ProviderProfile struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Title           string          `json:"title"`
	ImageURL        string          `json:"imageUrl"`
	Rating          float64         `json:"rating"`
	ExperienceYears int             `json:"experienceYears"`
	About           []string        `json:"about"`
	Specialties     []string        `json:"specialties"`
	Services        []ServiceRecord `json:"services"`
	Reviews         []Review        `json:"reviews"`
}
