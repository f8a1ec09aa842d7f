// models/session.go
package models

// UserType is the role a session was created with.
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeProvider UserType = "provider"
)

// Valid reports whether t is one of the two known roles.
func (t UserType) Valid() bool {
	return t == UserTypeCustomer || t == UserTypeProvider
}

// Session is the currently logged-in identity of a device. It never carries a password.
type Session struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	UserType     UserType `json:"userType"`
	ProfileImage string   `json:"profileImage,omitempty"`
}

// SessionResponse is returned by the auth endpoints.
type SessionResponse struct {
	IsAuthenticated bool     `json:"isAuthenticated"`
	UserType        UserType `json:"userType,omitempty"`
	User            *Session `json:"user,omitempty"`
	Token           string   `json:"token,omitempty"`
	Redirect        string   `json:"redirect,omitempty"`
}
