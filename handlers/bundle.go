package handlers

import (
	"handyhub/services/device"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every endpoint handler and the dependencies routes need.
type HandlerBundle struct {
	Registry *device.Registry
	Issuer   *utils.TokenIssuer

	// Navigation and notifications
	GetNavigation    gin.HandlerFunc
	Navigate         gin.HandlerFunc
	GetNotifications gin.HandlerFunc

	// Auth endpoints
	Login               gin.HandlerFunc
	Logout              gin.HandlerFunc
	GetSession          gin.HandlerFunc
	StartRegistration   gin.HandlerFunc
	UpdateRegistration  gin.HandlerFunc
	AdvanceRegistration gin.HandlerFunc
	RetreatRegistration gin.HandlerFunc

	// Catalog endpoints
	GetCategories      gin.HandlerFunc
	GetCategory        gin.HandlerFunc
	CategoryReveal     gin.HandlerFunc
	GetService         gin.HandlerFunc
	GetProviderProfile gin.HandlerFunc
	MessageProvider    gin.HandlerFunc

	// Booking endpoints
	GetTimeSlots   gin.HandlerFunc
	StartBooking   gin.HandlerFunc
	UpdateBooking  gin.HandlerFunc
	AdvanceBooking gin.HandlerFunc
	RetreatBooking gin.HandlerFunc
	CancelBooking  gin.HandlerFunc

	// Emergency endpoints
	GetEmergencyTypes gin.HandlerFunc
	SubmitEmergency   gin.HandlerFunc
	GetEmergency      gin.HandlerFunc
	CancelEmergency   gin.HandlerFunc
	EmergencyStream   gin.HandlerFunc

	// Dashboards and profile
	GetUserDashboard     gin.HandlerFunc
	UserHomeReveal       gin.HandlerFunc
	GetProviderDashboard gin.HandlerFunc
	ProviderJobsReveal   gin.HandlerFunc
	GetProfile           gin.HandlerFunc
	UpdateProfile        gin.HandlerFunc
}

// NewHandlerBundle wires every handler against one registry.
func NewHandlerBundle(reg *device.Registry, issuer *utils.TokenIssuer, revealer *RevealHandler) *HandlerBundle {
	auth := NewAuthHandler(issuer)
	registration := NewRegistrationHandler(auth)

	return &HandlerBundle{
		Registry: reg,
		Issuer:   issuer,

		GetNavigation:    GetNavigationHandler,
		Navigate:         NavigateHandler,
		GetNotifications: GetNotificationsHandler,

		Login:               auth.LoginHandler,
		Logout:              auth.LogoutHandler,
		GetSession:          auth.GetSessionHandler,
		StartRegistration:   registration.StartRegistrationHandler,
		UpdateRegistration:  registration.UpdateRegistrationHandler,
		AdvanceRegistration: registration.AdvanceRegistrationHandler,
		RetreatRegistration: registration.RetreatRegistrationHandler,

		GetCategories:      GetCategoriesHandler,
		GetCategory:        GetCategoryHandler,
		CategoryReveal:     revealer.CategoryRevealHandler,
		GetService:         GetServiceHandler,
		GetProviderProfile: GetProviderProfileHandler,
		MessageProvider:    MessageProviderHandler,

		GetTimeSlots:   GetTimeSlotsHandler,
		StartBooking:   StartBookingHandler,
		UpdateBooking:  UpdateBookingHandler,
		AdvanceBooking: AdvanceBookingHandler,
		RetreatBooking: RetreatBookingHandler,
		CancelBooking:  CancelBookingHandler,

		GetEmergencyTypes: GetEmergencyTypesHandler,
		SubmitEmergency:   SubmitEmergencyHandler,
		GetEmergency:      GetEmergencyHandler,
		CancelEmergency:   CancelEmergencyHandler,
		EmergencyStream:   EmergencyStreamHandler,

		GetUserDashboard:     GetUserDashboardHandler,
		UserHomeReveal:       revealer.UserHomeRevealHandler,
		GetProviderDashboard: GetProviderDashboardHandler,
		ProviderJobsReveal:   revealer.ProviderJobsRevealHandler,
		GetProfile:           GetProfileHandler,
		UpdateProfile:        UpdateProfileHandler,
	}
}
