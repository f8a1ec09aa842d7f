package routes

import (
	"net/http"
	"time"

	"handyhub/handlers"
	"handyhub/middleware"
	"handyhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if status.Redis != nil && !*status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": "ok", "message": "Hi, I'm HandyHub", "health": status})
	})
}

// RegisterNavigationRoutes registers the navigator and notification endpoints.
func RegisterNavigationRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/navigation", hb.GetNavigation)
	api.POST("/navigation", hb.Navigate)
	api.GET("/notifications", hb.GetNotifications)
}

// RegisterAuthRoutes registers login, logout and the registration wizard.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", hb.Login)
		auth.POST("/logout", hb.Logout)
		auth.GET("/session", hb.GetSession)

		wizard := auth.Group("/register/wizard")
		wizard.POST("", hb.StartRegistration)
		wizard.PUT("", hb.UpdateRegistration)
		wizard.POST("/advance", hb.AdvanceRegistration)
		wizard.POST("/retreat", hb.RetreatRegistration)
	}
}

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/categories", hb.GetCategories)
	api.GET("/categories/:id", hb.GetCategory)
	api.GET("/categories/:id/reveal", hb.CategoryReveal)
	api.GET("/services/:id", hb.GetService)
	api.GET("/providers/:id", hb.GetProviderProfile)
	api.POST("/providers/:id/message", hb.MessageProvider)
}

// RegisterBookingRoutes sets up the booking wizard endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	booking := api.Group("/booking")
	{
		booking.Use(middleware.Authenticated(hb.Issuer))
		booking.GET("/time-slots", hb.GetTimeSlots)
		booking.POST("/:serviceID", hb.StartBooking)
		booking.PUT("/:serviceID", hb.UpdateBooking)
		booking.POST("/:serviceID/advance", hb.AdvanceBooking)
		booking.POST("/:serviceID/retreat", hb.RetreatBooking)
		booking.DELETE("/:serviceID", hb.CancelBooking)
	}
}

// RegisterEmergencyRoutes sets up the SOS endpoints.
func RegisterEmergencyRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	emergency := api.Group("/emergency")
	{
		emergency.Use(middleware.Authenticated(hb.Issuer))
		emergency.GET("/types", hb.GetEmergencyTypes)
		emergency.POST("", hb.SubmitEmergency)
		emergency.GET("", hb.GetEmergency)
		emergency.DELETE("", hb.CancelEmergency)
		emergency.GET("/stream", hb.EmergencyStream)
	}
}

// RegisterDashboardRoutes registers the role-specific home screens and the profile.
func RegisterDashboardRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	user := api.Group("/user")
	{
		user.Use(middleware.CustomerOnly(hb.Issuer))
		user.GET("/dashboard", hb.GetUserDashboard)
		user.GET("/home/reveal", hb.UserHomeReveal)
	}

	provider := api.Group("/provider")
	{
		provider.Use(middleware.ProviderOnly(hb.Issuer))
		provider.GET("/dashboard", hb.GetProviderDashboard)
		provider.GET("/jobs/reveal", hb.ProviderJobsReveal)
	}

	profile := api.Group("/profile")
	{
		profile.Use(middleware.Authenticated(hb.Issuer))
		profile.GET("", hb.GetProfile)
		profile.PUT("", hb.UpdateProfile)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.DeviceHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(middleware.DeviceMiddleware(hb.Registry))
	RegisterNavigationRoutes(api, hb)
	RegisterAuthRoutes(api, hb)
	RegisterCatalogRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterEmergencyRoutes(api, hb)
	RegisterDashboardRoutes(api, hb)
}
