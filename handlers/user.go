package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"handyhub/models"
	"handyhub/services/catalog"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
)

// GetUserDashboardHandler builds the customer home screen.
func GetUserDashboardHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	name := "there"
	if sess, ok := d.Store.Current(); ok && sess.Name != "" {
		name = sess.Name
	}
	c.JSON(http.StatusOK, models.UserDashboard{
		Greeting:          fmt.Sprintf("Hi, %s!", name),
		Categories:        catalog.Categories(),
		PopularServices:   catalog.Popular(),
		NearbyServices:    catalog.Nearby(),
		EmergencyServices: catalog.Emergency(),
	})
}

// GetProviderDashboardHandler builds the provider home screen.
func GetProviderDashboardHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	name := "Provider"
	if sess, ok := d.Store.Current(); ok {
		if first := strings.Fields(sess.Name); len(first) > 0 {
			name = first[0]
		}
	}
	c.JSON(http.StatusOK, models.ProviderDashboard{
		Greeting:        "Welcome Back, " + name,
		UpcomingJobs:    catalog.UpcomingJobs(),
		PendingRequests: catalog.PendingRequests(),
	})
}

// ProviderJob tags a dashboard job with the list it belongs to.
type ProviderJob struct {
	Kind string `json:"kind"`
	models.Job
}

// ProviderJobsRevealHandler streams upcoming jobs then pending requests.
func (h *RevealHandler) ProviderJobsRevealHandler(c *gin.Context) {
	var items []any
	for _, j := range catalog.UpcomingJobs() {
		items = append(items, ProviderJob{Kind: "upcoming", Job: j})
	}
	for _, j := range catalog.PendingRequests() {
		items = append(items, ProviderJob{Kind: "pending", Job: j})
	}
	h.stream(c, StreamMessage{Event: "jobs", Data: gin.H{"count": len(items)}}, items)
}

// ServiceCard tags a home-screen service with the section it belongs to.
type ServiceCard struct {
	Kind string `json:"kind"`
	models.ServiceRecord
}

// UserHomeRevealHandler streams popular services then nearby ones.
func (h *RevealHandler) UserHomeRevealHandler(c *gin.Context) {
	var items []any
	for _, s := range catalog.Popular() {
		items = append(items, ServiceCard{Kind: "popular", ServiceRecord: s})
	}
	for _, s := range catalog.Nearby() {
		items = append(items, ServiceCard{Kind: "nearby", ServiceRecord: s})
	}
	h.stream(c, StreamMessage{Event: "home", Data: gin.H{"count": len(items)}}, items)
}

// CategoryRevealHandler streams the services of a category.
func (h *RevealHandler) CategoryRevealHandler(c *gin.Context) {
	listing := catalog.FindByCategory(c.Param("id"))
	items := make([]any, 0, len(listing.Services))
	for _, s := range listing.Services {
		items = append(items, s)
	}
	h.stream(c, StreamMessage{Event: "listing", Data: gin.H{"categoryName": listing.CategoryName, "count": len(items)}}, items)
}

// GetProfileHandler returns the signed-in identity.
func GetProfileHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	sess, ok := d.Store.Current()
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Please login to continue", "")
		return
	}
	c.JSON(http.StatusOK, sess)
}

// UpdateProfileHandler simulates a save; nothing is persisted.
func UpdateProfileHandler(c *gin.Context) {
	d, ok := currentDevice(c)
	if !ok {
		return
	}
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	d.Notifier().Success("Profile updated successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": input})
}
