// Package catalog is the static, read-only service directory.
package catalog

import (
	"sort"
	"strconv"

	"handyhub/models"
)

// FallbackCategoryName is used for category ids that do not exist.
const FallbackCategoryName = "Service"

var byID = func() map[string]models.ServiceRecord {
	m := make(map[string]models.ServiceRecord)
	for _, list := range servicesByCategory {
		for _, s := range list {
			m[s.ID] = s
		}
	}
	for _, s := range unlistedServices {
		m[s.ID] = s
	}
	return m
}()

// FindByID looks up a single service.
func FindByID(id string) (models.ServiceRecord, bool) {
	s, ok := byID[id]
	return s, ok
}

// FindByCategory never fails: an unknown id yields no services and the fallback name.
func FindByCategory(categoryID string) models.CategoryListing {
	name := FallbackCategoryName
	for _, c := range categories {
		if c.ID == categoryID {
			name = c.Name
			break
		}
	}
	services := append([]models.ServiceRecord{}, servicesByCategory[categoryID]...)
	return models.CategoryListing{CategoryName: name, Services: services}
}

func Categories() []models.Category {
	return append([]models.Category(nil), categories...)
}

// All returns every service ordered by numeric id.
func All() []models.ServiceRecord {
	out := make([]models.ServiceRecord, 0, len(byID))
	for _, s := range byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		return a < b
	})
	return out
}

// Popular returns the services flagged popular.
func Popular() []models.ServiceRecord {
	return filter(func(s models.ServiceRecord) bool { return s.IsPopular })
}

// Emergency returns the services flagged for emergencies.
func Emergency() []models.ServiceRecord {
	return filter(func(s models.ServiceRecord) bool { return s.IsEmergency })
}

// Nearby returns the services listed as close to the customer, nearest first.
func Nearby() []models.ServiceRecord {
	out := make([]models.ServiceRecord, 0, len(nearbyIDs))
	for _, id := range nearbyIDs {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

func filter(keep func(models.ServiceRecord) bool) []models.ServiceRecord {
	var out []models.ServiceRecord
	for _, s := range All() {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// ProviderProfile builds the profile page reached from a service: the
// provider behind service id, with all of that provider's services.
func ProviderProfile(serviceID string) (models.ProviderProfile, bool) {
	svc, ok := FindByID(serviceID)
	if !ok {
		return models.ProviderProfile{}, false
	}

	p := models.ProviderProfile{
		ID:       svc.ID,
		Name:     svc.ProviderName,
		Title:    svc.Category + " Specialist",
		ImageURL: img(providerPortrait, "774"),
		Rating:   svc.Rating,
		Services: filter(func(s models.ServiceRecord) bool { return s.ProviderName == svc.ProviderName }),
		Reviews:  []models.Review{},
	}
	if d, ok := providerDetailsByName[svc.ProviderName]; ok {
		p.Title = d.title
		p.ExperienceYears = d.experienceYears
		p.About = append([]string(nil), d.about...)
		p.Specialties = append([]string(nil), d.specialties...)
		p.Reviews = append([]models.Review(nil), d.reviews...)
	} else {
		p.Specialties = []string{svc.Category}
	}
	return p, true
}

func UpcomingJobs() []models.Job {
	return append([]models.Job(nil), upcomingJobs...)
}

func PendingRequests() []models.Job {
	return append([]models.Job(nil), pendingRequests...)
}

func EmergencyTypes() []models.EmergencyType {
	return append([]models.EmergencyType(nil), emergencyTypes...)
}

// FindEmergencyType looks up an emergency kind by id.
func FindEmergencyType(id string) (models.EmergencyType, bool) {
	for _, t := range emergencyTypes {
		if t.ID == id {
			return t, true
		}
	}
	return models.EmergencyType{}, false
}
