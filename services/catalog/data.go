package catalog

import "handyhub/models"

const unsplash = "https://images.unsplash.com/"

func img(photo, width string) string {
	return unsplash + photo + "?ixlib=rb-4.0.3&auto=format&fit=crop&w=" + width + "&q=80"
}

var categories = []models.Category{
	{ID: "plumbing", Name: "Plumbing", Icon: "🔧"},
	{ID: "electrical", Name: "Electrical", Icon: "⚡"},
	{ID: "cleaning", Name: "Cleaning", Icon: "🧹"},
	{ID: "carpentry", Name: "Carpentry", Icon: "🪚"},
	{ID: "painting", Name: "Painting", Icon: "🖌️"},
	{ID: "gardening", Name: "Gardening", Icon: "🌱"},
	{ID: "moving", Name: "Moving", Icon: "📦"},
	{ID: "appliance", Name: "Appliance", Icon: "🔌"},
}

// Shown on the customer home screen under "Nearby".
var nearbyIDs = []string{"5", "6", "7"}

var servicesByCategory = map[string][]models.ServiceRecord{
	"plumbing": {
		{
			ID: "1", Title: "Emergency Plumbing", Category: "Plumbing",
			ImageURL: img("photo-1603302576837-37561b2e2302", "1470"),
			Rating:   4.8, Price: 350, ProviderName: "Mike's Plumbing",
			EstimatedTime: "30-60 min", Distance: "2.3 km", IsEmergency: true,
			Description: "Emergency plumbing services for urgent water leaks, pipe bursts, or blockages. Available 24/7 with quick response times.",
		},
		{
			ID: "8", Title: "Drain Cleaning", Category: "Plumbing",
			ImageURL: img("photo-1600566753086-00f18fb6b3ea", "1470"),
			Rating:   4.5, Price: 200, ProviderName: "DrainMaster Pro",
			EstimatedTime: "1-2 hours", Distance: "3.7 km",
		},
	},
	"electrical": {
		{
			ID: "2", Title: "Electrical Repairs", Category: "Electrical",
			ImageURL: img("photo-1621905251189-08b45d6a269e", "1469"),
			Rating:   4.7, Price: 280, ProviderName: "Volt Masters",
			EstimatedTime: "1-2 hours", Distance: "3.1 km", IsPopular: true,
			Description: "Professional electrical repair services for homes and businesses. We fix electrical faults, install new fixtures, and ensure your electrical systems are safe and up to code.",
		},
		{
			ID: "9", Title: "Light Installation", Category: "Electrical",
			ImageURL: img("photo-1517292987719-0369a794ec0f", "1074"),
			Rating:   4.6, Price: 150, ProviderName: "Bright Spark Electric",
			EstimatedTime: "1-2 hours", Distance: "2.5 km",
		},
	},
	"cleaning": {
		{
			ID: "3", Title: "House Cleaning", Category: "Cleaning",
			ImageURL: img("photo-1581578731548-c64695cc6952", "1470"),
			Rating:   4.9, Price: 200, ProviderName: "CleanPro Services",
			EstimatedTime: "2-3 hours", Distance: "1.5 km", IsPopular: true,
		},
		{
			ID: "10", Title: "Carpet Cleaning", Category: "Cleaning",
			ImageURL: img("photo-1558449028-b53a39d100fc", "1074"),
			Rating:   4.7, Price: 180, ProviderName: "Fresh Start Cleaners",
			EstimatedTime: "1-2 hours", Distance: "2.8 km",
		},
	},
	"carpentry": {
		{
			ID: "4", Title: "Furniture Assembly", Category: "Carpentry",
			ImageURL: img("photo-1631205767531-2976080f0f53", "1325"),
			Rating:   4.6, Price: 180, ProviderName: "Assembly Experts",
			EstimatedTime: "1-2 hours", Distance: "4.2 km",
		},
		{
			ID: "11", Title: "Custom Shelving", Category: "Carpentry",
			ImageURL: img("photo-1611145434336-2d2c72cc5d4b", "1170"),
			Rating:   4.8, Price: 250, ProviderName: "Woodcraft Solutions",
			EstimatedTime: "2-3 hours", Distance: "3.5 km",
		},
	},
	"gardening": {
		{
			ID: "5", Title: "Lawn Mowing Service", Category: "Gardening",
			ImageURL: img("photo-1564944970217-0b5a90c73a8a", "1074"),
			Rating:   4.5, Price: 150, ProviderName: "Green Thumb Gardening",
			EstimatedTime: "1-2 hours", Distance: "0.8 km",
		},
		{
			ID: "12", Title: "Garden Design", Category: "Gardening",
			ImageURL: img("photo-1598902108854-10e335adac99", "1074"),
			Rating:   4.9, Price: 300, ProviderName: "Eden Gardens",
			EstimatedTime: "2-3 hours", Distance: "1.7 km",
		},
	},
	"appliance": {
		{
			ID: "6", Title: "AC Repair & Service", Category: "Appliance Repair",
			ImageURL: img("photo-1499493602564-0dafd836ee6e", "1074"),
			Rating:   4.7, Price: 320, ProviderName: "Cool Air Technicians",
			EstimatedTime: "1-3 hours", Distance: "1.1 km", IsPopular: true,
		},
		{
			ID: "13", Title: "Refrigerator Repair", Category: "Appliance Repair",
			ImageURL: img("photo-1584269600464-37b1b58a9fe7", "1471"),
			Rating:   4.6, Price: 280, ProviderName: "Appliance Pros",
			EstimatedTime: "1-2 hours", Distance: "2.2 km",
		},
	},
	"painting": {
		{
			ID: "14", Title: "Interior Painting", Category: "Painting",
			ImageURL: img("photo-1562259929-b4e1fd3aef09", "1074"),
			Rating:   4.7, Price: 250, ProviderName: "Color Masters",
			EstimatedTime: "3-6 hours", Distance: "2.4 km",
		},
		{
			ID: "15", Title: "Exterior Painting", Category: "Painting",
			ImageURL: img("photo-1589939705384-5185137a7f0f", "1470"),
			Rating:   4.8, Price: 350, ProviderName: "Fresh Coat Painters",
			EstimatedTime: "1-2 days", Distance: "3.1 km",
		},
	},
	"moving": {
		{
			ID: "7", Title: "TV Mounting", Category: "Home Improvement",
			ImageURL: img("photo-1581092446287-7d13eebd952c", "1470"),
			Rating:   4.8, Price: 120, ProviderName: "Tech Installers",
			EstimatedTime: "30-60 min", Distance: "1.4 km",
		},
		{
			ID: "16", Title: "Residential Moving", Category: "Moving",
			ImageURL: img("photo-1610143595935-3bd25d104237", "1074"),
			Rating:   4.5, Price: 400, ProviderName: "Swift Movers",
			EstimatedTime: "3-6 hours", Distance: "2.8 km",
		},
	},
}

// Services listed on a provider page but not under any category.
var unlistedServices = []models.ServiceRecord{
	{
		ID: "17", Title: "Pipe Repairs", Category: "Plumbing",
		ImageURL: img("photo-1558618666-fcd25c85cd64", "1471"),
		Rating:   4.9, Price: 280, ProviderName: "Mike's Plumbing",
		EstimatedTime: "1-2 hours", Distance: "2.3 km",
	},
}

const providerPortrait = "photo-1507003211169-0a1dd7228f2d"

type providerDetails struct {
	title           string
	experienceYears int
	about           []string
	specialties     []string
	reviews         []models.Review
}

var providerDetailsByName = map[string]providerDetails{
	"Mike's Plumbing": {
		title:           "Licensed Plumber",
		experienceYears: 13,
		about: []string{
			"Mike's Plumbing has been providing exceptional plumbing services to Cape Town and surrounding areas since 2010. With over 13 years of experience, we specialize in emergency repairs, installations, and maintenance of all plumbing systems.",
			"Our team consists of licensed and experienced plumbers who are dedicated to delivering high-quality workmanship and excellent customer service. We pride ourselves on being prompt, reliable, and thorough in all our work.",
		},
		specialties: []string{"Plumbing", "Water Heaters", "Pipe Repairs"},
		reviews: []models.Review{
			{ID: "1", Name: "Sarah Johnson", Rating: 5, Date: "2023-05-15", ServiceTitle: "Pipe Repairs",
				Comment: "Mike did an excellent job fixing our leaky faucet. He was prompt, professional, and very knowledgeable. Would definitely recommend!"},
			{ID: "2", Name: "James Wilson", Rating: 4, Date: "2023-04-22", ServiceTitle: "Emergency Plumbing",
				Comment: "Quick response to our emergency plumbing issue. Arrived within an hour and fixed the problem efficiently."},
			{ID: "3", Name: "Emily Davis", Rating: 5, Date: "2023-03-11", ServiceTitle: "Sink Installation",
				Comment: "Very professional service. Mike explained everything clearly and did a great job installing our new sink."},
		},
	},
}

var upcomingJobs = []models.Job{
	{ID: "1", Title: "Fix Leaking Sink", Client: "John Doe", Address: "123 Main St, Cape Town", Time: "1 Apr, 09:00 - 10:30 AM", Price: 350, Distance: "3.2 km"},
	{ID: "2", Title: "Repair Electrical Socket", Client: "Sarah Johnson", Address: "456 Park Ave, Cape Town", Time: "1 Apr, 1:00 - 2:00 PM", Price: 280, Distance: "5.7 km"},
	{ID: "3", Title: "Install Bathroom Fixtures", Client: "Michael Brown", Address: "789 Oak St, Cape Town", Time: "2 Apr, 10:00 - 12:00 PM", Price: 500, Distance: "4.1 km"},
}

var pendingRequests = []models.Job{
	{ID: "4", Title: "Replace Kitchen Faucet", Client: "Emily Davis", Address: "101 Pine St, Cape Town", RequestTime: "30 minutes ago", Price: 280, Distance: "2.8 km", Urgency: models.UrgencyLow},
	{ID: "5", Title: "Fix Bathroom Drain", Client: "David Wilson", Address: "202 Cedar Rd, Cape Town", RequestTime: "1 hour ago", Price: 320, Distance: "3.5 km", Urgency: models.UrgencyMedium},
	{ID: "6", Title: "Emergency Water Heater Repair", Client: "Lisa Thompson", Address: "303 Elm Blvd, Cape Town", RequestTime: "15 minutes ago", Price: 450, Distance: "1.2 km", Urgency: models.UrgencyHigh},
}

var emergencyTypes = []models.EmergencyType{
	{ID: "plumbing", Name: "Plumbing Emergency", Icon: "🔧"},
	{ID: "electrical", Name: "Electrical Emergency", Icon: "⚡"},
	{ID: "locksmith", Name: "Locksmith", Icon: "🔑"},
	{ID: "gas", Name: "Gas Leak", Icon: "🔥"},
	{ID: "security", Name: "Security Breach", Icon: "🚨"},
	{ID: "medical", Name: "Medical Emergency", Icon: "🚑"},
}
