// Package seed holds the demo dataset served when no remote data service
// is configured.
package seed

import (
	"github.com/planora/api/pkg/convert"
	"github.com/planora/api/pkg/pointer"

	"github.com/planora/api/internal/core/availability"
	"github.com/planora/api/internal/core/booking"
	"github.com/planora/api/internal/core/client"
	"github.com/planora/api/internal/core/event"
	"github.com/planora/api/internal/core/provider"
	"github.com/planora/api/internal/core/review"
	"github.com/planora/api/internal/core/venue"
)

// Data is a complete in-memory dataset covering every collection.
type Data struct {
	Clients   []client.Client
	CommLogs  []client.CommunicationLog
	Providers []provider.ServiceProvider
	Venues    []venue.Venue
	Events    []event.Event
	Tasks     []event.Task
	Timeline  []event.TimelineItem
	Bookings  []booking.Booking
	Reviews   []review.Review
	Slots     []availability.Slot
}

// Demo returns the built-in demo dataset.
func Demo() Data {
	return Data{
		Clients:   demoClients(),
		CommLogs:  demoCommLogs(),
		Providers: demoProviders(),
		Venues:    demoVenues(),
		Events:    demoEvents(),
		Tasks:     demoTasks(),
		Timeline:  demoTimeline(),
		Bookings:  []booking.Booking{},
		Reviews:   demoReviews(),
		Slots:     demoSlots(),
	}
}

func demoClients() []client.Client {
	return []client.Client{
		{
			ID:        "1",
			Name:      "Sarah Johnson",
			Email:     "sarah.johnson@email.com",
			Phone:     "+1 (555) 123-4567",
			Address:   "123 Main St, New York, NY 10001",
			CreatedAt: convert.ToTime("2024-01-10"),
		},
		{
			ID:        "2",
			Name:      "Michael Chen",
			Email:     "michael.chen@email.com",
			Phone:     "+1 (555) 234-5678",
			Address:   "456 Oak Ave, Los Angeles, CA 90001",
			CreatedAt: convert.ToTime("2024-01-12"),
		},
		{
			ID:        "3",
			Name:      "Emily Rodriguez",
			Email:     "emily.rodriguez@email.com",
			Phone:     "+1 (555) 345-6789",
			CreatedAt: convert.ToTime("2024-01-14"),
		},
	}
}

func demoCommLogs() []client.CommunicationLog {
	return []client.CommunicationLog{
		{
			ID:       "c1",
			ClientID: "1",
			Date:     "2024-01-15",
			Type:     client.CommPhone,
			Summary:  "Discussed wedding venue options and budget",
		},
	}
}

func demoProviders() []provider.ServiceProvider {
	return []provider.ServiceProvider{
		{
			ID:          "sp1",
			Name:        "Perfect Moments Photography",
			ServiceType: provider.TypePhotographer,
			Description: "Professional wedding and event photography with 10+ years of experience",
			Portfolio: []string{
				"https://images.unsplash.com/photo-1519741497674-611481863552",
				"https://images.unsplash.com/photo-1606216794074-735e91aa2c92",
			},
			Pricing:  provider.PriceRange{Min: 1500, Max: 5000, Currency: "USD"},
			Rating:   4.8,
			Phone:    "+1 (555) 111-2222",
			Email:    "info@perfectmoments.com",
			Location: "New York, NY",
		},
		{
			ID:          "sp2",
			Name:        "Elite Videography",
			ServiceType: provider.TypeVideographer,
			Description: "Cinematic wedding and event videography",
			Portfolio: []string{
				"https://images.unsplash.com/photo-1492691527719-9d1e07e534b4",
			},
			Pricing:  provider.PriceRange{Min: 2000, Max: 6000, Currency: "USD"},
			Rating:   4.9,
			Phone:    "+1 (555) 222-3333",
			Email:    "contact@elitevideo.com",
			Location: "Los Angeles, CA",
		},
		{
			ID:          "sp3",
			Name:        "Sky View Drones",
			ServiceType: provider.TypeDroneOperator,
			Description: "Aerial photography and videography for events",
			Portfolio: []string{
				"https://images.unsplash.com/photo-1473496169904-658ba7c44d8a",
			},
			Pricing:  provider.PriceRange{Min: 500, Max: 1500, Currency: "USD"},
			Rating:   4.7,
			Phone:    "+1 (555) 333-4444",
			Email:    "fly@skyviewdrones.com",
			Location: "Miami, FL",
		},
		{
			ID:          "sp4",
			Name:        "Gourmet Catering Co.",
			ServiceType: provider.TypeCaterer,
			Description: "Full-service catering for all types of events",
			Portfolio: []string{
				"https://images.unsplash.com/photo-1555244162-803834f70033",
			},
			Pricing:  provider.PriceRange{Min: 3000, Max: 15000, Currency: "USD"},
			Rating:   4.9,
			Phone:    "+1 (555) 444-5555",
			Email:    "events@gourmetcatering.com",
			Location: "Chicago, IL",
		},
		{
			ID:          "sp5",
			Name:        "DJ Beats Entertainment",
			ServiceType: provider.TypeDJ,
			Description: "Professional DJ services for weddings and parties",
			Portfolio:   []string{},
			Pricing:     provider.PriceRange{Min: 800, Max: 2500, Currency: "USD"},
			Rating:      4.6,
			Phone:       "+1 (555) 555-6666",
			Email:       "book@djbeats.com",
			Location:    "Austin, TX",
		},
		{
			ID:          "sp6",
			Name:        "Elegant Decor Studio",
			ServiceType: provider.TypeDecorator,
			Description: "Custom event decoration and design services",
			Portfolio: []string{
				"https://images.unsplash.com/photo-1464366400600-7168b8af9bc3",
			},
			Pricing:  provider.PriceRange{Min: 1000, Max: 8000, Currency: "USD"},
			Rating:   4.8,
			Phone:    "+1 (555) 666-7777",
			Email:    "design@elegantdecor.com",
			Location: "Seattle, WA",
		},
	}
}

func demoVenues() []venue.Venue {
	return []venue.Venue{
		{
			ID:          "v1",
			Name:        "Grand Ballroom Hotel",
			Description: "Elegant ballroom perfect for weddings and large celebrations",
			Photos: []string{
				"https://images.unsplash.com/photo-1519167758481-83f29da8c2b0",
				"https://images.unsplash.com/photo-1464366400600-7168b8af9bc3",
			},
			Capacity:  300,
			Pricing:   venue.Pricing{PerDay: pointer.To(5000.0), Currency: "USD"},
			Location:  "New York, NY",
			Amenities: []string{"Parking", "Catering Kitchen", "Sound System", "Stage", "Bridal Suite"},
			Rating:    4.7,
		},
		{
			ID:          "v2",
			Name:        "Garden Paradise",
			Description: "Outdoor garden venue with stunning natural beauty",
			Photos: []string{
				"https://images.unsplash.com/photo-1478146896981-b80fe463b330",
			},
			Capacity:  150,
			Pricing:   venue.Pricing{PerDay: pointer.To(3000.0), Currency: "USD"},
			Location:  "Los Angeles, CA",
			Amenities: []string{"Garden", "Gazebo", "Parking", "Restrooms"},
			Rating:    4.9,
		},
		{
			ID:          "v3",
			Name:        "Skyline Rooftop",
			Description: "Modern rooftop venue with city views",
			Photos: []string{
				"https://images.unsplash.com/photo-1511795409834-ef04bbd61622",
			},
			Capacity:  100,
			Pricing:   venue.Pricing{PerHour: pointer.To(500.0), Currency: "USD"},
			Location:  "Chicago, IL",
			Amenities: []string{"Bar", "Lounge Area", "City Views", "Climate Control"},
			Rating:    4.8,
		},
	}
}

func demoEvents() []event.Event {
	return []event.Event{
		{
			ID:         "e1",
			Title:      "Sarah & John Wedding",
			Type:       event.TypeWedding,
			ClientID:   "1",
			VenueID:    "v1",
			Date:       "2024-06-15",
			StartTime:  "16:00",
			EndTime:    "23:00",
			GuestCount: 200,
			Budget:     25000,
			Status:     event.StatusPlanning,
			Notes:      "Outdoor ceremony weather permitting",
			Providers: []event.Assignment{
				{ProviderID: "sp1", ServiceType: "photographer"},
				{ProviderID: "sp4", ServiceType: "caterer"},
			},
		},
		{
			ID:         "e2",
			Title:      "Michael's 40th Birthday",
			Type:       event.TypeBirthday,
			ClientID:   "2",
			VenueID:    "v3",
			Date:       "2024-07-20",
			StartTime:  "19:00",
			EndTime:    "23:00",
			GuestCount: 80,
			Budget:     8000,
			Status:     event.StatusConfirmed,
			Providers: []event.Assignment{
				{ProviderID: "sp5", ServiceType: "dj"},
			},
		},
	}
}

func demoTasks() []event.Task {
	return []event.Task{
		{ID: "t1", EventID: "e1", Title: "Send invitations", DueDate: "2024-05-01", Completed: false},
		{ID: "t2", EventID: "e1", Title: "Finalize menu", DueDate: "2024-05-15", Completed: false},
	}
}

func demoTimeline() []event.TimelineItem {
	return []event.TimelineItem{
		{ID: "tl1", EventID: "e1", Title: "Ceremony", Date: "2024-06-15", Time: "16:00", Description: "Wedding ceremony"},
		{ID: "tl2", EventID: "e1", Title: "Reception", Date: "2024-06-15", Time: "18:00", Description: "Dinner and dancing"},
	}
}

func demoReviews() []review.Review {
	return []review.Review{
		{
			ID:         "r1",
			ProviderID: "sp1",
			ClientName: "Sarah Johnson",
			Rating:     5,
			Comment:    "Amazing photographer! Captured every moment perfectly.",
			Date:       "2024-01-10",
		},
		{
			ID:         "r2",
			ProviderID: "sp4",
			ClientName: "Michael Chen",
			Rating:     5,
			Comment:    "Food was incredible! Guests loved everything.",
			Date:       "2024-01-05",
		},
		{
			ID:         "rv1",
			VenueID:    "v1",
			ClientName: "Sarah Johnson",
			Rating:     5,
			Comment:    "Beautiful venue with excellent service!",
			Date:       "2024-01-08",
		},
	}
}

func demoSlots() []availability.Slot {
	return []availability.Slot{
		{ID: "as1", ProviderID: "sp1", Date: "2024-06-15", Available: true},
		{ID: "as2", ProviderID: "sp1", Date: "2024-06-22", Available: false},
		{ID: "as3", ProviderID: "sp2", Date: "2024-06-15", Available: true},
		{ID: "as4", ProviderID: "sp3", Date: "2024-06-15", Available: true},
		{ID: "as5", ProviderID: "sp4", Date: "2024-06-15", Available: true},
		{ID: "as6", ProviderID: "sp5", Date: "2024-06-15", Available: false},
		{ID: "as7", ProviderID: "sp6", Date: "2024-06-15", Available: true},
		{ID: "as8", VenueID: "v1", Date: "2024-06-15", Available: true},
		{ID: "as9", VenueID: "v1", Date: "2024-06-22", Available: false},
		{ID: "as10", VenueID: "v2", Date: "2024-06-15", Available: true},
		{ID: "as11", VenueID: "v3", Date: "2024-06-15", Available: false},
	}
}
