package memory

import (
	"context"
	"fmt"

	"eventhub/internal/domain"
)

// Seed loads the fixed demo dataset into the repositories: six events, three
// users, and two existing ledger entries. Seed records carry fixed ids so
// relations between them stay stable across restarts.
func Seed(ctx context.Context, users *UserRepository, events *EventRepository, registrations *RegistrationRepository) error {
	for _, event := range seedEvents() {
		if err := events.Create(ctx, event); err != nil {
			return fmt.Errorf("seed event %q: %w", event.Title, err)
		}
	}
	for _, user := range seedUsers() {
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %q: %w", user.Email, err)
		}
	}
	for _, registration := range seedRegistrations() {
		if err := registrations.Create(ctx, registration); err != nil {
			return fmt.Errorf("seed registration %s: %w", registration.ID, err)
		}
	}
	return nil
}

func seedEvents() []*domain.Event {
	return []*domain.Event{
		{
			ID:               "1",
			Title:            "Tech Conference 2025",
			Description:      "Join us for the biggest tech conference of the year featuring keynotes from industry leaders, workshops, and networking opportunities.",
			Date:             "2025-06-15",
			Time:             "09:00",
			Location:         "San Francisco Convention Center",
			Organizer:        "TechEvents Inc.",
			ImageURL:         "https://images.pexels.com/photos/2774556/pexels-photo-2774556.jpeg",
			Category:         "Technology",
			Price:            299,
			AvailableTickets: 1000,
			IsFeatured:       true,
		},
		{
			ID:               "2",
			Title:            "Music Festival",
			Description:      "Three days of amazing performances by top artists across multiple stages in a beautiful outdoor setting.",
			Date:             "2025-07-10",
			Time:             "12:00",
			Location:         "Golden Gate Park",
			Organizer:        "Festival Productions",
			ImageURL:         "https://images.pexels.com/photos/1190297/pexels-photo-1190297.jpeg",
			Category:         "Music",
			Price:            149,
			AvailableTickets: 5000,
			IsFeatured:       true,
		},
		{
			ID:               "3",
			Title:            "Business Leadership Summit",
			Description:      "Learn from top executives and thought leaders about strategies for business growth and leadership.",
			Date:             "2025-05-20",
			Time:             "10:00",
			Location:         "Grand Hotel Conference Center",
			Organizer:        "Business Network",
			ImageURL:         "https://images.pexels.com/photos/2977565/pexels-photo-2977565.jpeg",
			Category:         "Business",
			Price:            399,
			AvailableTickets: 300,
			IsFeatured:       false,
		},
		{
			ID:               "4",
			Title:            "Wellness Retreat",
			Description:      "A weekend of yoga, meditation, and wellness workshops to rejuvenate your mind and body.",
			Date:             "2025-08-05",
			Time:             "08:00",
			Location:         "Mountain View Resort",
			Organizer:        "Wellness Collective",
			ImageURL:         "https://images.pexels.com/photos/8436589/pexels-photo-8436589.jpeg",
			Category:         "Health",
			Price:            249,
			AvailableTickets: 150,
			IsFeatured:       false,
		},
		{
			ID:               "5",
			Title:            "Startup Pitch Competition",
			Description:      "Watch innovative startups pitch their ideas to investors and compete for funding.",
			Date:             "2025-04-10",
			Time:             "13:00",
			Location:         "Innovation Hub",
			Organizer:        "Venture Capital Group",
			ImageURL:         "https://images.pexels.com/photos/3184360/pexels-photo-3184360.jpeg",
			Category:         "Business",
			Price:            0,
			AvailableTickets: 200,
			IsFeatured:       true,
		},
		{
			ID:               "6",
			Title:            "Food & Wine Festival",
			Description:      "Taste exquisite dishes and wines from top chefs and vineyards in the region.",
			Date:             "2025-09-25",
			Time:             "16:00",
			Location:         "Riverside Gardens",
			Organizer:        "Culinary Association",
			ImageURL:         "https://images.pexels.com/photos/5638646/pexels-photo-5638646.jpeg",
			Category:         "Food",
			Price:            85,
			AvailableTickets: 500,
			IsFeatured:       false,
		},
	}
}

func seedUsers() []*domain.User {
	return []*domain.User{
		{
			ID:               "1",
			Name:             "John Doe",
			Email:            "john@example.com",
			Role:             domain.RoleUser,
			RegisteredEvents: []string{"1", "5"},
		},
		{
			ID:               "2",
			Name:             "Jane Smith",
			Email:            "jane@example.com",
			Role:             domain.RoleOrganizer,
			RegisteredEvents: []string{},
		},
		{
			ID:               "3",
			Name:             "Admin User",
			Email:            "admin@example.com",
			Role:             domain.RoleAdmin,
			RegisteredEvents: []string{},
		},
	}
}

func seedRegistrations() []*domain.Registration {
	return []*domain.Registration{
		{
			ID:               "1",
			EventID:          "1",
			UserID:           "1",
			TicketQuantity:   2,
			TotalPrice:       598,
			RegistrationDate: "2025-03-15",
		},
		{
			ID:               "2",
			EventID:          "5",
			UserID:           "1",
			TicketQuantity:   1,
			TotalPrice:       0,
			RegistrationDate: "2025-02-28",
		},
	}
}
