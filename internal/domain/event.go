package domain

import (
	"context"
	"errors"
	"time"
)

// ErrEventNotFound is returned when an event id has no match in the catalog.
// Callers render a not-found state rather than treating it as a fault.
var ErrEventNotFound = errors.New("event not found")

// CategoryAll is the sentinel category that selects the full catalog.
const CategoryAll = "All"

// Event represents a published listing in the catalog
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // calendar date, YYYY-MM-DD
	Time        string `json:"time"` // local time of day, HH:MM
	Location    string `json:"location"`
	// Organizer is the display name shown on the listing. OrganizerID is
	// the creator's user id; it is empty on seed data, in which case
	// ownership falls back to a display-name match.
	Organizer        string  `json:"organizer"`
	OrganizerID      string  `json:"organizer_id,omitempty"`
	ImageURL         string  `json:"image_url"`
	Category         string  `json:"category"`
	Price            float64 `json:"price"`
	AvailableTickets int     `json:"available_tickets"`
	IsFeatured       bool    `json:"is_featured"`
}

// BelongsTo reports whether the user organizes this event. The creator's id
// wins when recorded; seed events match on display name.
func (e *Event) BelongsTo(user *User) bool {
	if e.OrganizerID != "" {
		return e.OrganizerID == user.ID
	}
	return e.Organizer == user.Name
}

// EventRepository defines the interface for the event catalog.
// Implementations own id generation and preserve insertion order in List.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	// DecrementTickets atomically replaces the event's inventory with
	// availableTickets - quantity and returns the updated record. It
	// refuses to go below zero with ErrInsufficientTickets.
	DecrementTickets(ctx context.Context, id string, quantity int) (*Event, error)
}

// Dashboard is the personal view for the current user: events they hold
// tickets for split by date, events they organize, and their ledger entries.
type Dashboard struct {
	UpcomingEvents  []*Event        `json:"upcoming_events"`
	PastEvents      []*Event        `json:"past_events"`
	OrganizedEvents []*Event        `json:"organized_events"`
	Registrations   []*Registration `json:"registrations"`
}

// EventService defines the business logic for the event catalog and the
// registration ledger. Derived views are recomputed on every call.
type EventService interface {
	GetEventByID(ctx context.Context, id string) (*Event, error)
	// SearchEvents matches the query case-insensitively against title,
	// description, location, and category. An empty query returns the full
	// catalog. Catalog order is preserved.
	SearchEvents(ctx context.Context, query string) ([]*Event, error)
	// FilterEventsByCategory matches the category exactly (case-sensitive).
	// CategoryAll or the empty string returns the full catalog.
	FilterEventsByCategory(ctx context.Context, category string) ([]*Event, error)
	FeaturedEvents(ctx context.Context) ([]*Event, error)
	// UserEvents returns events the current user holds tickets for or
	// organizes. Requires a bound session.
	UserEvents(ctx context.Context) ([]*Event, error)
	// Categories returns the distinct categories in catalog order.
	Categories(ctx context.Context) ([]string, error)
	// CalendarEvents returns the events dated within the given month,
	// sorted by date.
	CalendarEvents(ctx context.Context, year int, month time.Month) ([]*Event, error)
	// Dashboard builds the personal view for the current user.
	Dashboard(ctx context.Context) (*Dashboard, error)
	// CreateEvent appends to the catalog. No field validation and no
	// authorization happens here; the delivery layer gates both.
	CreateEvent(ctx context.Context, event *Event) error
	// RegisterForEvent performs the one state-changing domain operation:
	// append a ledger entry, decrement the event's inventory, and record
	// the event on the user, as a single critical section.
	RegisterForEvent(ctx context.Context, eventID string, ticketQuantity int) (*Registration, error)
}
