package domain

import (
	"context"
	"errors"
)

// Sentinel errors for the registration operation, in precondition order.
var (
	ErrNoSession           = errors.New("no user session bound")
	ErrAlreadyRegistered   = errors.New("already registered for event")
	ErrInvalidQuantity     = errors.New("ticket quantity must be at least 1")
	ErrInsufficientTickets = errors.New("not enough tickets available")
)

// Registration is a ledger entry recording one user's ticket purchase for
// one event. Immutable once created; there is no cancellation or refund.
type Registration struct {
	ID             string `json:"id"`
	EventID        string `json:"event_id"`
	UserID         string `json:"user_id"`
	TicketQuantity int    `json:"ticket_quantity"`
	// TotalPrice is a snapshot of price x quantity at purchase time and is
	// never recomputed.
	TotalPrice       float64 `json:"total_price"`
	RegistrationDate string  `json:"registration_date"` // YYYY-MM-DD
}

// NewRegistration returns a new Registration. ID is set by the repository on create.
func NewRegistration(eventID, userID string, ticketQuantity int, totalPrice float64, registrationDate string) *Registration {
	return &Registration{
		EventID:          eventID,
		UserID:           userID,
		TicketQuantity:   ticketQuantity,
		TotalPrice:       totalPrice,
		RegistrationDate: registrationDate,
	}
}

// RegistrationRepository defines the interface for the append-only ledger.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *Registration) error
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
	List(ctx context.Context) ([]*Registration, error)
}
