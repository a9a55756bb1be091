package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"eventhub/internal/domain"
)

// EventRepository is an in-memory domain.EventRepository. List preserves
// catalog (insertion) order.
type EventRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Event
	order []string
}

// NewEventRepository returns an empty in-memory catalog.
func NewEventRepository() *EventRepository {
	return &EventRepository{byID: make(map[string]*domain.Event)}
}

// Create appends the event to the catalog, assigning an id when the caller
// did not set one (seed data carries fixed ids).
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	cp := *event
	r.byID[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *event
	return &cp, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := make([]*domain.Event, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		events = append(events, &cp)
	}
	return events, nil
}

// DecrementTickets replaces the stored record with one whose inventory is
// reduced by quantity. The check and the replacement happen under one lock,
// so the inventory can never go negative.
func (r *EventRepository) DecrementTickets(ctx context.Context, id string, quantity int) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if quantity > event.AvailableTickets {
		return nil, domain.ErrInsufficientTickets
	}
	updated := *event
	updated.AvailableTickets -= quantity
	r.byID[id] = &updated
	cp := updated
	return &cp, nil
}
