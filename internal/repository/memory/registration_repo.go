package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"eventhub/internal/domain"
)

// RegistrationRepository is an in-memory, append-only domain.RegistrationRepository.
// Entries are immutable once created.
type RegistrationRepository struct {
	mu      sync.RWMutex
	entries []*domain.Registration
}

// NewRegistrationRepository returns an empty in-memory ledger.
func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{}
}

// Create appends the entry to the ledger, assigning an id when the caller
// did not set one (seed data carries fixed ids).
func (r *RegistrationRepository) Create(ctx context.Context, registration *domain.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if registration.ID == "" {
		registration.ID = uuid.NewString()
	}
	cp := *registration
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *RegistrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Registration{}
	for _, entry := range r.entries {
		if entry.UserID == userID {
			cp := *entry
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *RegistrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Registration, 0, len(r.entries))
	for _, entry := range r.entries {
		cp := *entry
		out = append(out, &cp)
	}
	return out, nil
}
