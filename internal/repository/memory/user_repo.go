// Package memory holds the in-memory repositories backing the catalog, the
// ledger, and the user directory. All state is process-local; the only
// durable artifact in the system is the session snapshot, which lives
// elsewhere. Repositories copy records in and out so no caller ever holds a
// reference into store state, and they own id generation.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"eventhub/internal/domain"
)

// UserRepository is an in-memory domain.UserRepository.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	idByEmail map[string]string
	order   []string
}

// NewUserRepository returns an empty in-memory user directory.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:      make(map[string]*domain.User),
		idByEmail: make(map[string]string),
	}
}

// Create adds the user to the directory, enforcing email uniqueness and
// assigning an id when the caller did not set one (seed data carries fixed ids).
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.idByEmail[user.Email]; exists {
		return domain.ErrDuplicateEmail
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	stored := cloneUser(user)
	r.byID[stored.ID] = stored
	r.idByEmail[stored.Email] = stored.ID
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.idByEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.byID[id]), nil
}

// AddRegisteredEvent appends eventID to the user's registered-events set.
// Duplicates do not accumulate.
func (r *UserRepository) AddRegisteredEvent(ctx context.Context, userID, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if slices.Contains(user.RegisteredEvents, eventID) {
		return nil
	}
	user.RegisteredEvents = append(user.RegisteredEvents, eventID)
	return nil
}

// List returns the directory in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, cloneUser(r.byID[id]))
	}
	return users, nil
}

func cloneUser(u *domain.User) *domain.User {
	cp := *u
	cp.RegisteredEvents = slices.Clone(u.RegisteredEvents)
	if cp.RegisteredEvents == nil {
		cp.RegisteredEvents = []string{}
	}
	return &cp
}
