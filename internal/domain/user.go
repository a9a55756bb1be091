package domain

import (
	"context"
	"errors"
)

// Sentinel errors for identity operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidCredentials is the single failure for login. It deliberately
	// carries no detail: an unknown email and a malformed one are
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Role is a capability level, not a hierarchy. Organizers and admins may
// both publish events; no admin-only operation exists.
type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// CanCreateEvents reports whether the role is allowed to publish events.
func (r Role) CanCreateEvents() bool {
	return r == RoleOrganizer || r == RoleAdmin
}

// User represents an identity in the user directory
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	// PasswordHash is set at account registration and never verified
	// afterwards; login accepts any password for a known email.
	PasswordHash     string   `json:"-"`
	RegisteredEvents []string `json:"registered_events"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(name, email, passwordHash string, role Role) *User {
	return &User{
		Name:             name,
		Email:            email,
		PasswordHash:     passwordHash,
		Role:             role,
		RegisteredEvents: []string{},
	}
}

// PasswordHasher hashes a password for storage. There is no compare
// counterpart: stored hashes are never checked against a login attempt.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserRepository defines the interface for the user directory.
// Implementations own id generation and must never hand out references
// into their internal state; callers get and give copies.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// AddRegisteredEvent records that the user holds tickets for the event.
	// Adding an event id the user already has is a no-op.
	AddRegisteredEvent(ctx context.Context, userID, eventID string) error
	List(ctx context.Context) ([]*User, error)
}

// IdentityService defines the business logic for the user directory and the
// current session. The session binds the process to at most one user; reads
// re-fetch the bound record by id rather than holding a reference to it.
type IdentityService interface {
	// Login binds the user with the given email as the current session.
	// Any password is accepted for a known email.
	Login(ctx context.Context, email, password string) (*User, error)
	// Register creates a new user with role "user" and binds it as the
	// current session.
	Register(ctx context.Context, name, email, password string) (*User, error)
	// Logout clears the session and the persisted snapshot. Always succeeds.
	Logout(ctx context.Context)
	// Current returns the user bound to the session, if any.
	Current(ctx context.Context) (*User, bool)
	// RestoreSession attempts to rebind the session from the persisted
	// snapshot. A corrupt, unverifiable, or dangling snapshot is discarded.
	RestoreSession(ctx context.Context)
}
