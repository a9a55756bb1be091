package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"eventhub/internal/domain"
)

type identityService struct {
	userRepo     domain.UserRepository
	hasher       domain.PasswordHasher
	signer       domain.SnapshotSigner
	verifier     domain.SnapshotVerifier
	storage      domain.KeyValueStore
	emailService domain.EmailService
	latency      time.Duration
	logger       *slog.Logger

	mu            sync.RWMutex
	currentUserID string
}

// NewIdentityService creates an IdentityService over the given directory,
// snapshot ports, and storage. latency is the artificial delay applied to
// login and registration, standing in for a remote call; zero disables it.
func NewIdentityService(
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	signer domain.SnapshotSigner,
	verifier domain.SnapshotVerifier,
	storage domain.KeyValueStore,
	emailService domain.EmailService,
	latency time.Duration,
	logger *slog.Logger,
) domain.IdentityService {
	return &identityService{
		userRepo:     userRepo,
		hasher:       hasher,
		signer:       signer,
		verifier:     verifier,
		storage:      storage,
		emailService: emailService,
		latency:      latency,
		logger:       logger,
	}
}

func (s *identityService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := s.simulateRemoteCall(ctx); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	// Demo semantics: any password is accepted for a known email. The hash
	// stored at registration is deliberately never compared.
	_ = password

	s.bind(user.ID)
	s.persistSnapshot(ctx, user)
	return user, nil
}

func (s *identityService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if err := s.simulateRemoteCall(ctx); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(strings.ToLower(email))

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(strings.TrimSpace(name), email, hash, domain.RoleUser)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.bind(user.ID)
	s.persistSnapshot(ctx, user)

	if s.emailService != nil {
		data := &domain.WelcomeEmailData{Email: user.Email, Name: user.Name}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "failed to send welcome email", "email", user.Email, "err", err)
		}
	}
	return user, nil
}

func (s *identityService) Logout(ctx context.Context) {
	s.bind("")
	if err := s.storage.Delete(domain.SessionKey); err != nil {
		s.logger.WarnContext(ctx, "failed to remove persisted session", "err", err)
	}
}

func (s *identityService) Current(ctx context.Context) (*domain.User, bool) {
	s.mu.RLock()
	id := s.currentUserID
	s.mu.RUnlock()
	if id == "" {
		return nil, false
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, false
	}
	return user, true
}

// RestoreSession reads the persisted snapshot written by a previous login or
// registration and rebinds the session. Anything short of a verified
// snapshot whose user id still resolves in the directory is discarded and
// treated as no session.
func (s *identityService) RestoreSession(ctx context.Context) {
	raw, ok, err := s.storage.Get(domain.SessionKey)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding unreadable session storage", "err", err)
		_ = s.storage.Delete(domain.SessionKey)
		return
	}
	if !ok {
		return
	}
	snapshot, err := s.verifier.Verify(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt session snapshot", "err", err)
		_ = s.storage.Delete(domain.SessionKey)
		return
	}
	user, err := s.userRepo.GetByID(ctx, snapshot.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "discarding session snapshot for unknown user", "user_id", snapshot.UserID)
		_ = s.storage.Delete(domain.SessionKey)
		return
	}
	s.bind(user.ID)
	s.logger.InfoContext(ctx, "session restored", "user_id", user.ID, "email", user.Email)
}

func (s *identityService) bind(userID string) {
	s.mu.Lock()
	s.currentUserID = userID
	s.mu.Unlock()
}

// persistSnapshot writes the signed session snapshot. A write failure leaves
// the in-memory session intact; the worst outcome is a stale restore later.
func (s *identityService) persistSnapshot(ctx context.Context, user *domain.User) {
	snapshot := &domain.SessionSnapshot{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}
	signed, err := s.signer.Sign(snapshot)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to sign session snapshot", "err", err)
		return
	}
	if err := s.storage.Set(domain.SessionKey, signed); err != nil {
		s.logger.WarnContext(ctx, "failed to persist session snapshot", "err", err)
	}
}

// simulateRemoteCall delays for the configured latency, honoring ctx
// cancellation. There is no timeout beyond what the caller's ctx carries.
func (s *identityService) simulateRemoteCall(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
