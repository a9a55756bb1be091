package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"eventhub/internal/domain"
)

const dateLayout = "2006-01-02"

type eventService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	userRepo         domain.UserRepository
	identity         domain.IdentityService
	emailService     domain.EmailService
	logger           *slog.Logger
	now              func() time.Time

	// registerMu serializes RegisterForEvent so the duplicate and inventory
	// checks and the three writes form one critical section.
	registerMu sync.Mutex
}

// NewEventService creates an EventService over the catalog, the ledger, and
// the user directory. The identity service is read-only here: it resolves
// who is registering and who organizes what.
func NewEventService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	identity domain.IdentityService,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.EventService {
	return &eventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		identity:         identity,
		emailService:     emailService,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) SearchEvents(ctx context.Context, query string) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if query == "" {
		return events, nil
	}
	q := strings.ToLower(query)
	matched := []*domain.Event{}
	for _, event := range events {
		if strings.Contains(strings.ToLower(event.Title), q) ||
			strings.Contains(strings.ToLower(event.Description), q) ||
			strings.Contains(strings.ToLower(event.Location), q) ||
			strings.Contains(strings.ToLower(event.Category), q) {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

func (s *eventService) FilterEventsByCategory(ctx context.Context, category string) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if category == "" || category == domain.CategoryAll {
		return events, nil
	}
	matched := []*domain.Event{}
	for _, event := range events {
		if event.Category == category {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

func (s *eventService) FeaturedEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	featured := []*domain.Event{}
	for _, event := range events {
		if event.IsFeatured {
			featured = append(featured, event)
		}
	}
	return featured, nil
}

func (s *eventService) UserEvents(ctx context.Context) ([]*domain.Event, error) {
	user, ok := s.identity.Current(ctx)
	if !ok {
		return nil, domain.ErrNoSession
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	mine := []*domain.Event{}
	for _, event := range events {
		if slices.Contains(user.RegisteredEvents, event.ID) || event.BelongsTo(user) {
			mine = append(mine, event)
		}
	}
	return mine, nil
}

func (s *eventService) Categories(ctx context.Context) ([]string, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	seen := make(map[string]struct{})
	categories := []string{}
	for _, event := range events {
		if event.Category == "" {
			continue
		}
		if _, ok := seen[event.Category]; ok {
			continue
		}
		seen[event.Category] = struct{}{}
		categories = append(categories, event.Category)
	}
	return categories, nil
}

func (s *eventService) CalendarEvents(ctx context.Context, year int, month time.Month) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	inMonth := []*domain.Event{}
	for _, event := range events {
		date, err := time.Parse(dateLayout, event.Date)
		if err != nil {
			continue
		}
		if date.Year() == year && date.Month() == month {
			inMonth = append(inMonth, event)
		}
	}
	sort.SliceStable(inMonth, func(i, j int) bool {
		return inMonth[i].Date < inMonth[j].Date
	})
	return inMonth, nil
}

func (s *eventService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	user, ok := s.identity.Current(ctx)
	if !ok {
		return nil, domain.ErrNoSession
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	today := s.now().Format(dateLayout)
	dashboard := &domain.Dashboard{
		UpcomingEvents:  []*domain.Event{},
		PastEvents:      []*domain.Event{},
		OrganizedEvents: []*domain.Event{},
	}
	for _, event := range events {
		registered := slices.Contains(user.RegisteredEvents, event.ID)
		organized := user.Role.CanCreateEvents() && event.BelongsTo(user)
		if organized {
			dashboard.OrganizedEvents = append(dashboard.OrganizedEvents, event)
		}
		if !registered && !organized {
			continue
		}
		// Dates are YYYY-MM-DD, so string comparison orders correctly.
		if event.Date >= today {
			dashboard.UpcomingEvents = append(dashboard.UpcomingEvents, event)
		} else {
			dashboard.PastEvents = append(dashboard.PastEvents, event)
		}
	}
	registrations, err := s.registrationRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	dashboard.Registrations = registrations
	return dashboard, nil
}

// CreateEvent appends to the catalog. Field validation and the
// organizer-role gate both live in the delivery layer; the store performs
// the append and nothing else.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) RegisterForEvent(ctx context.Context, eventID string, ticketQuantity int) (*domain.Registration, error) {
	user, ok := s.identity.Current(ctx)
	if !ok {
		return nil, domain.ErrNoSession
	}
	if ticketQuantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if slices.Contains(user.RegisteredEvents, eventID) {
		return nil, domain.ErrAlreadyRegistered
	}
	if ticketQuantity > event.AvailableTickets {
		return nil, domain.ErrInsufficientTickets
	}

	registration := domain.NewRegistration(
		eventID,
		user.ID,
		ticketQuantity,
		event.Price*float64(ticketQuantity),
		s.now().Format(dateLayout),
	)
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("append registration: %w", err)
	}
	if _, err := s.eventRepo.DecrementTickets(ctx, eventID, ticketQuantity); err != nil {
		return nil, fmt.Errorf("decrement tickets: %w", err)
	}
	if err := s.userRepo.AddRegisteredEvent(ctx, user.ID, eventID); err != nil {
		return nil, fmt.Errorf("record registered event: %w", err)
	}

	if s.emailService != nil {
		data := &domain.RegistrationConfirmationEmailData{
			Email:          user.Email,
			Name:           user.Name,
			EventTitle:     event.Title,
			EventDate:      event.Date,
			EventLocation:  event.Location,
			TicketQuantity: ticketQuantity,
			TotalPrice:     registration.TotalPrice,
		}
		if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "failed to send registration confirmation", "email", user.Email, "event_id", eventID, "err", err)
		}
	}
	return registration, nil
}
