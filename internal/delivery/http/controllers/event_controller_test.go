package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	h "eventhub/internal/delivery/http/helpers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventService implements domain.EventService with per-test hooks.
type fakeEventService struct {
	getByIDFn    func(ctx context.Context, id string) (*domain.Event, error)
	searchFn     func(ctx context.Context, query string) ([]*domain.Event, error)
	filterFn     func(ctx context.Context, category string) ([]*domain.Event, error)
	featuredFn   func(ctx context.Context) ([]*domain.Event, error)
	userEventsFn func(ctx context.Context) ([]*domain.Event, error)
	categoriesFn func(ctx context.Context) ([]string, error)
	calendarFn   func(ctx context.Context, year int, month time.Month) ([]*domain.Event, error)
	dashboardFn  func(ctx context.Context) (*domain.Dashboard, error)
	createFn     func(ctx context.Context, event *domain.Event) error
	registerFn   func(ctx context.Context, eventID string, ticketQuantity int) (*domain.Registration, error)
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEventService) SearchEvents(ctx context.Context, query string) ([]*domain.Event, error) {
	return f.searchFn(ctx, query)
}

func (f *fakeEventService) FilterEventsByCategory(ctx context.Context, category string) ([]*domain.Event, error) {
	return f.filterFn(ctx, category)
}

func (f *fakeEventService) FeaturedEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.featuredFn(ctx)
}

func (f *fakeEventService) UserEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.userEventsFn(ctx)
}

func (f *fakeEventService) Categories(ctx context.Context) ([]string, error) {
	return f.categoriesFn(ctx)
}

func (f *fakeEventService) CalendarEvents(ctx context.Context, year int, month time.Month) ([]*domain.Event, error) {
	return f.calendarFn(ctx, year, month)
}

func (f *fakeEventService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	return f.dashboardFn(ctx)
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	return f.createFn(ctx, event)
}

func (f *fakeEventService) RegisterForEvent(ctx context.Context, eventID string, ticketQuantity int) (*domain.Registration, error) {
	return f.registerFn(ctx, eventID, ticketQuantity)
}

func sampleEvents() []*domain.Event {
	return []*domain.Event{
		{ID: "1", Title: "Tech Conference", Date: "2025-06-15", Category: "Technology"},
		{ID: "2", Title: "Music Festival", Date: "2025-07-22", Category: "Music"},
		{ID: "3", Title: "Leadership Summit", Date: "2025-08-10", Category: "Business"},
	}
}

func TestEventController_Home(t *testing.T) {
	svc := &fakeEventService{
		featuredFn: func(ctx context.Context) ([]*domain.Event, error) {
			// Out of date order on purpose; the handler sorts.
			return []*domain.Event{
				{ID: "2", Date: "2025-07-22"},
				{ID: "1", Date: "2025-06-15"},
			}, nil
		},
		categoriesFn: func(ctx context.Context) ([]string, error) {
			return []string{"Technology", "Music"}, nil
		},
	}
	controller := NewEventController(testLogger(), svc)
	rec := httptest.NewRecorder()

	controller.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope.Data.(map[string]any)
	featured := data["featured_events"].([]any)
	require.Len(t, featured, 2)
	assert.Equal(t, "1", featured[0].(map[string]any)["id"], "featured events come back date-sorted")
	assert.Equal(t, []any{"Technology", "Music"}, data["categories"])
}

func TestEventController_ListEvents(t *testing.T) {
	newController := func(t *testing.T, wantQuery string) *EventController {
		t.Helper()
		svc := &fakeEventService{
			searchFn: func(ctx context.Context, query string) ([]*domain.Event, error) {
				assert.Equal(t, wantQuery, query)
				return sampleEvents(), nil
			},
		}
		return NewEventController(testLogger(), svc)
	}

	t.Run("no filters returns everything", func(t *testing.T) {
		controller := newController(t, "")
		rec := httptest.NewRecorder()

		controller.ListEvents(rec, httptest.NewRequest(http.MethodGet, "/events", nil))

		envelope := decodeEnvelope(t, rec)
		data := envelope.Data.(map[string]any)
		assert.Len(t, data["events"].([]any), 3)
		pagination := data["pagination"].(map[string]any)
		assert.Equal(t, float64(3), pagination["total"])
		assert.Equal(t, float64(1), pagination["page"])
	})

	t.Run("search query is forwarded", func(t *testing.T) {
		controller := newController(t, "tech")
		rec := httptest.NewRecorder()
		controller.ListEvents(rec, httptest.NewRequest(http.MethodGet, "/events?search=tech", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("category narrows the search result", func(t *testing.T) {
		controller := newController(t, "")
		rec := httptest.NewRecorder()

		controller.ListEvents(rec, httptest.NewRequest(http.MethodGet, "/events?category=Music", nil))

		envelope := decodeEnvelope(t, rec)
		data := envelope.Data.(map[string]any)
		events := data["events"].([]any)
		require.Len(t, events, 1)
		assert.Equal(t, "2", events[0].(map[string]any)["id"])
	})

	t.Run("category All is a no-op", func(t *testing.T) {
		controller := newController(t, "")
		rec := httptest.NewRecorder()

		controller.ListEvents(rec, httptest.NewRequest(http.MethodGet, "/events?category=All", nil))

		envelope := decodeEnvelope(t, rec)
		data := envelope.Data.(map[string]any)
		assert.Len(t, data["events"].([]any), 3)
	})

	t.Run("pagination slices the result", func(t *testing.T) {
		controller := newController(t, "")
		rec := httptest.NewRecorder()

		controller.ListEvents(rec, httptest.NewRequest(http.MethodGet, "/events?page=2&page_size=2", nil))

		envelope := decodeEnvelope(t, rec)
		data := envelope.Data.(map[string]any)
		events := data["events"].([]any)
		require.Len(t, events, 1)
		assert.Equal(t, "3", events[0].(map[string]any)["id"])
		pagination := data["pagination"].(map[string]any)
		assert.Equal(t, float64(2), pagination["total_pages"])
	})
}

func TestEventController_GetEventByID(t *testing.T) {
	newRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/events/"+id, nil)
		req.SetPathValue("eventID", id)
		return req
	}

	t.Run("found", func(t *testing.T) {
		svc := &fakeEventService{
			getByIDFn: func(ctx context.Context, id string) (*domain.Event, error) {
				assert.Equal(t, "5", id)
				return &domain.Event{ID: "5", Title: "Startup Pitch Competition"}, nil
			},
		}
		controller := NewEventController(testLogger(), svc)
		rec := httptest.NewRecorder()

		controller.GetEventByID(rec, newRequest("5"))

		require.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		data := envelope.Data.(map[string]any)
		assert.Equal(t, "Startup Pitch Competition", data["title"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{
			getByIDFn: func(ctx context.Context, id string) (*domain.Event, error) {
				return nil, domain.ErrEventNotFound
			},
		}
		controller := NewEventController(testLogger(), svc)
		rec := httptest.NewRecorder()

		controller.GetEventByID(rec, newRequest("999"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		envelope := decodeEnvelope(t, rec)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, h.ErrCodeNotFound, envelope.Error.Code)
	})
}

func TestEventController_CreateEvent(t *testing.T) {
	organizer := &domain.User{ID: "2", Name: "Jane Smith", Role: domain.RoleOrganizer}
	validBody := `{"title":"New Meetup","description":"d","date":"2025-09-01","time":"18:30","location":"Berlin","category":"Technology","price":10,"available_tickets":50}`

	t.Run("session user becomes the organizer", func(t *testing.T) {
		var created *domain.Event
		svc := &fakeEventService{
			createFn: func(ctx context.Context, event *domain.Event) error {
				event.ID = "assigned"
				created = event
				return nil
			},
		}
		controller := NewEventController(testLogger(), svc)
		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(validBody))
		req = req.WithContext(middleware.SetUser(req.Context(), organizer))
		rec := httptest.NewRecorder()

		controller.CreateEvent(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, "Jane Smith", created.Organizer)
		assert.Equal(t, "2", created.OrganizerID)

		envelope := decodeEnvelope(t, rec)
		data := envelope.Data.(map[string]any)
		assert.Equal(t, "assigned", data["id"])
	})

	t.Run("no session user in context", func(t *testing.T) {
		controller := NewEventController(testLogger(), &fakeEventService{})
		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(validBody))
		rec := httptest.NewRecorder()

		controller.CreateEvent(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"missing title", `{"date":"2025-09-01","time":"18:30","location":"Berlin","category":"Tech"}`},
			{"bad date", `{"title":"x","date":"01/09/2025","time":"18:30","location":"Berlin","category":"Tech"}`},
			{"bad time", `{"title":"x","date":"2025-09-01","time":"6pm","location":"Berlin","category":"Tech"}`},
			{"negative price", `{"title":"x","date":"2025-09-01","time":"18:30","location":"Berlin","category":"Tech","price":-5}`},
			{"negative tickets", `{"title":"x","date":"2025-09-01","time":"18:30","location":"Berlin","category":"Tech","available_tickets":-1}`},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				controller := NewEventController(testLogger(), &fakeEventService{})
				req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tc.body))
				req = req.WithContext(middleware.SetUser(req.Context(), organizer))
				rec := httptest.NewRecorder()

				controller.CreateEvent(rec, req)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func TestEventController_RegisterForEvent(t *testing.T) {
	newRequest := func(id, body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/events/"+id+"/register", strings.NewReader(body))
		req.SetPathValue("eventID", id)
		return req
	}

	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{
			registerFn: func(ctx context.Context, eventID string, ticketQuantity int) (*domain.Registration, error) {
				assert.Equal(t, "5", eventID)
				assert.Equal(t, 3, ticketQuantity)
				return &domain.Registration{ID: "r1", EventID: eventID, UserID: "1", TicketQuantity: 3, TotalPrice: 0, RegistrationDate: "2025-05-01"}, nil
			},
		}
		controller := NewEventController(testLogger(), svc)
		rec := httptest.NewRecorder()

		controller.RegisterForEvent(rec, newRequest("5", `{"ticket_quantity":3}`))

		require.Equal(t, http.StatusCreated, rec.Code)
		envelope := decodeEnvelope(t, rec)
		data := envelope.Data.(map[string]any)
		assert.Equal(t, float64(3), data["ticket_quantity"])
		assert.Equal(t, float64(0), data["total_price"])
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{"no session", domain.ErrNoSession, http.StatusUnauthorized, h.ErrCodeUnauthorized},
			{"unknown event", domain.ErrEventNotFound, http.StatusNotFound, h.ErrCodeNotFound},
			{"already registered", domain.ErrAlreadyRegistered, http.StatusConflict, h.ErrCodeConflict},
			{"insufficient tickets", domain.ErrInsufficientTickets, http.StatusConflict, h.ErrCodeConflict},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc := &fakeEventService{
					registerFn: func(ctx context.Context, eventID string, ticketQuantity int) (*domain.Registration, error) {
						return nil, tc.err
					},
				}
				controller := NewEventController(testLogger(), svc)
				rec := httptest.NewRecorder()

				controller.RegisterForEvent(rec, newRequest("5", `{"ticket_quantity":1}`))

				assert.Equal(t, tc.wantStatus, rec.Code)
				envelope := decodeEnvelope(t, rec)
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tc.wantCode, envelope.Error.Code)
			})
		}
	})

	t.Run("zero quantity rejected before the service is called", func(t *testing.T) {
		controller := NewEventController(testLogger(), &fakeEventService{})
		rec := httptest.NewRecorder()

		controller.RegisterForEvent(rec, newRequest("5", `{"ticket_quantity":0}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventController_Dashboard(t *testing.T) {
	t.Run("with session", func(t *testing.T) {
		svc := &fakeEventService{
			dashboardFn: func(ctx context.Context) (*domain.Dashboard, error) {
				return &domain.Dashboard{
					UpcomingEvents:  []*domain.Event{{ID: "1"}},
					PastEvents:      []*domain.Event{},
					OrganizedEvents: []*domain.Event{},
					Registrations:   []*domain.Registration{{ID: "r1"}},
				}, nil
			},
		}
		controller := NewEventController(testLogger(), svc)
		rec := httptest.NewRecorder()

		controller.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		data := envelope.Data.(map[string]any)
		assert.Len(t, data["upcoming_events"].([]any), 1)
		assert.Len(t, data["registrations"].([]any), 1)
	})

	t.Run("without session", func(t *testing.T) {
		svc := &fakeEventService{
			dashboardFn: func(ctx context.Context) (*domain.Dashboard, error) {
				return nil, domain.ErrNoSession
			},
		}
		controller := NewEventController(testLogger(), svc)
		rec := httptest.NewRecorder()

		controller.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestEventController_Calendar(t *testing.T) {
	t.Run("explicit year and month", func(t *testing.T) {
		svc := &fakeEventService{
			calendarFn: func(ctx context.Context, year int, month time.Month) ([]*domain.Event, error) {
				assert.Equal(t, 2025, year)
				assert.Equal(t, time.June, month)
				return []*domain.Event{{ID: "1", Date: "2025-06-15"}}, nil
			},
		}
		controller := NewEventController(testLogger(), svc)
		rec := httptest.NewRecorder()

		controller.Calendar(rec, httptest.NewRequest(http.MethodGet, "/calendar?year=2025&month=6", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		data := envelope.Data.(map[string]any)
		assert.Equal(t, float64(2025), data["year"])
		assert.Equal(t, float64(6), data["month"])
		assert.Len(t, data["events"].([]any), 1)
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		now := time.Now()
		svc := &fakeEventService{
			calendarFn: func(ctx context.Context, year int, month time.Month) ([]*domain.Event, error) {
				assert.Equal(t, now.Year(), year)
				assert.Equal(t, now.Month(), month)
				return []*domain.Event{}, nil
			},
		}
		controller := NewEventController(testLogger(), svc)
		rec := httptest.NewRecorder()

		controller.Calendar(rec, httptest.NewRequest(http.MethodGet, "/calendar", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid month", func(t *testing.T) {
		controller := NewEventController(testLogger(), &fakeEventService{})
		rec := httptest.NewRecorder()

		controller.Calendar(rec, httptest.NewRequest(http.MethodGet, "/calendar?month=13", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric year", func(t *testing.T) {
		controller := NewEventController(testLogger(), &fakeEventService{})
		rec := httptest.NewRecorder()

		controller.Calendar(rec, httptest.NewRequest(http.MethodGet, "/calendar?year=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
