package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"time"

	h "eventhub/internal/delivery/http/helpers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
)

const dateLayout = "2006-01-02"

// timeRegexp matches a 24-hour local time of day, HH:MM.
var timeRegexp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// CreateEventRequest is the request body for POST /events. The organizer
// fields and the id are server-assigned; everything else comes from the form.
type CreateEventRequest struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Location         string  `json:"location"`
	ImageURL         string  `json:"image_url"`
	Category         string  `json:"category"`
	Price            float64 `json:"price"`
	AvailableTickets int     `json:"available_tickets"`
	IsFeatured       bool    `json:"is_featured"`
}

// Validate implements Validator. Input validation is a delivery-layer
// concern; the event store itself accepts whatever it is handed.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if c.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(dateLayout, c.Date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if c.Time == "" {
		errs = append(errs, "time is required")
	} else if !timeRegexp.MatchString(c.Time) {
		errs = append(errs, "time must be HH:MM")
	}
	if c.Location == "" {
		errs = append(errs, "location is required")
	}
	if c.Category == "" {
		errs = append(errs, "category is required")
	}
	if c.Price < 0 {
		errs = append(errs, "price must not be negative")
	}
	if c.AvailableTickets < 0 {
		errs = append(errs, "available_tickets must not be negative")
	}
	return errs
}

// RegisterForEventRequest is the request body for POST /events/{eventID}/register
type RegisterForEventRequest struct {
	TicketQuantity int `json:"ticket_quantity"`
}

// Validate implements Validator.
func (r RegisterForEventRequest) Validate() []string {
	if r.TicketQuantity < 1 {
		return []string{"ticket_quantity must be at least 1"}
	}
	return nil
}

// HomeResponse is the response body for GET /. Featured events sorted by date.
type HomeResponse struct {
	FeaturedEvents []*domain.Event `json:"featured_events"`
	Categories     []string        `json:"categories"`
}

// ListEventsResponse is the response body for GET /events.
type ListEventsResponse struct {
	Events     []*domain.Event   `json:"events"`
	Pagination h.PaginationMeta  `json:"pagination"`
}

// CalendarResponse is the response body for GET /calendar.
type CalendarResponse struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Events []*domain.Event `json:"events"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Home godoc
// @Summary Home payload
// @Description Returns the featured events sorted by date together with the catalog's categories.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains featured_events and categories"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router / [get]
func (c *EventController) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := c.Service.FeaturedEvents(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	sort.SliceStable(featured, func(i, j int) bool { return featured[i].Date < featured[j].Date })
	categories, err := c.Service.Categories(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, HomeResponse{FeaturedEvents: featured, Categories: categories})
}

// ListEvents godoc
// @Summary List events
// @Description Case-insensitive substring search over title, description, location, and category, then an exact category filter. "All" or a missing category selects everything. Catalog order is preserved; results are paginated.
// @Tags events
// @Produce json
// @Param search query string false "Search query"
// @Param category query string false "Exact category, or All"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains events and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	events, err := c.Service.SearchEvents(r.Context(), query)
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	if category != "" && category != domain.CategoryAll {
		filtered := events[:0:0]
		for _, event := range events {
			if event.Category == category {
				filtered = append(filtered, event)
			}
		}
		events = filtered
		if events == nil {
			events = []*domain.Event{}
		}
	}

	params := h.ParsePagination(r)
	lo, hi := params.Slice(len(events))
	h.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Events:     events[lo:hi],
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, len(events)),
	})
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		c.internalError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Append a new listing to the catalog. The session user becomes the organizer; requires the organizer or admin role.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "login required")
		return
	}
	event := &domain.Event{
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		Time:             req.Time,
		Location:         req.Location,
		Organizer:        user.Name,
		OrganizerID:      user.ID,
		ImageURL:         req.ImageURL,
		Category:         req.Category,
		Price:            req.Price,
		AvailableTickets: req.AvailableTickets,
		IsFeatured:       req.IsFeatured,
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.internalError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// RegisterForEvent godoc
// @Summary Register for an event
// @Description Purchase tickets for the event. Fails without a session, for an unknown event, when the user already holds tickets, or when the quantity exceeds the remaining inventory.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param body body RegisterForEventRequest true "Ticket quantity"
// @Success 201 {object} helpers.APIResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/register [post]
func (c *EventController) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	var req RegisterForEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	eventID := r.PathValue("eventID")
	registration, err := c.Service.RegisterForEvent(r.Context(), eventID, req.TicketQuantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSession):
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "login required")
		case errors.Is(err, domain.ErrEventNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "already registered for this event")
		case errors.Is(err, domain.ErrInvalidQuantity):
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, domain.ErrInvalidQuantity.Error())
		case errors.Is(err, domain.ErrInsufficientTickets):
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "not enough tickets available")
		default:
			c.internalError(w, r, err)
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, registration)
}

// Dashboard godoc
// @Summary Personal dashboard
// @Description Events the session user holds tickets for (split into upcoming and past), events they organize, and their registrations.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the dashboard"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard [get]
func (c *EventController) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := c.Service.Dashboard(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "login required")
			return
		}
		c.internalError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, dashboard)
}

// Calendar godoc
// @Summary Events for a month
// @Description Events dated within the given month, sorted by date. Defaults to the current month.
// @Tags events
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} helpers.APIResponse "data contains year, month, and events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar [get]
func (c *EventController) Calendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if s := r.URL.Query().Get("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "year must be a number")
			return
		}
		year = v
	}
	if s := r.URL.Query().Get("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 12 {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "month must be 1-12")
			return
		}
		month = v
	}
	events, err := c.Service.CalendarEvents(r.Context(), year, time.Month(month))
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, CalendarResponse{Year: year, Month: month, Events: events})
}

func (c *EventController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
}
