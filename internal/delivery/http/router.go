package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventhub/docs"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Session and role gates live here, on the routes, not in the stores.
func NewRouter(eventController *controllers.EventController, authController *controllers.AuthController, identity domain.IdentityService) *http.ServeMux {
	mux := http.NewServeMux()

	requireSession := middleware.RequireSession(identity)
	requireOrganizer := middleware.RequireOrganizer(identity)

	// Events
	mux.HandleFunc("GET /{$}", eventController.Home)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("POST /events", requireOrganizer(eventController.CreateEvent))
	mux.HandleFunc("POST /events/{eventID}/register", eventController.RegisterForEvent)
	mux.HandleFunc("GET /dashboard", requireSession(eventController.Dashboard))
	mux.HandleFunc("GET /calendar", eventController.Calendar)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("POST /auth/register", authController.Register)
	mux.HandleFunc("POST /auth/logout", authController.Logout)
	mux.HandleFunc("GET /auth/me", authController.Me)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Unknown paths redirect home.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return mux
}
