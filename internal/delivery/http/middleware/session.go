package middleware

import (
	"context"
	"net/http"

	h "eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

type contextKey string

const userKey contextKey = "user"

// SetUser returns a context carrying the session user for this request.
func SetUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the session user from the context, if present.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

// RequireSession returns a wrapper that resolves the current session from
// the identity service and puts the user in the request context. Without a
// bound session it responds 401 and does not call next. Route gating lives
// here, in the delivery layer; the stores perform no authorization.
func RequireSession(identity domain.IdentityService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, ok := identity.Current(r.Context())
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "login required")
				return
			}
			next(w, r.WithContext(SetUser(r.Context(), user)))
		}
	}
}

// RequireOrganizer returns a wrapper that additionally requires a role
// allowed to publish events (organizer or admin). 401 without a session,
// 403 for a plain user.
func RequireOrganizer(identity domain.IdentityService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, ok := identity.Current(r.Context())
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "login required")
				return
			}
			if !user.Role.CanCreateEvents() {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "organizer role required")
				return
			}
			next(w, r.WithContext(SetUser(r.Context(), user)))
		}
	}
}
