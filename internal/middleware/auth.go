package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/api"
	"github.com/ppopeskul/wa-dashboard/internal/session"
)

// RequireLogin guards operations that carry the cookie security scope.
// extraRoutes adds "METHOD /pattern" routes that are guarded even though the
// API declares them open, such as "PATCH /api/contacts/{phone}".
func RequireLogin(sessions *session.Manager, logger *zap.Logger, extraRoutes ...string) api.MiddlewareFunc {
	extra := make(map[string]struct{}, len(extraRoutes))
	for _, route := range extraRoutes {
		extra[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !scoped(r) && !guardedRoute(r, extra) {
				next.ServeHTTP(w, r)
				return
			}

			token, s := sessions.Current(r)
			if !s.LoggedIn {
				logger.Debug("Rejected request without dashboard session",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("path", r.URL.Path))
				WriteError(w, r, http.StatusUnauthorized, ErrorCodeUnauthorized, ErrorMessageUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), token, s)))
		})
	}
}

func scoped(r *http.Request) bool {
	_, ok := r.Context().Value(api.CookieAuthScopes).([]string)
	return ok
}

func guardedRoute(r *http.Request, extra map[string]struct{}) bool {
	if len(extra) == 0 {
		return false
	}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return false
	}
	_, ok := extra[r.Method+" "+rctx.RoutePattern()]
	return ok
}
