package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/yourorg/products-api/internal/id"
)

var errCORS = errors.New("CORS ERROR")

// assignRequestID gives requests without an id a KSUID one before chi's
// RequestID middleware reads the header, and echoes it back.
func assignRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(middleware.RequestIDHeader)
		if rid == "" {
			rid = id.GenerateIDWithPrefix("req_")
			r.Header.Set(middleware.RequestIDHeader, rid)
		}
		w.Header().Set(middleware.RequestIDHeader, rid)
		next.ServeHTTP(w, r)
	})
}

// rejectForeignOrigin refuses browser requests whose Origin is not exactly
// allowedOrigin. Requests without an Origin header pass.
func rejectForeignOrigin(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && origin != allowedOrigin {
				Forbidden(w, r, errCORS, errCORS.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
