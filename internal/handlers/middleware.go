package handlers

import (
	"log"
	"net/http"
	"time"

	"memoir/internal/store"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	store *store.Store
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(st *store.Store) *Middleware {
	return &Middleware{store: st}
}

// RequireOnboarded gates the main application surface. Until onboarding
// completes only the onboarding endpoints are reachable.
func (m *Middleware) RequireOnboarded(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := m.store.Snapshot()
		if !state.IsOnboarded || state.CurrentUser == nil {
			respondWithError(w, http.StatusForbidden, "Complete onboarding first", "", nil)
			return
		}
		next(w, r)
	}
}

// Logging logs each request with method, path, duration and status
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		log.Printf("%s %s %d %v", r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
