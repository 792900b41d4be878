package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"invoice-tracker/internal/ingest"
)

type ctxKey int

const ownerKey ctxKey = iota

// requireOwner resolves the caller's identity from the X-User-ID and
// X-User-Name headers set by the fronting auth proxy. Requests without an
// identity are rejected before any state is touched.
func requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := ingest.Owner{
			ID:   r.Header.Get("X-User-ID"),
			Name: r.Header.Get("X-User-Name"),
		}
		if owner.ID == "" {
			writeErrorMessage(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey, owner)))
	})
}

func ownerFrom(r *http.Request) ingest.Owner {
	owner, _ := r.Context().Value(ownerKey).(ingest.Owner)
	return owner
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
