package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"overcooked-simplified/web-svc/internal/backend"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const sessionCookie = "overcooked_session"

type ctxKey int

const sessionKey ctxKey = iota

// withSession makes sure every request carries a session id, which keys the
// pending toasts of that browser across redirects.
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(sessionCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, id)))
	})
}

func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

func logBackendError(op string, err error) {
	fields := log.Fields{"op": op}
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		fields["path"] = statusErr.Path
		fields["status"] = statusErr.Code
	}
	log.WithFields(fields).WithError(err).Error("backend call failed")
}
