package http

import (
	"context"
	"net/http"
	"time"

	"stayops-backend/internal/logger"
	"stayops-backend/internal/session"
)

type contextKey string

const sessionContextKey contextKey = "stayops.session"

// SessionFromContext returns the session attached by SessionMiddleware.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	return sess, ok
}

// SessionMiddleware resolves the caller's session from the session
// cookie (falling back to the X-Session-ID header), creating a fresh
// seeded one when nothing usable is presented.
func SessionMiddleware(manager *session.Manager, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(cookieName); err == nil {
				token = cookie.Value
			}
			if token == "" {
				token = r.Header.Get("X-Session-ID")
			}

			sess, created, err := manager.Resolve(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sess.ID.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs one line per request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
