// internal/api/middleware.go
package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/api/authz"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
)

type Middleware func(http.Handler) http.Handler

func ChainMiddleware(h http.Handler, middleware ...Middleware) http.Handler {
	for _, m := range middleware {
		h = m(h)
	}
	return h
}

func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create response wrapper to capture status code
		wrapped := wrapResponseWriter(w)

		next.ServeHTTP(wrapped, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.status).
			Dur("duration", time.Since(start)).
			Str("request_id", r.Context().Value("request_id").(string)).
			Msg("Request completed")
	})
}

func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger := log.Ctx(r.Context())
				// Log the full stack trace
				stack := debug.Stack()
				logger.Error().
					Interface("error", err).
					Str("stack", string(stack)).
					Msg("Panic recovered")

				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		// Create a logger with the request ID
		logger := log.With().Str("request_id", requestID).Logger()

		// Add both the request ID and logger to context
		ctx := context.WithValue(r.Context(), "request_id", requestID)
		ctx = logger.WithContext(ctx)

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Set default content type if not set
		if r.Header.Get("Accept") == "" {
			r.Header.Set("Accept", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}

// WithAuth resolves the caller's identity from the headers the fronting auth
// proxy sets after verifying the session. Session issuance and verification
// live outside this service. Requests without identity headers pass through
// unauthenticated; organization-scoped handlers reject them later.
func WithAuth(queries *dbgen.Queries) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := strings.TrimSpace(r.Header.Get("X-Auth-User-ID"))
			if rawID == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || userID <= 0 {
				log.Ctx(r.Context()).Warn().Str("raw_user_id", rawID).Msg("Malformed auth identity header")
				next.ServeHTTP(w, r)
				return
			}

			queryCtx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()

			user, err := queries.GetUserByID(queryCtx, userID)
			if err != nil {
				if !errors.Is(err, sql.ErrNoRows) {
					log.Ctx(r.Context()).Error().Err(err).Int64("user_id", userID).Msg("Failed to load auth user")
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := authz.ContextWithUser(r.Context(), &authz.AuthUser{
				ID:    user.ID,
				Email: user.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// responseWriter wrapper to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
