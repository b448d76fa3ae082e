package apiutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/api/authz"
	"github.com/leaguedesk/leaguedesk/internal/apperr"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
)

func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperr.Invalidf("missing request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return apperr.Invalidf("invalid JSON body")
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return apperr.Invalidf("invalid JSON body")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteError maps an engine error to its transport status and writes a JSON
// error body. Unrecognized errors become 500 with a generic message so store
// details never leak.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperr.ErrInvalid):
		status = http.StatusBadRequest
		message = apperr.Message(err)
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
		message = apperr.Message(err)
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
		message = apperr.Message(err)
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
		message = apperr.Message(err)
	default:
		log.Ctx(r.Context()).Error().Err(err).Msg("Unhandled handler error")
	}

	if writeErr := WriteJSON(w, status, map[string]string{"error": message}); writeErr != nil {
		log.Ctx(r.Context()).Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// RequireOrganizationMember runs the guard and writes the failure response
// itself, returning the membership when access is granted.
func RequireOrganizationMember(w http.ResponseWriter, r *http.Request, q *dbgen.Queries, orgID int64) *authz.Membership {
	logger := log.Ctx(r.Context())
	member, err := authz.RequireOrganizationMember(r.Context(), q, orgID)
	if err != nil {
		user := authz.UserFromContext(r.Context())
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			logger.Warn().Int64("org_id", orgID).Msg("Organization access denied: unauthenticated")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		case errors.Is(err, authz.ErrForbidden):
			logEvent := logger.Warn().Int64("org_id", orgID)
			if user != nil {
				logEvent = logEvent.Int64("user_id", user.ID)
			}
			logEvent.Msg("Organization access denied: forbidden")
			http.Error(w, "Forbidden", http.StatusForbidden)
		default:
			logEvent := logger.Error().Int64("org_id", orgID).Err(err)
			if user != nil {
				logEvent = logEvent.Int64("user_id", user.ID)
			}
			logEvent.Msg("Organization access denied: error")
			http.Error(w, "Failed to authorize request", http.StatusInternalServerError)
		}
		return nil
	}
	return member
}
