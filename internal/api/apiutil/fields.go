package apiutil

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
)

func ParsePositiveInt64Field(raw string, field string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperr.Invalidf("%s is required", field)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, apperr.Invalidf("%s must be greater than 0", field)
	}
	return value, nil
}

// PathID parses a positive integer path value such as {org_id} or {team_id}.
func PathID(r *http.Request, key string) (int64, error) {
	return ParsePositiveInt64Field(r.PathValue(key), key)
}

// OptionalQueryID parses an optional positive integer query parameter,
// returning 0 when absent.
func OptionalQueryID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	return ParsePositiveInt64Field(raw, key)
}

// ParseDateField parses an optional YYYY-MM-DD field, returning a zero time
// when blank.
func ParseDateField(raw string, field string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperr.Invalidf("%s must be a valid date (YYYY-MM-DD)", field)
	}
	return parsed, nil
}
