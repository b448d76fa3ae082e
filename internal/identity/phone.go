// internal/identity/phone.go
package identity

import (
	"database/sql"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
)

const defaultPhoneRegion = "US"

// NormalizePhone parses a player or staff phone number and returns it in
// E.164 form for storage. An empty input is allowed and stays empty.
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	parsed, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", apperr.Invalidf("phone %q is not a valid phone number", raw)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", apperr.Invalidf("phone %q is not a valid phone number", raw)
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// FormatNational renders a stored E.164 number for roster display. Anything
// unparseable is shown as stored.
func FormatNational(stored string) string {
	if stored == "" {
		return ""
	}
	parsed, err := phonenumbers.Parse(stored, defaultPhoneRegion)
	if err != nil {
		return stored
	}
	return phonenumbers.Format(parsed, phonenumbers.NATIONAL)
}

func sqlNullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
