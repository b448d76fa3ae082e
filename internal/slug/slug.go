// internal/slug/slug.go
package slug

import (
	"context"
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
)

// maxProbeAttempts bounds the suffix probe so a pathological pile-up of
// identical names fails loudly instead of spinning on store round-trips.
const maxProbeAttempts = 1000

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// ExistsFunc reports whether a candidate slug is already taken within the
// caller's scope.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Make derives a URL-safe slug from a display name: lowercase, every run of
// non [a-z0-9] collapsed to one hyphen, outer hyphens stripped. An empty
// result falls back to the entity kind's fallback word.
func Make(name, fallback string) string {
	s := strings.ToLower(name)
	s = nonSlugRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallback
	}
	return s
}

// Allocate returns a slug for name that exists reports as free, probing
// base, base-1, base-2, ... in order. The probe is advisory; the store's
// uniqueness constraint stays the authority, so callers that lose the
// probe/insert race retry with the next suffix.
func Allocate(ctx context.Context, name, fallback string, exists ExistsFunc) (string, error) {
	base := Make(name, fallback)

	candidate := base
	for attempt := 1; attempt <= maxProbeAttempts; attempt++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxProbeAttempts)
}

// RandomCode returns an uppercase alphanumeric code for entity kinds whose
// code is storage-generated rather than name-derived. The alphabet drops
// 0/O/1/I to keep codes readable over the phone.
func RandomCode(length int) (string, error) {
	if length <= 0 {
		length = 8
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
