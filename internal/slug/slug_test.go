// internal/slug/slug_test.go
package slug

import (
	"context"
	"errors"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		expected string
	}{
		{"simple", "Riverside Park", "facility", "riverside-park"},
		{"punctuation", "Riverside Park!!", "facility", "riverside-park"},
		{"mixed runs", "  St. Mary's / East  ", "facility", "st-mary-s-east"},
		{"digits kept", "Court 12B", "facility", "court-12b"},
		{"all symbols", "!!!", "league", "league"},
		{"empty", "", "team", "team"},
		{"unicode", "Fútbol Ciudad", "league", "f-tbol-ciudad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input, tt.fallback); got != tt.expected {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAllocateFirstFree(t *testing.T) {
	taken := map[string]bool{}
	got, err := Allocate(context.Background(), "Riverside Park!!", "facility", mapExists(taken))
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if got != "riverside-park" {
		t.Errorf("expected riverside-park, got %q", got)
	}
}

func TestAllocateCollisionProbesSuffixes(t *testing.T) {
	taken := map[string]bool{
		"riverside-park":   true,
		"riverside-park-1": true,
	}
	got, err := Allocate(context.Background(), "Riverside Park!!", "facility", mapExists(taken))
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if got != "riverside-park-2" {
		t.Errorf("expected riverside-park-2, got %q", got)
	}
}

func TestAllocatePropagatesCheckError(t *testing.T) {
	checkErr := errors.New("store down")
	_, err := Allocate(context.Background(), "Falcons", "team", func(context.Context, string) (bool, error) {
		return false, checkErr
	})
	if !errors.Is(err, checkErr) {
		t.Errorf("expected wrapped check error, got %v", err)
	}
}

func TestAllocateBounded(t *testing.T) {
	calls := 0
	_, err := Allocate(context.Background(), "Falcons", "team", func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	})
	if err == nil {
		t.Fatal("expected error once the probe bound is hit")
	}
	if calls != maxProbeAttempts {
		t.Errorf("expected %d probes, got %d", maxProbeAttempts, calls)
	}
}

func TestRandomCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := RandomCode(8)
		if err != nil {
			t.Fatalf("random code: %v", err)
		}
		if len(code) != 8 {
			t.Fatalf("expected 8 chars, got %q", code)
		}
		for _, ch := range code {
			if !((ch >= 'A' && ch <= 'Z') || (ch >= '2' && ch <= '9')) {
				t.Fatalf("unexpected character %q in %q", ch, code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 40 {
		t.Errorf("codes look far from random: %d distinct of 50", len(seen))
	}
}

func mapExists(taken map[string]bool) ExistsFunc {
	return func(_ context.Context, candidate string) (bool, error) {
		return taken[candidate], nil
	}
}
