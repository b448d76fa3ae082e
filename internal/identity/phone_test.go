// internal/identity/phone_test.go
package identity

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"10 digits", "5102345678", "+15102345678", false},
		{"with punctuation", "(510) 234-5678", "+15102345678", false},
		{"already e164", "+15102345678", "+15102345678", false},
		{"empty allowed", "", "", false},
		{"whitespace only", "   ", "", false},
		{"too short", "12345", "", true},
		{"letters", "not-a-phone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatNationalPassThrough(t *testing.T) {
	if got := FormatNational(""); got != "" {
		t.Errorf("empty should stay empty, got %q", got)
	}
	if got := FormatNational("garbage"); got != "garbage" {
		t.Errorf("unparseable should pass through, got %q", got)
	}
	if got := FormatNational("+15102345678"); got != "(510) 234-5678" {
		t.Errorf("unexpected national format: %q", got)
	}
}
