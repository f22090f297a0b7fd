package models

import (
	"strings"
	"testing"
	"time"
)

func TestPomodoroCreate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		want    string
	}{
		{"plain description", "Studied spiking neural networks", nil, "Studied spiking neural networks"},
		{"trims whitespace", "  reading  ", nil, "reading"},
		{"empty rejected", "", ErrDescriptionRequired, ""},
		{"whitespace-only rejected", "   \t\n  ", ErrDescriptionRequired, ""},
		{"null bytes stripped", "wor\x00k", nil, "work"},
		{"too long rejected", strings.Repeat("a", 501), ErrDescriptionTooLong, ""},
		{"max length accepted", strings.Repeat("a", 500), nil, strings.Repeat("a", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := PomodoroCreate{Description: tt.input}
			err := input.Validate()
			if err != tt.wantErr {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && input.Description != tt.want {
				t.Errorf("Description = %q, want %q", input.Description, tt.want)
			}
		})
	}
}

func TestFormatRFC3339_UTC(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	local := time.Date(2026, 3, 1, 8, 30, 0, 0, loc)

	got := FormatRFC3339(local)
	if got != "2026-03-01T00:30:00Z" {
		t.Errorf("FormatRFC3339() = %q, want UTC rendering", got)
	}
}

func TestFormatRFC3339_Ordering(t *testing.T) {
	// Stored timestamps compare lexicographically; that only holds if they
	// are always rendered in the same (UTC) zone.
	earlier := time.Date(2026, 1, 2, 23, 0, 0, 0, time.UTC)
	later := earlier.Add(2 * time.Hour)

	if !(FormatRFC3339(earlier) < FormatRFC3339(later)) {
		t.Errorf("expected %q < %q", FormatRFC3339(earlier), FormatRFC3339(later))
	}
}
