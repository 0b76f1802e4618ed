package services

import (
	"testing"
	"time"
)

func TestFormatDocumentNumber(t *testing.T) {
	tests := []struct {
		prefix   string
		year     int
		sequence int
		expect   string
	}{
		{"ORC", 2026, 1, "ORC-2026-001"},
		{"ORC", 2026, 42, "ORC-2026-042"},
		{"OS", 2025, 7, "OS-2025-007"},
		{"OS", 2026, 1234, "OS-2026-1234"},
	}

	for _, tt := range tests {
		got := formatDocumentNumber(tt.prefix, tt.year, tt.sequence)
		if got != tt.expect {
			t.Errorf("formatDocumentNumber(%q, %d, %d) = %q, want %q",
				tt.prefix, tt.year, tt.sequence, got, tt.expect)
		}
	}
}

func TestDocumentNumberYear(t *testing.T) {
	dec := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)
	jan := time.Date(2026, time.January, 1, 1, 0, 0, 0, time.UTC)

	if got := formatDocumentNumber("ORC", dec.Year(), 5); got != "ORC-2025-005" {
		t.Errorf("december number = %q", got)
	}
	if got := formatDocumentNumber("ORC", jan.Year(), 1); got != "ORC-2026-001" {
		t.Errorf("january number = %q", got)
	}
}
