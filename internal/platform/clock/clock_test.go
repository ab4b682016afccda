package clock_test

import (
	"testing"
	"time"

	"paperdrill/internal/platform/clock"
)

func TestLocalDateCrossesDayBoundaryAtOffset(t *testing.T) {
	t.Parallel()
	jst := 9 * time.Hour
	before := time.Date(2026, 3, 1, 14, 59, 59, 0, time.UTC)
	after := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	if got := clock.LocalDate(before, jst); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01 before boundary, got %s", got)
	}
	if got := clock.LocalDate(after, jst); got != "2026-03-02" {
		t.Fatalf("expected 2026-03-02 after boundary, got %s", got)
	}
	if got := clock.LocalDate(after, 0); got != "2026-03-01" {
		t.Fatalf("expected utc date 2026-03-01, got %s", got)
	}
}

func TestParseOffset(t *testing.T) {
	t.Parallel()
	cases := map[string]time.Duration{
		"+09:00": 9 * time.Hour,
		"-05:30": -(5*time.Hour + 30*time.Minute),
		"Z":      0,
		"":       0,
		"2h":     2 * time.Hour,
	}
	for raw, want := range cases {
		got, err := clock.ParseOffset(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %v, got %v", raw, want, got)
		}
	}
	if _, err := clock.ParseOffset("tokyo"); err == nil {
		t.Fatalf("expected error for invalid offset")
	}
}
