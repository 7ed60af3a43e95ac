package utils

import (
	"testing"
	"time"
)

func TestRegionFallsBackToDefault(t *testing.T) {
	loc := Region("Not/AZone")
	if loc.String() != DefaultTimezone {
		t.Fatalf("Region fallback = %s, want %s", loc.String(), DefaultTimezone)
	}
	if Region("").String() != DefaultTimezone {
		t.Fatalf("empty tz should resolve to default")
	}
}

func TestFormatDateInRegion(t *testing.T) {
	// 2026-01-15 02:00 UTC is still 2026-01-14 in Santiago (UTC-3 in summer).
	utc := time.Date(2026, 1, 15, 2, 0, 0, 0, time.UTC)
	if got := FormatDate(utc, "America/Santiago"); got != "2026-01-14" {
		t.Fatalf("FormatDate = %s, want 2026-01-14", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-09-01", "America/Santiago")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if got := FormatDate(d, "America/Santiago"); got != "2026-09-01" {
		t.Fatalf("round trip = %s", got)
	}
}

func TestParseClock(t *testing.T) {
	if _, err := ParseClock("14:30"); err != nil {
		t.Fatalf("ParseClock(14:30) error: %v", err)
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Fatalf("ParseClock(25:00) should fail")
	}
}
