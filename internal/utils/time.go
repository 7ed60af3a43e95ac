package utils

import (
	"strings"
	"time"
)

const (
	layoutDate  = "2006-01-02"
	layoutClock = "15:04"

	// DefaultTimezone is the shop's region unless APP_TIMEZONE overrides it.
	DefaultTimezone = "America/Santiago"
)

// Region resolves an IANA timezone name, falling back to the default and
// finally UTC rather than failing. Formatting helpers below stay total.
func Region(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		tz = DefaultTimezone
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// RegionalNow returns the current instant in the given zone.
func RegionalNow(tz string) time.Time {
	return time.Now().In(Region(tz))
}

// RegionalToday returns today's date as YYYY-MM-DD in the given zone.
func RegionalToday(tz string) string {
	return RegionalNow(tz).Format(layoutDate)
}

// RegionalTime returns the current wall clock as HH:MM in the given zone.
func RegionalTime(tz string) string {
	return RegionalNow(tz).Format(layoutClock)
}

// FormatDate renders a time as YYYY-MM-DD in the given zone.
func FormatDate(t time.Time, tz string) string {
	return t.In(Region(tz)).Format(layoutDate)
}

// ParseDate parses YYYY-MM-DD as midnight in the given zone.
func ParseDate(s, tz string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), Region(tz))
}

// ParseClock validates an HH:MM string.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(layoutClock, strings.TrimSpace(s))
}
