// Package timefmt converts between the external display format for schedule
// times, DD/MM/YYYY HH:mm, and the UTC instants stored in the database. The
// display string carries no zone, so both directions use UTC to keep stored
// timestamps stable regardless of server locale.
package timefmt

import (
	"errors"
	"time"
)

// Layout is the display format: day/month/year hour:minute, 24-hour clock.
const Layout = "02/01/2006 15:04"

// ErrInvalidFormat is returned when an input does not match Layout.
var ErrInvalidFormat = errors.New("horario must match DD/MM/YYYY HH:mm")

// Parse converts a display string into a UTC instant.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return t, nil
}

// Format renders an instant back into the display format.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}
