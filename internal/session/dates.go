package session

import (
	"fmt"
	"time"
)

// DateLayout is the format of the date-floor input field.
const DateLayout = "2006-01-02"

// ParseDateFloor converts a YYYY-MM-DD string into the floor timestamp:
// local midnight of that day. Posts created before it are excluded from the
// grid.
func ParseDateFloor(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateStr, err)
	}
	return t, nil
}

// Today returns the current date formatted for the date-floor input.
func Today() string {
	return time.Now().Format(DateLayout)
}
