package event

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidDate reports a schedule date that does not follow the outline format.
	ErrInvalidDate = errors.New("invalid schedule date")
	// ErrInvalidTime reports an event time that is not a valid wall-clock time.
	ErrInvalidTime = errors.New("invalid event time")
)

// ParseOutlineDate parses a schedule date such as "Tue Jan 07 00:00:00 PST 2020".
// Only the month (second field), day (third field) and year (last field) are used;
// the clock and zone are ignored. The result is midnight UTC of that civil date.
func ParseOutlineDate(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	month, err := time.Parse("Jan", fields[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month in %q", ErrInvalidDate, s)
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day in %q", ErrInvalidDate, s)
	}
	year, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: year in %q", ErrInvalidDate, s)
	}

	t := time.Date(year, month.Month(), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 30 into March; reject instead.
	if t.Day() != day || t.Month() != month.Month() {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, s)
	}
	return t, nil
}

// PadClock zero-pads a single-digit hour: "9:30" becomes "09:30".
// Anything else is returned unchanged, including malformed text.
func PadClock(clock string) string {
	if len(clock) >= 2 && clock[1] == ':' {
		return "0" + clock
	}
	return clock
}

// Wall combines a civil date with an outline clock time into the Event.Start/End form.
func Wall(date time.Time, clock string) string {
	return date.Format("2006-01-02") + " " + PadClock(clock) + ":00"
}
