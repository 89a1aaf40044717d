package schedule

import (
	"strings"
	"time"
)

// Weekday codes as used by the course outline API.
const (
	Monday    = "Mo"
	Tuesday   = "Tu"
	Wednesday = "We"
	Thursday  = "Th"
	Friday    = "Fr"
	Saturday  = "Sa"
	Sunday    = "Su"
)

// Block is one recurring weekly meeting pattern of a course section.
type Block struct {
	StartDate    time.Time // civil date, inclusive
	EndDate      time.Time // civil date, inclusive
	Weekdays     []string  // two-letter codes, e.g. "Mo", "We"
	StartTime    string    // outline clock text, e.g. "9:30"
	EndTime      string
	BuildingCode string
	RoomNumber   string
	SectionCode  string // e.g. "LEC", "LAB", "TUT"
}

// Room returns the building code and room number joined, e.g. "AQ3150".
func (b Block) Room() string {
	return b.BuildingCode + b.RoomNumber
}

// ParseDays splits an outline day list such as "Mo, We" into weekday codes.
func ParseDays(days string) []string {
	codes := make([]string, 0, 2)
	for _, part := range strings.Split(days, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		codes = append(codes, part)
	}
	return codes
}

// WeekdayCode returns the two-letter code for the weekday of t.
func WeekdayCode(t time.Time) string {
	return t.Weekday().String()[:2]
}

// civil strips the clock and zone from t, keeping its calendar date.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
