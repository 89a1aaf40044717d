package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WallLayout is the layout of Event.Start and Event.End.
const WallLayout = "2006-01-02 15:04:05"

// namespace scopes event UIDs to this tool.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/pfrederiksen/course-calendar"))

// Event represents one class meeting on a concrete date
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"` // local wall clock, WallLayout when well formed
	End         string `json:"end"`
	Description string `json:"description"`
}

// GenerateID creates a deterministic ID for an event from its content
func GenerateID(title, start, end, description string) string {
	data := strings.Join([]string{title, start, end, description}, "|")
	return uuid.NewSHA1(namespace, []byte(data)).String()
}

// NewEvent creates a new Event with its ID populated
func NewEvent(title, start, end, description string) Event {
	return Event{
		ID:          GenerateID(title, start, end, description),
		Title:       title,
		Start:       start,
		End:         end,
		Description: description,
	}
}

// StartTime parses Start as a wall-clock time. The returned value is in UTC
// only as a carrier for the wall-clock fields; it is not a UTC instant.
func (e Event) StartTime() (time.Time, error) {
	return parseWall(e.Start)
}

// EndTime parses End like StartTime.
func (e Event) EndTime() (time.Time, error) {
	return parseWall(e.End)
}

func parseWall(s string) (time.Time, error) {
	t, err := time.ParseInLocation(WallLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t, nil
}
