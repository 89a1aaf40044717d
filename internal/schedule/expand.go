package schedule

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/pfrederiksen/course-calendar/internal/event"
)

// DefaultRoomFinderURL is prefixed to the room code to build the description link.
const DefaultRoomFinderURL = "https://www.sfu.ca/students/enrollment-services/room-finder.html?room="

// Dates yields every civil date in [start, end] whose weekday code is code, in
// chronological order. The range is scanned day by day. An unknown code or an
// empty range yields nothing.
func Dates(start, end time.Time, code string) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		last := civil(end)
		for day := civil(start); !day.After(last); day = day.AddDate(0, 0, 1) {
			if WeekdayCode(day) != code {
				continue
			}
			if !yield(day) {
				return
			}
		}
	}
}

// Expander turns schedule blocks into events.
type Expander struct {
	roomFinderURL string
}

// NewExpander creates an Expander linking rooms to roomFinderURL.
// An empty roomFinderURL uses DefaultRoomFinderURL.
func NewExpander(roomFinderURL string) *Expander {
	if roomFinderURL == "" {
		roomFinderURL = DefaultRoomFinderURL
	}
	return &Expander{roomFinderURL: roomFinderURL}
}

// Expand produces one event per matching date for each weekday code of block.
// Events are chronological within each weekday code. Clock text is not validated.
func (x *Expander) Expand(block Block, courseTitle string, instructors []string) []event.Event {
	title := courseTitle + " " + block.SectionCode
	description := x.Description(block, instructors)

	var events []event.Event
	for _, code := range block.Weekdays {
		for day := range Dates(block.StartDate, block.EndDate, code) {
			events = append(events, event.NewEvent(
				title,
				event.Wall(day, block.StartTime),
				event.Wall(day, block.EndTime),
				description,
			))
		}
	}
	return events
}

// ExpandBlocks expands every block of one course in order. Overlapping blocks are
// expanded independently; nothing is de-duplicated.
func (x *Expander) ExpandBlocks(blocks []Block, courseTitle string, instructors []string) []event.Event {
	var events []event.Event
	for _, block := range blocks {
		events = append(events, x.Expand(block, courseTitle, instructors)...)
	}
	return events
}

// Description renders the room link line and the instructor line.
func (x *Expander) Description(block Block, instructors []string) string {
	room := block.Room()
	return fmt.Sprintf("Room: <a href=\"%s%s\">%s</a>\n%s", x.roomFinderURL, room, room, InstructorLine(instructors))
}

// InstructorLine formats instructor names for an event description.
func InstructorLine(instructors []string) string {
	switch len(instructors) {
	case 0:
		return "Instructor: None Specified"
	case 1:
		return "Instructor: " + instructors[0]
	default:
		return "Instructors: " + strings.Join(instructors, ", ")
	}
}
