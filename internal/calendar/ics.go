package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/course-calendar/internal/event"
)

const (
	DefaultProductID = "-//course-calendar//course-calendar//EN"
	uidDomain        = "course-calendar"
)

// Options configure a Document.
type Options struct {
	ProductID string
	// Name is written as X-WR-CALNAME when set.
	Name string
	// Stamp is written as DTSTAMP on every event when set. When zero, each
	// event is stamped with its own start so output stays byte-identical
	// across runs.
	Stamp time.Time
}

// Document accumulates events for one run and serializes them once.
type Document struct {
	cal   *ics.Calendar
	stamp time.Time
	uids  map[string]int
	count int
}

// NewDocument creates an empty calendar document.
func NewDocument(opts Options) *Document {
	productID := opts.ProductID
	if productID == "" {
		productID = DefaultProductID
	}

	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ics.MethodPublish)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	return &Document{
		cal:   cal,
		stamp: opts.Stamp,
		uids:  make(map[string]int),
	}
}

// Add appends evt as a VEVENT. Its wall-clock times must parse; an event with
// malformed time text is rejected with event.ErrInvalidTime.
func (d *Document) Add(evt event.Event) error {
	start, err := evt.StartTime()
	if err != nil {
		return fmt.Errorf("event %q start: %w", evt.Title, err)
	}
	end, err := evt.EndTime()
	if err != nil {
		return fmt.Errorf("event %q end: %w", evt.Title, err)
	}

	stamp := d.stamp
	if stamp.IsZero() {
		stamp = start
	}

	ve := d.cal.AddEvent(d.uid(evt.ID))
	ve.SetDtStampTime(stamp)
	// Wall-clock values are carried in UTC and serialized with a Z that
	// FixTimezone removes.
	ve.SetStartAt(start)
	ve.SetEndAt(end)
	ve.SetSummary(evt.Title)
	ve.SetDescription(evt.Description)

	d.count++
	return nil
}

// uid makes identical events (e.g. a block listed twice) distinct.
func (d *Document) uid(id string) string {
	d.uids[id]++
	if n := d.uids[id]; n > 1 {
		return fmt.Sprintf("%s-%d@%s", id, n, uidDomain)
	}
	return id + "@" + uidDomain
}

// Len returns the number of events added.
func (d *Document) Len() int {
	return d.count
}

// Serialize renders the calendar and applies FixTimezone.
func (d *Document) Serialize() string {
	return FixTimezone(d.cal.Serialize())
}

// WriteTo writes the serialized calendar to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Serialize())
	return int64(n), err
}

// FixTimezone removes the UTC marker from DTSTART and DTEND lines.
// All other lines, including ones containing a Z, are left untouched.
func FixTimezone(serialized string) string {
	var b strings.Builder
	b.Grow(len(serialized))

	for _, line := range strings.SplitAfter(serialized, "\n") {
		if strings.HasPrefix(line, "DTSTART") || strings.HasPrefix(line, "DTEND") {
			line = strings.ReplaceAll(line, "Z", "")
		}
		b.WriteString(line)
	}

	return b.String()
}
