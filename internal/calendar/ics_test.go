package calendar

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/course-calendar/internal/event"
)

func sampleEvent() event.Event {
	return event.NewEvent(
		"CMPT 120 LEC",
		"2024-01-15 09:30:00",
		"2024-01-15 10:20:00",
		"Room: <a href=\"https://rooms.test/?room=AQ3150\">AQ3150</a>\nInstructors: Ada Lovelace, Alan Turing",
	)
}

func TestDocument_Serialize(t *testing.T) {
	doc := NewDocument(Options{Name: "Spring 2024"})
	if err := doc.Add(sampleEvent()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	out := doc.Serialize()

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + DefaultProductID,
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Spring 2024",
		"BEGIN:VEVENT",
		"UID:" + sampleEvent().ID + "@course-calendar",
		"DTSTART:20240115T093000\r\n",
		"DTEND:20240115T102000\r\n",
		"SUMMARY:CMPT 120 LEC",
		"DESCRIPTION:",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(out, field) {
			t.Errorf("calendar missing %q\n%s", field, out)
		}
	}

	if !strings.Contains(out, "\r\n") {
		t.Error("calendar should use \\r\\n line endings")
	}
	if !strings.Contains(out, "DTSTAMP:20240115T093000Z\r\n") {
		t.Errorf("DTSTAMP should default to the event start\n%s", out)
	}
}

func TestDocument_ParsesBack(t *testing.T) {
	doc := NewDocument(Options{})
	for _, evt := range []event.Event{
		sampleEvent(),
		event.NewEvent("CMPT 120 LAB", "2024-01-16 14:30:00", "2024-01-16 16:20:00", "Room: ASB9840\nInstructor: None Specified"),
	} {
		if err := doc.Add(evt); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	cal, err := ics.ParseCalendar(strings.NewReader(doc.Serialize()))
	if err != nil {
		t.Fatalf("ParseCalendar() error = %v", err)
	}

	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("parsed %d events, want 2", len(events))
	}

	start := events[1].GetProperty(ics.ComponentPropertyDtStart)
	if start == nil || start.Value != "20240116T143000" {
		t.Errorf("DTSTART = %+v, want 20240116T143000", start)
	}
	summary := events[1].GetProperty(ics.ComponentPropertySummary)
	if summary == nil || summary.Value != "CMPT 120 LAB" {
		t.Errorf("SUMMARY = %+v", summary)
	}
}

func TestDocument_Stamp(t *testing.T) {
	doc := NewDocument(Options{Stamp: time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)})
	if err := doc.Add(sampleEvent()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	out := doc.Serialize()

	// DTSTAMP is a true UTC instant and keeps its marker.
	if !strings.Contains(out, "DTSTAMP:20240101T120000Z") {
		t.Errorf("calendar missing DTSTAMP with Z\n%s", out)
	}
	if strings.Contains(out, "DTSTAMP:20240115T093000Z") {
		t.Error("configured stamp should replace the start-derived one")
	}
}

func TestDocument_EveryEventStampedDeterministically(t *testing.T) {
	build := func() string {
		doc := NewDocument(Options{})
		for _, evt := range []event.Event{
			sampleEvent(),
			event.NewEvent("CMPT 120 LAB", "2024-01-16 14:30:00", "2024-01-16 16:20:00", ""),
		} {
			if err := doc.Add(evt); err != nil {
				t.Fatalf("Add() error = %v", err)
			}
		}
		return doc.Serialize()
	}

	out := build()
	if got := strings.Count(out, "DTSTAMP:"); got != 2 {
		t.Errorf("found %d DTSTAMP lines, want 2\n%s", got, out)
	}
	if !strings.Contains(out, "DTSTAMP:20240116T143000Z\r\n") {
		t.Errorf("LAB event not stamped with its start\n%s", out)
	}
	if again := build(); again != out {
		t.Error("serialization differs between identical runs")
	}
}

func TestDocument_MalformedTime(t *testing.T) {
	doc := NewDocument(Options{})

	evt := event.NewEvent("CMPT 120 LEC", "2024-01-15 09:5:00", "2024-01-15 10:20:00", "")
	err := doc.Add(evt)

	if !errors.Is(err, event.ErrInvalidTime) {
		t.Fatalf("Add() error = %v, want event.ErrInvalidTime", err)
	}
	if doc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", doc.Len())
	}
}

func TestDocument_DuplicateEventsKeepDistinctUIDs(t *testing.T) {
	doc := NewDocument(Options{})
	evt := sampleEvent()

	for i := 0; i < 2; i++ {
		if err := doc.Add(evt); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	out := doc.Serialize()

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("BEGIN:VEVENT count = %d, want 2", got)
	}
	if !strings.Contains(out, "UID:"+evt.ID+"@course-calendar") || !strings.Contains(out, "UID:"+evt.ID+"-2@course-calendar") {
		t.Errorf("expected distinct UIDs\n%s", out)
	}
	if doc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", doc.Len())
	}
}

func TestDocument_Deterministic(t *testing.T) {
	build := func() string {
		doc := NewDocument(Options{})
		doc.Add(sampleEvent())
		doc.Add(event.NewEvent("MATH 150 LEC", "2024-01-17 11:30:00", "2024-01-17 12:20:00", "Room: SCK9500\nInstructor: A"))
		return doc.Serialize()
	}

	if build() != build() {
		t.Error("serializing identical documents produced different output")
	}
}

func TestDocument_WriteTo(t *testing.T) {
	doc := NewDocument(Options{})
	doc.Add(sampleEvent())

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) || buf.String() != doc.Serialize() {
		t.Errorf("WriteTo() wrote %d bytes, buffer has %d", n, buf.Len())
	}
}

func TestFixTimezone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "start line",
			in:   "DTSTART:20240115T093000Z\r\n",
			want: "DTSTART:20240115T093000\r\n",
		},
		{
			name: "end line",
			in:   "DTEND:20240115T102000Z\r\n",
			want: "DTEND:20240115T102000\r\n",
		},
		{
			name: "start line with parameters",
			in:   "DTSTART;VALUE=DATE-TIME:20240115T093000Z\r\n",
			want: "DTSTART;VALUE=DATE-TIME:20240115T093000\r\n",
		},
		{
			name: "other content keeps Z",
			in:   "SUMMARY:ZOOL 100 LEC\r\nDESCRIPTION:Room: <a href=\"x\">AQZ</a>\r\n",
			want: "SUMMARY:ZOOL 100 LEC\r\nDESCRIPTION:Room: <a href=\"x\">AQZ</a>\r\n",
		},
		{
			name: "stamp keeps Z",
			in:   "DTSTAMP:20240101T120000Z\r\n",
			want: "DTSTAMP:20240101T120000Z\r\n",
		},
		{
			name: "mixed block",
			in:   "BEGIN:VEVENT\r\nDTSTART:20240115T093000Z\r\nSUMMARY:Z\r\nDTEND:20240115T102000Z\r\nEND:VEVENT\r\n",
			want: "BEGIN:VEVENT\r\nDTSTART:20240115T093000\r\nSUMMARY:Z\r\nDTEND:20240115T102000\r\nEND:VEVENT\r\n",
		},
		{
			name: "no trailing newline",
			in:   "DTSTART:20240115T093000Z",
			want: "DTSTART:20240115T093000",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixTimezone(tt.in); got != tt.want {
				t.Errorf("FixTimezone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
