package course

import (
	"encoding/json"
	"fmt"

	"github.com/pfrederiksen/course-calendar/internal/event"
	"github.com/pfrederiksen/course-calendar/internal/schedule"
	"github.com/pfrederiksen/course-calendar/internal/scraper"
)

// Instructor is a person teaching the course offering.
type Instructor struct {
	Name string `json:"name"`
}

// Info is the part of a course outline needed to build calendar events.
type Info struct {
	Name        string // e.g. "CMPT 120"
	Title       string // e.g. "Introduction to Computing Science and Programming I"
	Instructors []Instructor
	Schedule    []schedule.Block
}

// InstructorNames returns the instructor names in outline order.
func (info *Info) InstructorNames() []string {
	names := make([]string, 0, len(info.Instructors))
	for _, in := range info.Instructors {
		names = append(names, in.Name)
	}
	return names
}

// outline mirrors the JSON document served by the course outline API.
type outline struct {
	Info struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	} `json:"info"`
	Instructor     []Instructor    `json:"instructor"`
	CourseSchedule []scheduleEntry `json:"courseSchedule"`
}

type scheduleEntry struct {
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Days         string `json:"days"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BuildingCode string `json:"buildingCode"`
	RoomNumber   string `json:"roomNumber"`
	SectionCode  string `json:"sectionCode"`
}

// decodeOutline converts a raw outline document into Info.
// Shape or date format mismatches are reported as scraper.ErrParse.
func decodeOutline(body []byte) (*Info, error) {
	var doc outline
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding outline: %w", scraper.ErrParse, err)
	}

	info := &Info{
		Name:        doc.Info.Name,
		Title:       doc.Info.Title,
		Instructors: doc.Instructor,
		Schedule:    make([]schedule.Block, 0, len(doc.CourseSchedule)),
	}

	for i, entry := range doc.CourseSchedule {
		block, err := entry.block()
		if err != nil {
			return nil, fmt.Errorf("%w: schedule entry %d: %w", scraper.ErrParse, i, err)
		}
		info.Schedule = append(info.Schedule, block)
	}

	return info, nil
}

func (e scheduleEntry) block() (schedule.Block, error) {
	start, err := event.ParseOutlineDate(e.StartDate)
	if err != nil {
		return schedule.Block{}, fmt.Errorf("start date: %w", err)
	}
	end, err := event.ParseOutlineDate(e.EndDate)
	if err != nil {
		return schedule.Block{}, fmt.Errorf("end date: %w", err)
	}

	return schedule.Block{
		StartDate:    start,
		EndDate:      end,
		Weekdays:     schedule.ParseDays(e.Days),
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		BuildingCode: e.BuildingCode,
		RoomNumber:   e.RoomNumber,
		SectionCode:  e.SectionCode,
	}, nil
}

// isEmpty reports whether a parsed JSON value carries no data.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case string:
		return val == ""
	default:
		return false
	}
}
