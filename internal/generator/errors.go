package generator

import (
	"errors"
	"fmt"

	"github.com/pfrederiksen/course-calendar/internal/course"
	"github.com/pfrederiksen/course-calendar/internal/scraper"
)

// CourseError identifies the course that aborted a run.
type CourseError struct {
	Index  int // position in the input list
	Course course.Identifier
	Err    error
}

func (e *CourseError) Error() string {
	return fmt.Sprintf("course %s: %v", e.Course, e.Err)
}

func (e *CourseError) Unwrap() error { return e.Err }

// Kind classifies err for logs and summaries.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, course.ErrDataNotFound):
		return "data-not-found"
	case errors.Is(err, course.ErrUnexpectedStatus):
		return "unexpected-status"
	case errors.Is(err, scraper.ErrParserNotFound):
		return "parser-not-found"
	case errors.Is(err, scraper.ErrParse):
		return "parse"
	case errors.Is(err, scraper.ErrTransport):
		return "transport"
	case errors.Is(err, course.ErrInvalidInput):
		return "invalid-input"
	default:
		return "unknown"
	}
}
