package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pfrederiksen/course-calendar/internal/course"
	"github.com/pfrederiksen/course-calendar/internal/generator"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	Output      string                    `json:"output"`
	Courses     []generator.CourseSummary `json:"courses"`
	CourseCount int                       `json:"course_count"`
	EventCount  int                       `json:"event_count"`
	Metrics     map[string]interface{}    `json:"metrics,omitempty"`
}

// CourseEntry is one line of the course list with the URL it resolves to.
type CourseEntry struct {
	Course course.Identifier `json:"course"`
	URL    string            `json:"url"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteCourses writes the parsed course list in the specified format
func WriteCourses(w io.Writer, entries []CourseEntry, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatText:
		if len(entries) == 0 {
			fmt.Fprintln(w, "No courses listed.")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s\n  %s\n", e.Course, e.URL)
		}
		fmt.Fprintf(w, "\nTotal: %d courses\n", len(entries))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.CourseCount == 0 {
		fmt.Fprintf(w, "No courses listed; wrote an empty calendar to %s\n", result.Output)
		return nil
	}

	for _, c := range result.Courses {
		name := c.Name
		if name == "" {
			name = c.Course.String()
		}
		fmt.Fprintf(w, "%s: %d events from %d schedule blocks\n", name, c.Events, c.Blocks)
		if verbose {
			fmt.Fprintf(w, "     Section: %s\n", c.Course)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d events across %d courses, written to %s\n",
		result.EventCount, result.CourseCount, result.Output)

	if verbose && result.Metrics != nil {
		writeMetrics(w, result.Metrics)
	}
	return nil
}

func writeMetrics(w io.Writer, metrics map[string]interface{}) {
	counters, _ := metrics["counters"].(map[string]int64)
	if len(counters) == 0 {
		return
	}

	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "\nMetrics:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %d\n", name, counters[name])
	}
}
