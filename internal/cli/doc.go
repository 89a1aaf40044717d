// Package cli implements the command-line interface for course-calendar.
//
// The cli package provides the Cobra-based CLI: it loads configuration, reads the course
// list, generates the calendar and reports a summary (text/JSON). It coordinates the
// config, storage, course and generator packages; the calendar file is written only
// when every listed course was fetched and expanded.
package cli
