// Package config loads course-calendar settings from an optional YAML file.
//
// A missing file is not an error: defaults target the SFU course outline API for the
// current term. The input course list and output calendar paths may additionally be
// overridden with the COURSE_CALENDAR_INPUT and COURSE_CALENDAR_OUTPUT environment
// variables; no other setting is read from the environment.
package config
