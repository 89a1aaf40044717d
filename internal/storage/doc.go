// Package storage reads the course list and writes the generated calendar file.
//
// The course list is a plain text file with one course per line. The calendar is
// written once per run through a temporary file in the destination directory that
// is renamed over the target, so a failed run never leaves a partial file and an
// existing calendar stays untouched until a complete replacement is ready.
package storage
