// Package calendar builds the iCalendar document written at the end of a run.
//
// Events are added to a golang-ical calendar and serialized with CRLF line endings.
// Serialization then applies a fix-up pass to DTSTART and DTEND lines that removes
// the UTC marker, so that class times are read as local wall-clock times by the
// importing calendar client instead of being shifted from UTC.
package calendar
