// Package schedule expands weekly recurring schedule blocks into dated events.
//
// A Block describes one meeting pattern of a course section: an inclusive civil date
// range, the two-letter weekday codes it meets on, start and end clock times and a
// room. Expansion scans the range one civil day at a time, so results are correct
// across month, year and daylight-saving boundaries, and emits one event.Event per
// matching date in chronological order for each weekday code.
package schedule
