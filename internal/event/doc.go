// Package event provides the dated calendar event produced for each class meeting.
//
// Events are immutable values: a title, local wall-clock start and end strings and a
// two-line description. Each event carries a deterministic name-based UUID derived
// from its content so that regenerating a calendar from identical outline data yields
// identical UIDs. The package also owns the small text formats used by the course
// outline API: schedule dates such as "Tue Jan 07 00:00:00 PST 2020" and clock times
// such as "9:30".
package event
