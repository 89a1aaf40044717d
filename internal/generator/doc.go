// Package generator assembles the course calendar for a list of course identifiers.
//
// All outlines are fetched concurrently and joined before any event is built. A failing
// fetch does not cancel the others. A run is all-or-nothing: if any course fails, no
// calendar is produced, and the error reported is the failure of the course listed
// first in the input. After the join, every schedule block of every course is
// expanded into events in input order, so identical outline data always serializes to
// identical bytes.
package generator
