// Package course provides the course outline client and the course identifiers it looks up.
//
// An Identifier addresses one course offering (program, number, section and an
// optional year and term). The Client builds the outline API URL for an identifier,
// fetches it as JSON through the scraper package and converts the response into an
// Info holding the course name, its instructors and its schedule blocks.
package course
