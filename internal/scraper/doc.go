// Package scraper provides the HTTP fetch and parse step used by the course outline client.
//
// A Scraper issues a single GET per call and optionally parses the body as JSON or as
// an HTML document (via goquery). Failures are reported through a small taxonomy:
// ErrTransport when no HTTP response was obtained, ErrParse when the body does not
// decode with the requested parser, and ErrParserNotFound for an unknown parser. An
// HTTP error status is not an error at this layer; callers inspect Result.StatusCode.
package scraper
