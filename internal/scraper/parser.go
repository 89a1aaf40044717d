package scraper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parser selects how a fetched body is interpreted.
type Parser int

const (
	// ParseNone leaves the body as raw text.
	ParseNone Parser = iota
	// ParseJSON decodes the body into a generic JSON value.
	ParseJSON
	// ParseMarkup builds a navigable HTML document.
	ParseMarkup
)

func (p Parser) String() string {
	switch p {
	case ParseNone:
		return "none"
	case ParseJSON:
		return "json"
	case ParseMarkup:
		return "markup"
	default:
		return fmt.Sprintf("parser(%d)", int(p))
	}
}

// ParserFromString maps a config value onto a Parser.
// "html" and "soup" are accepted as aliases for markup.
func ParserFromString(s string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ParseNone, nil
	case "json":
		return ParseJSON, nil
	case "markup", "html", "soup":
		return ParseMarkup, nil
	default:
		return ParseNone, fmt.Errorf("the requested parser %q does not exist: %w", s, ErrParserNotFound)
	}
}

// Parsed holds the outcome of Parse. Exactly one of Value or Document is set
// for ParseJSON and ParseMarkup respectively; both are nil for ParseNone.
type Parsed struct {
	Value    any
	Document *goquery.Document
}

// Parse interprets body with the given parser.
//
// JSON decoding fails with a *DecodeError. Markup parsing does not fail on
// malformed HTML; the html5 tokenizer repairs it into a best-effort tree.
func Parse(body []byte, parser Parser) (Parsed, error) {
	switch parser {
	case ParseNone:
		return Parsed{}, nil
	case ParseJSON:
		var v any
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return Parsed{}, &DecodeError{Parser: parser, Err: err}
		}
		// Trailing garbage after the first value is still malformed JSON.
		if dec.More() {
			return Parsed{}, &DecodeError{Parser: parser, Err: fmt.Errorf("unexpected data after top-level value")}
		}
		return Parsed{Value: v}, nil
	case ParseMarkup:
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			return Parsed{}, &DecodeError{Parser: parser, Err: err}
		}
		return Parsed{Document: doc}, nil
	default:
		return Parsed{}, fmt.Errorf("the requested parser %q does not exist: %w", parser, ErrParserNotFound)
	}
}
