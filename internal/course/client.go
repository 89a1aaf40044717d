package course

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pfrederiksen/course-calendar/internal/logger"
	"github.com/pfrederiksen/course-calendar/internal/scraper"
)

const (
	DefaultBaseURL = "https://www.sfu.ca/bin/wcm/course-outlines"
	// CurrentTerm asks the outline API for the current year or term.
	CurrentTerm = "current"
)

var (
	// ErrDataNotFound reports a course outline that is missing or empty.
	ErrDataNotFound = errors.New("the data could not be found")
	// ErrUnexpectedStatus reports a non-404 error status from the outline API.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// Fetcher is the fetch-and-parse capability the client depends on.
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts scraper.Options) (*scraper.Result, error)
}

// ClientOptions configure a Client. Zero values select the defaults.
type ClientOptions struct {
	BaseURL    string
	Year       string
	Term       string
	SkipVerify bool
	Fetcher    Fetcher
}

// Client fetches course outlines
type Client struct {
	baseURL    string
	year       string
	term       string
	skipVerify bool
	fetcher    Fetcher
}

// NewClient creates a course outline client
func NewClient(opts ClientOptions) *Client {
	c := &Client{
		baseURL:    opts.BaseURL,
		year:       opts.Year,
		term:       opts.Term,
		skipVerify: opts.SkipVerify,
		fetcher:    opts.Fetcher,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.year == "" {
		c.year = CurrentTerm
	}
	if c.term == "" {
		c.term = CurrentTerm
	}
	if c.fetcher == nil {
		c.fetcher = scraper.New(0, "")
	}
	return c
}

// OutlineURL builds the outline API URL for id:
// {base}?{year}/{term}/{program}/{number}/{section}, program and section lower-cased.
func (c *Client) OutlineURL(id Identifier) string {
	year := id.Year
	if year == "" {
		year = c.year
	}
	term := id.Term
	if term == "" {
		term = c.term
	}

	segments := []string{
		year,
		term,
		strings.ToLower(id.Program),
		id.Number,
		strings.ToLower(id.Section),
	}
	return c.baseURL + "?" + strings.Join(segments, "/")
}

// FetchOutline fetches and decodes the outline for one course offering.
//
// A 404 response or an empty document yields ErrDataNotFound. Transport and
// parse errors from the scraper are returned wrapped, so errors.Is still matches
// scraper.ErrTransport and scraper.ErrParse.
func (c *Client) FetchOutline(ctx context.Context, id Identifier) (*Info, error) {
	url := c.OutlineURL(id)

	logger.Debug("Fetching course outline", logger.Fields{
		"course": id.String(),
		"url":    url,
	})

	started := time.Now()
	result, err := c.fetcher.Fetch(ctx, url, scraper.Options{
		SkipVerify: c.skipVerify,
		Parser:     scraper.ParseJSON,
	})
	logger.RecordTiming("outline.fetch", time.Since(started))
	if err != nil {
		return nil, fmt.Errorf("fetching outline: %w", err)
	}

	switch {
	case result.StatusCode == http.StatusNotFound:
		return nil, ErrDataNotFound
	case !result.OK():
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, result.StatusCode)
	case isEmpty(result.Value):
		return nil, ErrDataNotFound
	}

	info, err := decodeOutline(result.Body)
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetched course outline", logger.Fields{
		"course":      id.String(),
		"name":        info.Name,
		"blocks":      len(info.Schedule),
		"instructors": len(info.Instructors),
	})

	return info, nil
}
