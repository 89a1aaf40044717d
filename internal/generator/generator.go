package generator

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfrederiksen/course-calendar/internal/calendar"
	"github.com/pfrederiksen/course-calendar/internal/course"
	"github.com/pfrederiksen/course-calendar/internal/logger"
	"github.com/pfrederiksen/course-calendar/internal/schedule"
	"github.com/pfrederiksen/course-calendar/internal/scraper"
)

// OutlineFetcher looks up the outline of one course offering.
type OutlineFetcher interface {
	FetchOutline(ctx context.Context, id course.Identifier) (*course.Info, error)
}

// Options configure a Generator.
type Options struct {
	RoomFinderURL string
	// MaxConcurrency caps simultaneous fetches; 0 means one goroutine per course.
	MaxConcurrency int
	Calendar       calendar.Options
}

// CourseSummary describes what one course contributed to the calendar.
type CourseSummary struct {
	Course course.Identifier `json:"course"`
	Name   string            `json:"name"`
	Blocks int               `json:"blocks"`
	Events int               `json:"events"`
}

// Result is the outcome of a successful run.
type Result struct {
	Document *calendar.Document
	Courses  []CourseSummary
}

// EventCount returns the number of events in the document.
func (r *Result) EventCount() int {
	return r.Document.Len()
}

// Generator turns course identifiers into a calendar document.
type Generator struct {
	fetcher  OutlineFetcher
	expander *schedule.Expander
	opts     Options
}

// New creates a Generator that looks outlines up with fetcher.
func New(fetcher OutlineFetcher, opts Options) *Generator {
	return &Generator{
		fetcher:  fetcher,
		expander: schedule.NewExpander(opts.RoomFinderURL),
		opts:     opts,
	}
}

// Generate fetches every course concurrently, then expands all schedule blocks
// into one calendar document. Any failure aborts the whole run with a *CourseError.
func (g *Generator) Generate(ctx context.Context, ids []course.Identifier) (*Result, error) {
	started := time.Now()
	defer func() { logger.RecordTiming("generate", time.Since(started)) }()

	logger.SetGauge("courses", float64(len(ids)))

	infos, err := g.fetchAll(ctx, ids)
	if err != nil {
		return nil, err
	}

	doc := calendar.NewDocument(g.opts.Calendar)
	summaries := make([]CourseSummary, 0, len(ids))

	for i, info := range infos {
		if len(info.Schedule) == 0 {
			logger.Warn("Course outline has no schedule blocks", logger.Fields{
				"course": ids[i].String(),
			})
		}

		events := g.expander.ExpandBlocks(info.Schedule, info.Name, info.InstructorNames())
		for _, evt := range events {
			if err := doc.Add(evt); err != nil {
				return nil, &CourseError{Index: i, Course: ids[i], Err: fmt.Errorf("%w: %w", scraper.ErrParse, err)}
			}
		}

		summaries = append(summaries, CourseSummary{
			Course: ids[i],
			Name:   info.Name,
			Blocks: len(info.Schedule),
			Events: len(events),
		})
		logger.Info("Expanded course schedule", logger.Fields{
			"course": ids[i].String(),
			"blocks": len(info.Schedule),
			"events": len(events),
		})
	}

	logger.AddCounter("events.generated", int64(doc.Len()))

	return &Result{Document: doc, Courses: summaries}, nil
}

// fetchAll runs one fetch per identifier and waits for all of them. A failing
// course does not cancel the others, so each slot of errs holds only that
// course's own failure. Each goroutine writes only its own slot.
func (g *Generator) fetchAll(ctx context.Context, ids []course.Identifier) ([]*course.Info, error) {
	infos := make([]*course.Info, len(ids))
	errs := make([]error, len(ids))

	var group errgroup.Group
	if g.opts.MaxConcurrency > 0 {
		group.SetLimit(g.opts.MaxConcurrency)
	}

	for i, id := range ids {
		group.Go(func() error {
			info, err := g.fetcher.FetchOutline(ctx, id)
			if err != nil {
				errs[i] = err
				logger.IncrCounter("outline.fetch.failed")
				return err
			}
			infos[i] = info
			logger.IncrCounter("outline.fetch.ok")
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, firstFailure(ids, errs)
	}
	return infos, nil
}

// firstFailure picks the failure of the lowest input index.
func firstFailure(ids []course.Identifier, errs []error) error {
	for i, err := range errs {
		if err != nil {
			return &CourseError{Index: i, Course: ids[i], Err: err}
		}
	}
	return nil
}
