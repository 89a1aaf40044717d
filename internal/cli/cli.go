package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pfrederiksen/course-calendar/internal/calendar"
	"github.com/pfrederiksen/course-calendar/internal/config"
	"github.com/pfrederiksen/course-calendar/internal/course"
	"github.com/pfrederiksen/course-calendar/internal/generator"
	"github.com/pfrederiksen/course-calendar/internal/logger"
	"github.com/pfrederiksen/course-calendar/internal/scraper"
	"github.com/pfrederiksen/course-calendar/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

type flags struct {
	configPath string
	input      string
	output     string
	year       string
	term       string
	format     string
	verbose    bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "course-calendar",
		Short: "Build an iCalendar file from a list of course sections",
		Long: `A CLI tool that looks up course outlines and writes every scheduled
lecture, lab and tutorial meeting of the listed sections into one .ics file.
Nothing is written unless every course could be fetched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&f.input, "input", "", "Course list file (default courses.txt)")
	cmd.PersistentFlags().StringVar(&f.year, "year", "", "Academic year, e.g. 2024 (default current)")
	cmd.PersistentFlags().StringVar(&f.term, "term", "", "Term, e.g. spring (default current)")
	cmd.PersistentFlags().StringVar(&f.format, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&f.verbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().StringVar(&f.output, "output", "", "Calendar file to write (default calendar.ics)")

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate the calendar file (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}
	generate.Flags().StringVar(&f.output, "output", "", "Calendar file to write (default calendar.ics)")

	courses := &cobra.Command{
		Use:   "courses",
		Short: "List the parsed course list and the outline URL of each entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCourses(cmd, f)
		},
	}

	cmd.AddCommand(generate, courses)
	return cmd
}

// setup loads configuration, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, f *flags) (*config.Config, OutputFormat, error) {
	format := OutputFormat(strings.ToLower(f.format))
	if format != FormatText && format != FormatJSON {
		return nil, "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", f.format)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	if f.input != "" {
		cfg.Input = f.input
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.year != "" {
		cfg.Year = f.year
	}
	if f.term != "" {
		cfg.Term = f.term
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, "", err
	}
	if f.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	return cfg, format, nil
}

func newClient(cfg *config.Config) *course.Client {
	return course.NewClient(course.ClientOptions{
		BaseURL:    cfg.OutlineBaseURL,
		Year:       cfg.Year,
		Term:       cfg.Term,
		SkipVerify: cfg.InsecureSkipVerify,
		Fetcher:    scraper.New(cfg.Timeout, cfg.UserAgent),
	})
}

// runGenerate is the main command logic
func runGenerate(cmd *cobra.Command, f *flags) error {
	cfg, format, err := setup(cmd, f)
	if err != nil {
		return err
	}

	ids, err := storage.LoadCourses(cfg.Input)
	if err != nil {
		return fmt.Errorf("loading courses: %w", err)
	}

	logger.Info("Generating calendar", logger.Fields{
		"courses": len(ids),
		"input":   cfg.Input,
		"year":    cfg.Year,
		"term":    cfg.Term,
	})

	gen := generator.New(newClient(cfg), generator.Options{
		RoomFinderURL:  cfg.RoomFinderURL,
		MaxConcurrency: cfg.MaxConcurrency,
		Calendar: calendar.Options{
			ProductID: cfg.ProductID,
			Name:      cfg.CalendarName,
		},
	})

	result, err := gen.Generate(cmd.Context(), ids)
	if err != nil {
		logger.Error("Calendar generation failed", logger.Fields{
			"kind": generator.Kind(err),
		}, err)
		return fmt.Errorf("generating calendar: %w", err)
	}

	if err := storage.SaveCalendar(cfg.Output, result.Document); err != nil {
		return fmt.Errorf("saving calendar: %w", err)
	}

	logger.Info("Wrote calendar", logger.Fields{
		"output": cfg.Output,
		"events": result.EventCount(),
	})

	out := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Output:      cfg.Output,
		Courses:     result.Courses,
		CourseCount: len(result.Courses),
		EventCount:  result.EventCount(),
	}
	if f.verbose {
		out.Metrics = logger.GetMetricsSnapshot()
	}

	if err := WriteOutput(cmd.OutOrStdout(), out, format, f.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// runCourses prints what would be fetched without touching the network.
func runCourses(cmd *cobra.Command, f *flags) error {
	cfg, format, err := setup(cmd, f)
	if err != nil {
		return err
	}

	ids, err := storage.LoadCourses(cfg.Input)
	if err != nil {
		return fmt.Errorf("loading courses: %w", err)
	}

	client := newClient(cfg)
	entries := make([]CourseEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, CourseEntry{Course: id, URL: client.OutlineURL(id)})
	}

	return WriteCourses(cmd.OutOrStdout(), entries, format)
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}
