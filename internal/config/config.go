package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/course-calendar/internal/calendar"
	"github.com/pfrederiksen/course-calendar/internal/course"
	"github.com/pfrederiksen/course-calendar/internal/logger"
	"github.com/pfrederiksen/course-calendar/internal/schedule"
	"github.com/pfrederiksen/course-calendar/internal/scraper"
)

const (
	DefaultInput  = "courses.txt"
	DefaultOutput = "calendar.ics"

	EnvInput  = "COURSE_CALENDAR_INPUT"
	EnvOutput = "COURSE_CALENDAR_OUTPUT"
)

// Config is the top-level application configuration.
type Config struct {
	// OutlineBaseURL is the course outline API endpoint; the course path is
	// appended as its query string.
	OutlineBaseURL string `yaml:"outline_base_url"`

	// RoomFinderURL is prefixed to building+room codes in event descriptions.
	RoomFinderURL string `yaml:"room_finder_url"`

	// Year and Term are used for courses whose input line omits them.
	// "current" lets the API pick the current term.
	Year string `yaml:"year"`
	Term string `yaml:"term"`

	// InsecureSkipVerify disables TLS certificate verification for outline requests.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`

	// Timeout bounds each HTTP request, e.g. "30s".
	Timeout time.Duration `yaml:"timeout"`

	// MaxConcurrency caps simultaneous outline requests; 0 means no limit.
	MaxConcurrency int `yaml:"max_concurrency"`

	UserAgent    string `yaml:"user_agent"`
	ProductID    string `yaml:"product_id"`
	CalendarName string `yaml:"calendar_name"`
	LogLevel     string `yaml:"log_level"`

	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutlineBaseURL: course.DefaultBaseURL,
		RoomFinderURL:  schedule.DefaultRoomFinderURL,
		Year:           course.CurrentTerm,
		Term:           course.CurrentTerm,
		Timeout:        scraper.Timeout,
		UserAgent:      scraper.UserAgent,
		ProductID:      calendar.DefaultProductID,
		LogLevel:       "info",
		Input:          DefaultInput,
		Output:         DefaultOutput,
	}
}

// Normalize fills in missing/zero values so partially-filled files behave.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.OutlineBaseURL == "" {
		c.OutlineBaseURL = def.OutlineBaseURL
	}
	if c.RoomFinderURL == "" {
		c.RoomFinderURL = def.RoomFinderURL
	}
	if c.Year == "" {
		c.Year = def.Year
	}
	if c.Term == "" {
		c.Term = def.Term
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.MaxConcurrency < 0 {
		c.MaxConcurrency = 0
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.ProductID == "" {
		c.ProductID = def.ProductID
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Input == "" {
		c.Input = def.Input
	}
	if c.Output == "" {
		c.Output = def.Output
	}
}

// Validate reports settings that cannot be normalized away.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Load reads configuration from the YAML file at path, then applies the
// environment overrides. An empty path or a missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			cfg = &Config{}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv(os.LookupEnv)
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvInput); ok && v != "" {
		c.Input = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.Output = v
	}
}
