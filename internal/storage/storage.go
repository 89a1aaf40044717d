package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/course-calendar/internal/course"
)

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// LoadCourses reads the course identifiers listed in path.
func LoadCourses(path string) ([]course.Identifier, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening course list: %w", err)
	}
	defer f.Close()

	ids, err := course.ReadIdentifiers(f)
	if err != nil {
		return nil, fmt.Errorf("parsing course list %s: %w", path, err)
	}
	return ids, nil
}

// SaveCalendar writes src to path atomically with 0644 permissions.
// Parent directories are created as needed.
func SaveCalendar(path string, src io.WriterTo) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".course-calendar-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	// No-op once the rename succeeded.
	defer os.Remove(tmpName)

	if _, err := src.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing calendar: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing calendar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing calendar: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting calendar permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing calendar: %w", err)
	}

	return nil
}
