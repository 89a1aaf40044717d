package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfrederiksen/course-calendar/internal/course"
)

type stringWriterTo string

func (s stringWriterTo) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(s))
	return int64(n), err
}

type failingWriterTo struct{}

func (failingWriterTo) WriteTo(w io.Writer) (int64, error) {
	io.WriteString(w, "BEGIN:VCALENDAR\r\n")
	return 0, errors.New("serialization failed")
}

func TestLoadCourses(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "courses.txt")
	content := "CMPT,120,D100\nMATH,150,D100,2024,spring\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write course list: %v", err)
	}

	ids, err := LoadCourses(path)
	if err != nil {
		t.Fatalf("LoadCourses() error = %v", err)
	}

	want := []course.Identifier{
		{Program: "CMPT", Number: "120", Section: "D100"},
		{Program: "MATH", Number: "150", Section: "D100", Year: "2024", Term: "spring"},
	}
	if len(ids) != len(want) {
		t.Fatalf("LoadCourses() returned %d courses, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("course %d = %+v, want %+v", i, ids[i], want[i])
		}
	}
}

func TestLoadCourses_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadCourses(filepath.Join(tmpDir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadCourses(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(tmpDir, "bad.txt")
	os.WriteFile(bad, []byte("CMPT;120;D100\n"), 0644)
	if _, err := LoadCourses(bad); !errors.Is(err, course.ErrInvalidInput) {
		t.Errorf("LoadCourses(bad) error = %v, want course.ErrInvalidInput", err)
	}
}

func TestSaveCalendar(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "calendar.ics")

	if err := SaveCalendar(path, stringWriterTo("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")); err != nil {
		t.Fatalf("SaveCalendar() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading calendar: %v", err)
	}
	if string(data) != "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n" {
		t.Errorf("calendar content = %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("permissions = %v, want 0644", info.Mode().Perm())
	}
}

func TestSaveCalendar_FailureKeepsPreviousFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "calendar.ics")
	if err := os.WriteFile(path, []byte("previous"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := SaveCalendar(path, failingWriterTo{}); err == nil {
		t.Fatal("SaveCalendar() expected error, got nil")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "previous" {
		t.Errorf("previous calendar was modified: %q", data)
	}

	entries, _ := os.ReadDir(tmpDir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ExpandPath("~/calendars/spring.ics")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != filepath.Join(home, "calendars", "spring.ics") {
		t.Errorf("ExpandPath() = %q", got)
	}

	if got, _ := ExpandPath("relative/calendar.ics"); got != "relative/calendar.ics" {
		t.Errorf("ExpandPath() changed a relative path: %q", got)
	}
}
