package course

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidInput reports a course list line that is not program,number,section[,year,term].
var ErrInvalidInput = errors.New("invalid course line")

// Identifier addresses one course offering.
// Empty Year or Term means the client's configured default.
type Identifier struct {
	Program string `json:"program"`
	Number  string `json:"number"`
	Section string `json:"section"`
	Year    string `json:"year,omitempty"`
	Term    string `json:"term,omitempty"`
}

// String renders e.g. "CMPT 120 D100" or "CMPT 120 D100 (2024/spring)".
func (id Identifier) String() string {
	s := fmt.Sprintf("%s %s %s", strings.ToUpper(id.Program), id.Number, strings.ToUpper(id.Section))
	if id.Year != "" || id.Term != "" {
		s += fmt.Sprintf(" (%s/%s)", orDefault(id.Year), orDefault(id.Term))
	}
	return s
}

func orDefault(s string) string {
	if s == "" {
		return "default"
	}
	return s
}

// ParseIdentifier parses one "program,number,section[,year,term]" line.
func ParseIdentifier(line string) (Identifier, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 || len(fields) > 5 {
		return Identifier{}, fmt.Errorf("%w: %q has %d fields, want 3 to 5", ErrInvalidInput, line, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	id := Identifier{
		Program: fields[0],
		Number:  fields[1],
		Section: fields[2],
	}
	if id.Program == "" || id.Number == "" || id.Section == "" {
		return Identifier{}, fmt.Errorf("%w: %q has an empty program, number or section", ErrInvalidInput, line)
	}
	if len(fields) > 3 {
		id.Year = fields[3]
	}
	if len(fields) > 4 {
		id.Term = fields[4]
	}
	return id, nil
}

// ReadIdentifiers parses a course list, one identifier per line.
// Blank lines and lines starting with '#' are skipped.
func ReadIdentifiers(r io.Reader) ([]Identifier, error) {
	var ids []Identifier

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id, err := ParseIdentifier(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading course list: %w", err)
	}

	return ids, nil
}
