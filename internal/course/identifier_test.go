package course

import (
	"errors"
	"strings"
	"testing"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Identifier
		wantErr bool
	}{
		{
			name: "three fields",
			line: "CMPT,120,D100",
			want: Identifier{Program: "CMPT", Number: "120", Section: "D100"},
		},
		{
			name: "year only",
			line: "MATH,150,D100,2024",
			want: Identifier{Program: "MATH", Number: "150", Section: "D100", Year: "2024"},
		},
		{
			name: "year and term",
			line: "cmpt,225,d200,2024,summer",
			want: Identifier{Program: "cmpt", Number: "225", Section: "d200", Year: "2024", Term: "summer"},
		},
		{
			name: "whitespace trimmed",
			line: " CMPT , 120 , D100 ",
			want: Identifier{Program: "CMPT", Number: "120", Section: "D100"},
		},
		{name: "too few fields", line: "CMPT,120", wantErr: true},
		{name: "too many fields", line: "CMPT,120,D100,2024,spring,extra", wantErr: true},
		{name: "empty section", line: "CMPT,120,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentifier(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("ParseIdentifier(%q) error = %v, want ErrInvalidInput", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIdentifier(%q) unexpected error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseIdentifier(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestReadIdentifiers(t *testing.T) {
	input := `# spring courses
CMPT,120,D100

MATH,150,D100,2024,spring
`
	ids, err := ReadIdentifiers(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadIdentifiers() error = %v", err)
	}

	if len(ids) != 2 {
		t.Fatalf("ReadIdentifiers() returned %d identifiers, want 2", len(ids))
	}
	if ids[0].Program != "CMPT" || ids[1].Term != "spring" {
		t.Errorf("ReadIdentifiers() = %+v", ids)
	}
}

func TestReadIdentifiers_ReportsLineNumber(t *testing.T) {
	input := "CMPT,120,D100\n\nbroken line\n"

	_, err := ReadIdentifiers(strings.NewReader(input))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ReadIdentifiers() error = %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should name line 3", err)
	}
}

func TestReadIdentifiers_Empty(t *testing.T) {
	ids, err := ReadIdentifiers(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadIdentifiers() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ReadIdentifiers() = %v, want none", ids)
	}
}

func TestIdentifierString(t *testing.T) {
	tests := []struct {
		id   Identifier
		want string
	}{
		{Identifier{Program: "cmpt", Number: "120", Section: "d100"}, "CMPT 120 D100"},
		{Identifier{Program: "CMPT", Number: "120", Section: "D100", Year: "2024", Term: "spring"}, "CMPT 120 D100 (2024/spring)"},
		{Identifier{Program: "CMPT", Number: "120", Section: "D100", Year: "2024"}, "CMPT 120 D100 (2024/default)"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
