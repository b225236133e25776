package model

import (
	"errors"
	"testing"
)

func TestParseSpecNumber_Valid(t *testing.T) {
	tests := []struct {
		input      string
		wantSeries string
		wantNumber string
	}{
		{"23a", "23", "a"},
		{"23.a", "23", "a"},
		{"00Z", "00", "Z"},
		{"99.1", "99", "1"},
		{"45B6", "45", "B6"},
		{"23.501", "23", "501"},
		{"23501", "23", "501"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSpecNumber(tt.input)
			if err != nil {
				t.Fatalf("ParseSpecNumber(%q) failed: %v", tt.input, err)
			}
			if got.Series != tt.wantSeries || got.Number != tt.wantNumber {
				t.Errorf("ParseSpecNumber(%q) = {%q, %q}, want {%q, %q}",
					tt.input, got.Series, got.Number, tt.wantSeries, tt.wantNumber)
			}
		})
	}
}

func TestParseSpecNumber_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single leading digit", "2a"},
		{"leading dot", ".23a"},
		{"letters before digits", "ab23"},
		{"dot with nothing after", "23."},
		{"empty", ""},
		{"trailing punctuation", "23.501!"},
		{"inner whitespace", "23 501"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpecNumber(tt.input)
			if err == nil {
				t.Fatalf("ParseSpecNumber(%q) succeeded, want error", tt.input)
			}
			if !errors.Is(err, ErrInvalidSpecNumber) {
				t.Errorf("error %v is not ErrInvalidSpecNumber", err)
			}
		})
	}
}

func TestSpecNumber_String(t *testing.T) {
	spec, err := ParseSpecNumber("23501")
	if err != nil {
		t.Fatal(err)
	}
	if got := spec.String(); got != "23.501" {
		t.Errorf("String() = %q, want %q", got, "23.501")
	}
}
