package model

import (
	"errors"
	"testing"
)

func TestParseDateFilter(t *testing.T) {
	tests := []struct {
		input     string
		wantYear  int
		wantMonth Month
		wantErr   error
	}{
		{input: "2023-07", wantYear: 2023, wantMonth: July},
		{input: "2023-12", wantYear: 2023, wantMonth: December},
		{input: "0001-01", wantYear: 1, wantMonth: January},
		{input: "2023-13", wantErr: ErrInvalidMonth},
		{input: "2023-00", wantErr: ErrInvalidMonth},
		{input: "23-07", wantErr: ErrInvalidDateFormat},
		{input: "2023-7", wantErr: ErrInvalidDateFormat},
		{input: "2023/07", wantErr: ErrInvalidDateFormat},
		{input: "2023-07x", wantErr: ErrInvalidDateFormat},
		{input: "", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateFilter(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDateFilter(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFilter(%q) failed: %v", tt.input, err)
			}
			if got.Year != tt.wantYear || got.Month != tt.wantMonth {
				t.Errorf("ParseDateFilter(%q) = %v, want {%d %v}",
					tt.input, got, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestMonthFromInt(t *testing.T) {
	for v := 1; v <= 12; v++ {
		month, err := MonthFromInt(v)
		if err != nil {
			t.Errorf("MonthFromInt(%d) failed: %v", v, err)
		}
		if month.Int() != v {
			t.Errorf("MonthFromInt(%d).Int() = %d", v, month.Int())
		}
	}

	for _, v := range []int{0, 13, -1, 100} {
		if _, err := MonthFromInt(v); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("MonthFromInt(%d) error = %v, want ErrInvalidMonth", v, err)
		}
	}
}

func TestMonth_String(t *testing.T) {
	if got := July.String(); got != "July" {
		t.Errorf("July.String() = %q", got)
	}
	if got := Month(42).String(); got != "Month(42)" {
		t.Errorf("Month(42).String() = %q", got)
	}
}

func TestDateFilter_String(t *testing.T) {
	filter, err := ParseDateFilter("2023-07")
	if err != nil {
		t.Fatal(err)
	}
	if got := filter.String(); got != "2023-07" {
		t.Errorf("String() = %q, want %q", got, "2023-07")
	}
}
