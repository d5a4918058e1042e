package duration

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2.5", 2.5},
		{"2,5", 2.5},
		{"2", 2},
		{"2h30", 2.5},
		{"2h30m", 2.5},
		{"2h", 2},
		{"30m", 0.5},
		{"2:30", 2.5},
		{"  2H30  ", 2.5}, // trimmed and lowercased before matching
		{"0", 0},
		{"1h05", 1 + 5.0/60},
		{"45m", 0.75},
		{"10:15", 10.25},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if !ok {
				t.Fatalf("Parse(%q) did not match, want %v", tt.input, tt.want)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNoMatch(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"-1",
		"-2h",
		"2h30h",
		"1.5h",
		"2.5.5",
		"h30",
		"30mm",
		"2:",
		":30",
		"2 h",
		"2.5m",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, ok := Parse(input)
			if ok {
				t.Errorf("Parse(%q) = %v, want no match", input, got)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{2.5, "2.5h"},
		{2, "2h"},
		{2.25, "2.25h"},
		{0.5, "0.5h"},
		{0, "0h"},
		{2.004, "2h"},   // rounded to 2 decimals before trimming
		{2.999, "3h"},
		{1.333, "1.33h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.hours); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.hours, got, tt.want)
			}
		})
	}
}

func TestFormatDetailed(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{2.5, "2h 30m"},
		{0.5, "30m"},
		{2, "2h"},
		{1.25, "1h 15m"},
		{0, "0m"},
		{2.999, "3h"}, // minute overflow carries into the hour
		{0.999, "1h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDetailed(tt.hours); got != tt.want {
				t.Errorf("FormatDetailed(%v) = %q, want %q", tt.hours, got, tt.want)
			}
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2h30", "2h 30m"},
		{"2:30", "2h 30m"},
		{"30m", "30m"},
		{"2.5", "2h 30m"},
		{"2", "2h"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hours, ok := Parse(tt.input)
			if !ok {
				t.Fatalf("Parse(%q) did not match", tt.input)
			}
			if got := FormatDetailed(hours); got != tt.want {
				t.Errorf("FormatDetailed(Parse(%q)) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
