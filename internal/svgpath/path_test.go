package svgpath

import (
	"math"
	"testing"
)

func TestParseBasic(t *testing.T) {
	p := Parse("M83,44.4c.5,4.3-1.6,8.3-3.9,12.8Z")

	if got := p.Skeleton(); got != "McZ" {
		t.Errorf("Skeleton: expected McZ, got %s", got)
	}
	if got := p.NumArgs(); got != 8 {
		t.Errorf("NumArgs: expected 8, got %d", got)
	}

	args := p.Args()
	expected := []float64{83, 44.4, 0.5, 4.3, -1.6, 8.3, -3.9, 12.8}
	for i, want := range expected {
		if math.Abs(args[i]-want) > 1e-9 {
			t.Errorf("arg %d: expected %v, got %v", i, want, args[i])
		}
	}
}

func TestParseAdjacentNumbers(t *testing.T) {
	// Numbers without separators, per the SVG grammar: a second dot or a
	// minus sign starts a new number.
	tests := []struct {
		d        string
		expected []float64
	}{
		{"L.5.5", []float64{0.5, 0.5}},
		{"L12.5.5", []float64{12.5, 0.5}},
		{"L1-2", []float64{1, -2}},
		{"L-1.6-8.3", []float64{-1.6, -8.3}},
		{"L-.5-.5", []float64{-0.5, -0.5}},
	}

	for _, tt := range tests {
		p := Parse(tt.d)
		args := p.Args()
		if len(args) != len(tt.expected) {
			t.Errorf("%q: expected %d numbers, got %d (%v)", tt.d, len(tt.expected), len(args), args)
			continue
		}
		for i, want := range tt.expected {
			if math.Abs(args[i]-want) > 1e-9 {
				t.Errorf("%q arg %d: expected %v, got %v", tt.d, i, want, args[i])
			}
		}
	}
}

func TestParseMalformedInput(t *testing.T) {
	// Stray punctuation is skipped, never fatal.
	p := Parse("M10,20 # L30,40 -. Z")
	if got := p.Skeleton(); got != "MLZ" {
		t.Errorf("Skeleton: expected MLZ, got %s", got)
	}
	if got := p.NumArgs(); got != 4 {
		t.Errorf("NumArgs: expected 4, got %d", got)
	}
}

func TestParseLeadingOperands(t *testing.T) {
	// Operands before the first command letter stay countable so two
	// equally malformed paths remain comparable.
	p := Parse("5,6M1,2")
	if got := p.NumArgs(); got != 4 {
		t.Errorf("NumArgs: expected 4, got %d", got)
	}
	if got := p.Skeleton(); got != "M" {
		t.Errorf("Skeleton: expected M, got %s", got)
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"M1,2L3,4Z", "M5,6L7,8Z", true},
		{"M1,2L3,4Z", "M5,6C7,8,9,10,11,12Z", false},
		// Same skeleton, operand count drifted within a command.
		{"M1,2L3,4Z", "M5,6L7Z", false},
		// Same total count, different distribution across commands.
		{"M1,2,3L4Z", "M1,2L3,4Z", false},
		{"", "", true},
	}

	for _, tt := range tests {
		if got := Compatible(Parse(tt.a), Parse(tt.b)); got != tt.expected {
			t.Errorf("Compatible(%q, %q): expected %v, got %v", tt.a, tt.b, tt.expected, got)
		}
	}
}
