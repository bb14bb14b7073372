package svgpath

import (
	"math"
	"testing"
)

// Two real flame keyframes. Their command structures differ (the second
// gains an s segment), which is the common case for the hand-drawn
// frames: interpolation falls back to snapping.
const (
	flameA = "M83,44.4c.5,4.3-1.6,8.3-3.9,12.8-1.3,2-2,4.7-4.4,5.5-1.7.3-3.6-1.3-5.4-2.8-3-3-6.3-6.1-6.8-10.5-.3-4.6.5-9.8,2.7-14,1.3-2.5,2.4-5.2,4.1-7.4.9-1.1,3.3-4.7,4.9-3,.9,1.3-.5,4.3,0,5.7,1.3,3.1,4.1,5.2,6.1,8,1.4,2,2.2,3.9,2.4,5.8h.3Z"
	flameB = "M83.1,44.4c.5,4.3-1.6,8.3-3.9,12.8-1.3,2-2,4.7-4.4,5.5-1.7.3-3.6-1.3-5.4-2.8-2.8-2.8-6-5.8-6.8-10.1-.9-5.4,3.5-9.4,5.4-14,.8-1.9,1.9-5,3.6-6.1,2.5-1.7,3.1,2.4,4.6,4.1s3,3.1,4.4,4.9c1.4,2,2.2,3.9,2.4,5.8h.2,0Z"
)

// Two compatible variants of the first flame frame: identical skeleton,
// operands nudged.
const (
	compatA = "M83,44.4c.5,4.3-1.6,8.3-3.9,12.8-1.3,2-2,4.7-4.4,5.5-1.7.3-3.6-1.3-5.4-2.8-3-3-6.3-6.1-6.8-10.5h.3Z"
	compatB = "M85,46.4c.7,4.5-1.2,8.1-3.5,12.4-1.5,2.2-2.4,4.9-4.8,5.9-1.5.5-3.2-1.5-5-3-3.2-3.2-6.5-6.3-7-10.9h.5Z"
)

func pathsEqual(a, b string, tolerance float64) bool {
	pa := Parse(a)
	pb := Parse(b)
	if pa.Skeleton() != pb.Skeleton() {
		return false
	}
	na := pa.Args()
	nb := pb.Args()
	if len(na) != len(nb) {
		return false
	}
	for i := range na {
		if math.Abs(na[i]-nb[i]) > tolerance {
			return false
		}
	}
	return true
}

func TestInterpolateEndpoints(t *testing.T) {
	// At t=0 and t=1 the result equals the corresponding input up to
	// number formatting (one decimal place).
	if got := Interpolate(compatA, compatB, 0); !pathsEqual(got, compatA, 0.05) {
		t.Errorf("t=0 should reproduce the first path, got %s", got)
	}
	if got := Interpolate(compatA, compatB, 1); !pathsEqual(got, compatB, 0.05) {
		t.Errorf("t=1 should reproduce the second path, got %s", got)
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	a := "M0,0C10,20,30,40,50,60Z"
	b := "M10,10C20,30,40,50,60,70Z"

	got := Interpolate(a, b, 0.5)

	args := Parse(got).Args()
	expected := []float64{5, 5, 15, 25, 35, 45, 55, 65}
	if len(args) != len(expected) {
		t.Fatalf("expected %d operands, got %d (%s)", len(expected), len(args), got)
	}
	for i, want := range expected {
		if math.Abs(args[i]-want) > 1e-9 {
			t.Errorf("operand %d: expected %v (arithmetic mean), got %v", i, want, args[i])
		}
	}
	if Parse(got).Skeleton() != "MCZ" {
		t.Errorf("skeleton should come from the first path, got %s", Parse(got).Skeleton())
	}
}

func TestInterpolateNoOvershoot(t *testing.T) {
	na := Parse(compatA).Args()
	nb := Parse(compatB).Args()

	for _, tt := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		got := Interpolate(compatA, compatB, tt)

		ng := Parse(got).Args()
		if len(ng) != len(na) {
			t.Fatalf("t=%.2f: operand count changed: %d -> %d", tt, len(na), len(ng))
		}

		// Every blended operand stays between its endpoints, with slack
		// for the one-decimal output rounding.
		for i := range ng {
			lo := math.Min(na[i], nb[i]) - 0.05
			hi := math.Max(na[i], nb[i]) + 0.05
			if ng[i] < lo || ng[i] > hi {
				t.Errorf("t=%.2f operand %d: %v outside [%v, %v]", tt, i, ng[i], lo, hi)
			}
		}
	}
}

func TestInterpolateIncompatibleFallback(t *testing.T) {
	if Compatible(Parse(flameA), Parse(flameB)) {
		t.Fatal("test frames should be structurally incompatible")
	}

	if got := Interpolate(flameA, flameB, 0.49); got != flameA {
		t.Errorf("t=0.49 should return the first path verbatim")
	}
	if got := Interpolate(flameA, flameB, 0.51); got != flameB {
		t.Errorf("t=0.51 should return the second path verbatim")
	}
	if got := Interpolate(flameA, flameB, 0.5); got != flameB {
		t.Errorf("t=0.5 ties to the second path")
	}
}

func TestInterpolatePreservesSeparators(t *testing.T) {
	a := "M1,2 L3,4Z"
	b := "M3,4 L5,6Z"

	got := Interpolate(a, b, 0.5)
	if got != "M2,3 L4,5Z" {
		t.Errorf("expected M2,3 L4,5Z, got %s", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{2.0, "2"},
		{-3.0, "-3"},
		{0.0, "0"},
		{2.55, "2.5"},
		{0.5, "0.5"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.expected {
			t.Errorf("formatNumber(%v): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

func TestEasingNames(t *testing.T) {
	for _, name := range []string{"", "linear", "in-out-quad", "in-out-cubic", "nonsense"} {
		fn := Easing(name)
		if fn == nil {
			t.Fatalf("Easing(%q) returned nil", name)
		}
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("Easing(%q)(0): expected 0, got %v", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("Easing(%q)(1): expected 1, got %v", name, got)
		}
	}
}
