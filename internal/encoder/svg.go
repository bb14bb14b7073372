package encoder

import (
	"fmt"
	"os"
	"strings"

	"github.com/ivlev/svg2anim/internal/timeline"
)

// Placement is one positioned set of paths inside a frame group.
type Placement struct {
	Class     string   // fill class name
	Transform string   // optional transform attribute
	Paths     []string // path "d" data
}

// ClassFill maps a class name to its fill color.
type ClassFill struct {
	Class string
	Fill  string
}

// Animation is a complete animated SVG document: every frame is a hidden
// layered group and a block of cyclic step-end keyframes toggles exactly
// one group visible at a time, forever, with no driving script.
type Animation struct {
	ViewBox [4]float64
	FrameMS int
	Fills   []ClassFill
	Static  []Placement // always-visible layers drawn under the frames
	Frames  [][]Placement
}

// Duration returns the loop period in seconds.
func (a *Animation) Duration() float64 {
	return float64(len(a.Frames)) * float64(a.FrameMS) / 1000.0
}

// WriteSVG renders the animation document to a file.
func WriteSVG(path string, a *Animation) error {
	if len(a.Frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	return os.WriteFile(path, []byte(a.Encode()), 0644)
}

// Encode builds the SVG document text.
func (a *Animation) Encode() string {
	var b strings.Builder
	n := len(a.Frames)
	dur := a.Duration()

	fmt.Fprintf(&b, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		a.ViewBox[0], a.ViewBox[1], a.ViewBox[2], a.ViewBox[3])
	b.WriteString("  <defs>\n    <style>\n")

	b.WriteString("      .frame { opacity: 0; }\n")
	for _, cf := range a.Fills {
		fmt.Fprintf(&b, "      .%s { fill: %s; }\n", cf.Class, cf.Fill)
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "      .f%d { animation: f%d %.3fs infinite step-end; }\n", i+1, i+1, dur)
	}
	b.WriteString("\n")

	for i, iv := range timeline.Steps(n) {
		b.WriteString(stepKeyframes(i+1, iv))
	}

	b.WriteString("    </style>\n  </defs>\n\n")

	for _, p := range a.Static {
		b.WriteString(placement("  ", p))
	}

	for i, frame := range a.Frames {
		fmt.Fprintf(&b, "  <g class=\"frame f%d\">\n", i+1)
		for _, p := range frame {
			b.WriteString(placement("    ", p))
		}
		b.WriteString("  </g>\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// stepKeyframes emits one @keyframes rule. The first and last frames get
// one-sided wraparound declarations so 0% and 100% coincide and the loop
// seam has no gap.
func stepKeyframes(id int, iv timeline.Interval) string {
	switch {
	case iv.First && iv.Last:
		return fmt.Sprintf("      @keyframes f%d { 0%%, 100%% { opacity: 1; } }\n", id)
	case iv.First:
		return fmt.Sprintf("      @keyframes f%d { 0%%, %.2f%% { opacity: 1; } %.2f%%, 100%% { opacity: 0; } }\n",
			id, iv.End, iv.End)
	case iv.Last:
		return fmt.Sprintf("      @keyframes f%d { 0%%, %.2f%% { opacity: 0; } %.2f%%, 100%% { opacity: 1; } }\n",
			id, iv.Start, iv.Start)
	default:
		return fmt.Sprintf("      @keyframes f%d { 0%%, %.2f%% { opacity: 0; } %.2f%%, %.2f%% { opacity: 1; } %.2f%%, 100%% { opacity: 0; } }\n",
			id, iv.Start, iv.Start, iv.End, iv.End)
	}
}

func placement(indent string, p Placement) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString("<g")
	if p.Class != "" {
		fmt.Fprintf(&b, " class=%q", p.Class)
	}
	if p.Transform != "" {
		fmt.Fprintf(&b, " transform=%q", p.Transform)
	}
	b.WriteString(">")
	for _, d := range p.Paths {
		fmt.Fprintf(&b, "<path d=%q/>", d)
	}
	b.WriteString("</g>\n")
	return b.String()
}

// Transform formats a translate+scale placement attribute.
func Transform(tx, ty, scale float64) string {
	if scale == 1 {
		return fmt.Sprintf("translate(%.2f, %.2f)", tx, ty)
	}
	return fmt.Sprintf("translate(%.2f, %.2f) scale(%g)", tx, ty, scale)
}
