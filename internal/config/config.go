package config

// Config holds run-level options assembled by the CLI.
type Config struct {
	InputDir  string
	OutputGIF string
	OutputSVG string
	FlameGIF  string
	FlameSVG  string
	Scenario  string
	Workers   int
}

// Size is a pixel (or viewBox unit) extent.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Point is a placement offset on the composite canvas.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Offset is a placement offset in viewBox units for the vector output.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GroupRule classifies assets into a named frame sequence and describes
// how its frames are normalized and placed. Groups are listed in draw
// order: the first group is the bottom layer of the composite.
type GroupRule struct {
	Name   string `yaml:"name"`
	MinID  int    `yaml:"min_id"`
	MaxID  int    `yaml:"max_id"` // 0 means unbounded
	Frame  Size   `yaml:"frame"`
	Anchor string `yaml:"anchor"` // "bottom" or "center"
	Fill   string `yaml:"fill"`
	Offset Point  `yaml:"offset"`

	// Vector placement for the animated SVG output.
	SVGOffset Offset  `yaml:"svg_offset"`
	SVGScale  float64 `yaml:"svg_scale"`

	// Interpolate marks the sequence that gets synthesized in-between
	// frames (the flame). At most one group should set it.
	Interpolate bool `yaml:"interpolate"`
}

// Matches reports whether an asset id falls inside the rule's range.
func (r GroupRule) Matches(id int) bool {
	if id < r.MinID {
		return false
	}
	return r.MaxID == 0 || id <= r.MaxID
}

// Preview describes the standalone flame-only artifacts.
type Preview struct {
	Size    Size   `yaml:"size"`
	FrameMS int    `yaml:"frame_ms"`
	Fill    string `yaml:"fill"`
}

// Scenario is the full animation description. Everything that used to be
// a hardcoded constant in the prototype (id thresholds, frame boxes,
// offsets, colors, durations) lives here so runs are reproducible and
// testable with varied parameters.
type Scenario struct {
	Version    string      `yaml:"version"`
	Canvas     Size        `yaml:"canvas"`
	Background string      `yaml:"background"`
	GIFFrameMS int         `yaml:"gif_frame_ms"`
	SVGFrameMS int         `yaml:"svg_frame_ms"`
	Inbetweens int         `yaml:"inbetweens"`
	Easing     string      `yaml:"easing"`
	Preview    Preview     `yaml:"preview"`
	Groups     []GroupRule `yaml:"groups"`
}

// Default reproduces the original hand-tuned animation: skull assets 13+
// anchored at the bottom of a 200x260 canvas, flame assets 2..12 sitting
// on the candle, 100ms raster frames, 150ms vector frames.
func Default() *Scenario {
	return &Scenario{
		Version:    "1.0",
		Canvas:     Size{Width: 200, Height: 260},
		Background: "#ffffff",
		GIFFrameMS: 100,
		SVGFrameMS: 150,
		Inbetweens: 1,
		Easing:     "linear",
		Preview: Preview{
			Size:    Size{Width: 100, Height: 200},
			FrameMS: 80,
			Fill:    "#f1574d",
		},
		Groups: []GroupRule{
			{
				Name:      "skull",
				MinID:     13,
				Frame:     Size{Width: 180, Height: 220},
				Anchor:    "bottom",
				Fill:      "#000000",
				Offset:    Point{X: 10, Y: 40},
				SVGOffset: Offset{X: 10, Y: 85},
				SVGScale:  1.2,
			},
			{
				Name:        "flame",
				MinID:       2,
				MaxID:       12,
				Frame:       Size{Width: 40, Height: 60},
				Anchor:      "bottom",
				Fill:        "#000000",
				Offset:      Point{X: 52, Y: 45},
				SVGOffset:   Offset{X: 72, Y: 35},
				SVGScale:    0.8,
				Interpolate: true,
			},
		},
	}
}

// InterpolatedGroup returns the index of the group marked for in-between
// synthesis, or -1 if none is.
func (s *Scenario) InterpolatedGroup() int {
	for i, g := range s.Groups {
		if g.Interpolate {
			return i
		}
	}
	return -1
}
