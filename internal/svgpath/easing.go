package svgpath

import "github.com/fogleman/ease"

// Easing resolves a scenario easing name to a function shaping the
// interpolation factor. Unknown names fall back to linear so a typo in a
// scenario file degrades to the original behavior instead of failing.
func Easing(name string) ease.Function {
	switch name {
	case "", "linear":
		return ease.Linear
	case "in-quad":
		return ease.InQuad
	case "out-quad":
		return ease.OutQuad
	case "in-out-quad":
		return ease.InOutQuad
	case "in-cubic":
		return ease.InCubic
	case "out-cubic":
		return ease.OutCubic
	case "in-out-cubic":
		return ease.InOutCubic
	case "in-out-sine":
		return ease.InOutSine
	case "out-elastic":
		return ease.OutElastic
	case "out-bounce":
		return ease.OutBounce
	default:
		return ease.Linear
	}
}
