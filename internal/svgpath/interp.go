package svgpath

import (
	"math"
	"strconv"
	"strings"
)

// Interpolate blends two path strings at factor t in [0,1] and returns a
// new path string. Commands and punctuation come from a; every operand is
// a[i] + (b[i]-a[i])*t. Incompatible paths cannot be partially blended,
// so the closer original is returned verbatim: a for t < 0.5, b otherwise.
func Interpolate(a, b string, t float64) string {
	pa := Parse(a)
	pb := Parse(b)

	if !Compatible(pa, pb) {
		if t < 0.5 {
			return a
		}
		return b
	}

	argsA := pa.Args()
	argsB := pb.Args()
	blended := make([]float64, len(argsA))
	for i := range argsA {
		blended[i] = lerp(argsA[i], argsB[i], t)
	}

	return rebuild(a, blended)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// rebuild walks the original path string and substitutes each numeric
// token with the corresponding blended value, preserving the original
// command letters and separators byte for byte.
func rebuild(d string, nums []float64) string {
	var out strings.Builder
	out.Grow(len(d))

	idx := 0
	for i := 0; i < len(d); {
		c := d[i]
		if c == '-' || c == '.' || (c >= '0' && c <= '9') {
			_, end, ok := scanNumber(d, i)
			if ok && idx < len(nums) {
				out.WriteString(formatNumber(nums[idx]))
				idx++
			} else {
				out.WriteString(d[i:end])
			}
			i = end
			continue
		}
		out.WriteByte(c)
		i++
	}

	return out.String()
}

// formatNumber prints whole values as integer literals and everything
// else rounded to one decimal place, matching the precision of the
// hand-authored frame paths.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
