package svgpath

import (
	"strconv"
	"strings"
)

// Command is a single drawing command from a path "d" attribute: a letter
// from the SVG path grammar followed by its numeric operands.
type Command struct {
	Letter byte
	Args   []float64
}

// Path is the ordered command list parsed from a path string. Paths are
// never mutated in place; interpolation always produces a new string.
type Path []Command

const commandLetters = "MmLlHhVvCcSsQqTtAaZz"

func isCommandLetter(b byte) bool {
	return strings.IndexByte(commandLetters, b) >= 0
}

// Parse decomposes a path string into its command structure. Unrecognized
// bytes (separators, stray punctuation) are skipped and never fatal, so
// malformed input degrades to a shorter operand list instead of an error.
func Parse(d string) Path {
	var path Path

	for i := 0; i < len(d); {
		c := d[i]
		switch {
		case isCommandLetter(c):
			path = append(path, Command{Letter: c})
			i++
		case c == '-' || c == '.' || (c >= '0' && c <= '9'):
			val, end, ok := scanNumber(d, i)
			if ok {
				if len(path) == 0 {
					// Operands before any command letter. Keep them
					// attached to a letterless command so operand counts
					// still line up between equally malformed paths.
					path = append(path, Command{})
				}
				last := &path[len(path)-1]
				last.Args = append(last.Args, val)
			}
			i = end
		default:
			i++
		}
	}

	return path
}

// scanNumber reads one signed decimal number starting at i. Per the SVG
// path grammar a second '.' or a '-' terminates the current number, so
// "12.5.5" scans as 12.5 followed by .5 and "1-2" as 1 followed by -2.
func scanNumber(s string, i int) (val float64, end int, ok bool) {
	j := i
	if j < len(s) && s[j] == '-' {
		j++
	}
	seenDot := false
	seenDigit := false
	for j < len(s) {
		c := s[j]
		if c >= '0' && c <= '9' {
			seenDigit = true
			j++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			j++
			continue
		}
		break
	}
	if !seenDigit {
		// A lone '-' or '.' is not a number; skip it.
		return 0, j, false
	}
	v, err := strconv.ParseFloat(s[i:j], 64)
	if err != nil {
		return 0, j, false
	}
	return v, j, true
}

// Skeleton returns the ordered command letters, independent of operands.
func (p Path) Skeleton() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, cmd := range p {
		if cmd.Letter != 0 {
			b.WriteByte(cmd.Letter)
		}
	}
	return b.String()
}

// NumArgs returns the flattened operand count across all commands.
func (p Path) NumArgs() int {
	n := 0
	for _, cmd := range p {
		n += len(cmd.Args)
	}
	return n
}

// Args returns all operands in command order as one flat list.
func (p Path) Args() []float64 {
	args := make([]float64, 0, p.NumArgs())
	for _, cmd := range p {
		args = append(args, cmd.Args...)
	}
	return args
}

// Compatible reports whether two paths can be blended: identical command
// skeletons and, per command, equal operand counts. Checking per command
// rather than by total length catches paths where tokenization drifted.
func Compatible(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Letter != b[i].Letter || len(a[i].Args) != len(b[i].Args) {
			return false
		}
	}
	return true
}
