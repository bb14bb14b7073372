package timeline

import "fmt"

// GCD returns the greatest common divisor of two positive integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b int) int {
	return a / GCD(a, b) * b
}

// Combine folds the pairwise LCM across all sequence lengths, giving the
// shortest combined loop in which every sequence completes a whole number
// of cycles. A zero-length sequence can never loop, so it is a fatal
// configuration error rather than a silent zero-frame animation.
func Combine(lengths ...int) (int, error) {
	if len(lengths) == 0 {
		return 0, fmt.Errorf("no sequences to combine")
	}

	combined := 1
	for i, l := range lengths {
		if l <= 0 {
			return 0, fmt.Errorf("sequence %d has no frames", i)
		}
		combined = LCM(combined, l)
	}
	return combined, nil
}

// Timeline maps global frame indices onto the local indices of several
// independently-cycling frame sequences.
type Timeline struct {
	Length  int
	lengths []int
}

// New builds a timeline over the given sequence lengths.
func New(lengths ...int) (*Timeline, error) {
	combined, err := Combine(lengths...)
	if err != nil {
		return nil, err
	}
	ls := make([]int, len(lengths))
	copy(ls, lengths)
	return &Timeline{Length: combined, lengths: ls}, nil
}

// Sequences returns the number of constituent sequences.
func (t *Timeline) Sequences() int {
	return len(t.lengths)
}

// LocalIndex returns the frame of sequence seq shown at global index i.
func (t *Timeline) LocalIndex(seq, i int) int {
	return i % t.lengths[seq]
}
