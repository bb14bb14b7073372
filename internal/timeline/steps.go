package timeline

// Interval is the visibility window of one frame within a looping
// animation period, in percent. Windows are half-open: a frame is visible
// from Start up to but not including End, so consecutive windows tile the
// period with no gaps and no overlaps.
type Interval struct {
	Start float64
	End   float64
	First bool
	Last  bool
}

// Steps splits one animation period into n equal step windows. The first
// and last windows are flagged so emitters can fold the 0%/100% seam into
// a single wraparound declaration.
func Steps(n int) []Interval {
	if n <= 0 {
		return nil
	}

	pct := 100.0 / float64(n)
	intervals := make([]Interval, n)
	for i := 0; i < n; i++ {
		intervals[i] = Interval{
			Start: float64(i) * pct,
			End:   float64(i+1) * pct,
			First: i == 0,
			Last:  i == n-1,
		}
	}
	// Pin the seam exactly.
	intervals[n-1].End = 100.0
	return intervals
}

// Contains reports whether percentage p falls inside the window. The loop
// seam belongs to the first frame: 100% wraps to 0%.
func (iv Interval) Contains(p float64) bool {
	if iv.First && p >= 100.0 {
		return true
	}
	return p >= iv.Start && p < iv.End
}
