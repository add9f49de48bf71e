package capex

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", p)
}

// Clamped caps the value at 100 for progress-bar style displays. The
// computed consumption itself is never clamped.
func (p Percent) Clamped() Percent {
	if p > 100 {
		return 100
	}
	return p
}
