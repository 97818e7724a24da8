package ec

import "math"

// Bounder constrains a candidate to the legal search space. Built-in
// variation operators make only minimal assumptions about candidates,
// so they rely on an externally supplied bounder to enforce
// problem-specific limits.
type Bounder interface {
	// Bound returns the candidate after constraint enforcement. The
	// input slice may be modified and returned directly.
	Bound(candidate Candidate) Candidate
}

type nopBounder struct{}

func (nopBounder) Bound(candidate Candidate) Candidate { return candidate }

// Unbounded leaves candidates unchanged.
var Unbounded Bounder = nopBounder{}

type rangeBounder struct {
	lower []float64
	upper []float64
}

// NewRange creates a bounder clamping each gene into [lower[i], upper[i]].
// If either slice is nil the bounder is an identity. A single-element
// slice is broadcast to every dimension.
func NewRange(lower, upper []float64) Bounder {
	if lower == nil || upper == nil {
		return Unbounded
	}
	return &rangeBounder{lower: lower, upper: upper}
}

// NewScalarRange creates a bounder clamping every gene into [lo, hi].
func NewScalarRange(lo, hi float64) Bounder {
	return &rangeBounder{lower: []float64{lo}, upper: []float64{hi}}
}

func (b *rangeBounder) Bound(candidate Candidate) Candidate {
	for i := range candidate {
		lo := broadcast(b.lower, i)
		hi := broadcast(b.upper, i)
		candidate[i] = math.Max(math.Min(candidate[i], hi), lo)
	}
	return candidate
}

// broadcast returns the i-th bound, repeating a scalar bound across all
// dimensions and holding the last value for short per-dimension slices.
func broadcast(bounds []float64, i int) float64 {
	if i < len(bounds) {
		return bounds[i]
	}
	return bounds[len(bounds)-1]
}

type discreteBounder struct {
	values []float64
}

// NewDiscrete creates a bounder snapping each gene to the nearest value
// in the given finite set. When a gene is equidistant from several
// values, the one listed earliest wins.
func NewDiscrete(values []float64) Bounder {
	return &discreteBounder{values: values}
}

func (b *discreteBounder) Bound(candidate Candidate) Candidate {
	for i, g := range candidate {
		closest := b.values[0]
		dist := math.Abs(g - closest)
		for _, v := range b.values[1:] {
			if d := math.Abs(g - v); d < dist {
				closest = v
				dist = d
			}
		}
		candidate[i] = closest
	}
	return candidate
}
