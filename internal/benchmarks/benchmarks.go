// Package benchmarks defines global-optimization benchmark problems
// usable with the ec engine. Genes are normalized into [0, 1] to match
// the strategy engine's repair pass; each problem maps them into its
// real design space before evaluating.
package benchmarks

import (
	"fmt"
	"math/rand"

	"github.com/tsadreas/Optim-iterator/internal/ec"
)

// Problem bundles everything the engine needs from problem code: a
// generator for initial candidates, an objective, and the bounder.
type Problem struct {
	Name       string
	Dimensions int
	Maximize   bool
	Bounder    ec.Bounder
	Generate   ec.Generator
	Objective  ec.Objective

	// Responses lists the auxiliary response names the objective
	// reports, in the column order observers should use.
	Responses []string
}

// uniformGenerator draws every gene uniformly from [0, 1].
func uniformGenerator(dimensions int) ec.Generator {
	return func(rng *rand.Rand, cfg *ec.Config) ec.Candidate {
		c := make(ec.Candidate, dimensions)
		for i := range c {
			c[i] = rng.Float64()
		}
		return c
	}
}

// denormalize maps a normalized gene into [-5, 5].
func denormalize(g float64) float64 {
	return 10*g - 5
}

// NewStyblinskiTang creates the Styblinski-Tang problem
//
//	f(x) = 1/2 * sum(x_i^4 - 16*x_i^2 + 5*x_i)
//
// over x_i in [-5, 5], minimized, with its global optimum near
// x_i = -2.903534. Two auxiliary responses are reported: r1 = f - 5
// and r2 = 2f.
func NewStyblinskiTang(dimensions int) *Problem {
	return &Problem{
		Name:       "styblinski-tang",
		Dimensions: dimensions,
		Maximize:   false,
		Bounder:    ec.NewScalarRange(0, 1),
		Generate:   uniformGenerator(dimensions),
		Responses:  []string{"r1", "r2"},
		Objective: func(req ec.Request) (float64, map[string]float64, error) {
			if len(req.Candidate) != dimensions {
				return 0, nil, fmt.Errorf("dimension mismatch: got %d, want %d", len(req.Candidate), dimensions)
			}
			var f float64
			for _, g := range req.Candidate {
				x := denormalize(g)
				f += x*x*x*x - 16*x*x + 5*x
			}
			f /= 2
			return f, map[string]float64{"r1": f - 5, "r2": 2 * f}, nil
		},
	}
}

// NewSphere creates the sphere problem f(x) = sum(x_i^2) over x_i in
// [-5, 5], minimized, with its global optimum at the origin. The sum of
// the design variables is reported as the response "sum".
func NewSphere(dimensions int) *Problem {
	return &Problem{
		Name:       "sphere",
		Dimensions: dimensions,
		Maximize:   false,
		Bounder:    ec.NewScalarRange(0, 1),
		Generate:   uniformGenerator(dimensions),
		Responses:  []string{"sum"},
		Objective: func(req ec.Request) (float64, map[string]float64, error) {
			if len(req.Candidate) != dimensions {
				return 0, nil, fmt.Errorf("dimension mismatch: got %d, want %d", len(req.Candidate), dimensions)
			}
			var f, sum float64
			for _, g := range req.Candidate {
				x := denormalize(g)
				f += x * x
				sum += x
			}
			return f, map[string]float64{"sum": sum}, nil
		},
	}
}

// ByName returns the named benchmark problem.
func ByName(name string, dimensions int) (*Problem, error) {
	switch name {
	case "styblinski-tang":
		return NewStyblinskiTang(dimensions), nil
	case "sphere":
		return NewSphere(dimensions), nil
	default:
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
}
