package ec

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Base selects the source of the base vector for DE mutation.
type Base int

const (
	BaseRand Base = iota
	BaseBest
	BaseRandToBest
)

func (b Base) String() string {
	switch b {
	case BaseRand:
		return "rand"
	case BaseBest:
		return "best"
	case BaseRandToBest:
		return "rand-to-best"
	}
	return "unknown"
}

// CrossoverScheme selects how mutated genes are mixed into the target.
type CrossoverScheme int

const (
	// CrossExponential mutates a contiguous run of dimensions starting
	// at a random one, stopping on the first uniform draw above CR.
	CrossExponential CrossoverScheme = iota

	// CrossBinomial draws one random dimension and overwrites it on
	// every uniform draw below CR, with the last iteration forced.
	// Unlike the exponential scheme the dimension never advances; this
	// is long-standing behavior and is kept as-is.
	CrossBinomial
)

func (c CrossoverScheme) String() string {
	if c == CrossBinomial {
		return "bin"
	}
	return "exp"
}

// Strategy identifies one of the ten DE mutation/crossover recipes
// along three orthogonal axes: base-vector source, number of difference
// vectors, and crossover scheme.
type Strategy struct {
	Base      Base
	Diffs     int
	Crossover CrossoverScheme
}

// String renders the conventional DE notation, e.g. "DE/best/1/exp".
func (s Strategy) String() string {
	return fmt.Sprintf("DE/%s/%d/%s", s.Base, s.Diffs, s.Crossover)
}

// Validate checks that the strategy is one of the ten supported variants.
func (s Strategy) Validate() error {
	if s.Base == BaseRandToBest && s.Diffs != 1 {
		return fmt.Errorf("strategy %s: rand-to-best supports a single difference vector", s)
	}
	if s.Diffs != 1 && s.Diffs != 2 {
		return fmt.Errorf("strategy %s: difference vector count must be 1 or 2", s)
	}
	return nil
}

// ParseStrategy parses the conventional notation "DE/<base>/<diffs>/<scheme>".
func ParseStrategy(name string) (Strategy, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 4 || parts[0] != "DE" {
		return Strategy{}, fmt.Errorf("malformed strategy %q, want DE/<base>/<diffs>/<scheme>", name)
	}
	var s Strategy
	switch parts[1] {
	case "rand":
		s.Base = BaseRand
	case "best":
		s.Base = BaseBest
	case "rand-to-best":
		s.Base = BaseRandToBest
	default:
		return Strategy{}, fmt.Errorf("unknown base vector source %q", parts[1])
	}
	diffs, err := strconv.Atoi(parts[2])
	if err != nil {
		return Strategy{}, fmt.Errorf("malformed difference vector count %q", parts[2])
	}
	s.Diffs = diffs
	switch parts[3] {
	case "exp":
		s.Crossover = CrossExponential
	case "bin":
		s.Crossover = CrossBinomial
	default:
		return Strategy{}, fmt.Errorf("unknown crossover scheme %q", parts[3])
	}
	if err := s.Validate(); err != nil {
		return Strategy{}, err
	}
	return s, nil
}

// Strategies returns all ten supported strategy variants.
func Strategies() []Strategy {
	var out []Strategy
	for _, base := range []Base{BaseBest, BaseRand, BaseRandToBest} {
		for _, diffs := range []int{1, 2} {
			for _, cross := range []CrossoverScheme{CrossExponential, CrossBinomial} {
				s := Strategy{Base: base, Diffs: diffs, Crossover: cross}
				if s.Validate() == nil {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// Variate builds exactly one offspring candidate per population slot.
// Slots are processed in ascending order, which fixes the order random
// draws are consumed and makes runs reproducible for a given seed.
// Five distinct partner indices are drawn for every slot regardless of
// how many the strategy consumes, again to keep the draw order stable
// across strategies.
func (s Strategy) Variate(rng *rand.Rand, parents []Candidate, best Candidate, f, cr float64) ([]Candidate, error) {
	np := len(parents)
	if np == 0 {
		return nil, &ConfigError{Option: "population", Reason: "is empty"}
	}
	d := len(parents[0])
	offspring := make([]Candidate, np)

	for i := 0; i < np; i++ {
		r, err := sampleDistinct(rng, np, 5, i)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", s, err)
		}

		tmp := parents[i].Clone()
		mutant := s.mutant(parents, best, tmp, r, f)

		switch s.Crossover {
		case CrossExponential:
			n := rng.Intn(d)
			for l := 0; l < d; l++ {
				tmp[n] = mutant(n)
				n = (n + 1) % d
				if cr < rng.Float64() {
					break
				}
			}
		case CrossBinomial:
			n := rng.Intn(d)
			for l := 0; l < d; l++ {
				if rng.Float64() < cr || l+1 == d {
					tmp[n] = mutant(n)
				}
			}
		}

		// Repair pass on the normalized gene space, separate from any
		// externally supplied bounder.
		for j, g := range tmp {
			if g < 0 || g > 1 {
				tmp[j] = math.Round(rng.Float64()*1000) / 1000
			}
		}
		offspring[i] = tmp
	}
	return offspring, nil
}

// mutant returns the per-dimension mutation formula for this strategy.
// tmp is the offspring under construction: rand-to-best reads its
// current gene value, so repeated binomial hits on one dimension
// compound rather than recompute from the parent.
func (s Strategy) mutant(parents []Candidate, best, tmp Candidate, r []int, f float64) func(int) float64 {
	switch {
	case s.Base == BaseBest && s.Diffs == 1:
		return func(n int) float64 {
			return best[n] + f*(parents[r[1]][n]-parents[r[2]][n])
		}
	case s.Base == BaseRand && s.Diffs == 1:
		return func(n int) float64 {
			return parents[r[0]][n] + f*(parents[r[1]][n]-parents[r[2]][n])
		}
	case s.Base == BaseRandToBest:
		return func(n int) float64 {
			return tmp[n] + f*(best[n]-tmp[n]) + f*(parents[r[0]][n]-parents[r[1]][n])
		}
	case s.Base == BaseBest && s.Diffs == 2:
		return func(n int) float64 {
			return best[n] + f*(parents[r[0]][n]+parents[r[1]][n]-parents[r[2]][n]-parents[r[3]][n])
		}
	default: // rand/2
		return func(n int) float64 {
			return parents[r[4]][n] + f*(parents[r[0]][n]+parents[r[1]][n]-parents[r[2]][n]-parents[r[3]][n])
		}
	}
}
