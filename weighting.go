package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidWeighting is returned for out-of-range weighting parameters
var ErrInvalidWeighting = errors.New("invalid weighting")

// WeightKind selects how the heuristic is scaled
type WeightKind int

const (
	Unweighted WeightKind = iota
	StaticWeight
	DynamicWeight
)

func (k WeightKind) String() string {
	switch k {
	case Unweighted:
		return "unweighted"
	case StaticWeight:
		return "static"
	case DynamicWeight:
		return "dynamic"
	}
	return fmt.Sprintf("WeightKind(%d)", int(k))
}

// Weighting is the heuristic weighting policy. The zero value is Unweighted.
type Weighting struct {
	Kind     WeightKind
	Weight   float64 // StaticWeight only
	Epsilon  float64 // DynamicWeight only
	MaxDepth float64 // DynamicWeight only
}

// NoWeighting returns the admissible, optimal policy
func NoWeighting() Weighting {
	return Weighting{Kind: Unweighted}
}

// Static returns a fixed weight policy. A weight of exactly 1 is unweighted.
func Static(weight float64) (Weighting, error) {
	if weight < 1 {
		return Weighting{}, errors.Wrapf(ErrInvalidWeighting, "static weight %v < 1", weight)
	}
	if weight == 1 {
		return NoWeighting(), nil
	}
	return Weighting{Kind: StaticWeight, Weight: weight}, nil
}

// Dynamic returns a weight that starts at 1+epsilon and decays linearly to 1
// as g approaches maxDepth.
func Dynamic(epsilon, maxDepth float64) (Weighting, error) {
	if epsilon < 0 {
		return Weighting{}, errors.Wrapf(ErrInvalidWeighting, "epsilon %v < 0", epsilon)
	}
	if maxDepth <= 0 {
		return Weighting{}, errors.Wrapf(ErrInvalidWeighting, "max depth %v <= 0", maxDepth)
	}
	if epsilon == 0 {
		return NoWeighting(), nil
	}
	return Weighting{Kind: DynamicWeight, Epsilon: epsilon, MaxDepth: maxDepth}, nil
}

// factor returns w(n) for a node with accumulated cost g. Depth is
// approximated by g. Past maxDepth the weight stays at 1.
func (w Weighting) factor(g float64) float64 {
	switch w.Kind {
	case StaticWeight:
		return w.Weight
	case DynamicWeight:
		return max(1, 1+w.Epsilon-w.Epsilon*g/w.MaxDepth)
	}
	return 1
}

func (w Weighting) String() string {
	switch w.Kind {
	case StaticWeight:
		return fmt.Sprintf("static(%g)", w.Weight)
	case DynamicWeight:
		return fmt.Sprintf("dynamic(eps=%g, depth=%g)", w.Epsilon, w.MaxDepth)
	}
	return w.Kind.String()
}

// EstimateDepth is the obstacle-free octile cost from start to end, a
// default for the dynamic policy's maxDepth.
func EstimateDepth(problem *Problem) float64 {
	dx := abs(problem.End.X - problem.Start.X)
	dy := abs(problem.End.Y - problem.Start.Y)
	return float64(max(dx, dy)-min(dx, dy)) + DiagonalCost*float64(min(dx, dy))
}
