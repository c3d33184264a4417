package main

import (
	"context"
	"time"
)

// Solution is the refined outcome of one problem
type Solution struct {
	Waypoints []Point // start first, end last; empty when not found
	Cost      float64 // lattice cost of the raw search path
	Found     bool
	Search    Result
}

// Length returns the Euclidean length of the refined waypoints
func (s Solution) Length() float64 {
	return PathLength(s.Waypoints)
}

// Solve repairs terminals on obstacle edges, searches, and refines the path
// by compression and reduction.
func Solve(ctx context.Context, problem *Problem, options ...SearchOption) (Solution, error) {
	startTime := time.Now()

	searcher, err := NewSearcher(problem, options...)
	if err != nil {
		return Solution{}, err
	}

	for _, terminal := range []Point{problem.Start, problem.End} {
		if !problem.OnRecordedBoundary(terminal) {
			continue
		}
		logger().Info("terminal on obstacle boundary, repairing", "terminal", terminal)
		if !ClearPath(problem, terminal) {
			return Solution{Search: Result{Reason: ReasonExhausted}}, nil
		}
	}

	result, err := searcher.Search(ctx)
	if err != nil {
		return Solution{}, err
	}
	if !result.Found {
		return Solution{Search: result}, nil
	}

	waypoints := CompressPath(result.Path)
	compressed := len(waypoints)
	waypoints = ReducePath(problem, waypoints)

	logger().Info("solved",
		"raw", len(result.Path), "compressed", compressed, "waypoints", len(waypoints),
		"cost", result.Cost, "elapsed", time.Since(startTime))

	return Solution{
		Waypoints: waypoints,
		Cost:      result.Cost,
		Found:     true,
		Search:    result,
	}, nil
}
