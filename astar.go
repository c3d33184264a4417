package main

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// PriorityQueue implements heap.Interface for A* algorithm
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }

// Less orders by f, then prefers the deeper node, then the older one. The
// order is total, so runs over the same input pop nodes identically.
func (pq PriorityQueue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.F != b.F {
		return a.F < b.F
	}
	if a.G != b.G {
		return a.G > b.G
	}
	return a.seq < b.seq
}

// Swap keeps Node.Index in step with the heap position for heap.Fix
func (pq PriorityQueue) Swap(i, j int) {
	a, b := pq[i], pq[j]
	pq[i], pq[j] = b, a
	b.Index, a.Index = i, j
}

func (pq *PriorityQueue) Push(x any) {
	node := x.(*Node)
	node.Index = len(*pq)
	*pq = append(*pq, node)
}

// Pop detaches the last node; Index -1 marks it as no longer in OPEN
func (pq *PriorityQueue) Pop() any {
	last := len(*pq) - 1
	node := (*pq)[last]
	(*pq)[last] = nil
	*pq = (*pq)[:last]
	node.Index = -1
	return node
}

// Reason tells why a search stopped
type Reason int

const (
	ReasonFound Reason = iota
	ReasonExhausted
	ReasonStepBudget
)

func (r Reason) String() string {
	switch r {
	case ReasonFound:
		return "found"
	case ReasonExhausted:
		return "exhausted"
	case ReasonStepBudget:
		return "step budget exceeded"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Result contains the outcome of a search. A failed search is a normal
// result with Found=false; Reason only serves diagnostics.
type Result struct {
	Path     []Point // raw lattice chain, start first
	Cost     float64
	Expanded int
	Found    bool
	Reason   Reason
}

// SearchOptions defines parameters for the search
type SearchOptions struct {
	Weighting Weighting
	MaxSteps  int // 0 means unbounded
	Workers   int // <= 1 means serial neighbor generation
}

// SearchOption is a function that modifies SearchOptions
type SearchOption func(*SearchOptions)

// WithWeighting selects the heuristic weighting policy
func WithWeighting(w Weighting) SearchOption {
	return func(o *SearchOptions) { o.Weighting = w }
}

// WithMaxSteps caps the number of expansions
func WithMaxSteps(steps int) SearchOption {
	return func(o *SearchOptions) { o.MaxSteps = steps }
}

// WithWorkers evaluates neighbor validity on a pool of goroutines
func WithWorkers(workers int) SearchOption {
	return func(o *SearchOptions) { o.Workers = workers }
}

// Searcher runs weighted A* over the lattice of a Problem
type Searcher struct {
	problem *Problem
	goal    Point
	opts    SearchOptions
}

// NewSearcher validates the options and prepares a search
func NewSearcher(problem *Problem, options ...SearchOption) (*Searcher, error) {
	var opts SearchOptions
	for _, option := range options {
		option(&opts)
	}

	w := opts.Weighting
	switch w.Kind {
	case Unweighted:
	case StaticWeight:
		if _, err := Static(w.Weight); err != nil {
			return nil, err
		}
	case DynamicWeight:
		if _, err := Dynamic(w.Epsilon, w.MaxDepth); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(ErrInvalidWeighting, "unknown kind %v", w.Kind)
	}
	if opts.MaxSteps < 0 {
		return nil, errors.Errorf("max steps must not be negative, got %d", opts.MaxSteps)
	}

	return &Searcher{problem: problem, goal: problem.End, opts: opts}, nil
}

// h is the Chebyshev distance to the goal, admissible for unit/√2 moves
func (s *Searcher) h(p Point) float64 {
	return float64(chebyshev(p, s.goal))
}

// fitness is f(n) = g(n) + w(n)*h(n)
func (s *Searcher) fitness(g float64, p Point) float64 {
	return g + s.opts.Weighting.factor(g)*s.h(p)
}

// Search finds a path from the problem's start to its end.
//
// Weighted policies stop as soon as the goal is generated. The unweighted
// policy treats the goal as an ordinary node and stops when it is popped,
// which keeps the returned path minimum-cost.
func (s *Searcher) Search(ctx context.Context) (Result, error) {
	start := s.problem.Start
	if start == s.goal {
		return Result{Path: []Point{start}, Found: true, Reason: ReasonFound}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var exp expander = serialExpander{problem: s.problem}
	if s.opts.Workers > 1 {
		exp = newPoolExpander(ctx, s.problem, s.opts.Workers)
	}

	logger().Info("search started",
		"start", start, "goal", s.goal, "weighting", s.opts.Weighting.String(),
		"maxSteps", s.opts.MaxSteps, "workers", s.opts.Workers)

	store := NewNodeStore()
	openSet := &PriorityQueue{}
	heap.Init(openSet)

	startNode := store.Create(start, 0)
	startNode.F = s.fitness(0, start)
	heap.Push(openSet, startNode)

	stopOnGenerate := s.opts.Weighting.Kind != Unweighted
	expanded := 0

	for openSet.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Result{Expanded: expanded, Reason: ReasonExhausted}, err
		}
		if s.opts.MaxSteps > 0 && expanded >= s.opts.MaxSteps {
			logger().Warn("step budget exceeded", "steps", expanded, "discovered", store.Len())
			return Result{Expanded: expanded, Reason: ReasonStepBudget}, nil
		}

		current := heap.Pop(openSet).(*Node)
		expanded++

		if !stopOnGenerate && current.Point == s.goal {
			return s.found(store, current, expanded), nil
		}

		for _, neighbor := range current.Neighbors(exp) {
			node, seen := store.Get(neighbor.Point)
			if seen && node.Closed {
				continue
			}

			tentativeG := current.G + neighbor.Cost

			if stopOnGenerate && neighbor.Point == s.goal {
				if !seen {
					node = store.Create(neighbor.Point, tentativeG)
				}
				node.G = tentativeG
				node.Parent = current.Point
				node.HasParent = true
				return s.found(store, node, expanded), nil
			}

			if seen && node.G <= tentativeG {
				continue
			}

			if !seen {
				node = store.Create(neighbor.Point, tentativeG)
				node.Parent = current.Point
				node.HasParent = true
				node.F = s.fitness(tentativeG, node.Point)
				heap.Push(openSet, node)
				continue
			}

			// Found a better path to a node still in OPEN
			node.G = tentativeG
			node.Parent = current.Point
			node.HasParent = true
			node.F = s.fitness(tentativeG, node.Point)
			heap.Fix(openSet, node.Index)
		}

		current.Closed = true
	}

	if err := ctx.Err(); err != nil {
		return Result{Expanded: expanded, Reason: ReasonExhausted}, err
	}
	logger().Info("search exhausted", "expanded", expanded, "discovered", store.Len())
	return Result{Expanded: expanded, Reason: ReasonExhausted}, nil
}

func (s *Searcher) found(store *NodeStore, goal *Node, expanded int) Result {
	path := store.Chain(goal.Point)
	logger().Info("path found",
		"cost", goal.G, "steps", len(path)-1, "expanded", expanded, "discovered", store.Len())
	return Result{
		Path:     path,
		Cost:     goal.G,
		Expanded: expanded,
		Found:    true,
		Reason:   ReasonFound,
	}
}
