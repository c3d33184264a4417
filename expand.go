package main

import "context"

// expander generates the legal moves out of a point
type expander interface {
	expand(from Point) []Neighbor
}

// serialExpander checks the 8 candidates one after the other
type serialExpander struct {
	problem *Problem
}

func (e serialExpander) expand(from Point) []Neighbor {
	neighbors := make([]Neighbor, 0, len(compass))
	for _, offset := range compass {
		to := Point{from.X + offset.X, from.Y + offset.Y}
		if e.problem.IsValidMove(from, to) {
			neighbors = append(neighbors, Neighbor{Point: to, Cost: stepCost(offset)})
		}
	}
	return neighbors
}

// expandTask asks a worker to validate one candidate move
type expandTask struct {
	From Point
	Slot int
}

// expandResult is the worker's verdict for a slot
type expandResult struct {
	Slot  int
	Valid bool
}

// poolExpander fans the 8 candidate checks out to a worker pool. Results are
// written back by slot so the neighbor order matches serialExpander.
type poolExpander struct {
	ctx     context.Context
	tasks   chan expandTask
	results chan expandResult
}

// newPoolExpander starts workers that live until ctx is done
func newPoolExpander(ctx context.Context, problem *Problem, workers int) *poolExpander {
	e := &poolExpander{
		ctx: ctx,
		// Buffered to a full expansion so the orchestrator never blocks
		// between sending tasks and collecting results.
		tasks:   make(chan expandTask, len(compass)),
		results: make(chan expandResult, len(compass)),
	}
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case task := <-e.tasks:
					offset := compass[task.Slot]
					to := Point{task.From.X + offset.X, task.From.Y + offset.Y}
					e.results <- expandResult{Slot: task.Slot, Valid: problem.IsValidMove(task.From, to)}
				}
			}
		}()
	}
	return e
}

func (e *poolExpander) expand(from Point) []Neighbor {
	for slot := range compass {
		e.tasks <- expandTask{From: from, Slot: slot}
	}

	var valid [len(compass)]bool
	for range compass {
		select {
		case <-e.ctx.Done():
			return nil
		case r := <-e.results:
			valid[r.Slot] = r.Valid
		}
	}

	neighbors := make([]Neighbor, 0, len(compass))
	for slot, offset := range compass {
		if valid[slot] {
			to := Point{from.X + offset.X, from.Y + offset.Y}
			neighbors = append(neighbors, Neighbor{Point: to, Cost: stepCost(offset)})
		}
	}
	return neighbors
}
