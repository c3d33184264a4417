package main

// DefaultBound is the maximum absolute value of any coordinate
const DefaultBound = 1000000

// Problem is one problem instance: terminals, coordinate bound and obstacles.
// The search only reads it. Terminal repair (ClearPath) is the single writer
// and runs before the search starts.
type Problem struct {
	Start     Point
	End       Point
	Bound     int
	Obstacles []*Obstacle

	index   *SpatialIndex
	cleared map[Point]bool
	noPrune bool
}

// ProblemOption configures a Problem
type ProblemOption func(*Problem)

// WithBound overrides the coordinate bound
func WithBound(bound int) ProblemOption {
	return func(p *Problem) { p.Bound = bound }
}

// WithoutPruning keeps obstacles nested inside other obstacles
func WithoutPruning() ProblemOption {
	return func(p *Problem) { p.noPrune = true }
}

// NewProblem builds a problem and indexes its obstacles
func NewProblem(start, end Point, obstacles []*Obstacle, options ...ProblemOption) *Problem {
	p := &Problem{
		Start:     start,
		End:       end,
		Bound:     DefaultBound,
		Obstacles: obstacles,
		cleared:   make(map[Point]bool),
	}
	for _, option := range options {
		option(p)
	}

	active := obstacles
	if !p.noPrune {
		active = PruneContainedObstacles(obstacles)
	}
	p.index = NewSpatialIndex(active)

	logger().Debug("problem loaded",
		"start", start, "end", end, "bound", p.Bound,
		"obstacles", len(obstacles), "indexed", p.index.Len())
	return p
}

// InBounds checks the symmetric coordinate bound
func (p *Problem) InBounds(pt Point) bool {
	return pt.X >= -p.Bound && pt.X <= p.Bound && pt.Y >= -p.Bound && pt.Y <= p.Bound
}

// IsBlocked checks if the point lies inside any obstacle
func (p *Problem) IsBlocked(pt Point) bool {
	for _, o := range p.index.QueryPoint(pt) {
		if o.IsPointInside(pt.X, pt.Y) {
			return true
		}
	}
	return false
}

// IsValidMove checks that a straight move stays in bounds, ends outside every
// obstacle and touches no obstacle edge.
func (p *Problem) IsValidMove(from, to Point) bool {
	if !p.InBounds(to) {
		return false
	}
	return p.isClear(from, to, p.cleared[from], p.cleared[to], true)
}

// IsPathClear checks a direct edge between two waypoints
func (p *Problem) IsPathClear(from, to Point) bool {
	return p.isClear(from, to, p.cleared[from], p.cleared[to], false)
}

func (p *Problem) isClear(from, to Point, exemptFrom, exemptTo, checkInside bool) bool {
	for _, o := range p.index.QuerySegment(from, to) {
		if checkInside && o.IsPointInside(to.X, to.Y) {
			return false
		}
		if exemptFrom || exemptTo {
			if o.isPathObstructedExempt(from, to, exemptFrom, exemptTo) {
				return false
			}
		} else if o.IsPathObstructed(from, to) {
			return false
		}
	}
	return true
}

// OnEdge reports whether pt lies exactly on some obstacle edge
func (p *Problem) OnEdge(pt Point) bool {
	for _, o := range p.index.QueryPoint(pt) {
		if o.OnBoundary(pt) {
			return true
		}
	}
	return false
}

// OnRecordedBoundary reports whether pt is an obstacle perimeter point: either
// exactly on an edge or one of the 4-connected samples of an edge.
func (p *Problem) OnRecordedBoundary(pt Point) bool {
	if p.cleared[pt] {
		return false
	}
	for _, o := range p.index.QueryPoint(pt) {
		for _, edge := range o.Edges {
			if onSegment(edge, pt) || sampledOnLine(edge, pt) {
				return true
			}
		}
	}
	return false
}

// markCleared reclassifies a boundary point as passable for its own edges
func (p *Problem) markCleared(pt Point) {
	p.cleared[pt] = true
}

// IsCleared reports whether pt was reclassified by terminal repair
func (p *Problem) IsCleared(pt Point) bool {
	return p.cleared[pt]
}

// sampledOnLine walks the 4-connected Bresenham line of seg and reports
// whether pt is one of its samples. The final endpoint is not a sample of its
// own edge; it is the first sample of the next one.
func sampledOnLine(seg LineSegment, pt Point) bool {
	if !inBox(seg.P1, seg.P2, pt) {
		return false
	}
	x0, y0, x1, y1 := seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	ix := sign(x1 - x0)
	iy := sign(y1 - y0)

	e := 0
	x, y := x0, y0
	for i := 0; i < dx+dy; i++ {
		if x == pt.X && y == pt.Y {
			return true
		}
		e1 := e + dy
		e2 := e - dx
		if abs(e1) < abs(e2) {
			x += ix
			e = e1
		} else {
			y += iy
			e = e2
		}
	}
	return false
}
