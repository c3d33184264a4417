package main

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

// ErrMalformedObstacle is returned when an obstacle has fewer than 3 vertices
var ErrMalformedObstacle = errors.New("obstacle needs 3 vertices")

// Obstacle is a triangle blocking occupancy of its interior and any
// straight-line traversal touching one of its edges.
type Obstacle struct {
	A, B, C Point
	Edges   [3]LineSegment
}

// NewObstacle builds an obstacle from the first 3 vertices. Extra vertices are
// ignored.
func NewObstacle(vertices []Point) (*Obstacle, error) {
	if len(vertices) < 3 {
		return nil, errors.Wrapf(ErrMalformedObstacle, "got %d", len(vertices))
	}
	a, b, c := vertices[0], vertices[1], vertices[2]
	return &Obstacle{
		A: a, B: b, C: c,
		Edges: [3]LineSegment{
			{P1: a, P2: b},
			{P1: b, P2: c},
			{P1: c, P2: a},
		},
	}, nil
}

// barycentric returns s, t and the signed area A for the point (x, y),
// normalized so that A >= 0.
func barycentric(a, b, c Point, x, y int64) (s, t, area int64) {
	ax, ay := int64(a.X), int64(a.Y)
	bx, by := int64(b.X), int64(b.Y)
	cx, cy := int64(c.X), int64(c.Y)

	s = ay*cx - ax*cy + (cy-ay)*x + (ax-cx)*y
	t = ax*by - ay*bx + (ay-by)*x + (bx-ax)*y
	area = -by*cx + ay*(cx-bx) + ax*(by-cy) + bx*cy
	if area < 0 {
		s, t, area = -s, -t, -area
	}
	return s, t, area
}

// IsPointInside reports whether (x, y) is inside the triangle. The test is
// strict on s and t but inclusive on s+t, so points on the b-c edge count as
// inside while points on the other two edges do not. Collinear triangles have
// zero area and never contain anything.
func (o *Obstacle) IsPointInside(x, y int) bool {
	s, t, area := barycentric(o.A, o.B, o.C, int64(x), int64(y))
	if (s < 0) != (t < 0) {
		return false
	}
	return s > 0 && t > 0 && (s+t) <= area
}

// strictlyContainsMidpoint reports whether the midpoint of p-q is in the open
// interior of the triangle. Coordinates are doubled to stay on integers.
func (o *Obstacle) strictlyContainsMidpoint(p, q Point) bool {
	a := Point{o.A.X * 2, o.A.Y * 2}
	b := Point{o.B.X * 2, o.B.Y * 2}
	c := Point{o.C.X * 2, o.C.Y * 2}
	s, t, area := barycentric(a, b, c, int64(p.X+q.X), int64(p.Y+q.Y))
	return s > 0 && t > 0 && (s+t) < area
}

// IsPathObstructed checks if the segment p-q touches any edge of the obstacle
func (o *Obstacle) IsPathObstructed(p, q Point) bool {
	path := LineSegment{P1: p, P2: q}
	for _, edge := range o.Edges {
		if DoSegmentsIntersect(edge, path) {
			return true
		}
	}
	return false
}

// isPathObstructedExempt is IsPathObstructed for moves leaving or entering a
// repaired terminal. Edges containing an exempt endpoint are ignored; in
// exchange the move must not cut through the interior.
func (o *Obstacle) isPathObstructedExempt(p, q Point, exemptP, exemptQ bool) bool {
	path := LineSegment{P1: p, P2: q}
	skipped := false
	for _, edge := range o.Edges {
		if (exemptP && onSegment(edge, p)) || (exemptQ && onSegment(edge, q)) {
			skipped = true
			continue
		}
		if DoSegmentsIntersect(edge, path) {
			return true
		}
	}
	return skipped && o.strictlyContainsMidpoint(p, q)
}

// OnBoundary reports whether p lies exactly on one of the edges
func (o *Obstacle) OnBoundary(p Point) bool {
	for _, edge := range o.Edges {
		if onSegment(edge, p) {
			return true
		}
	}
	return false
}

func (o *Obstacle) bbox() (minX, minY, maxX, maxY int) {
	minX = min(o.A.X, o.B.X, o.C.X)
	minY = min(o.A.Y, o.B.Y, o.C.Y)
	maxX = max(o.A.X, o.B.X, o.C.X)
	maxY = max(o.A.Y, o.B.Y, o.C.Y)
	return
}

// Bounds implements rtreego.Spatial interface
func (o *Obstacle) Bounds() rtreego.Rect {
	minX, minY, maxX, maxY := o.bbox()
	return paddedRect(minX, minY, maxX, maxY)
}

func (o *Obstacle) String() string {
	return fmt.Sprintf("[(%d,%d) (%d,%d) (%d,%d)]", o.A.X, o.A.Y, o.B.X, o.B.Y, o.C.X, o.C.Y)
}
