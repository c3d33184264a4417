package main

import "math"

// Point is a lattice coordinate. Two points are the same vertex iff their
// coordinates match, so Point is used directly as a map key.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Distance calculates the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// chebyshev returns max(|dx|, |dy|), the number of king moves between a and b
func chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// LineSegment represents a line segment between two points
type LineSegment struct {
	P1, P2 Point
}

// DoSegmentsIntersect checks if two closed line segments intersect.
// Touching counts: shared endpoints, an endpoint lying on the other segment
// and collinear overlaps all return true.
func DoSegmentsIntersect(seg1, seg2 LineSegment) bool {
	p1, p2 := seg1.P1, seg1.P2
	p3, p4 := seg2.P1, seg2.P2

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear and touching cases
	if d1 == 0 && inBox(p3, p4, p1) {
		return true
	}
	if d2 == 0 && inBox(p3, p4, p2) {
		return true
	}
	if d3 == 0 && inBox(p1, p2, p3) {
		return true
	}
	if d4 == 0 && inBox(p1, p2, p4) {
		return true
	}

	return false
}

// direction calculates the cross product to determine orientation.
// Coordinates are bounded well below 2^31, so int64 products cannot overflow.
func direction(p1, p2, p3 Point) int64 {
	return int64(p3.X-p1.X)*int64(p2.Y-p1.Y) - int64(p2.X-p1.X)*int64(p3.Y-p1.Y)
}

// inBox checks if q lies within the bounding box of segment pr
func inBox(p, r, q Point) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// onSegment checks if q lies exactly on the closed segment
func onSegment(seg LineSegment, q Point) bool {
	return direction(seg.P1, seg.P2, q) == 0 && inBox(seg.P1, seg.P2, q)
}

// sign returns -1, 0 or 1
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// PathLength returns the Euclidean length of a polyline
func PathLength(path []Point) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		total += path[i].Distance(path[i+1])
	}
	return total
}
