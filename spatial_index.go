package main

import (
	"github.com/dhconnelly/rtreego"
)

// boxPadding widens every box by half a cell so degenerate (zero-width)
// boxes are still valid rtreego rectangles.
const boxPadding = 0.5

// SpatialIndex manages obstacle spatial queries
type SpatialIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewSpatialIndex creates a new spatial index
func NewSpatialIndex(obstacles []*Obstacle) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, obstacle := range obstacles {
		tree.Insert(obstacle)
	}

	return &SpatialIndex{tree: tree, size: len(obstacles)}
}

// Len returns the number of indexed obstacles
func (si *SpatialIndex) Len() int {
	return si.size
}

// QuerySegment returns obstacles whose bounding box meets the box of p-q
func (si *SpatialIndex) QuerySegment(p, q Point) []*Obstacle {
	if si.size == 0 {
		return nil
	}
	bbox := paddedRect(min(p.X, q.X), min(p.Y, q.Y), max(p.X, q.X), max(p.Y, q.Y))

	results := si.tree.SearchIntersect(bbox)
	obstacles := make([]*Obstacle, 0, len(results))
	for _, item := range results {
		obstacles = append(obstacles, item.(*Obstacle))
	}
	return obstacles
}

// QueryPoint returns obstacles whose bounding box contains p
func (si *SpatialIndex) QueryPoint(p Point) []*Obstacle {
	return si.QuerySegment(p, p)
}

// paddedRect computes the rtreego rectangle for an integer box.
// The lengths are always positive, so NewRect cannot fail.
func paddedRect(minX, minY, maxX, maxY int) rtreego.Rect {
	rect, _ := rtreego.NewRect(
		rtreego.Point{float64(minX) - boxPadding, float64(minY) - boxPadding},
		[]float64{float64(maxX-minX) + 2*boxPadding, float64(maxY-minY) + 2*boxPadding},
	)
	return rect
}
