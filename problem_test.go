package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemInBounds(t *testing.T) {
	p := NewProblem(Point{0, 0}, Point{1, 1}, nil, WithBound(5))
	assert.Equal(t, 5, p.Bound)
	assert.True(t, p.InBounds(Point{5, -5}))
	assert.False(t, p.InBounds(Point{6, 0}))
	assert.False(t, p.InBounds(Point{0, -6}))

	d := NewProblem(Point{0, 0}, Point{1, 1}, nil)
	assert.Equal(t, DefaultBound, d.Bound)
	assert.True(t, d.InBounds(Point{DefaultBound, DefaultBound}))
	assert.False(t, d.InBounds(Point{DefaultBound + 1, 0}))
}

func TestIsValidMove(t *testing.T) {
	tri := mustObstacle(t, 0, 0, 10, 0, 0, 10)
	p := NewProblem(Point{-5, -5}, Point{20, 20}, []*Obstacle{tri}, WithBound(30))

	tests := []struct {
		name     string
		from, to Point
		want     bool
	}{
		{"open plane", Point{-3, -3}, Point{-2, -2}, true},
		{"ends inside", Point{-1, 1}, Point{1, 1}, false},
		{"ends on c-a", Point{-1, 3}, Point{0, 4}, false},
		{"through vertex c", Point{-1, 12}, Point{1, 8}, false},
		{"ends on edge", Point{3, -1}, Point{3, 0}, false},
		{"ends on vertex", Point{-1, -1}, Point{0, 0}, false},
		{"out of bounds", Point{30, 0}, Point{31, 0}, false},
		{"beside the hypotenuse", Point{7, 7}, Point{8, 7}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsValidMove(tt.from, tt.to))
		})
	}
}

func TestIsValidMoveDiagonalClip(t *testing.T) {
	// The edge (1,0)-(0,1) crosses the diagonal (0,0)-(1,1) at its midpoint
	// while neither endpoint is inside the thin triangle.
	o := mustObstacle(t, 1, 0, 0, 1, 10, -8)
	p := NewProblem(Point{0, 0}, Point{1, 1}, []*Obstacle{o}, WithBound(20))

	require.False(t, p.IsBlocked(Point{0, 0}))
	require.False(t, p.IsBlocked(Point{1, 1}))
	assert.False(t, p.IsValidMove(Point{0, 0}, Point{1, 1}))
	assert.False(t, p.IsValidMove(Point{1, 1}, Point{0, 0}))
	assert.True(t, p.IsValidMove(Point{0, 0}, Point{-1, 1}))
}

func TestOnRecordedBoundary(t *testing.T) {
	// 4-connected samples of (0,0)-(3,1) are (0,0) (1,0) (1,1) (2,1).
	o := mustObstacle(t, 0, 0, 3, 1, 3, -5)
	p := NewProblem(Point{-4, -4}, Point{6, 6}, []*Obstacle{o}, WithBound(10))

	assert.True(t, p.OnRecordedBoundary(Point{3, 1}), "vertex")
	assert.True(t, p.OnRecordedBoundary(Point{3, -2}), "exactly on b-c")

	sample := Point{1, 1}
	assert.False(t, p.OnEdge(sample))
	assert.False(t, p.IsBlocked(sample))
	assert.True(t, p.OnRecordedBoundary(sample), "rasterized only")

	assert.False(t, p.OnRecordedBoundary(Point{-2, 3}))

	p.markCleared(sample)
	assert.True(t, p.IsCleared(sample))
	assert.False(t, p.OnRecordedBoundary(sample), "cleared points are no longer boundary")
}

func TestSampledOnLine(t *testing.T) {
	seg := LineSegment{P1: Point{0, 0}, P2: Point{3, 1}}
	for _, pt := range []Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}} {
		assert.True(t, sampledOnLine(seg, pt), "%v", pt)
	}
	assert.False(t, sampledOnLine(seg, Point{3, 1}), "final endpoint")
	assert.False(t, sampledOnLine(seg, Point{2, 0}))
	assert.False(t, sampledOnLine(seg, Point{4, 1}))

	// Samples are 4-connected: every step changes exactly one coordinate
	vertical := LineSegment{P1: Point{2, 5}, P2: Point{2, 1}}
	for y := 2; y <= 5; y++ {
		assert.True(t, sampledOnLine(vertical, Point{2, y}))
	}
}

func TestProblemPrunesNestedObstacles(t *testing.T) {
	outer := mustObstacle(t, -20, -20, 20, -20, 0, 20)
	inner := mustObstacle(t, -1, -1, 1, -1, 0, 1)

	pruned := NewProblem(Point{-30, -30}, Point{30, 30}, []*Obstacle{outer, inner})
	assert.Equal(t, 1, pruned.index.Len())
	assert.Len(t, pruned.Obstacles, 2, "input obstacles are kept for rendering")

	kept := NewProblem(Point{-30, -30}, Point{30, 30}, []*Obstacle{outer, inner}, WithoutPruning())
	assert.Equal(t, 2, kept.index.Len())

	// Interior points stay blocked either way
	assert.Equal(t, kept.IsBlocked(Point{0, 0}), pruned.IsBlocked(Point{0, 0}))
	assert.Equal(t, kept.IsValidMove(Point{0, 5}, Point{0, 6}), pruned.IsValidMove(Point{0, 5}, Point{0, 6}))
}
