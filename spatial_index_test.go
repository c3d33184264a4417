package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpatialIndexQueries(t *testing.T) {
	near := mustObstacle(t, 0, 0, 4, 0, 0, 4)
	far := mustObstacle(t, 100, 100, 104, 100, 100, 104)
	flat := mustObstacle(t, -10, 7, -5, 7, 0, 7)
	index := NewSpatialIndex([]*Obstacle{near, far, flat})
	assert.Equal(t, 3, index.Len())

	assert.ElementsMatch(t, []*Obstacle{near}, index.QuerySegment(Point{-1, -1}, Point{2, 2}))
	assert.ElementsMatch(t, []*Obstacle{far}, index.QueryPoint(Point{102, 101}))
	assert.Empty(t, index.QuerySegment(Point{50, 50}, Point{60, 60}))

	// Zero-height boxes are padded, so touching rows still match
	assert.ElementsMatch(t, []*Obstacle{flat}, index.QueryPoint(Point{-7, 7}))

	// Boxes sharing only a corner with the query still match
	assert.Contains(t, index.QuerySegment(Point{4, 4}, Point{6, 6}), near)
}

func TestSpatialIndexEmpty(t *testing.T) {
	index := NewSpatialIndex(nil)
	assert.Equal(t, 0, index.Len())
	assert.Nil(t, index.QueryPoint(Point{0, 0}))
}

func TestSpatialIndexMany(t *testing.T) {
	// Enough entries to split rtree nodes
	var obstacles []*Obstacle
	for i := 0; i < 200; i++ {
		x := i * 10
		obstacles = append(obstacles, mustObstacle(t, x, 0, x+3, 0, x, 3))
	}
	index := NewSpatialIndex(obstacles)
	assert.ElementsMatch(t, []*Obstacle{obstacles[57]}, index.QueryPoint(Point{571, 1}))
	assert.Len(t, index.QuerySegment(Point{0, 1}, Point{1995, 1}), 200)
}
