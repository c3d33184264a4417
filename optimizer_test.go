package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressPath(t *testing.T) {
	tests := []struct {
		name string
		in   []Point
		want []Point
	}{
		{"empty", nil, []Point{}},
		{"single", []Point{{1, 1}}, []Point{{1, 1}}},
		{"pair", []Point{{0, 0}, {1, 1}}, []Point{{0, 0}, {1, 1}}},
		{"straight", []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, []Point{{0, 0}, {3, 0}}},
		{"diagonal", []Point{{0, 0}, {1, 1}, {2, 2}}, []Point{{0, 0}, {2, 2}}},
		{"one turn", []Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 2}}, []Point{{0, 0}, {2, 0}, {4, 2}}},
		{"zigzag", []Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}}, []Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompressPath(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func randomWalk(r *rand.Rand, steps int) []Point {
	path := []Point{{0, 0}}
	for i := 0; i < steps; i++ {
		last := path[len(path)-1]
		offset := compass[r.Intn(len(compass))]
		path = append(path, Point{last.X + offset.X, last.Y + offset.Y})
	}
	return path
}

func TestCompressPathProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		walk := randomWalk(r, 3+r.Intn(30))
		once := CompressPath(walk)

		assert.Equal(t, once, CompressPath(once), "idempotent")
		assert.Equal(t, walk[0], once[0])
		assert.Equal(t, walk[len(walk)-1], once[len(once)-1])
		assert.LessOrEqual(t, len(once), len(walk))
	}
}

func TestReducePath(t *testing.T) {
	t.Run("open plane", func(t *testing.T) {
		p := NewProblem(Point{0, 0}, Point{3, 3}, nil)
		got := ReducePath(p, []Point{{0, 0}, {3, 0}, {3, 3}})
		assert.Equal(t, []Point{{0, 0}, {3, 3}}, got)
	})

	t.Run("shortcut blocked", func(t *testing.T) {
		o := mustObstacle(t, 1, 2, 2, 1, 2, 2)
		p := NewProblem(Point{0, 0}, Point{3, 3}, []*Obstacle{o})
		path := []Point{{0, 0}, {3, 0}, {3, 3}}
		assert.Equal(t, path, ReducePath(p, path))
	})

	t.Run("skips to the farthest visible waypoint", func(t *testing.T) {
		p := NewProblem(Point{0, 0}, Point{6, 0}, nil)
		got := ReducePath(p, []Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}, {6, 0}})
		assert.Equal(t, []Point{{0, 0}, {6, 0}}, got)
	})
}

func TestReducePathProperties(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	checked := 0
	for i := 0; i < 60; i++ {
		p := randomProblem(r, 8, 4)
		result := search(t, p)
		if !result.Found || len(result.Path) < 3 {
			continue
		}
		checked++
		compressed := CompressPath(result.Path)
		reduced := ReducePath(p, compressed)

		assert.LessOrEqual(t, len(reduced), len(compressed))
		assert.Equal(t, compressed[0], reduced[0])
		assert.Equal(t, compressed[len(compressed)-1], reduced[len(reduced)-1])
		assert.LessOrEqual(t, PathLength(reduced), PathLength(compressed)+1e-9)

		// Every kept edge is either an original edge or unobstructed
		for j := 1; j < len(reduced); j++ {
			from, to := reduced[j-1], reduced[j]
			if !isEdgeOf(compressed, from, to) {
				assert.True(t, p.IsPathClear(from, to), "shortcut %v -> %v", from, to)
			}
		}
	}
	require.Positive(t, checked)
}

func isEdgeOf(path []Point, from, to Point) bool {
	for i := 1; i < len(path); i++ {
		if path[i-1] == from && path[i] == to {
			return true
		}
	}
	return false
}

func TestClearPath(t *testing.T) {
	t.Run("open cell next to the terminal", func(t *testing.T) {
		tri := mustObstacle(t, 0, 0, 10, 0, 0, 10)
		p := NewProblem(Point{5, 0}, Point{5, -5}, []*Obstacle{tri}, WithBound(20))

		require.True(t, p.OnRecordedBoundary(p.Start))
		require.False(t, p.IsValidMove(Point{5, 0}, Point{5, -1}), "own edge blocks before repair")

		assert.True(t, ClearPath(p, p.Start))
		assert.True(t, p.IsCleared(p.Start))
		assert.True(t, p.IsValidMove(Point{5, 0}, Point{5, -1}))
		assert.False(t, p.IsValidMove(Point{5, 0}, Point{5, 1}), "interior is still closed")
	})

	t.Run("fully enclosed", func(t *testing.T) {
		upper := mustObstacle(t, -10, 0, 10, 0, 0, 10)
		lower := mustObstacle(t, -10, 0, 10, 0, 0, -10)
		p := NewProblem(Point{0, 0}, Point{0, -2}, []*Obstacle{upper, lower}, WithBound(3))

		assert.False(t, ClearPath(p, p.Start))
		assert.True(t, p.IsCleared(Point{3, 0}), "the walk covered the shared edge")
	})

	t.Run("terminal inside", func(t *testing.T) {
		tri := mustObstacle(t, 0, 0, 10, 0, 0, 10)
		p := NewProblem(Point{2, 2}, Point{-5, -5}, []*Obstacle{tri})
		assert.False(t, ClearPath(p, p.Start))
		assert.False(t, p.IsCleared(p.Start))
	})

	t.Run("walks along an edge", func(t *testing.T) {
		// The terminal sits on the shared x axis and the nearest exits are
		// 10 steps away on either side.
		upper := mustObstacle(t, -10, 0, 12, 0, 0, 10)
		lower := mustObstacle(t, -10, 0, 10, 0, 0, -10)
		p := NewProblem(Point{0, 0}, Point{20, 20}, []*Obstacle{upper, lower}, WithBound(30))

		assert.True(t, ClearPath(p, p.Start))
		assert.True(t, p.IsCleared(Point{9, 0}))
	})
}
