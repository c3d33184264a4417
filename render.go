package main

import (
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// renderMargin is the blank border around the scene, in pixels
const renderMargin = 20

// RenderPNG draws the obstacles, the refined path and the terminals into a
// size x size PNG fitted to the scene's bounding box.
func RenderPNG(problem *Problem, solution Solution, filename string, size int) error {
	if size <= 2*renderMargin {
		return errors.Errorf("render size %d too small", size)
	}

	minX, minY, maxX, maxY := sceneBox(problem, solution)
	span := float64(max(maxX-minX, maxY-minY, 1))
	scale := float64(size-2*renderMargin) / span

	// Lattice to pixel, with y pointing up
	toPixel := func(p Point) (float64, float64) {
		px := renderMargin + float64(p.X-minX)*scale
		py := float64(size) - renderMargin - float64(p.Y-minY)*scale
		return px, py
	}

	c := gg.NewContext(size, size)
	c.SetRGB(1, 1, 1)
	c.Clear()

	for _, o := range problem.Obstacles {
		for i, v := range []Point{o.A, o.B, o.C} {
			x, y := toPixel(v)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		c.SetRGBA(0.8, 0.2, 0.2, 0.5)
		c.FillPreserve()
		c.SetRGB(0.6, 0.1, 0.1)
		c.SetLineWidth(1)
		c.Stroke()
	}

	if solution.Found && len(solution.Waypoints) > 1 {
		for i, p := range solution.Waypoints {
			x, y := toPixel(p)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.SetRGB(0.1, 0.3, 0.9)
		c.SetLineWidth(2)
		c.Stroke()
	}

	for _, terminal := range []struct {
		p       Point
		r, g, b float64
	}{
		{problem.Start, 0.1, 0.7, 0.1},
		{problem.End, 0.9, 0.6, 0.0},
	} {
		x, y := toPixel(terminal.p)
		c.DrawCircle(x, y, 4)
		c.SetRGB(terminal.r, terminal.g, terminal.b)
		c.Fill()
	}

	if err := c.SavePNG(filename); err != nil {
		return errors.Wrapf(err, "failed to save %s", filename)
	}
	logger().Debug("rendered", "file", filename, "size", size)
	return nil
}

// sceneBox is the bounding box of terminals, obstacles and waypoints
func sceneBox(problem *Problem, solution Solution) (minX, minY, maxX, maxY int) {
	minX, maxX = min(problem.Start.X, problem.End.X), max(problem.Start.X, problem.End.X)
	minY, maxY = min(problem.Start.Y, problem.End.Y), max(problem.Start.Y, problem.End.Y)
	grow := func(p Point) {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	for _, o := range problem.Obstacles {
		grow(o.A)
		grow(o.B)
		grow(o.C)
	}
	for _, p := range solution.Waypoints {
		grow(p)
	}
	return
}
