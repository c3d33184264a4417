package main

// CompressPath reduces a path to its turning points. A point is kept when the
// movement direction (sign of dx, sign of dy) into the next point differs
// from the direction of the previous run. First and last are always kept.
func CompressPath(points []Point) []Point {
	if len(points) <= 2 {
		return append([]Point(nil), points...)
	}

	compressed := make([]Point, 0, len(points))
	previous := points[0]
	dirX, dirY := 0, 0
	for _, current := range points[1:] {
		stepX := sign(current.X - previous.X)
		stepY := sign(current.Y - previous.Y)

		if stepX != dirX || stepY != dirY {
			compressed = append(compressed, previous)
			dirX, dirY = stepX, stepY
		}
		previous = current
	}
	return append(compressed, previous)
}

// ReducePath shortens a path with direct-visibility shortcuts. From each kept
// waypoint it scans the remaining waypoints from the far end inward and jumps
// to the first one reachable by an unobstructed straight edge. Consecutive
// waypoints are already legal edges and are never tested.
func ReducePath(problem *Problem, points []Point) []Point {
	if len(points) <= 2 {
		return append([]Point(nil), points...)
	}

	reduced := []Point{points[0]}
	for i := 0; i < len(points)-1; {
		next := i + 1
		for j := len(points) - 1; j > i+1; j-- {
			if problem.IsPathClear(points[i], points[j]) {
				next = j
				break
			}
		}
		reduced = append(reduced, points[next])
		i = next
	}

	if removed := len(points) - len(reduced); removed > 0 {
		logger().Debug("path reduced", "before", len(points), "after", len(reduced))
	}
	return reduced
}

// ClearPath repairs a terminal sitting on an obstacle edge. Obstacle edges
// are sampled finer than the movement model, so a terminal on an edge would
// otherwise have every move out of it obstructed by the edge it sits on.
//
// It returns false if the terminal is inside an obstacle or fully enclosed.
// Otherwise it walks breadth-first through 8-neighbors lying on obstacle
// edges, reclassifying each visited point as cleared, until it reaches a
// point off every edge through a legal move. Cleared points are exempt from
// the edges they lie on for the rest of the run.
func ClearPath(problem *Problem, terminal Point) bool {
	if problem.IsBlocked(terminal) {
		logger().Warn("terminal inside an obstacle", "terminal", terminal)
		return false
	}

	visited := map[Point]bool{terminal: true}
	queue := []Point{terminal}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		problem.markCleared(current)

		for _, offset := range compass {
			next := Point{current.X + offset.X, current.Y + offset.Y}
			if visited[next] || !problem.InBounds(next) || problem.IsBlocked(next) {
				continue
			}

			if !problem.OnEdge(next) {
				if problem.isClear(current, next, true, false, false) {
					logger().Debug("terminal repaired",
						"terminal", terminal, "exit", next, "walked", len(visited))
					return true
				}
				continue
			}

			// Another edge point: walk through it if the step only touches
			// edges holding one of the two endpoints.
			if problem.isClear(current, next, true, true, false) {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	logger().Warn("terminal fully enclosed", "terminal", terminal, "walked", len(visited))
	return false
}
