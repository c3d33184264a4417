package main

// PruneContainedObstacles removes obstacles lying strictly inside another
// obstacle. A nested triangle's closed region is then part of the outer
// triangle's open interior, which no legal move can reach, so dropping it
// changes no validity answer.
func PruneContainedObstacles(obstacles []*Obstacle) []*Obstacle {
	if len(obstacles) <= 1 {
		return obstacles
	}

	contained := make([]bool, len(obstacles))
	for i := range obstacles {
		if contained[i] {
			continue
		}
		for j := range obstacles {
			if i == j || contained[j] {
				continue
			}
			if isObstacleContainedIn(obstacles[i], obstacles[j]) {
				contained[i] = true
				break
			}
		}
	}

	result := make([]*Obstacle, 0, len(obstacles))
	for i, o := range obstacles {
		if !contained[i] {
			result = append(result, o)
		}
	}

	if removed := len(obstacles) - len(result); removed > 0 {
		logger().Debug("pruned nested obstacles", "removed", removed, "kept", len(result))
	}
	return result
}

// isObstacleContainedIn checks if all of a's vertices are strictly inside b
func isObstacleContainedIn(a, b *Obstacle) bool {
	if !isBBoxContained(a, b) {
		return false
	}
	for _, v := range []Point{a.A, a.B, a.C} {
		s, t, area := barycentric(b.A, b.B, b.C, int64(v.X), int64(v.Y))
		if !(s > 0 && t > 0 && s+t < area) {
			return false
		}
	}
	return true
}

// isBBoxContained checks if a's bounding box is contained in b's
func isBBoxContained(a, b *Obstacle) bool {
	aMinX, aMinY, aMaxX, aMaxY := a.bbox()
	bMinX, bMinY, bMaxX, bMaxY := b.bbox()
	return aMinX >= bMinX && aMaxX <= bMaxX &&
		aMinY >= bMinY && aMaxY <= bMaxY
}
