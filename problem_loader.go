package main

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// ErrInvalidInput marks a problem description that cannot be parsed
var ErrInvalidInput = errors.New("invalid problem input")

// LoadProblem reads the text format:
//
//	sx sy ex ey
//	n
//	x1 y1 x2 y2 x3 y3    (n lines)
//
// Blank lines are ignored. Extra coordinates on an obstacle line are ignored.
func LoadProblem(r io.Reader, options ...ProblemOption) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	nextLine := func() ([]int, bool, error) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			values, err := parseInts(line)
			if err != nil {
				return nil, false, errors.Wrapf(err, "line %d", lineNo)
			}
			return values, true, nil
		}
		if err := scanner.Err(); err != nil {
			return nil, false, errors.Wrap(err, "failed to read input")
		}
		return nil, false, nil
	}

	header, ok, err := nextLine()
	if err != nil {
		return nil, err
	}
	if !ok || len(header) < 4 {
		return nil, errors.Wrapf(ErrInvalidInput, "line %d: expected start and end coordinates", lineNo)
	}
	start := Point{X: header[0], Y: header[1]}
	end := Point{X: header[2], Y: header[3]}

	countLine, ok, err := nextLine()
	if err != nil {
		return nil, err
	}
	if !ok || len(countLine) != 1 || countLine[0] < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "line %d: expected obstacle count", lineNo)
	}
	count := countLine[0]

	obstacles := make([]*Obstacle, 0, count)
	for {
		values, ok, err := nextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		obstacle, err := NewObstacle(pointsFromInts(values))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		obstacles = append(obstacles, obstacle)
	}

	if len(obstacles) != count {
		return nil, errors.Wrapf(ErrInvalidInput, "declared %d obstacles, read %d", count, len(obstacles))
	}

	return NewProblem(start, end, obstacles, options...), nil
}

func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "bad integer %q", field)
		}
		values[i] = v
	}
	return values, nil
}

// pointsFromInts pairs up coordinates; a trailing odd value is dropped
func pointsFromInts(values []int) []Point {
	points := make([]Point, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		points = append(points, Point{X: values[i], Y: values[i+1]})
	}
	return points
}

// LoadGeoJSONProblem reads a FeatureCollection. Point features carry a "role"
// property of "start" or "end"; each Polygon feature's outer ring gives an
// obstacle triangle.
func LoadGeoJSONProblem(data []byte, options ...ProblemOption) (*Problem, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse GeoJSON")
	}

	var start, end *Point
	var obstacles []*Obstacle

	for i, feature := range fc.Features {
		if feature.Geometry == nil {
			continue
		}
		switch geometry := feature.Geometry.(type) {
		case orb.Point:
			p, err := latticePoint(geometry)
			if err != nil {
				return nil, errors.Wrapf(err, "feature %d", i)
			}
			role, _ := feature.Properties["role"].(string)
			switch role {
			case "start":
				start = &p
			case "end":
				end = &p
			default:
				return nil, errors.Wrapf(ErrInvalidInput, "feature %d: point role %q", i, role)
			}

		case orb.Polygon:
			if len(geometry) == 0 {
				return nil, errors.Wrapf(ErrMalformedObstacle, "feature %d: empty polygon", i)
			}
			ring := geometry[0]
			if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
				ring = ring[:len(ring)-1]
			}
			vertices := make([]Point, 0, len(ring))
			for _, coord := range ring {
				p, err := latticePoint(coord)
				if err != nil {
					return nil, errors.Wrapf(err, "feature %d", i)
				}
				vertices = append(vertices, p)
			}
			obstacle, err := NewObstacle(vertices)
			if err != nil {
				return nil, errors.Wrapf(err, "feature %d", i)
			}
			obstacles = append(obstacles, obstacle)

		default:
			logger().Warn("ignoring GeoJSON feature", "index", i, "type", feature.Geometry.GeoJSONType())
		}
	}

	if start == nil || end == nil {
		return nil, errors.Wrap(ErrInvalidInput, "GeoJSON needs a start and an end point")
	}
	return NewProblem(*start, *end, obstacles, options...), nil
}

// latticePoint converts a GeoJSON coordinate, which must be integral
func latticePoint(p orb.Point) (Point, error) {
	x, y := p.X(), p.Y()
	if x != math.Trunc(x) || y != math.Trunc(y) {
		return Point{}, errors.Wrapf(ErrInvalidInput, "coordinate (%v, %v) is not on the lattice", x, y)
	}
	return Point{X: int(x), Y: int(y)}, nil
}
