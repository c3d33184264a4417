package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// ImpossibleToken is written when no path exists
const ImpossibleToken = "IMPOSSIBLE"

// WriteSolution writes the text format: the failure token, or the number of
// waypoints followed by one "x y" line per waypoint.
func WriteSolution(w io.Writer, solution Solution) error {
	bw := bufio.NewWriter(w)
	if !solution.Found {
		fmt.Fprint(bw, ImpossibleToken)
	} else {
		fmt.Fprintln(bw, len(solution.Waypoints))
		for _, p := range solution.Waypoints {
			fmt.Fprintf(bw, "%d %d\n", p.X, p.Y)
		}
	}
	return errors.Wrap(bw.Flush(), "failed to write solution")
}

// WriteGeoJSONSolution writes a FeatureCollection holding one LineString
// feature. A failed solution has an empty line and result=IMPOSSIBLE.
func WriteGeoJSONSolution(w io.Writer, solution Solution) error {
	line := make(orb.LineString, 0, len(solution.Waypoints))
	for _, p := range solution.Waypoints {
		line = append(line, orb.Point{float64(p.X), float64(p.Y)})
	}

	feature := geojson.NewFeature(line)
	if solution.Found {
		feature.Properties["result"] = "OK"
		feature.Properties["cost"] = solution.Cost
		feature.Properties["length"] = solution.Length()
	} else {
		feature.Properties["result"] = ImpossibleToken
	}
	feature.Properties["waypoints"] = len(solution.Waypoints)

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to marshal solution")
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "failed to write solution")
	}
	return nil
}
