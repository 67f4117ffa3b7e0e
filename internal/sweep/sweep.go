// Package sweep varies one observable over a range and reruns the pipeline
// per point, for plotting how a derived quantity responds.
package sweep

import (
	"fmt"

	"github.com/san-kum/transitlab/internal/transit"
	"github.com/san-kum/transitlab/internal/units"
)

type Param string

const (
	ParamDepth    Param = "depth"
	ParamDuration Param = "duration"
)

// Point is one sweep sample. Err marks values that left the pipeline's
// domain (for duration sweeps the upper end of a range often does).
type Point struct {
	Value   float64
	Outputs transit.SystemOutputs
	Err     error
}

// Run evaluates the pipeline at points evenly spaced over [min, max], with
// the swept parameter substituted into the base inputs.
func Run(base transit.SystemInputs, param Param, min, max float64, points int) ([]Point, error) {
	if points < 2 {
		return nil, fmt.Errorf("sweep: need at least 2 points, got %d", points)
	}
	if max <= min {
		return nil, fmt.Errorf("sweep: max %g must exceed min %g", max, min)
	}
	if param != ParamDepth && param != ParamDuration {
		return nil, fmt.Errorf("sweep: unknown parameter %q", param)
	}

	step := (max - min) / float64(points-1)
	result := make([]Point, points)

	for i := range result {
		v := min + float64(i)*step
		in := base
		switch param {
		case ParamDepth:
			in.TransitDepth = v
		case ParamDuration:
			in.TransitDurationDays = v
		}
		out, err := transit.ComputeAll(in)
		result[i] = Point{Value: v, Outputs: out, Err: err}
	}

	return result, nil
}

// Series extracts a plottable series from the valid points. Invalid points
// are dropped, so the series may be shorter than the sweep.
func Series(points []Point, extract func(transit.SystemOutputs) float64) []float64 {
	var series []float64
	for _, p := range points {
		if p.Err != nil {
			continue
		}
		series = append(series, extract(p.Outputs))
	}
	return series
}

// AlphaDegrees and PlanetRadiusKm are the extractors the CLI plots.
func AlphaDegrees(out transit.SystemOutputs) float64 {
	return units.RadiansToDegrees(out.InclinationOffsetRad)
}

func PlanetRadiusKm(out transit.SystemOutputs) float64 {
	return units.MetersToKm(out.PlanetRadiusM)
}
