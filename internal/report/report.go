// Package report renders finished parameter sets for people. It owns every
// display-unit conversion; the pipeline itself stays in SI.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/transitlab/internal/batch"
	"github.com/san-kum/transitlab/internal/transit"
	"github.com/san-kum/transitlab/internal/units"
)

// Render returns the five-line parameter report for one object.
func Render(out transit.SystemOutputs) string {
	var b strings.Builder
	fmt.Fprintf(&b, "R_planet/R_star: %.2g +/- %.2g\n", out.RadiusRatio, out.RadiusRatioErr)
	fmt.Fprintf(&b, "Planet radius: %.3g km +/- %.3g km\n",
		units.MetersToKm(out.PlanetRadiusM), units.MetersToKm(out.PlanetRadiusErrM))
	fmt.Fprintf(&b, "Orbital radius: %.3g AU\n", units.MetersToAU(out.SemiMajorAxisM))
	fmt.Fprintf(&b, "Orbital velocity: %.3g km/s\n", units.MetersToKm(out.OrbitalSpeedMS))
	fmt.Fprintf(&b, "Orbital inclination: %.3g deg +/- %.3g deg\n",
		units.RadiansToDegrees(out.InclinationOffsetRad), units.RadiansToDegrees(out.InclinationOffsetErr))
	return b.String()
}

// WriteTable prints a one-row-per-object summary of a batch run. Failed
// objects show their error in place of derived values.
func WriteTable(w io.Writer, results []batch.ObjectResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OBJECT\tRP/RS\tRP(KM)\tA(AU)\tV(KM/S)\tALPHA(DEG)\tSTATUS")

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t%v\n", r.Inputs.Name, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.3f\t%.3g\t%.3g\t%.3g\t%.3g\tok\n",
			r.Inputs.Name,
			r.Outputs.RadiusRatio,
			units.MetersToKm(r.Outputs.PlanetRadiusM),
			units.MetersToAU(r.Outputs.SemiMajorAxisM),
			units.MetersToKm(r.Outputs.OrbitalSpeedMS),
			units.RadiansToDegrees(r.Outputs.InclinationOffsetRad),
		)
	}

	return tw.Flush()
}
