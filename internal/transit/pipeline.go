// Package transit derives exoplanet system parameters from light-curve
// observables. The pipeline takes the transit depth and duration together
// with known stellar parameters and produces the planet radius, orbital
// radius, orbital speed, and inclination offset from edge-on, with
// measurement uncertainty carried through each derived quantity by
// first-order error propagation.
package transit

import (
	"fmt"

	"github.com/san-kum/transitlab/internal/units"
)

// SystemInputs is one observed object's known parameters. Fields carry the
// catalog units named in their suffixes; conversion to SI happens inside the
// pipeline. Uncertainty fields default to zero, which reduces the pipeline
// to point estimates.
type SystemInputs struct {
	Name                   string
	PeriodDays             float64
	StellarMassSolar       float64
	StellarRadiusSolar     float64
	TransitDepth           float64
	TransitDepthErr        float64
	TransitDurationDays    float64
	TransitDurationErrDays float64
}

// SystemOutputs holds the derived parameters in SI. Display conversion (km,
// AU, degrees) belongs to the report layer.
type SystemOutputs struct {
	RadiusRatio          float64
	RadiusRatioErr       float64
	PlanetRadiusM        float64
	PlanetRadiusErrM     float64
	SemiMajorAxisM       float64
	OrbitalSpeedMS       float64
	InclinationOffsetRad float64
	InclinationOffsetErr float64
}

// Validate rejects dimension-violating inputs before any calculator runs.
func (in SystemInputs) Validate() error {
	switch {
	case in.PeriodDays <= 0:
		return fmt.Errorf("inputs: period must be positive, got %g days", in.PeriodDays)
	case in.StellarMassSolar <= 0:
		return fmt.Errorf("inputs: stellar mass must be positive, got %g Msun", in.StellarMassSolar)
	case in.StellarRadiusSolar <= 0:
		return fmt.Errorf("inputs: stellar radius must be positive, got %g Rsun", in.StellarRadiusSolar)
	case in.TransitDepth < 0 || in.TransitDepth > 1:
		return fmt.Errorf("inputs: transit depth must be a fraction in [0,1], got %g", in.TransitDepth)
	case in.TransitDepthErr < 0:
		return fmt.Errorf("inputs: transit depth uncertainty must be non-negative, got %g", in.TransitDepthErr)
	case in.TransitDurationDays < 0:
		return fmt.Errorf("inputs: transit duration must be non-negative, got %g days", in.TransitDurationDays)
	case in.TransitDurationErrDays < 0:
		return fmt.Errorf("inputs: transit duration uncertainty must be non-negative, got %g days", in.TransitDurationErrDays)
	}
	return nil
}

// ComputeAll runs the calculators in dependency order over one object's
// inputs: planet radius, then orbital radius, orbital speed, and finally the
// inclination, which consumes the first two results. A failure at any stage
// fails the whole record; partial outputs are never returned. The function
// is pure and safe for concurrent use on independent records.
func ComputeAll(in SystemInputs) (SystemOutputs, error) {
	var out SystemOutputs

	if err := in.Validate(); err != nil {
		return out, err
	}

	period := units.DaysToSeconds(in.PeriodDays)
	mstar := units.SolarMassesToKg(in.StellarMassSolar)
	rstar := units.SolarRadiiToMeters(in.StellarRadiusSolar)
	tdur := units.DaysToSeconds(in.TransitDurationDays)
	tdurErr := units.DaysToSeconds(in.TransitDurationErrDays)

	rp, rpErr, err := PlanetRadius(in.TransitDepth, rstar, in.TransitDepthErr)
	if err != nil {
		return out, err
	}

	a, err := OrbitalRadius(mstar, period)
	if err != nil {
		return out, err
	}

	v, err := OrbitalSpeed(a, period)
	if err != nil {
		return out, err
	}

	alpha, alphaErr, err := OrbitalInclination(rstar, rp, a, period, tdur, rpErr, tdurErr)
	if err != nil {
		return out, err
	}

	out.PlanetRadiusM = rp
	out.PlanetRadiusErrM = rpErr
	out.RadiusRatio = rp / rstar
	out.RadiusRatioErr = rpErr / rstar
	out.SemiMajorAxisM = a
	out.OrbitalSpeedMS = v
	out.InclinationOffsetRad = alpha
	out.InclinationOffsetErr = alphaErr
	return out, nil
}
