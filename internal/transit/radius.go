package transit

import "math"

// PlanetRadius derives the planet radius [m] and its uncertainty from the
// transit depth (fractional flux drop) and the stellar radius [m]. Only the
// depth carries uncertainty; the stellar radius is treated as exact.
//
//	Rp    = sqrt(deltaF) * Rstar
//	RpErr = Rstar / (2*sqrt(deltaF)) * deltaFErr
//
// A zero depth is rejected along with a negative one: the propagated error
// divides by sqrt(deltaF), and a planet with no transit signal has no
// measurable radius anyway.
func PlanetRadius(deltaF, rstar, deltaFErr float64) (rp, rpErr float64, err error) {
	if deltaF < 0 {
		return 0, 0, domainErr("radius", "deltaF", deltaF, "transit depth must be non-negative")
	}
	if deltaF == 0 {
		return 0, 0, domainErr("radius", "deltaF", deltaF, "zero depth makes the error propagation singular")
	}
	if rstar <= 0 {
		return 0, 0, domainErr("radius", "Rstar", rstar, "stellar radius must be positive")
	}
	if deltaFErr < 0 {
		return 0, 0, domainErr("radius", "deltaFErr", deltaFErr, "uncertainty must be non-negative")
	}

	sq := math.Sqrt(deltaF)
	rp = sq * rstar
	rpErr = rstar / (2 * sq) * deltaFErr
	return rp, rpErr, nil
}
