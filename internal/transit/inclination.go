package transit

import "math"

// OrbitalInclination derives the orbital inclination offset from edge-on,
// alpha = 90deg - i [rad], from the transit chord geometry, propagating the
// planet-radius and transit-duration uncertainties stage by stage:
//
//	X = (Rstar + Rp)^2
//	Y = (a * sin(pi*Tdur/P))^2
//	Z = X - Y
//	Q = sqrt(Z) / a          (= cos i)
//	alpha = pi/2 - arccos(Q)
//
// Stage uncertainties are chain-ruled through each transform and combined in
// quadrature at the difference. The chain treats X and Y as independent,
// which may understate alphaErr when both are dominated by the same chord
// length; kept as derived.
//
// Z < 0 means the supplied duration is too long for the star/orbit geometry,
// and Q > 1 means the chord exceeds the orbit itself; both are rejected as
// domain errors rather than surfacing NaN. Z == 0 exactly is the valid
// edge-on limit (i = 90deg, alpha = 0); only its error term is singular
// there.
func OrbitalInclination(rstar, rp, a, period, tdur, rpErr, tdurErr float64) (alpha, alphaErr float64, err error) {
	if rstar <= 0 {
		return 0, 0, domainErr("inclination", "Rstar", rstar, "stellar radius must be positive")
	}
	if rp < 0 {
		return 0, 0, domainErr("inclination", "Rplanet", rp, "planet radius must be non-negative")
	}
	if a <= 0 {
		return 0, 0, domainErr("inclination", "a", a, "semi-major axis must be positive")
	}
	if period <= 0 {
		return 0, 0, domainErr("inclination", "P", period, "period must be positive")
	}
	if tdur < 0 {
		return 0, 0, domainErr("inclination", "Tdur", tdur, "transit duration must be non-negative")
	}
	if rpErr < 0 || tdurErr < 0 {
		return 0, 0, domainErr("inclination", "uncertainty", math.Min(rpErr, tdurErr), "uncertainty must be non-negative")
	}

	// Tdur/P is a dimensionless phase fraction; scaling by pi gives the
	// half-chord phase angle in radians.
	phi := math.Pi * tdur / period
	sinPhi, cosPhi := math.Sincos(phi)

	sum := rstar + rp
	x := sum * sum
	xErr := 2 * sum * rpErr

	chord := a * sinPhi
	y := chord * chord
	yErr := 2 * chord * a * cosPhi * (math.Pi / period) * tdurErr

	z := x - y
	if z < 0 {
		return 0, 0, domainErr("inclination", "Z", z, "transit duration too long for the given geometry")
	}
	zErr := math.Hypot(xErr, yErr)

	sqrtZ := math.Sqrt(z)
	q := sqrtZ / a
	if q > 1 {
		return 0, 0, domainErr("inclination", "Q", q, "transit chord exceeds the orbital radius")
	}

	var qErr float64
	if zErr != 0 {
		if sqrtZ == 0 {
			return 0, 0, domainErr("inclination", "Z", z, "error propagation singular at the edge-on limit")
		}
		qErr = zErr / (2 * a * sqrtZ)
	}

	alpha = math.Pi/2 - math.Acos(q)
	if qErr != 0 {
		if q == 1 {
			return 0, 0, domainErr("inclination", "Q", q, "error propagation singular at Q=1")
		}
		alphaErr = qErr / math.Sqrt(1-q*q)
	}

	return alpha, alphaErr, nil
}
