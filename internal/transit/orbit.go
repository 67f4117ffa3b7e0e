package transit

import (
	"math"

	"github.com/san-kum/transitlab/internal/units"
)

// OrbitalRadius solves Kepler's third law for the semi-major axis [m] of a
// circular orbit around a point mass:
//
//	a = (G * Mstar * P^2 / (4*pi^2))^(1/3)
//
// Stellar mass [kg] and period [s] are treated as exact, so no uncertainty is
// propagated. P = 0 degenerates cleanly to a = 0.
func OrbitalRadius(mstar, period float64) (float64, error) {
	if mstar <= 0 {
		return 0, domainErr("orbit", "Mstar", mstar, "stellar mass must be positive")
	}
	if period < 0 {
		return 0, domainErr("orbit", "P", period, "period must be non-negative")
	}

	return math.Cbrt(units.G * mstar * period * period / (4 * math.Pi * math.Pi)), nil
}

// OrbitalSpeed returns the mean circular orbital speed [m/s], v = 2*pi*a/P.
// Valid while the stellar mass dominates the planet mass, so the reduced-mass
// correction to the orbital radius is negligible.
func OrbitalSpeed(a, period float64) (float64, error) {
	if a < 0 {
		return 0, domainErr("speed", "a", a, "semi-major axis must be non-negative")
	}
	if period <= 0 {
		return 0, domainErr("speed", "P", period, "period must be positive")
	}

	return 2 * math.Pi * a / period, nil
}
