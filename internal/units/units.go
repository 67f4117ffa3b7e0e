// Package units holds the physical constants and unit conversions shared by
// the calculators. All pipeline math runs in SI; conversions live at the
// boundaries (config parsing, report rendering) only.
package units

import "math"

const (
	// G is the gravitational constant [m^3 kg^-1 s^-2].
	G = 6.674e-11

	// SolarMass [kg] and SolarRadius [m] scale stellar catalog values to SI.
	SolarMass   = 1.989e30
	SolarRadius = 6.957e8

	// AU is the astronomical unit [m].
	AU = 1.495978707e11

	SecondsPerDay = 86400.0
	MetersPerKm   = 1000.0
)

func DaysToSeconds(d float64) float64 { return d * SecondsPerDay }

func SecondsToDays(s float64) float64 { return s / SecondsPerDay }

func SolarMassesToKg(m float64) float64 { return m * SolarMass }

func SolarRadiiToMeters(r float64) float64 { return r * SolarRadius }

func MetersToKm(m float64) float64 { return m / MetersPerKm }

func MetersToAU(m float64) float64 { return m / AU }

func RadiansToDegrees(r float64) float64 { return r * 180.0 / math.Pi }

func DegreesToRadians(d float64) float64 { return d * math.Pi / 180.0 }
