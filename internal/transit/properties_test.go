package transit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/transitlab/internal/transit"
	"github.com/san-kum/transitlab/internal/units"
)

var _ = Describe("planet radius", func() {
	It("propagates the depth uncertainty linearly", func() {
		_, err1, e := transit.PlanetRadius(0.02, 7e8, 0.001)
		Expect(e).NotTo(HaveOccurred())

		_, err2, e := transit.PlanetRadius(0.02, 7e8, 0.002)
		Expect(e).NotTo(HaveOccurred())

		Expect(err2).To(BeNumerically("~", 2*err1, 1e-12))
	})

	It("keeps the radius ratio scale invariant", func() {
		for _, rstar := range []float64{1e8, 7e8, 2.3e9} {
			rp, _, e := transit.PlanetRadius(0.031, rstar, 0)
			Expect(e).NotTo(HaveOccurred())
			Expect(rp / rstar).To(BeNumerically("~", math.Sqrt(0.031), 1e-12))
		}
	})
})

var _ = Describe("orbital radius", func() {
	It("grows with stellar mass", func() {
		p := 100 * units.SecondsPerDay
		prev := 0.0
		for _, m := range []float64{0.5, 1.0, 2.0, 4.0} {
			a, e := transit.OrbitalRadius(m*units.SolarMass, p)
			Expect(e).NotTo(HaveOccurred())
			Expect(a).To(BeNumerically(">", prev))
			prev = a
		}
	})

	It("grows with period", func() {
		prev := 0.0
		for _, days := range []float64{1, 10, 100, 1000} {
			a, e := transit.OrbitalRadius(units.SolarMass, units.DaysToSeconds(days))
			Expect(e).NotTo(HaveOccurred())
			Expect(a).To(BeNumerically(">", prev))
			prev = a
		}
	})
})

var _ = Describe("orbital speed", func() {
	It("holds v*P = 2*pi*a for any period", func() {
		a := 7.3e11
		for _, p := range []float64{1e5, 1e6, 1e7, 1e8} {
			v, e := transit.OrbitalSpeed(a, p)
			Expect(e).NotTo(HaveOccurred())
			Expect(v * p).To(BeNumerically("~", 2*math.Pi*a, 1.0))
		}
	})
})

var _ = Describe("pipeline", func() {
	base := transit.SystemInputs{
		Name:                "test",
		PeriodDays:          4.2568,
		StellarMassSolar:    1.05,
		StellarRadiusSolar:  1.02,
		TransitDepth:        0.0092,
		TransitDurationDays: 0.1103,
	}

	It("shrinks the inclination offset as the duration grows", func() {
		prev := math.Inf(1)
		for _, tdur := range []float64{0.08, 0.09, 0.10, 0.11} {
			in := base
			in.TransitDurationDays = tdur
			out, e := transit.ComputeAll(in)
			Expect(e).NotTo(HaveOccurred())
			Expect(out.InclinationOffsetRad).To(BeNumerically("<", prev))
			prev = out.InclinationOffsetRad
		}
	})

	It("scales the radius uncertainty with the depth uncertainty", func() {
		in := base
		in.TransitDepthErr = 0.0004
		out1, e := transit.ComputeAll(in)
		Expect(e).NotTo(HaveOccurred())

		in.TransitDepthErr = 0.0008
		out2, e := transit.ComputeAll(in)
		Expect(e).NotTo(HaveOccurred())

		Expect(out2.PlanetRadiusErrM).To(BeNumerically("~", 2*out1.PlanetRadiusErrM, 1e-6))
	})
})
