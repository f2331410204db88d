package pyxem

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erh3cq/pyxem/crystal"
	"github.com/erh3cq/pyxem/geom"
	"github.com/erh3cq/pyxem/scattering"
	"github.com/erh3cq/pyxem/simutil"
)

const (
	testVoltage = 200.0
	testMaxExc  = 0.025
)

func newTestGenerator(t testing.TB, opts ...Option) *DiffractionGenerator {
	gen, err := NewDiffractionGenerator(testVoltage, testMaxExc, opts...)
	require.NoError(t, err)
	return gen
}

// simpleCubic returns a cubic structure with a single atom at the origin.
func simpleCubic(t testing.TB, symbol string, a float64) *crystal.Structure {
	l, err := geom.Cubic(a)
	require.NoError(t, err)
	s, err := crystal.NewStructure(l, []crystal.Site{
		crystal.NewSite(symbol, 0, 0, 0),
	})
	require.NoError(t, err)
	return s
}

func bcc(t testing.TB, symbol string, a float64) *crystal.Structure {
	l, err := geom.Cubic(a)
	require.NoError(t, err)
	s, err := crystal.NewStructure(l, []crystal.Site{
		crystal.NewSite(symbol, 0, 0, 0),
		crystal.NewSite(symbol, 0.5, 0.5, 0.5),
	})
	require.NoError(t, err)
	return s
}

func hcp(t testing.TB, symbol string, a, c float64) *crystal.Structure {
	l, err := geom.Hexagonal(a, c)
	require.NoError(t, err)
	s, err := crystal.NewStructure(l, []crystal.Site{
		crystal.NewSite(symbol, 1.0/3, 2.0/3, 0.25),
		crystal.NewSite(symbol, 2.0/3, 1.0/3, 0.75),
	})
	require.NoError(t, err)
	return s
}

// excitationError recomputes the distance of a point from the Ewald sphere.
func excitationError(c geom.Vec, wavelength float64) float64 {
	r := math.Hypot(c[0], c[1])
	theta := math.Asin(r * wavelength)
	return math.Abs((1-math.Cos(theta))/wavelength - c[2])
}

func TestNewDiffractionGenerator(t *testing.T) {
	gen := newTestGenerator(t)
	assert.InDelta(t, 0.0251, gen.Wavelength(), 1e-4)
	assert.Equal(t, testVoltage, gen.AcceleratingVoltage())
	assert.Equal(t, testMaxExc, gen.MaxExcitationError())
	assert.Equal(t, ShapeFactorLinear, gen.ShapeFactor())
	assert.Equal(t, 0.0, gen.DebyeWaller("Si"))
}

func TestNewDiffractionGeneratorErrors(t *testing.T) {
	var geomErr *InvalidGeometryError

	_, err := NewDiffractionGenerator(0, testMaxExc)
	require.True(t, errors.As(err, &geomErr))
	assert.Equal(t, "accelerating_voltage", geomErr.Param)
	assert.ErrorIs(t, err, simutil.ErrBadVoltage)

	_, err = NewDiffractionGenerator(testVoltage, 0)
	require.True(t, errors.As(err, &geomErr))
	assert.Equal(t, "max_excitation_error", geomErr.Param)

	_, err = NewDiffractionGenerator(testVoltage, testMaxExc,
		WithDebyeWaller(map[string]float64{"Si": -1}))
	require.True(t, errors.As(err, &geomErr))
	assert.Equal(t, "debye_waller_factor[Si]", geomErr.Param)

	_, err = NewDiffractionGenerator(testVoltage, testMaxExc,
		WithShapeFactor(ShapeFactor(7)))
	require.True(t, errors.As(err, &geomErr))
	assert.Equal(t, "shape_factor", geomErr.Param)
}

func TestDebyeWallerIsCopied(t *testing.T) {
	dw := map[string]float64{"Si": 0.5}
	gen := newTestGenerator(t, WithDebyeWaller(dw))
	dw["Si"] = 2
	assert.Equal(t, 0.5, gen.DebyeWaller("Si"))
}

func TestSimulateSimpleCubic(t *testing.T) {
	gen := newTestGenerator(t)
	s := simpleCubic(t, "Si", 4.0)

	sim, err := gen.Simulate(s, 1.01, true)
	require.NoError(t, err)
	assert.True(t, sim.WithDirectBeam())

	coords, idxs, ints := sim.Coordinates(), sim.Indices(), sim.Intensities()
	require.Equal(t, len(coords), len(idxs))
	require.Equal(t, len(coords), len(ints))

	// The zero-order Laue zone is every (h, k, 0) with h^2 + k^2 <= 16.
	assert.Equal(t, 49, len(coords))

	foundDirect := false
	recip := s.Lattice().Reciprocal()
	for i := range coords {
		assert.Greater(t, ints[i], intensityFloor)
		assert.Less(t, excitationError(coords[i], gen.Wavelength()), testMaxExc)
		assert.Equal(t, 0, idxs[i][2])

		frac := geom.Vec{
			float64(idxs[i][0]), float64(idxs[i][1]), float64(idxs[i][2]),
		}
		cart := recip.CartesianCoords(frac)
		for k := 0; k < 3; k++ {
			assert.InDelta(t, cart[k], coords[i][k], 1e-12)
		}

		if idxs[i] == [3]int{0, 0, 0} {
			foundDirect = true
		}
	}
	assert.True(t, foundDirect)
}

func TestSimulateWithoutDirectBeam(t *testing.T) {
	gen := newTestGenerator(t)
	s := simpleCubic(t, "Si", 4.0)

	with, err := gen.Simulate(s, 1.0, true)
	require.NoError(t, err)
	without, err := gen.Simulate(s, 1.0, false)
	require.NoError(t, err)

	assert.Equal(t, with.Len()-1, without.Len())
	for _, idx := range without.Indices() {
		assert.NotEqual(t, [3]int{0, 0, 0}, idx)
	}
	assert.Equal(t, len(without.Coordinates()), len(without.Intensities()))
}

func TestSimulateDirectBeamIntensity(t *testing.T) {
	gen := newTestGenerator(t)
	sim, err := gen.Simulate(simpleCubic(t, "Si", 4.0), 0, true)
	require.NoError(t, err)
	require.Equal(t, 1, sim.Len())

	p, _ := scattering.Default().Lookup("Si")
	f0 := p.FormFactor(0)
	assert.InDelta(t, f0*f0, sim.Intensities()[0], 1e-12)

	without, err := gen.Simulate(simpleCubic(t, "Si", 4.0), 0, false)
	require.NoError(t, err)
	assert.Equal(t, 0, without.Len())
}

func TestSimulateLinearShapeFactor(t *testing.T) {
	gen := newTestGenerator(t)
	s := simpleCubic(t, "Si", 4.0)
	sim, err := gen.Simulate(s, 1.0, true)
	require.NoError(t, err)

	p, _ := scattering.Default().Lookup("Si")
	for i, c := range sim.Coordinates() {
		g := c.Norm()
		f := p.FormFactor(g * g / 4)
		prox := excitationError(c, gen.Wavelength())
		target := f * f * (1 - prox/testMaxExc)
		assert.InDelta(t, target, sim.Intensities()[i], 1e-9*target)
	}
}

func TestSimulateSinc2ShapeFactor(t *testing.T) {
	lin := newTestGenerator(t)
	sinc := newTestGenerator(t, WithShapeFactor(ShapeFactorSinc2))
	s := simpleCubic(t, "Si", 4.0)

	simLin, err := lin.Simulate(s, 1.0, true)
	require.NoError(t, err)
	simSinc, err := sinc.Simulate(s, 1.0, true)
	require.NoError(t, err)

	require.Equal(t, simLin.Indices(), simSinc.Indices())
	for i, idx := range simLin.Indices() {
		if idx == [3]int{0, 0, 0} {
			assert.Equal(t, simLin.Intensities()[i], simSinc.Intensities()[i])
		} else {
			assert.NotEqual(t, simLin.Intensities()[i], simSinc.Intensities()[i])
		}
	}
}

func TestShapeFactorWeight(t *testing.T) {
	assert.Equal(t, 1.0, ShapeFactorLinear.weight(0, 0.1))
	assert.InDelta(t, 0.5, ShapeFactorLinear.weight(0.05, 0.1), 1e-15)
	assert.Equal(t, 1.0, ShapeFactorSinc2.weight(0, 0.1))
	assert.InDelta(t, 4/(math.Pi*math.Pi), ShapeFactorSinc2.weight(0.05, 0.1),
		1e-15)

	// Both profiles decrease monotonically towards the cutoff.
	for _, sf := range []ShapeFactor{ShapeFactorLinear, ShapeFactorSinc2} {
		prev := 2.0
		for p := 0.0; p < 0.1; p += 0.005 {
			w := sf.weight(p, 0.1)
			assert.Less(t, w, prev, "%s at %g", sf, p)
			assert.GreaterOrEqual(t, w, 0.0)
			prev = w
		}
	}
}

func TestParseShapeFactor(t *testing.T) {
	sf, err := ParseShapeFactor("linear")
	require.NoError(t, err)
	assert.Equal(t, ShapeFactorLinear, sf)

	sf, err = ParseShapeFactor(" SINC2 ")
	require.NoError(t, err)
	assert.Equal(t, ShapeFactorSinc2, sf)

	_, err = ParseShapeFactor("gaussian")
	assert.Error(t, err)

	assert.Equal(t, "ShapeFactor(9)", ShapeFactor(9).String())
}

func TestSimulateExcludesFarFromSphere(t *testing.T) {
	// A tiny excitation error excludes everything but the central region.
	gen, err := NewDiffractionGenerator(testVoltage, 1e-3)
	require.NoError(t, err)

	sim, err := gen.Simulate(simpleCubic(t, "Si", 4.0), 1.0, true)
	require.NoError(t, err)
	for _, c := range sim.Coordinates() {
		assert.Less(t, excitationError(c, gen.Wavelength()), 1e-3)
	}
	// (1 - cos(asin(r lambda))) / lambda < 1e-3 holds only for r < ~0.28,
	// which leaves the direct beam and the four {100} spots.
	assert.Equal(t, 5, sim.Len())
}

func TestSimulateRadiusEdgeCases(t *testing.T) {
	gen := newTestGenerator(t)
	s := simpleCubic(t, "Si", 4.0)

	for _, r := range []float64{-1, math.NaN(), math.Inf(+1)} {
		_, err := gen.Simulate(s, r, true)
		var geomErr *InvalidGeometryError
		require.True(t, errors.As(err, &geomErr), "r = %g", r)
		assert.Equal(t, "reciprocal_radius", geomErr.Param)
	}

	_, err := gen.Simulate(nil, 1, true)
	var geomErr *InvalidGeometryError
	assert.True(t, errors.As(err, &geomErr))
}

func TestSimulateUnknownElement(t *testing.T) {
	gen := newTestGenerator(t)
	s := simpleCubic(t, "Es", 4.0)

	_, err := gen.Simulate(s, 1.0, true)
	var elemErr *UnknownElementError
	require.True(t, errors.As(err, &elemErr))
	assert.Equal(t, "Es", elemErr.Symbol)
	assert.Contains(t, err.Error(), "'Es'")

	// Radius does not matter: the structure itself is invalid.
	_, err = gen.Simulate(s, 0, true)
	assert.True(t, errors.As(err, &elemErr))
}

func TestSimulateCommonElements(t *testing.T) {
	gen := newTestGenerator(t)
	elems := []string{
		"H", "Li", "B", "S", "Ca", "V", "Cr", "Mn", "Co", "Zn", "Ge", "Sr",
		"Zr", "Nb", "Mo", "Ag", "Ba", "W", "Pt", "Pb",
	}
	for _, sym := range elems {
		sim, err := gen.Simulate(simpleCubic(t, sym, 4.0), 1.0, true)
		require.NoError(t, err, sym)
		assert.Greater(t, sim.Len(), 1, sym)
	}
}

func TestCustomScatteringTable(t *testing.T) {
	tab := scattering.NewTable(map[string]scattering.Params{
		"Es": {{1, 10}, {1, 1}},
	})
	gen := newTestGenerator(t, WithScatteringTable(tab))

	sim, err := gen.Simulate(simpleCubic(t, "Es", 4.0), 0, true)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, sim.Intensities()[0], 1e-12)

	_, err = gen.Simulate(simpleCubic(t, "Si", 4.0), 0, true)
	var elemErr *UnknownElementError
	assert.True(t, errors.As(err, &elemErr))
}

func TestSimulateDebyeWaller(t *testing.T) {
	cold := newTestGenerator(t)
	hot := newTestGenerator(t, WithDebyeWaller(map[string]float64{"Si": 1.0}))
	s := simpleCubic(t, "Si", 4.0)

	simCold, err := cold.Simulate(s, 1.0, true)
	require.NoError(t, err)
	simHot, err := hot.Simulate(s, 1.0, true)
	require.NoError(t, err)

	require.Equal(t, simCold.Indices(), simHot.Indices())
	for i, c := range simCold.Coordinates() {
		g := c.Norm()
		s2 := g * g / 4
		assert.InDelta(t, simCold.Intensities()[i]*math.Exp(-2*s2),
			simHot.Intensities()[i], 1e-9*simCold.Intensities()[i])
	}
}

func TestSimulateSystematicAbsences(t *testing.T) {
	gen := newTestGenerator(t)
	sim, err := gen.Simulate(bcc(t, "Fe", 2.87), 1.5, true)
	require.NoError(t, err)

	// Reflections with h + k + l odd are forbidden in a bcc lattice and
	// should be many orders of magnitude weaker than allowed ones.
	maxInt := 0.0
	for _, x := range sim.Intensities() {
		maxInt = math.Max(maxInt, x)
	}
	for i, idx := range sim.Indices() {
		if (idx[0]+idx[1]+idx[2])%2 != 0 {
			assert.Less(t, sim.Intensities()[i], 1e-10*maxInt)
		}
	}
}

func TestSimulateMixedOccupancy(t *testing.T) {
	l, err := geom.Cubic(3.6)
	require.NoError(t, err)
	s, err := crystal.NewStructure(l, []crystal.Site{{
		Frac: geom.Vec{0, 0, 0},
		Species: []crystal.Species{
			{Symbol: "Fe", Occupancy: 0.5}, {Symbol: "Ni", Occupancy: 0.5},
		},
	}})
	require.NoError(t, err)

	gen := newTestGenerator(t)
	sim, err := gen.Simulate(s, 0, true)
	require.NoError(t, err)

	fe, _ := scattering.Default().Lookup("Fe")
	ni, _ := scattering.Default().Lookup("Ni")
	f := 0.5*fe.FormFactor(0) + 0.5*ni.FormFactor(0)
	assert.InDelta(t, f*f, sim.Intensities()[0], 1e-12)
}

func TestFlatten(t *testing.T) {
	l, err := geom.Cubic(3.6)
	require.NoError(t, err)
	s, err := crystal.NewStructure(l, []crystal.Site{
		crystal.NewSite("Si", 0, 0, 0),
		{
			Frac: geom.Vec{0.5, 0.5, 0.5},
			Species: []crystal.Species{
				{Symbol: "Fe2+", Occupancy: 0.25}, {Symbol: "Ni", Occupancy: 0.5},
			},
		},
	})
	require.NoError(t, err)

	scs, err := flatten(s, scattering.Default(), map[string]float64{"Fe": 0.3})
	require.NoError(t, err)
	require.Len(t, scs, 3)

	assert.Equal(t, 14, scs[0].z)
	assert.Equal(t, 26, scs[1].z)
	assert.Equal(t, 28, scs[2].z)
	assert.Equal(t, 0.25, scs[1].occupancy)
	assert.Equal(t, 0.3, scs[1].dw)
	assert.Equal(t, 0.0, scs[2].dw)
	assert.Equal(t, geom.Vec{0.5, 0.5, 0.5}, scs[2].frac)
}

func TestStructureFactorPhase(t *testing.T) {
	scs := []scatterer{
		{params: scattering.Params{{1, 0}}, occupancy: 1, frac: geom.Vec{0, 0, 0}},
		{params: scattering.Params{{1, 0}}, occupancy: 1, frac: geom.Vec{0.25, 0, 0}},
	}

	// F(100) = 1 + exp(i pi / 2) = 1 + i.
	F := structureFactor(scs, [3]int{1, 0, 0}, 0)
	assert.InDelta(t, 1.0, real(F), 1e-12)
	assert.InDelta(t, 1.0, imag(F), 1e-12)
	assert.InDelta(t, 2.0, kinematicIntensity(scs, [3]int{1, 0, 0}, 0), 1e-12)

	// F(200) = 1 + exp(i pi) = 0.
	assert.InDelta(t, 0.0, kinematicIntensity(scs, [3]int{2, 0, 0}, 0), 1e-12)
}

func TestSimulateIsDeterministic(t *testing.T) {
	gen := newTestGenerator(t)
	s := hcp(t, "Ti", 2.95, 4.68)

	sim1, err := gen.Simulate(s, 2.0, true)
	require.NoError(t, err)
	sim2, err := gen.Simulate(s, 2.0, true)
	require.NoError(t, err)
	assert.Equal(t, sim1, sim2)
}

func TestSimulateConcurrent(t *testing.T) {
	gen := newTestGenerator(t)
	s := hcp(t, "Ti", 2.95, 4.68)
	target, err := gen.Simulate(s, 2.0, true)
	require.NoError(t, err)

	n := 8
	results := make(chan *DiffractionSimulation, n)
	for i := 0; i < n; i++ {
		go func() {
			sim, err := gen.Simulate(s, 2.0, true)
			if err != nil {
				results <- nil
				return
			}
			results <- sim
		}()
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, target, <-results)
	}
}

func BenchmarkSimulate(b *testing.B) {
	gen := newTestGenerator(b)
	s := hcp(b, "Ti", 2.95, 4.68)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.Simulate(s, 2.0, true)
	}
}

func TestSimulateIncludesDirectBeam(t *testing.T) {
	gen := newTestGenerator(t)
	sim, err := gen.Simulate(simpleCubic(t, "Si", 4.0), 1.0, true)
	require.NoError(t, err)

	require.NotEmpty(t, sim.Indices())
	assert.Contains(t, sim.Indices(), [3]int{0, 0, 0})
	for _, c := range sim.Coordinates() {
		assert.Less(t, excitationError(c, gen.Wavelength()), testMaxExc)
	}
}
