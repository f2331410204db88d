/*package pyxem simulates electron diffraction from crystal structures in the
kinematic approximation.

A DiffractionGenerator is created once per microscope setup and can then be
used to compute spot patterns (Simulate) and one dimensional powder profiles
(Profile) for any number of structures. Generators hold no mutable state and
may be used from multiple goroutines at once.
*/
package pyxem

import (
	"fmt"
	"math"

	"github.com/erh3cq/pyxem/crystal"
	"github.com/erh3cq/pyxem/scattering"
	"github.com/erh3cq/pyxem/simutil"
)

const (
	// Default arguments for Profile.
	DefaultReciprocalRadius   = 1.0
	DefaultMagnitudeTolerance = 1e-5
	DefaultMinimumIntensity   = 1e-3

	// Reflections at or below this intensity are numerical noise.
	intensityFloor = 1e-20
)

// Option configures a DiffractionGenerator.
type Option func(*DiffractionGenerator)

// WithDebyeWaller sets the Debye-Waller factors (in square Angstroms) of
// individual elements. Unlisted elements are not thermally damped. The map
// is copied.
func WithDebyeWaller(factors map[string]float64) Option {
	return func(gen *DiffractionGenerator) {
		for sym, b := range factors {
			gen.debyeWaller[crystal.ElementSymbol(sym)] = b
		}
	}
}

// WithScatteringTable sets the atomic scattering parameters used by the
// generator. The default is scattering.Default().
func WithScatteringTable(tab *scattering.Table) Option {
	return func(gen *DiffractionGenerator) {
		if tab != nil {
			gen.table = tab
		}
	}
}

// WithShapeFactor sets the relrod profile used to weight reflections in
// Simulate. The default is ShapeFactorLinear.
func WithShapeFactor(sf ShapeFactor) Option {
	return func(gen *DiffractionGenerator) { gen.shape = sf }
}

// DiffractionGenerator computes electron diffraction patterns for crystal
// structures.
//
// 1. Find all reciprocal lattice points within a sphere.
//
// 2. For each point g_hkl, compute its excitation error: its distance along
// the beam (z) direction from the Ewald sphere of radius 1 / lambda.
//
// 3. The intensity of each reflection is given in the kinematic
// approximation as the modulus square of the structure factor,
// I_hkl = F_hkl F_hkl^*.
type DiffractionGenerator struct {
	voltage            float64
	wavelength         float64
	maxExcitationError float64
	debyeWaller        map[string]float64
	table              *scattering.Table
	shape              ShapeFactor
}

// NewDiffractionGenerator creates a generator for a microscope with the
// given accelerating voltage in kV. maxExcitationError is the maximum extent
// of the relrods in reciprocal Angstroms, typically 1 / specimen thickness.
func NewDiffractionGenerator(
	voltage, maxExcitationError float64, opts ...Option,
) (*DiffractionGenerator, error) {
	wavelength, err := simutil.ElectronWavelength(voltage)
	if err != nil {
		return nil, &InvalidGeometryError{
			Param: "accelerating_voltage", Value: voltage, Err: err,
		}
	}
	if !(maxExcitationError > 0) || math.IsInf(maxExcitationError, 0) {
		return nil, &InvalidGeometryError{
			Param: "max_excitation_error", Value: maxExcitationError,
		}
	}

	gen := &DiffractionGenerator{
		voltage:            voltage,
		wavelength:         wavelength,
		maxExcitationError: maxExcitationError,
		debyeWaller:        map[string]float64{},
		table:              scattering.Default(),
		shape:              ShapeFactorLinear,
	}
	for _, opt := range opts {
		opt(gen)
	}

	for sym, b := range gen.debyeWaller {
		if !(b >= 0) || math.IsInf(b, 0) {
			return nil, &InvalidGeometryError{
				Param: fmt.Sprintf("debye_waller_factor[%s]", sym), Value: b,
			}
		}
	}
	if gen.shape < 0 || gen.shape >= endShapeFactor {
		return nil, &InvalidGeometryError{
			Param: "shape_factor", Value: float64(gen.shape),
		}
	}

	return gen, nil
}

// AcceleratingVoltage returns the accelerating voltage in kV.
func (gen *DiffractionGenerator) AcceleratingVoltage() float64 {
	return gen.voltage
}

// Wavelength returns the electron wavelength in Angstroms.
func (gen *DiffractionGenerator) Wavelength() float64 { return gen.wavelength }

// MaxExcitationError returns the maximum excitation error in reciprocal
// Angstroms.
func (gen *DiffractionGenerator) MaxExcitationError() float64 {
	return gen.maxExcitationError
}

// ShapeFactor returns the relrod profile used by Simulate.
func (gen *DiffractionGenerator) ShapeFactor() ShapeFactor { return gen.shape }

// DebyeWaller returns the Debye-Waller factor used for an element.
func (gen *DiffractionGenerator) DebyeWaller(symbol string) float64 {
	return gen.debyeWaller[crystal.ElementSymbol(symbol)]
}

// Simulate calculates the electron diffraction pattern of a structure. The
// structure must already be rotated into the desired orientation, with the
// beam travelling along z. reciprocalRadius is the radius of the sphere of
// reciprocal space to sample, in reciprocal Angstroms. withDirectBeam
// controls whether the [0, 0, 0] reflection is reported by the result's
// accessors.
func (gen *DiffractionGenerator) Simulate(
	s *crystal.Structure, reciprocalRadius float64, withDirectBeam bool,
) (*DiffractionSimulation, error) {
	if err := checkStructure(s); err != nil {
		return nil, err
	}
	if err := checkRadius(reciprocalRadius); err != nil {
		return nil, err
	}

	scs, err := flatten(s, gen.table, gen.debyeWaller)
	if err != nil {
		return nil, err
	}

	recip := s.Lattice().Reciprocal()
	pts := recip.PointsInSphere(reciprocalRadius)

	sim := &DiffractionSimulation{
		withDirectBeam: withDirectBeam,
		calibration:    1,
	}

	// Identify points intersecting the Ewald sphere within the maximum
	// excitation error and weight their intensities by the relrod profile.
	radius := 1 / gen.wavelength
	for i := range pts {
		p := &pts[i]
		rl := math.Hypot(p.Cart[0], p.Cart[1]) * gen.wavelength
		if rl > 1 {
			continue
		}

		theta := math.Asin(rl)
		zSphere := radius * (1 - math.Cos(theta))
		proximity := math.Abs(zSphere - p.Cart[2])
		if proximity >= gen.maxExcitationError {
			continue
		}

		intensity := kinematicIntensity(scs, p.Index, p.Magnitude) *
			gen.shape.weight(proximity, gen.maxExcitationError)
		if !(intensity > intensityFloor) {
			continue
		}

		sim.coordinates = append(sim.coordinates, p.Cart)
		sim.indices = append(sim.indices, p.Index)
		sim.intensities = append(sim.intensities, intensity)
	}

	return sim, nil
}

func checkStructure(s *crystal.Structure) error {
	if s == nil || s.Lattice() == nil {
		return &InvalidGeometryError{Param: "structure", Err: crystal.ErrNilLattice}
	}
	return nil
}

func checkRadius(r float64) error {
	if !(r >= 0) || math.IsInf(r, 0) {
		return &InvalidGeometryError{Param: "reciprocal_radius", Value: r}
	}
	return nil
}
