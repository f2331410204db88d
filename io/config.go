package io

import (
	"fmt"
	"math"
	"sort"

	"gopkg.in/gcfg.v1"

	"github.com/erh3cq/pyxem"
	"github.com/erh3cq/pyxem/geom"
	"github.com/erh3cq/pyxem/mat"
)

const (
	ExampleSimulateFile = `[Simulate]

#######################
# Required Parameters #
#######################

# Structure file describing the crystal. Run with -ExampleConfig Structure
# to see the format.
Structure = path/to/structure.cfg

# Accelerating voltage of the microscope in kV.
AcceleratingVoltage = 200

# Maximum distance of a reciprocal lattice point from the Ewald sphere in
# reciprocal Angstroms. This is roughly one over the specimen thickness.
MaxExcitationError = 1e-2

#######################
# Optional Parameters #
#######################

# Radius of the sphere of reciprocal space which is sampled, in reciprocal
# Angstroms. Default is 1.
# ReciprocalRadius = 1.0

# Whether the [0 0 0] reflection is written. Default is true.
# WithDirectBeam = false

# Size of a detector pixel in reciprocal Angstroms. If set, x and y
# coordinates are written in pixels instead of reciprocal Angstroms.
# Calibration = 0.01

# Relrod profile. Must be one of [ Linear | Sinc2 ]. Default is Linear.
# ShapeFactor = Sinc2

# Whitespace-separated file of electron scattering factors with the columns
# Z a1 b1 a2 b2 a3 b3 a4 b4. Entries replace the built-in table.
# ScatteringTable = path/to/table.txt

# File which the spot table is written to. Default is stdout.
# Output = path/to/spots.txt

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out

# Debye-Waller factors in square Angstroms. One section per element.
# [DebyeWaller "Fe"]
# B = 0.35

# Orientations to simulate, given as Bunge (ZXZ) Euler angles in degrees:
# the lattice is turned by Psi about z, then by Theta about x, then by Phi
# about z. If no orientation is given the structure is simulated as it is.
# Orientations are simulated in parallel using -Threads workers.
# [Orientation "zone_001"]
# Phi = 0
# Theta = 0
# Psi = 0
#
# [Orientation "tilted"]
# Phi = 0
# Theta = 15
# Psi = 0`

	ExampleProfileFile = `[Profile]

#######################
# Required Parameters #
#######################

# Structure file describing the crystal. Run with -ExampleConfig Structure
# to see the format.
Structure = path/to/structure.cfg

# Accelerating voltage of the microscope in kV.
AcceleratingVoltage = 200

#######################
# Optional Parameters #
#######################

# Radius of the sphere of reciprocal space which is sampled, in reciprocal
# Angstroms. Default is 1.
# ReciprocalRadius = 1.0

# Reflections whose magnitudes differ by less than this are merged into a
# single peak. Default is 1e-5.
# MagnitudeTolerance = 1e-5

# Peaks with an intensity at or below this value are dropped. The strongest
# peak has intensity 100. Default is 1e-3.
# MinimumIntensity = 1e-3

# If set, a matplotlib stick plot of the profile is saved to this file.
# PlotFile = profile.png

# ScatteringTable = path/to/table.txt
# Output = path/to/profile.txt
# ProfileFile = prof.out
# LogFile = log.out

# [DebyeWaller "Fe"]
# B = 0.35`
)

type SharedConfig struct {
	// Required
	Structure           string
	AcceleratingVoltage float64

	// Optional
	MaxExcitationError float64
	ReciprocalRadius   float64
	ShapeFactor        string
	ScatteringTable    string
	Output             string

	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidStructure() bool {
	return con.Structure != ""
}
func (con *SharedConfig) ValidAcceleratingVoltage() bool {
	return con.AcceleratingVoltage > 0 && !math.IsInf(con.AcceleratingVoltage, 0)
}
func (con *SharedConfig) ValidMaxExcitationError() bool {
	return con.MaxExcitationError > 0 && !math.IsInf(con.MaxExcitationError, 0)
}
func (con *SharedConfig) ValidReciprocalRadius() bool {
	return con.ReciprocalRadius >= 0 && !math.IsInf(con.ReciprocalRadius, 0)
}
func (con *SharedConfig) ValidShapeFactor() bool {
	_, err := pyxem.ParseShapeFactor(con.ShapeFactor)
	return err == nil
}
func (con *SharedConfig) ValidScatteringTable() bool {
	return con.ScatteringTable != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

// CheckInit returns a descriptive error for the first invalid required
// parameter.
func (con *SharedConfig) CheckInit() error {
	if !con.ValidStructure() {
		return fmt.Errorf("Invalid/non-existent 'Structure' value.")
	} else if !con.ValidAcceleratingVoltage() {
		return fmt.Errorf(
			"'AcceleratingVoltage' must be positive, but is %g.",
			con.AcceleratingVoltage,
		)
	} else if !con.ValidMaxExcitationError() {
		return fmt.Errorf(
			"'MaxExcitationError' must be positive, but is %g.",
			con.MaxExcitationError,
		)
	} else if !con.ValidReciprocalRadius() {
		return fmt.Errorf(
			"'ReciprocalRadius' must be non-negative, but is %g.",
			con.ReciprocalRadius,
		)
	} else if !con.ValidShapeFactor() {
		return fmt.Errorf(
			"'ShapeFactor' must be one of [Linear | Sinc2]. '%s' is not "+
				"recognized.", con.ShapeFactor,
		)
	}
	return nil
}

type DebyeWallerConfig struct {
	B float64
}

type OrientationConfig struct {
	Phi, Theta, Psi float64
}

type SimulateConfig struct {
	SharedConfig

	// Optional
	WithDirectBeam bool
	Calibration    float64
}

func (con *SimulateConfig) ValidCalibration() bool {
	return con.Calibration > 0 && !math.IsInf(con.Calibration, 0)
}

func (con *SimulateConfig) CheckInit() error {
	if err := con.SharedConfig.CheckInit(); err != nil {
		return err
	}
	if con.Calibration != 0 && !con.ValidCalibration() {
		return fmt.Errorf(
			"'Calibration' must be positive, but is %g.", con.Calibration,
		)
	}
	return nil
}

type SimulateWrapper struct {
	Simulate    SimulateConfig
	DebyeWaller map[string]*DebyeWallerConfig
	Orientation map[string]*OrientationConfig
}

func DefaultSimulateWrapper() *SimulateWrapper {
	con := SimulateConfig{}
	con.ReciprocalRadius = pyxem.DefaultReciprocalRadius
	con.ShapeFactor = pyxem.ShapeFactorLinear.String()
	con.WithDirectBeam = true
	return &SimulateWrapper{Simulate: con}
}

// ReadSimulateConfig reads and checks a [Simulate] configuration file.
func ReadSimulateConfig(fname string) (*SimulateWrapper, error) {
	wrap := DefaultSimulateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Simulate.CheckInit(); err != nil {
		return nil, err
	}
	if err := checkDebyeWaller(wrap.DebyeWaller); err != nil {
		return nil, err
	}
	return wrap, nil
}

// DebyeWallerFactors returns the Debye-Waller factor of every element listed
// in the file.
func (wrap *SimulateWrapper) DebyeWallerFactors() map[string]float64 {
	return debyeWallerFactors(wrap.DebyeWaller)
}

// Rotations returns the names and rotation matrices of every orientation in
// the file, sorted by name.
func (wrap *SimulateWrapper) Rotations() ([]string, []*mat.Matrix) {
	names := make([]string, 0, len(wrap.Orientation))
	for name := range wrap.Orientation {
		names = append(names, name)
	}
	sort.Strings(names)

	rots := make([]*mat.Matrix, len(names))
	for i, name := range names {
		o := wrap.Orientation[name]
		rots[i] = geom.EulerMatrixDegrees(o.Phi, o.Theta, o.Psi)
	}
	return names, rots
}

type ProfileConfig struct {
	SharedConfig

	// Optional
	MagnitudeTolerance float64
	MinimumIntensity   float64
	PlotFile           string
}

func (con *ProfileConfig) ValidMagnitudeTolerance() bool {
	return con.MagnitudeTolerance >= 0 && !math.IsInf(con.MagnitudeTolerance, 0)
}
func (con *ProfileConfig) ValidMinimumIntensity() bool {
	return con.MinimumIntensity >= 0 && !math.IsInf(con.MinimumIntensity, 0)
}
func (con *ProfileConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

func (con *ProfileConfig) CheckInit() error {
	if err := con.SharedConfig.CheckInit(); err != nil {
		return err
	} else if !con.ValidMagnitudeTolerance() {
		return fmt.Errorf(
			"'MagnitudeTolerance' must be non-negative, but is %g.",
			con.MagnitudeTolerance,
		)
	} else if !con.ValidMinimumIntensity() {
		return fmt.Errorf(
			"'MinimumIntensity' must be non-negative, but is %g.",
			con.MinimumIntensity,
		)
	}
	return nil
}

type ProfileWrapper struct {
	Profile     ProfileConfig
	DebyeWaller map[string]*DebyeWallerConfig
}

func DefaultProfileWrapper() *ProfileWrapper {
	con := ProfileConfig{}
	// Profiles are independent of the excitation error, but the generator
	// still needs a valid one.
	con.MaxExcitationError = 1e-2
	con.ReciprocalRadius = pyxem.DefaultReciprocalRadius
	con.ShapeFactor = pyxem.ShapeFactorLinear.String()
	con.MagnitudeTolerance = pyxem.DefaultMagnitudeTolerance
	con.MinimumIntensity = pyxem.DefaultMinimumIntensity
	return &ProfileWrapper{Profile: con}
}

// ReadProfileConfig reads and checks a [Profile] configuration file.
func ReadProfileConfig(fname string) (*ProfileWrapper, error) {
	wrap := DefaultProfileWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Profile.CheckInit(); err != nil {
		return nil, err
	}
	if err := checkDebyeWaller(wrap.DebyeWaller); err != nil {
		return nil, err
	}
	return wrap, nil
}

func (wrap *ProfileWrapper) DebyeWallerFactors() map[string]float64 {
	return debyeWallerFactors(wrap.DebyeWaller)
}

func checkDebyeWaller(dw map[string]*DebyeWallerConfig) error {
	for name, con := range dw {
		if con.B < 0 || math.IsNaN(con.B) || math.IsInf(con.B, 0) {
			return fmt.Errorf(
				"DebyeWaller '%s' must have a non-negative B, but has %g.",
				name, con.B,
			)
		}
	}
	return nil
}

func debyeWallerFactors(dw map[string]*DebyeWallerConfig) map[string]float64 {
	out := make(map[string]float64, len(dw))
	for name, con := range dw {
		out[name] = con.B
	}
	return out
}
