/*package simutil contains small utilities shared by the diffraction
simulators: the relativistic electron wavelength, Miller-Bravais index
conversion, and the reduction of Miller indices to symmetry families.
*/
package simutil

import (
	"errors"
	"fmt"
	"math"
)

// Physical constants, CODATA 2018 (SI units).
const (
	PlanckConstant   = 6.62607015e-34
	ElectronMass     = 9.1093837015e-31
	ElementaryCharge = 1.602176634e-19
	SpeedOfLight     = 299792458.0

	metersPerAngstrom = 1e-10
)

// ErrBadVoltage is returned for non-positive or non-finite accelerating
// voltages.
var ErrBadVoltage = errors.New("simutil: invalid accelerating voltage")

// ElectronWavelength returns the relativistic wavelength, in Angstroms, of
// an electron accelerated through the given voltage, in kV:
//
//     lambda = h / sqrt(2 m0 e V (1 + e V / (2 m0 c^2)))
func ElectronWavelength(kV float64) (float64, error) {
	if !(kV > 0) || math.IsInf(kV, 0) {
		return 0, fmt.Errorf("%w: %g kV", ErrBadVoltage, kV)
	}

	E := kV * 1e3
	m0, e, c := ElectronMass, ElementaryCharge, SpeedOfLight
	p := math.Sqrt(2 * m0 * e * E * (1 + e*E/(2*m0*c*c)))
	return PlanckConstant / p / metersPerAngstrom, nil
}
