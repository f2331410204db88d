package pyxem

import (
	"fmt"
)

// UnknownElementError is returned when a structure contains a species with
// no entry in the scattering table. It is an input-data defect: retrying
// the same call will always fail in the same way.
type UnknownElementError struct {
	Symbol string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf(
		"pyxem: no atomic scattering parameters for element '%s'", e.Symbol,
	)
}

// EmptyProfileError is returned when a profile contains no reflections that
// can be normalized, usually because the reciprocal radius is too small to
// include any non-zero reciprocal lattice point.
type EmptyProfileError struct {
	ReciprocalRadius float64
}

func (e *EmptyProfileError) Error() string {
	return fmt.Sprintf(
		"pyxem: no reflections with non-zero intensity within a reciprocal "+
			"radius of %g", e.ReciprocalRadius,
	)
}

// InvalidGeometryError is returned when a simulation parameter or the
// lattice of a structure is unusable. Param names the offending parameter.
type InvalidGeometryError struct {
	Param string
	Value float64
	Err   error
}

func (e *InvalidGeometryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pyxem: invalid %s: %s", e.Param, e.Err.Error())
	}
	return fmt.Sprintf("pyxem: invalid %s: %g", e.Param, e.Value)
}

func (e *InvalidGeometryError) Unwrap() error { return e.Err }
