package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/erh3cq/pyxem/mat"
)

const (
	// Tolerances used by IsHexagonal.
	hexAngleTol  = 5.0
	hexLengthTol = 0.01

	degenerateTol = 1e-10
)

// ErrDegenerateLattice is returned when a lattice basis has (numerically)
// zero volume or contains non-finite values.
var ErrDegenerateLattice = errors.New("geom: lattice basis is degenerate")

// Lattice is a crystal lattice described by three basis vectors. The
// reciprocal basis is computed once during construction. Lattices are never
// modified after construction and may be shared freely between goroutines.
type Lattice struct {
	basis [3]Vec
	recip [3]Vec
}

// NewLattice creates a lattice from three Cartesian basis vectors.
func NewLattice(a, b, c Vec) (*Lattice, error) {
	l := &Lattice{basis: [3]Vec{a, b, c}}
	for i := range l.basis {
		if !l.basis[i].Finite() {
			return nil, fmt.Errorf("%w: basis vector %d is %v",
				ErrDegenerateLattice, i, l.basis[i])
		}
	}

	scale := a.Norm() * b.Norm() * c.Norm()
	det := l.Matrix().Determinant()
	if scale == 0 || math.Abs(det) <= degenerateTol*scale {
		return nil, fmt.Errorf("%w: volume is %g", ErrDegenerateLattice, det)
	}

	// The rows of the crystallographic reciprocal basis are the columns of
	// the inverse of the basis matrix.
	inv, err := l.Matrix().Invert()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDegenerateLattice, err.Error())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			l.recip[i][j] = inv.At(j, i)
		}
	}

	return l, nil
}

// FromParameters creates a lattice from its lengths (Angstroms) and angles
// (degrees). The c axis is placed along z and the a axis in the xz plane.
func FromParameters(a, b, c, alpha, beta, gamma float64) (*Lattice, error) {
	for _, x := range []float64{a, b, c} {
		if !(x > 0) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: lattice lengths must be positive, "+
				"got (%g, %g, %g)", ErrDegenerateLattice, a, b, c)
		}
	}
	for _, x := range []float64{alpha, beta, gamma} {
		if !(x > 0 && x < 180) {
			return nil, fmt.Errorf("%w: lattice angles must be in (0, 180), "+
				"got (%g, %g, %g)", ErrDegenerateLattice, alpha, beta, gamma)
		}
	}

	ar, br, gr := radians(alpha), radians(beta), radians(gamma)
	cosA, cosB, cosG := math.Cos(ar), math.Cos(br), math.Cos(gr)
	sinA, sinB := math.Sin(ar), math.Sin(br)

	val := (cosA*cosB - cosG) / (sinA * sinB)
	if val > 1 {
		val = 1
	} else if val < -1 {
		val = -1
	}
	gammaStar := math.Acos(val)

	va := Vec{a * sinB, 0, a * cosB}
	vb := Vec{-b * sinA * math.Cos(gammaStar), b * sinA * math.Sin(gammaStar),
		b * cosA}
	vc := Vec{0, 0, c}

	return NewLattice(va, vb, vc)
}

// Cubic creates a cubic lattice with lattice parameter a.
func Cubic(a float64) (*Lattice, error) {
	return NewLattice(Vec{a, 0, 0}, Vec{0, a, 0}, Vec{0, 0, a})
}

// Tetragonal creates a tetragonal lattice with lattice parameters a and c.
func Tetragonal(a, c float64) (*Lattice, error) {
	return NewLattice(Vec{a, 0, 0}, Vec{0, a, 0}, Vec{0, 0, c})
}

// Hexagonal creates a hexagonal lattice with lattice parameters a and c.
func Hexagonal(a, c float64) (*Lattice, error) {
	return FromParameters(a, a, c, 90, 90, 120)
}

// Basis returns the three basis vectors.
func (l *Lattice) Basis() [3]Vec { return l.basis }

// Matrix returns the basis as a 3 x 3 matrix with one basis vector per row.
func (l *Lattice) Matrix() *mat.Matrix {
	vals := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		vals = append(vals, l.basis[i][:]...)
	}
	return mat.NewMatrix(vals, 3, 3)
}

// Reciprocal returns the crystallographic reciprocal lattice (no factor of
// 2 pi).
func (l *Lattice) Reciprocal() *Lattice {
	return &Lattice{basis: l.recip, recip: l.basis}
}

// Volume returns the signed volume of the unit cell.
func (l *Lattice) Volume() float64 {
	return l.basis[0].Dot(l.basis[1].Cross(l.basis[2]))
}

// Abc returns the lengths of the three basis vectors.
func (l *Lattice) Abc() [3]float64 {
	return [3]float64{l.basis[0].Norm(), l.basis[1].Norm(), l.basis[2].Norm()}
}

// Angles returns the interaxial angles alpha, beta, and gamma in degrees.
func (l *Lattice) Angles() [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		u, v := l.basis[j], l.basis[k]
		cos := u.Dot(v) / (u.Norm() * v.Norm())
		if cos > 1 {
			cos = 1
		} else if cos < -1 {
			cos = -1
		}
		out[i] = degrees(math.Acos(cos))
	}
	return out
}

// IsHexagonal returns true if two of the lattice angles are within 5 degrees
// of 90, the third is within 5 degrees of 60 or 120, and the two axes
// bounding the right angles are the same length to within 0.01 Angstroms.
func (l *Lattice) IsHexagonal() bool {
	lengths, angles := l.Abc(), l.Angles()

	right, hex := []int{}, []int{}
	for i := 0; i < 3; i++ {
		if math.Abs(angles[i]-90) < hexAngleTol {
			right = append(right, i)
		}
		if math.Abs(angles[i]-60) < hexAngleTol ||
			math.Abs(angles[i]-120) < hexAngleTol {
			hex = append(hex, i)
		}
	}

	return len(right) == 2 && len(hex) == 1 &&
		math.Abs(lengths[right[0]]-lengths[right[1]]) < hexLengthTol
}

// CartesianCoords converts fractional coordinates to Cartesian coordinates.
func (l *Lattice) CartesianCoords(frac Vec) Vec {
	var out Vec
	for i := 0; i < 3; i++ {
		out = out.Add(l.basis[i].Scale(frac[i]))
	}
	return out
}

// FractionalCoords converts Cartesian coordinates to fractional coordinates.
func (l *Lattice) FractionalCoords(cart Vec) Vec {
	return Vec{cart.Dot(l.recip[0]), cart.Dot(l.recip[1]), cart.Dot(l.recip[2])}
}

// Rotate returns a new lattice whose basis vectors have been rotated by the
// given 3 x 3 rotation matrix. ErrNotRotation is returned if m is not a
// proper rotation.
func (l *Lattice) Rotate(m *mat.Matrix) (*Lattice, error) {
	if !IsRotation(m) {
		return nil, ErrNotRotation
	}
	a, b, c := l.basis[0], l.basis[1], l.basis[2]
	a.Rotate(m)
	b.Rotate(m)
	c.Rotate(m)
	return NewLattice(a, b, c)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
