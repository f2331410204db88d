package geom

import (
	"errors"
	. "math"

	"github.com/erh3cq/pyxem/mat"
)

// rotationTol is the largest deviation of R R^T from the identity, and of
// det(R) from one, which IsRotation accepts.
const rotationTol = 1e-8

// ErrNotRotation is returned when a matrix which should be a proper rotation
// is not orthonormal or has a negative determinant.
var ErrNotRotation = errors.New("geom: matrix is not a proper rotation")

// EulerMatrix creates the rotation matrix for the Bunge (ZXZ) Euler angles
// phi, theta, and psi, given in radians:
//
//     R = Rz(phi) Rx(theta) Rz(psi)
//
// so that a vector is first turned by psi about z, then by theta about x,
// and finally by phi about the fixed z axis.
func EulerMatrix(phi, theta, psi float64) *mat.Matrix {
	out := rotZ(phi).Mult(rotX(theta))
	return out.Mult(rotZ(psi))
}

// EulerMatrixDegrees is EulerMatrix with its angles given in degrees.
func EulerMatrixDegrees(phi, theta, psi float64) *mat.Matrix {
	return EulerMatrix(radians(phi), radians(theta), radians(psi))
}

func rotZ(a float64) *mat.Matrix {
	s, c := Sincos(a)
	return mat.NewMatrix([]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}, 3, 3)
}

func rotX(a float64) *mat.Matrix {
	s, c := Sincos(a)
	return mat.NewMatrix([]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}, 3, 3)
}

// IsRotation returns true if m is a 3 x 3 proper rotation matrix.
func IsRotation(m *mat.Matrix) bool {
	if m == nil || m.Width != 3 || m.Height != 3 {
		return false
	}

	id, prod := mat.Identity(3), m.Mult(m.Transpose())
	for i := range id.Vals {
		if !(Abs(prod.Vals[i]-id.Vals[i]) <= rotationTol) {
			return false
		}
	}
	return Abs(m.Determinant()-1) <= rotationTol
}

// Rotate rotates a vector by the given rotation matrix.
func (v *Vec) Rotate(m *mat.Matrix) {
	x := m.Vals
	*v = Vec{
		x[0]*v[0] + x[1]*v[1] + x[2]*v[2],
		x[3]*v[0] + x[4]*v[1] + x[5]*v[2],
		x[6]*v[0] + x[7]*v[1] + x[8]*v[2],
	}
}
