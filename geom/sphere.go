package geom

import (
	"math"
)

// boundSlack keeps round-off from excluding points that lie exactly on the
// sphere.
const boundSlack = 1e-8

// LatticePoint is a single lattice point found by PointsInSphere.
type LatticePoint struct {
	// Index holds the integer coordinates of the point in the lattice basis.
	Index [3]int
	// Cart is the Cartesian position of the point.
	Cart Vec
	// Magnitude is the distance of the point from the origin.
	Magnitude float64
}

// IsOrigin returns true if p is the [0, 0, 0] lattice point.
func (p *LatticePoint) IsOrigin() bool {
	return p.Index[0] == 0 && p.Index[1] == 0 && p.Index[2] == 0
}

// PointsInSphere returns every lattice point whose distance from the origin
// is less than or equal to r. The origin is included. Points are ordered by
// their indices, first coordinate slowest.
//
// If x = sum_i n_i a_i, then n_i = x . a*_i, so |n_i| <= r |a*_i|. Searching
// the box bounded by these limits and filtering on distance gives exactly
// the points inside the ball.
func (l *Lattice) PointsInSphere(r float64) []LatticePoint {
	if !(r >= 0) || math.IsInf(r, 0) {
		return nil
	}

	var nMax [3]int
	for i := 0; i < 3; i++ {
		nMax[i] = int(math.Floor(r*l.recip[i].Norm() + boundSlack))
	}

	r2 := r * r
	pts := []LatticePoint{}
	for h := -nMax[0]; h <= nMax[0]; h++ {
		vh := l.basis[0].Scale(float64(h))
		for k := -nMax[1]; k <= nMax[1]; k++ {
			vhk := vh.Add(l.basis[1].Scale(float64(k)))
			for m := -nMax[2]; m <= nMax[2]; m++ {
				x := vhk.Add(l.basis[2].Scale(float64(m)))
				d2 := x.Dot(x)
				if d2 > r2 {
					continue
				}
				pts = append(pts, LatticePoint{
					Index:     [3]int{h, k, m},
					Cart:      x,
					Magnitude: math.Sqrt(d2),
				})
			}
		}
	}

	return pts
}
