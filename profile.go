package pyxem

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/erh3cq/pyxem/crystal"
	"github.com/erh3cq/pyxem/geom"
	"github.com/erh3cq/pyxem/simutil"
)

// profileBucket accumulates every reflection whose magnitude is within
// tolerance of the first reflection that created the bucket.
type profileBucket struct {
	magnitude float64
	intensity float64
	hkls      [][]int
}

// bucketList is a list of buckets sorted by magnitude.
type bucketList struct {
	buckets []profileBucket
	tol     float64
}

// insert adds a reflection to the earliest bucket whose magnitude is within
// tolerance of g, or starts a new bucket if there is none.
func (bl *bucketList) insert(g, intensity float64, hkl []int) {
	bs := bl.buckets
	i := sort.Search(len(bs), func(i int) bool {
		return bs[i].magnitude > g-bl.tol
	})

	if i < len(bs) && math.Abs(bs[i].magnitude-g) < bl.tol {
		bs[i].intensity += intensity
		bs[i].hkls = append(bs[i].hkls, hkl)
		return
	}

	b := profileBucket{magnitude: g, intensity: intensity, hkls: [][]int{hkl}}
	bl.buckets = append(bl.buckets, profileBucket{})
	copy(bl.buckets[i+1:], bl.buckets[i:])
	bl.buckets[i] = b
}

// sortProfilePoints orders points by increasing magnitude, breaking ties by
// decreasing h, then k, then l.
func sortProfilePoints(pts []geom.LatticePoint) {
	sort.SliceStable(pts, func(i, j int) bool {
		pi, pj := &pts[i], &pts[j]
		if pi.Magnitude != pj.Magnitude {
			return pi.Magnitude < pj.Magnitude
		}
		for k := 0; k < 3; k++ {
			if pi.Index[k] != pj.Index[k] {
				return pi.Index[k] > pj.Index[k]
			}
		}
		return false
	})
}

// Profile calculates a one dimensional diffraction profile for a structure.
//
// reciprocalRadius is the radius of the sphere of reciprocal space to
// sample, in reciprocal Angstroms. Reflections whose magnitudes differ by
// less than magnitudeTolerance are merged into a single peak. Peaks whose
// intensity is not above minimumIntensity, measured on a scale where the
// strongest peak is 100, are dropped.
func (gen *DiffractionGenerator) Profile(
	s *crystal.Structure,
	reciprocalRadius, magnitudeTolerance, minimumIntensity float64,
) (*ProfileSimulation, error) {
	if err := checkStructure(s); err != nil {
		return nil, err
	}
	if err := checkRadius(reciprocalRadius); err != nil {
		return nil, err
	}
	if !(magnitudeTolerance >= 0) || math.IsInf(magnitudeTolerance, 0) {
		return nil, &InvalidGeometryError{
			Param: "magnitude_tolerance", Value: magnitudeTolerance,
		}
	}
	if !(minimumIntensity >= 0) || math.IsInf(minimumIntensity, 0) {
		return nil, &InvalidGeometryError{
			Param: "minimum_intensity", Value: minimumIntensity,
		}
	}

	scs, err := flatten(s, gen.table, gen.debyeWaller)
	if err != nil {
		return nil, err
	}

	latt := s.Lattice()
	isHex := latt.IsHexagonal()
	pts := latt.Reciprocal().PointsInSphere(reciprocalRadius)
	sortProfilePoints(pts)

	bl := &bucketList{tol: magnitudeTolerance}
	for i := range pts {
		p := &pts[i]
		if p.IsOrigin() {
			continue
		}

		intensity := kinematicIntensity(scs, p.Index, p.Magnitude)

		var hkl []int
		if isHex {
			hkl = simutil.MillerBravais(p.Index)
		} else {
			hkl = []int{p.Index[0], p.Index[1], p.Index[2]}
		}

		bl.insert(p.Magnitude, intensity, hkl)
	}

	if len(bl.buckets) == 0 {
		return nil, &EmptyProfileError{ReciprocalRadius: reciprocalRadius}
	}

	intensities := make([]float64, len(bl.buckets))
	for i := range bl.buckets {
		intensities[i] = bl.buckets[i].intensity
	}
	maxIntensity := floats.Max(intensities)
	if !(maxIntensity > 0) || math.IsInf(maxIntensity, 0) {
		return nil, &EmptyProfileError{ReciprocalRadius: reciprocalRadius}
	}

	prof := &ProfileSimulation{}
	for i := range bl.buckets {
		b := &bl.buckets[i]
		scaled := b.intensity / maxIntensity * 100
		if !(scaled > minimumIntensity) {
			continue
		}
		prof.peaks = append(prof.peaks, ProfilePeak{
			Magnitude: b.magnitude,
			Spacing:   1 / b.magnitude,
			Intensity: scaled,
			Families:  simutil.UniqueFamilies(b.hkls),
		})
	}

	return prof, nil
}
