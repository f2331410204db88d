package pyxem

import (
	"math"

	"github.com/erh3cq/pyxem/geom"
	"github.com/erh3cq/pyxem/simutil"
)

// DiffractionSimulation holds the reflections of a simulated spot pattern:
// parallel arrays of Cartesian reciprocal coordinates, Miller indices, and
// intensities. It is not modified after creation.
type DiffractionSimulation struct {
	coordinates    []geom.Vec
	indices        [][3]int
	intensities    []float64
	withDirectBeam bool
	calibration    float64
}

// WithDirectBeam returns true if the direct beam is reported by the
// accessors.
func (sim *DiffractionSimulation) WithDirectBeam() bool {
	return sim.withDirectBeam
}

// directBeamMask returns which reflections are visible. Without the direct
// beam, reflections at the origin are hidden.
func (sim *DiffractionSimulation) directBeamMask() []bool {
	mask := make([]bool, len(sim.coordinates))
	for i, c := range sim.coordinates {
		mask[i] = sim.withDirectBeam || c != (geom.Vec{})
	}
	return mask
}

// Len returns the number of visible reflections.
func (sim *DiffractionSimulation) Len() int {
	n := 0
	for _, ok := range sim.directBeamMask() {
		if ok {
			n++
		}
	}
	return n
}

// Coordinates returns the Cartesian reciprocal coordinates of the visible
// reflections, in reciprocal Angstroms.
func (sim *DiffractionSimulation) Coordinates() []geom.Vec {
	out := make([]geom.Vec, 0, len(sim.coordinates))
	for i, ok := range sim.directBeamMask() {
		if ok {
			out = append(out, sim.coordinates[i])
		}
	}
	return out
}

// Indices returns the Miller indices of the visible reflections.
func (sim *DiffractionSimulation) Indices() [][3]int {
	out := make([][3]int, 0, len(sim.indices))
	for i, ok := range sim.directBeamMask() {
		if ok {
			out = append(out, sim.indices[i])
		}
	}
	return out
}

// Intensities returns the intensities of the visible reflections.
func (sim *DiffractionSimulation) Intensities() []float64 {
	out := make([]float64, 0, len(sim.intensities))
	for i, ok := range sim.directBeamMask() {
		if ok {
			out = append(out, sim.intensities[i])
		}
	}
	return out
}

// Calibration returns the size of a detector pixel in reciprocal Angstroms.
func (sim *DiffractionSimulation) Calibration() float64 {
	return sim.calibration
}

// WithCalibration returns a copy of the simulation with a new calibration,
// given in reciprocal Angstroms per pixel.
func (sim *DiffractionSimulation) WithCalibration(
	calibration float64,
) (*DiffractionSimulation, error) {
	if !(calibration > 0) || math.IsInf(calibration, 0) {
		return nil, &InvalidGeometryError{
			Param: "calibration", Value: calibration,
		}
	}

	out := &DiffractionSimulation{
		coordinates:    append([]geom.Vec(nil), sim.coordinates...),
		indices:        append([][3]int(nil), sim.indices...),
		intensities:    append([]float64(nil), sim.intensities...),
		withDirectBeam: sim.withDirectBeam,
		calibration:    calibration,
	}
	return out, nil
}

// CalibratedCoordinates returns the visible coordinates with their x and y
// components in units of detector pixels.
func (sim *DiffractionSimulation) CalibratedCoordinates() []geom.Vec {
	coords := sim.Coordinates()
	for i := range coords {
		coords[i][0] /= sim.calibration
		coords[i][1] /= sim.calibration
	}
	return coords
}

// ProfilePeak is one peak of a one dimensional diffraction profile.
type ProfilePeak struct {
	// Magnitude is |g| in reciprocal Angstroms.
	Magnitude float64
	// Spacing is the interplanar spacing, 1 / |g|, in Angstroms.
	Spacing float64
	// Intensity is scaled so that the strongest peak has intensity 100.
	Intensity float64
	// Families holds the distinct hkl families merged into this peak.
	Families []simutil.Family
}

func (p *ProfilePeak) copy() ProfilePeak {
	out := *p
	out.Families = make([]simutil.Family, len(p.Families))
	for i, fam := range p.Families {
		out.Families[i].Representative = append([]int(nil),
			fam.Representative...)
		out.Families[i].Members = make([][]int, len(fam.Members))
		for j := range fam.Members {
			out.Families[i].Members[j] = append([]int(nil), fam.Members[j]...)
		}
	}
	return out
}

// ProfileSimulation is a one dimensional diffraction profile ordered by
// increasing magnitude. It is not modified after creation.
type ProfileSimulation struct {
	peaks []ProfilePeak
}

// Len returns the number of peaks in the profile.
func (prof *ProfileSimulation) Len() int { return len(prof.peaks) }

// Peak returns a copy of the i-th peak.
func (prof *ProfileSimulation) Peak(i int) ProfilePeak {
	return prof.peaks[i].copy()
}

// Peaks returns a copy of every peak.
func (prof *ProfileSimulation) Peaks() []ProfilePeak {
	out := make([]ProfilePeak, len(prof.peaks))
	for i := range prof.peaks {
		out[i] = prof.peaks[i].copy()
	}
	return out
}

// Magnitudes returns the magnitude of every peak.
func (prof *ProfileSimulation) Magnitudes() []float64 {
	out := make([]float64, len(prof.peaks))
	for i := range prof.peaks {
		out[i] = prof.peaks[i].Magnitude
	}
	return out
}

// Intensities returns the intensity of every peak.
func (prof *ProfileSimulation) Intensities() []float64 {
	out := make([]float64, len(prof.peaks))
	for i := range prof.peaks {
		out[i] = prof.peaks[i].Intensity
	}
	return out
}

// Representatives returns the representative index of every family of every
// peak. These are the labels usually drawn on a profile plot.
func (prof *ProfileSimulation) Representatives() [][][]int {
	out := make([][][]int, len(prof.peaks))
	for i := range prof.peaks {
		for _, fam := range prof.peaks[i].Families {
			out[i] = append(out[i], append([]int(nil), fam.Representative...))
		}
	}
	return out
}
