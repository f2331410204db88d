package io

import (
	"fmt"
	"io"
	"strings"

	"github.com/erh3cq/pyxem"
)

// WriteSimulation writes a spot pattern as a whitespace-separated table with
// the columns h k l x y z intensity. If the pattern has been calibrated, x
// and y are in detector pixels. name is written in the header.
func WriteSimulation(
	w io.Writer, name string, sim *pyxem.DiffractionSimulation,
) error {
	_, err := fmt.Fprintf(w,
		"# %s: %d reflections, calibration = %g\n"+
			"# %4s %4s %4s %12s %12s %12s %14s\n",
		name, sim.Len(), sim.Calibration(),
		"h", "k", "l", "x", "y", "z", "I",
	)
	if err != nil {
		return err
	}

	coords := sim.CalibratedCoordinates()
	idxs, ints := sim.Indices(), sim.Intensities()
	for i := range coords {
		_, err = fmt.Fprintf(w, "  %4d %4d %4d %12.6g %12.6g %12.6g %14.6g\n",
			idxs[i][0], idxs[i][1], idxs[i][2],
			coords[i][0], coords[i][1], coords[i][2], ints[i],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteProfile writes a profile as a whitespace-separated table with the
// columns |g| d intensity, followed by the representative index of each hkl
// family in the peak and its multiplicity.
func WriteProfile(w io.Writer, prof *pyxem.ProfileSimulation) error {
	_, err := fmt.Fprintf(w, "# %10s %10s %10s  %s\n", "|g|", "d", "I", "hkl")
	if err != nil {
		return err
	}

	for _, peak := range prof.Peaks() {
		_, err = fmt.Fprintf(w, "  %10.6f %10.6f %10.4f  %s\n",
			peak.Magnitude, peak.Spacing, peak.Intensity,
			FamilyLabel(peak),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// FamilyLabel returns a label for a peak: the representative index of each
// of its families followed by the family's multiplicity, e.g. "{110}x12".
func FamilyLabel(peak pyxem.ProfilePeak) string {
	labels := make([]string, len(peak.Families))
	for i, fam := range peak.Families {
		idx := make([]string, len(fam.Representative))
		for j, x := range fam.Representative {
			idx[j] = fmt.Sprintf("%d", x)
		}

		sep := ""
		for _, x := range fam.Representative {
			if x <= -10 || x >= 10 {
				sep = " "
			}
		}
		labels[i] = fmt.Sprintf("{%s}x%d",
			strings.Join(idx, sep), fam.Multiplicity())
	}
	return strings.Join(labels, " ")
}
