package pyxem

import (
	"runtime"

	"github.com/erh3cq/pyxem/crystal"
	"github.com/erh3cq/pyxem/geom"
	"github.com/erh3cq/pyxem/mat"
)

// NumCores is the number of worker goroutines used by SimulateOrientations
// when it is not given an explicit worker count.
var NumCores = runtime.NumCPU()

// SimulateOrientations simulates the diffraction pattern of a structure in
// each of the given orientations. Every rotation matrix is applied to the
// lattice of the structure before calling Simulate, and every matrix must be
// a proper rotation. Results are returned in the same order as rotations. If
// any simulation fails, the error belonging to the earliest rotation is
// returned.
//
// The work is split between workers goroutines. If workers is not positive,
// NumCores workers are used.
func (gen *DiffractionGenerator) SimulateOrientations(
	s *crystal.Structure, reciprocalRadius float64, withDirectBeam bool,
	rotations []*mat.Matrix, workers int,
) ([]*DiffractionSimulation, error) {
	if err := checkStructure(s); err != nil {
		return nil, err
	}
	for _, rot := range rotations {
		if !geom.IsRotation(rot) {
			return nil, &InvalidGeometryError{
				Param: "rotation", Err: geom.ErrNotRotation,
			}
		}
	}

	if workers <= 0 {
		workers = NumCores
	}
	if workers > len(rotations) {
		workers = len(rotations)
	}

	sims := make([]*DiffractionSimulation, len(rotations))
	errs := make([]error, len(rotations))
	out := make(chan int, workers)

	for id := 0; id < workers; id++ {
		go gen.chanSimulate(
			id, workers, s, reciprocalRadius, withDirectBeam,
			rotations, sims, errs, out,
		)
	}
	for i := 0; i < workers; i++ {
		<-out
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return sims, nil
}

// chanSimulate is a worker function which simulates every rotation whose
// index is congruent to worker modulo workers. The worker ID is sent to the
// out channel when it finishes. Each worker writes to disjoint elements of
// sims and errs.
func (gen *DiffractionGenerator) chanSimulate(
	worker, workers int, s *crystal.Structure, reciprocalRadius float64,
	withDirectBeam bool, rotations []*mat.Matrix,
	sims []*DiffractionSimulation, errs []error, out chan<- int,
) {
	for i := worker; i < len(rotations); i += workers {
		rs, err := s.Rotate(rotations[i])
		if err != nil {
			errs[i] = &InvalidGeometryError{Param: "rotation", Err: err}
			continue
		}
		sims[i], errs[i] = gen.Simulate(rs, reciprocalRadius, withDirectBeam)
	}
	out <- worker
}
