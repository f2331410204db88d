/*package crystal describes crystal structures: a lattice plus a list of
partially or fully occupied atomic sites.

Structures are immutable. Constructors copy their inputs and accessors return
copies, so a single Structure can be shared between any number of concurrent
simulations.
*/
package crystal

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/erh3cq/pyxem/geom"
	"github.com/erh3cq/pyxem/mat"
)

// occupancySlack is the amount by which the occupancies of a single site may
// exceed one due to rounding in input files.
const occupancySlack = 1e-6

var (
	// ErrNilLattice is returned when a structure is built without a lattice.
	ErrNilLattice = errors.New("crystal: structure has no lattice")
	// ErrBadSite is returned for sites with no species or non-finite
	// coordinates.
	ErrBadSite = errors.New("crystal: invalid site")
	// ErrBadOccupancy is returned when an occupancy is outside of (0, 1] or
	// the occupancies of a site sum to more than one.
	ErrBadOccupancy = errors.New("crystal: invalid occupancy")
)

// Species is a single chemical species occupying a site with the given
// fractional occupancy.
type Species struct {
	Symbol    string
	Occupancy float64
}

// Site is a position in the unit cell given in fractional coordinates,
// together with the species which occupy it.
type Site struct {
	Label   string
	Frac    geom.Vec
	Species []Species
}

// NewSite is a convenience function for creating a fully occupied site.
func NewSite(symbol string, x, y, z float64) Site {
	return Site{
		Label:   symbol,
		Frac:    geom.Vec{x, y, z},
		Species: []Species{{Symbol: symbol, Occupancy: 1}},
	}
}

// TotalOccupancy returns the sum of the occupancies of every species at the
// site.
func (s *Site) TotalOccupancy() float64 {
	sum := 0.0
	for _, sp := range s.Species {
		sum += sp.Occupancy
	}
	return sum
}

func (s *Site) copy() Site {
	out := *s
	out.Species = append([]Species(nil), s.Species...)
	return out
}

// Structure is a lattice together with an ordered list of sites.
type Structure struct {
	lattice *geom.Lattice
	sites   []Site
}

// NewStructure checks and copies the given sites and returns a new Structure.
// Fractional coordinates are wrapped into [0, 1).
func NewStructure(l *geom.Lattice, sites []Site) (*Structure, error) {
	if l == nil {
		return nil, ErrNilLattice
	}

	s := &Structure{lattice: l, sites: make([]Site, len(sites))}
	for i := range sites {
		site := sites[i].copy()
		if err := checkSite(i, &site); err != nil {
			return nil, err
		}
		for k := 0; k < 3; k++ {
			site.Frac[k] = wrapUnit(site.Frac[k])
		}
		s.sites[i] = site
	}

	return s, nil
}

func checkSite(i int, site *Site) error {
	if !site.Frac.Finite() {
		return fmt.Errorf("%w: site %d (%s) has coordinates %v",
			ErrBadSite, i, site.Label, site.Frac)
	} else if len(site.Species) == 0 {
		return fmt.Errorf("%w: site %d (%s) has no species",
			ErrBadSite, i, site.Label)
	}

	for _, sp := range site.Species {
		if sp.Symbol == "" {
			return fmt.Errorf("%w: site %d (%s) has an empty species symbol",
				ErrBadSite, i, site.Label)
		} else if !(sp.Occupancy > 0 && sp.Occupancy <= 1) {
			return fmt.Errorf(
				"%w: species %s on site %d (%s) has occupancy %g, must be "+
					"in range (0, 1]",
				ErrBadOccupancy, sp.Symbol, i, site.Label, sp.Occupancy,
			)
		}
	}

	if total := site.TotalOccupancy(); total > 1+occupancySlack {
		return fmt.Errorf("%w: occupancies on site %d (%s) sum to %g",
			ErrBadOccupancy, i, site.Label, total)
	}

	return nil
}

// wrapUnit maps x into [0, 1).
func wrapUnit(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		x = 0
	}
	return x
}

// Lattice returns the lattice of the structure.
func (s *Structure) Lattice() *geom.Lattice { return s.lattice }

// NumSites returns the number of sites in the structure.
func (s *Structure) NumSites() int { return len(s.sites) }

// Site returns a copy of the i-th site.
func (s *Structure) Site(i int) Site { return s.sites[i].copy() }

// Sites returns a copy of every site in the structure.
func (s *Structure) Sites() []Site {
	out := make([]Site, len(s.sites))
	for i := range s.sites {
		out[i] = s.sites[i].copy()
	}
	return out
}

// Elements returns the sorted list of element symbols present in the
// structure.
func (s *Structure) Elements() []string {
	seen := map[string]bool{}
	out := []string{}
	for i := range s.sites {
		for _, sp := range s.sites[i].Species {
			sym := ElementSymbol(sp.Symbol)
			if !seen[sym] {
				seen[sym] = true
				out = append(out, sym)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Rotate returns a copy of the structure whose lattice has been rotated by
// the given rotation matrix. Fractional coordinates are unchanged.
func (s *Structure) Rotate(m *mat.Matrix) (*Structure, error) {
	l, err := s.lattice.Rotate(m)
	if err != nil {
		return nil, err
	}
	return &Structure{lattice: l, sites: s.Sites()}, nil
}
