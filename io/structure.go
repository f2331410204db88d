package io

import (
	"fmt"
	"sort"

	"gopkg.in/gcfg.v1"

	"github.com/erh3cq/pyxem/crystal"
	"github.com/erh3cq/pyxem/geom"
)

const ExampleStructureFile = `[Lattice]
# This file describes a crystal structure. It is paired with a Simulate or
# Profile config file. The example is B2 FeAl.

# Lattice constants in Angstroms.
A = 2.91
B = 2.91
C = 2.91

#######################
# Optional Parameters #
#######################

# Lattice angles in degrees. Default is 90. Hexagonal cells use
# Gamma = 120.
# Alpha = 90
# Beta  = 90
# Gamma = 90

# One section per site. Sites are ordered by name. X, Y, and Z are fractional
# coordinates.
[Site "Fe1"]
Species = Fe
X = 0
Y = 0
Z = 0

# Partially occupied and mixed sites list one Species line per species,
# along with a matching Occupancy line. Occupancy defaults to 1 for sites
# with a single species.
[Site "Al1"]
Species = Al
Species = Fe
Occupancy = 0.9
Occupancy = 0.1
X = 0.5
Y = 0.5
Z = 0.5`

type LatticeConfig struct {
	// Required
	A, B, C float64

	// Optional
	Alpha, Beta, Gamma float64
}

type SiteConfig struct {
	// Required
	Species []string
	X, Y, Z float64

	// Optional
	Occupancy []float64
}

// CheckInit converts the section into a site.
func (site *SiteConfig) CheckInit(name string) (crystal.Site, error) {
	out := crystal.Site{Label: name, Frac: geom.Vec{site.X, site.Y, site.Z}}

	if len(site.Species) == 0 {
		return out, fmt.Errorf("Site '%s' has no Species.", name)
	}

	occs := site.Occupancy
	if len(occs) == 0 {
		if len(site.Species) > 1 {
			return out, fmt.Errorf(
				"Site '%s' has %d species, so each must be given an Occupancy.",
				name, len(site.Species),
			)
		}
		occs = []float64{1}
	} else if len(occs) != len(site.Species) {
		return out, fmt.Errorf(
			"Site '%s' has %d Species values, but %d Occupancy values.",
			name, len(site.Species), len(occs),
		)
	}

	for i, sym := range site.Species {
		out.Species = append(out.Species, crystal.Species{
			Symbol: sym, Occupancy: occs[i],
		})
	}
	return out, nil
}

type StructureWrapper struct {
	Lattice LatticeConfig
	Site    map[string]*SiteConfig
}

func DefaultStructureWrapper() *StructureWrapper {
	con := LatticeConfig{Alpha: 90, Beta: 90, Gamma: 90}
	return &StructureWrapper{Lattice: con}
}

// ReadStructure reads a structure file.
func ReadStructure(fname string) (*crystal.Structure, error) {
	wrap := DefaultStructureWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return wrap.Structure()
}

// Structure converts the file's contents into a crystal structure.
func (wrap *StructureWrapper) Structure() (*crystal.Structure, error) {
	lc := &wrap.Lattice
	l, err := geom.FromParameters(
		lc.A, lc.B, lc.C, lc.Alpha, lc.Beta, lc.Gamma,
	)
	if err != nil {
		return nil, err
	}

	if len(wrap.Site) == 0 {
		return nil, fmt.Errorf("Need to specify at least one Site.")
	}

	names := make([]string, 0, len(wrap.Site))
	for name := range wrap.Site {
		names = append(names, name)
	}
	sort.Strings(names)

	sites := make([]crystal.Site, len(names))
	for i, name := range names {
		sites[i], err = wrap.Site[name].CheckInit(name)
		if err != nil {
			return nil, err
		}
	}

	return crystal.NewStructure(l, sites)
}
