package pyxem

import (
	"fmt"
	"math"
	"strings"

	"github.com/erh3cq/pyxem/crystal"
	"github.com/erh3cq/pyxem/geom"
	"github.com/erh3cq/pyxem/scattering"
)

// ShapeFactor selects how the intensity of a reflection falls off with its
// distance from the Ewald sphere along the relrod.
type ShapeFactor int

const (
	// ShapeFactorLinear weights reflections by 1 - |s| / s_max.
	ShapeFactorLinear ShapeFactor = iota
	// ShapeFactorSinc2 weights reflections by sinc^2(pi |s| / s_max), the
	// relrod profile of a slab with thickness 1 / s_max.
	ShapeFactorSinc2
	endShapeFactor
)

var shapeFactorNames = [...]string{"Linear", "Sinc2"}

func (sf ShapeFactor) String() string {
	if sf < 0 || sf >= endShapeFactor {
		return fmt.Sprintf("ShapeFactor(%d)", int(sf))
	}
	return shapeFactorNames[sf]
}

// ParseShapeFactor converts a case-insensitive name ("Linear" or "Sinc2")
// to a ShapeFactor.
func ParseShapeFactor(name string) (ShapeFactor, error) {
	for sf := ShapeFactor(0); sf < endShapeFactor; sf++ {
		if strings.EqualFold(strings.TrimSpace(name), sf.String()) {
			return sf, nil
		}
	}
	return 0, fmt.Errorf(
		"pyxem: shape factor must be one of [Linear | Sinc2], got '%s'", name,
	)
}

// weight returns the relrod weight of a reflection with the given excitation
// error. proximity must be in [0, maxErr).
func (sf ShapeFactor) weight(proximity, maxErr float64) float64 {
	switch sf {
	case ShapeFactorSinc2:
		x := math.Pi * proximity / maxErr
		if x == 0 {
			return 1
		}
		sinc := math.Sin(x) / x
		return sinc * sinc
	default:
		return 1 - proximity/maxErr
	}
}

// scatterer is a single species on a single site. Partially occupied and
// mixed sites contribute one scatterer per species.
type scatterer struct {
	z         int
	params    scattering.Params
	frac      geom.Vec
	occupancy float64
	dw        float64
}

// flatten converts a structure into a flat list of scatterers, looking up
// the scattering parameters and Debye-Waller factor of every species.
func flatten(
	s *crystal.Structure, tab *scattering.Table, dw map[string]float64,
) ([]scatterer, error) {
	scs := []scatterer{}
	for i := 0; i < s.NumSites(); i++ {
		site := s.Site(i)
		for _, sp := range site.Species {
			sym := crystal.ElementSymbol(sp.Symbol)
			params, ok := tab.Lookup(sym)
			if !ok {
				return nil, &UnknownElementError{Symbol: sym}
			}
			z, _ := crystal.AtomicNumber(sym)

			scs = append(scs, scatterer{
				z:         z,
				params:    params,
				frac:      site.Frac,
				occupancy: sp.Occupancy,
				dw:        dw[sym],
			})
		}
	}
	return scs, nil
}

// structureFactor computes
//
//     F(hkl) = sum_j f_j(s) occ_j exp(-B_j s^2) exp(2 pi i hkl . r_j)
//
// where s2 = (|g| / 2)^2.
func structureFactor(scs []scatterer, hkl [3]int, s2 float64) complex128 {
	h, k, l := float64(hkl[0]), float64(hkl[1]), float64(hkl[2])

	var re, im float64
	for i := range scs {
		sc := &scs[i]
		amp := sc.params.FormFactor(s2) * sc.occupancy * math.Exp(-sc.dw*s2)
		gDotR := h*sc.frac[0] + k*sc.frac[1] + l*sc.frac[2]
		sin, cos := math.Sincos(2 * math.Pi * gDotR)
		re += amp * cos
		im += amp * sin
	}
	return complex(re, im)
}

// kinematicIntensity returns |F|^2 for the reciprocal lattice point hkl with
// magnitude g.
func kinematicIntensity(scs []scatterer, hkl [3]int, g float64) float64 {
	s := g / 2
	F := structureFactor(scs, hkl, s*s)
	return real(F)*real(F) + imag(F)*imag(F)
}
