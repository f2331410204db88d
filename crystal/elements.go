package crystal

import (
	"strings"
)

// symbols lists element symbols in order of atomic number, starting at Z = 1.
var symbols = [...]string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var atomicNumbers = map[string]int{}

func init() {
	for i, sym := range symbols {
		atomicNumbers[sym] = i + 1
	}
	if len(symbols) != 118 {
		panic("Internal crystal setup error.")
	}
}

// AtomicNumber returns the atomic number of the element with the given
// symbol. Symbols are case sensitive. Oxidation-state decorations such as
// "Fe2+" or "O2-" are stripped before lookup.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := atomicNumbers[ElementSymbol(symbol)]
	return z, ok
}

// Symbol returns the element symbol for the given atomic number.
func Symbol(z int) (string, bool) {
	if z < 1 || z > len(symbols) {
		return "", false
	}
	return symbols[z-1], true
}

// ElementSymbol strips any trailing oxidation-state decoration (digits and
// signs) from a species symbol, e.g. "Fe3+" -> "Fe".
func ElementSymbol(species string) string {
	return strings.TrimRight(strings.TrimSpace(species), "0123456789+-")
}
