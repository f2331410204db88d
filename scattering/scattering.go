/*package scattering contains tables of atomic scattering parameters and
evaluates the Gaussian-sum approximation to the atomic form factor,

    f(s) = sum_i a_i exp(-b_i s^2),

where s = sin(theta) / lambda = |g| / 2.

Tables are immutable once constructed and are safe to share between
goroutines.
*/
package scattering

import (
	"math"
	"sort"

	"github.com/erh3cq/pyxem/crystal"
)

// NumGaussians is the number of Gaussian terms in each parameter set.
const NumGaussians = 4

// Coeff is a single (a, b) term of the Gaussian sum. A is in Angstroms and B
// is in square Angstroms.
type Coeff struct {
	A, B float64
}

// Params is the full set of Gaussian coefficients for one element.
type Params [NumGaussians]Coeff

// FormFactor evaluates the atomic form factor at s^2 = (|g| / 2)^2.
func (p *Params) FormFactor(s2 float64) float64 {
	sum := 0.0
	for i := range p {
		sum += p[i].A * math.Exp(-p[i].B*s2)
	}
	return sum
}

// Table maps element symbols to their scattering parameters.
type Table struct {
	params map[string]Params
}

// NewTable creates a table from the given map. The map is copied.
func NewTable(params map[string]Params) *Table {
	t := &Table{params: make(map[string]Params, len(params))}
	for sym, p := range params {
		t.params[sym] = p
	}
	return t
}

// Lookup returns the scattering parameters of an element. Oxidation-state
// decorations on the symbol are ignored.
func (t *Table) Lookup(symbol string) (Params, bool) {
	p, ok := t.params[crystal.ElementSymbol(symbol)]
	return p, ok
}

// Len returns the number of elements in the table.
func (t *Table) Len() int { return len(t.params) }

// Elements returns the sorted symbols of every element in the table.
func (t *Table) Elements() []string {
	out := make([]string, 0, len(t.params))
	for sym := range t.params {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// Merge returns a new table containing the entries of both tables. Entries
// in other take precedence.
func (t *Table) Merge(other *Table) *Table {
	out := NewTable(t.params)
	for sym, p := range other.params {
		out.params[sym] = p
	}
	return out
}
