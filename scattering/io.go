package scattering

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/erh3cq/pyxem/crystal"
)

// ErrBadTable is returned when a scattering table file contains an invalid
// row.
var ErrBadTable = errors.New("scattering: invalid table")

// tableColumns is the number of columns in a table file: the atomic number
// followed by NumGaussians (a, b) pairs.
const tableColumns = 1 + 2*NumGaussians

// ReadTable reads a whitespace-separated scattering table from a file. Each
// row has the form
//
//     Z a1 b1 a2 b2 a3 b3 a4 b4
func ReadTable(fname string) (*Table, error) {
	colIdxs := make([]int, tableColumns)
	for i := range colIdxs {
		colIdxs[i] = i
	}

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	params := map[string]Params{}
	for row := range cols[0] {
		z := cols[0][row]
		sym, ok := crystal.Symbol(int(z))
		if !ok || z != math.Trunc(z) {
			return nil, fmt.Errorf("%w: row %d of %s has atomic number %g",
				ErrBadTable, row, fname, z)
		}

		var p Params
		for i := 0; i < NumGaussians; i++ {
			a, b := cols[1+2*i][row], cols[2+2*i][row]
			if math.IsNaN(a) || math.IsInf(a, 0) || !(b >= 0) ||
				math.IsInf(b, 0) {
				return nil, fmt.Errorf(
					"%w: row %d of %s (%s) has coefficients (%g, %g)",
					ErrBadTable, row, fname, sym, a, b,
				)
			}
			p[i] = Coeff{A: a, B: b}
		}
		params[sym] = p
	}

	return NewTable(params), nil
}
