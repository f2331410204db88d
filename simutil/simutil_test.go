package simutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectronWavelength(t *testing.T) {
	for _, tc := range []struct {
		kV, lambda float64
	}{
		{100, 0.037014},
		{200, 0.025079},
		{300, 0.019687},
	} {
		lambda, err := ElectronWavelength(tc.kV)
		require.NoError(t, err)
		assert.InDelta(t, tc.lambda, lambda, 1e-6, "%g kV", tc.kV)
	}
}

func TestElectronWavelengthInvalid(t *testing.T) {
	for _, kV := range []float64{0, -200, math.NaN(), math.Inf(+1)} {
		_, err := ElectronWavelength(kV)
		assert.ErrorIs(t, err, ErrBadVoltage, "%g kV", kV)
	}
}

func TestMillerBravais(t *testing.T) {
	assert.Equal(t, []int{1, 0, -1, 0}, MillerBravais([3]int{1, 0, 0}))
	assert.Equal(t, []int{1, 1, -2, 3}, MillerBravais([3]int{1, 1, 3}))
	assert.Equal(t, []int{-1, 2, -1, 0}, MillerBravais([3]int{-1, 2, 0}))
}

func TestUniqueFamiliesCubic100(t *testing.T) {
	hkls := [][]int{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
	}
	fams := UniqueFamilies(hkls)
	require.Len(t, fams, 1)
	assert.Equal(t, 6, fams[0].Multiplicity())
	assert.Equal(t, []int{1, 0, 0}, fams[0].Representative)
	assert.ElementsMatch(t, hkls, fams[0].Members)
}

func TestUniqueFamiliesSeparatesFamilies(t *testing.T) {
	hkls := [][]int{
		{2, 1, 0}, {1, 1, 1}, {0, 1, 2}, {-1, -1, 1}, {1, 2, 0}, {2, 1, 0},
	}
	fams := UniqueFamilies(hkls)
	require.Len(t, fams, 2)

	// Families keep first-seen order and drop the duplicate {2, 1, 0}.
	assert.Equal(t, []int{2, 1, 0}, fams[0].Representative)
	assert.Equal(t, 3, fams[0].Multiplicity())
	assert.Equal(t, []int{1, 1, 1}, fams[1].Representative)
	assert.Equal(t, 2, fams[1].Multiplicity())
}

func TestUniqueFamiliesMillerBravais(t *testing.T) {
	hkls := [][]int{
		MillerBravais([3]int{1, 0, 0}),
		MillerBravais([3]int{0, 1, 0}),
		MillerBravais([3]int{0, 0, 1}),
	}
	fams := UniqueFamilies(hkls)
	require.Len(t, fams, 2)
	assert.Equal(t, 2, fams[0].Multiplicity())
	assert.Equal(t, []int{1, 0, -1, 0}, fams[0].Representative)
	assert.Equal(t, []int{0, 0, 0, 1}, fams[1].Representative)
}

func TestUniqueFamiliesDoesNotAlias(t *testing.T) {
	hkl := []int{1, 0, 0}
	fams := UniqueFamilies([][]int{hkl})
	hkl[0] = 5
	assert.Equal(t, []int{1, 0, 0}, fams[0].Members[0])
	assert.Equal(t, []int{1, 0, 0}, fams[0].Representative)
}

func TestUniqueFamiliesEmpty(t *testing.T) {
	assert.Empty(t, UniqueFamilies(nil))
}
