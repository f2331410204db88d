package simutil

import (
	"sort"
)

// MillerBravais converts the three-index Miller indices of a hexagonal
// lattice to four-index (h, k, -h-k, l) notation.
func MillerBravais(hkl [3]int) []int {
	return []int{hkl[0], hkl[1], -hkl[0] - hkl[1], hkl[2]}
}

// Family is a set of Miller indices which are equivalent under permutations
// and sign changes.
type Family struct {
	// Representative is the lexicographically largest member.
	Representative []int
	// Members holds every distinct index in the family, in the order that
	// they were first seen.
	Members [][]int
}

// Multiplicity returns the number of distinct members in the family.
func (f *Family) Multiplicity() int { return len(f.Members) }

// UniqueFamilies groups Miller indices into families. Two indices belong to
// the same family if their sorted absolute values are identical. Exact
// duplicates are removed. Families are returned in the order that their
// first member appears in hkls.
//
// This does not use the point group of the structure, so indices which are
// permutations of one another are always grouped together even when the
// lattice is not cubic.
func UniqueFamilies(hkls [][]int) []Family {
	fams := []Family{}
	keys := [][]int{}

	for _, hkl := range hkls {
		key := familyKey(hkl)

		idx := -1
		for i := range keys {
			if equalIndices(keys[i], key) {
				idx = i
				break
			}
		}

		if idx == -1 {
			keys = append(keys, key)
			fams = append(fams, Family{})
			idx = len(fams) - 1
		}

		fam := &fams[idx]
		if !containsIndex(fam.Members, hkl) {
			fam.Members = append(fam.Members, append([]int(nil), hkl...))
		}
	}

	for i := range fams {
		fams[i].Representative = largestIndex(fams[i].Members)
	}

	return fams
}

// familyKey returns the sorted absolute values of hkl.
func familyKey(hkl []int) []int {
	key := make([]int, len(hkl))
	for i, x := range hkl {
		if x < 0 {
			x = -x
		}
		key[i] = x
	}
	sort.Ints(key)
	return key
}

func equalIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsIndex(hkls [][]int, hkl []int) bool {
	for _, x := range hkls {
		if equalIndices(x, hkl) {
			return true
		}
	}
	return false
}

// lessIndex orders indices lexicographically.
func lessIndex(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func largestIndex(hkls [][]int) []int {
	max := hkls[0]
	for _, hkl := range hkls[1:] {
		if lessIndex(max, hkl) {
			max = hkl
		}
	}
	return append([]int(nil), max...)
}
