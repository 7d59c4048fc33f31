/*
Copyright © 2019 the Radial authors.
This file is part of Radial.

Radial is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Radial is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Radial.  If not, see <http://www.gnu.org/licenses/>.
*/

package radial

import "gonum.org/v1/gonum/floats"

// Equal reports whether a and b are the same variant with exactly equal
// contents.
func Equal(a, b Model) bool { return compare(a, b, floats.Equal, equalScalar) }

// ApproxEqual reports whether a and b are the same variant with all
// radii and property values equal to within the given relative
// tolerance.
func ApproxEqual(a, b Model, tol float64) bool {
	return compare(a, b,
		func(x, y []float64) bool { return floats.EqualApprox(x, y, tol) },
		func(x, y float64) bool { return floats.EqualWithinAbsOrRel(x, y, tol, tol) })
}

func equalScalar(x, y float64) bool { return x == y }

func compare(a, b Model, eqSlice func(x, y []float64) bool, eqScalar func(x, y float64) bool) bool {
	fa, oka := a.ReferenceFrequency()
	fb, okb := b.ReferenceFrequency()
	if oka != okb || (oka && !eqScalar(fa, fb)) {
		return false
	}

	switch am := a.(type) {
	case *SteppedModel:
		bm, ok := b.(*SteppedModel)
		if !ok || !eqSlice(am.tops, bm.tops) {
			return false
		}
		return equalTables(&am.tables, &bm.tables, eqSlice)
	case *LinearModel:
		bm, ok := b.(*LinearModel)
		if !ok || !eqSlice(am.nodes, bm.nodes) {
			return false
		}
		return equalTables(&am.tables, &bm.tables, eqSlice)
	case *PolynomialModel:
		bm, ok := b.(*PolynomialModel)
		if !ok || !eqSlice(am.tops, bm.tops) {
			return false
		}
		for p := Property(0); p < numProperties; p++ {
			if am.tables.has(p) != bm.tables.has(p) {
				return false
			}
			if !am.tables.has(p) {
				continue
			}
			if len(am.tables[p]) != len(bm.tables[p]) {
				return false
			}
			for i := range am.tables[p] {
				if !eqSlice(am.tables[p][i], bm.tables[p][i]) {
					return false
				}
			}
		}
		return true
	}
	return false
}

func equalTables(a, b *tableSet, eqSlice func(x, y []float64) bool) bool {
	for p := Property(0); p < numProperties; p++ {
		if a.has(p) != b.has(p) {
			return false
		}
		if a.has(p) && !eqSlice(a[p], b[p]) {
			return false
		}
	}
	return true
}
