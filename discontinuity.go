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

import "fmt"

// liquidVs is the S velocity [km/s] below which a layer counts as
// liquid when searching for the core boundaries.
const liquidVs = 1e-4

// A Discontinuity is a radius at which properties jump, encoded in a
// linear model as two coincident nodes. Node is the index of the
// lower-side node.
type Discontinuity struct {
	Radius float64 // km
	Node   int
}

// Discontinuities returns the discontinuities of a linear model in
// order of increasing radius, each radius reported once.
func Discontinuities(m *LinearModel) []Discontinuity {
	var ds []Discontinuity
	for i := 0; i < len(m.nodes)-1; i++ {
		if m.nodes[i] == m.nodes[i+1] {
			ds = append(ds, Discontinuity{Radius: m.nodes[i], Node: i})
		}
	}
	return ds
}

// CoreBoundaries locates the inner-core and core-mantle boundaries of
// an Earth-like model by scanning the S velocity outward from the
// center: the solid inner core has vs > 0, the liquid outer core
// vs ≈ 0, and the mantle vs > 0 again. It returns the index of the
// first liquid layer (whose bottom is the inner-core boundary) and of
// the first solid layer above it (whose bottom is the core-mantle
// boundary).
//
// The scan assumes exactly one liquid shell below the mantle; a liquid
// layer stack reaching the surface (an ocean) is tolerated. Models with
// no liquid core (Moon-like bodies) or with additional buried liquid
// shells return ErrCoreStructure.
func CoreBoundaries(m Model) (icb, cmb int, err error) {
	tops := m.LayerTops()
	icb, cmb = -1, -1
	ocean := -1
	bottom := 0.
	for i, top := range tops {
		if top == bottom {
			continue // zero-width discontinuity interval
		}
		vs, err := m.value(Vs, (bottom+top)/2)
		if err != nil {
			return 0, 0, err
		}
		liquid := vs < liquidVs
		switch {
		case liquid && icb < 0:
			if i == 0 {
				return 0, 0, fmt.Errorf("radial: %w: the model is liquid at the center", ErrCoreStructure)
			}
			icb = i
		case liquid && cmb >= 0 && ocean < 0:
			ocean = i
		case !liquid && ocean >= 0:
			return 0, 0, fmt.Errorf("radial: %w: more than one liquid shell", ErrCoreStructure)
		case !liquid && icb >= 0 && cmb < 0:
			cmb = i
		}
		bottom = top
	}
	if icb < 0 || cmb < 0 {
		return 0, 0, fmt.Errorf("radial: %w", ErrCoreStructure)
	}
	return icb, cmb, nil
}
