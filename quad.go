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

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// QuadratureTolerance is the relative error tolerance of the adaptive
// quadrature used for pressure and moment of inertia.
var QuadratureTolerance = 1e-8

// quadMaxNodes bounds the Gauss-Legendre refinement.
const quadMaxNodes = 2048

// integrateShells integrates f (taking a radius in meters) between radii
// r0 and r1 [km]. The integration interval is split at the model's layer
// boundaries so each Gauss-Legendre panel sees a smooth integrand.
func integrateShells(m Model, f func(float64) float64, r0, r1 float64) float64 {
	sum := 0.
	bottom := r0
	for _, top := range m.LayerTops() {
		if top <= bottom {
			continue
		}
		upper := math.Min(top, r1)
		if upper > bottom {
			sum += adaptiveQuad(f, bottom*1e3, upper*1e3)
			bottom = upper
		}
		if top >= r1 {
			break
		}
	}
	return sum
}

// adaptiveQuad integrates f over [a, b] with Gauss-Legendre quadrature,
// doubling the node count until the estimate changes by less than
// QuadratureTolerance in relative terms.
func adaptiveQuad(f func(float64) float64, a, b float64) float64 {
	if a == b {
		return 0
	}
	n := 8
	prev := quad.Fixed(f, a, b, n, nil, 0)
	for n < quadMaxNodes {
		n *= 2
		cur := quad.Fixed(f, a, b, n, nil, 0)
		if math.Abs(cur-prev) <= QuadratureTolerance*math.Abs(cur) {
			return cur
		}
		prev = cur
	}
	return prev
}
