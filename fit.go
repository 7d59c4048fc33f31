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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FitPolynomial builds a polynomial model of the given order that
// approximates m in a least-squares sense, with the caller choosing the
// layer boundaries. Each requested layer is sampled every spacing km
// (at least order+2 samples, evaluated just inside the layer ends) and
// each property is fit independently per layer. The last element of
// tops must equal the surface radius of m.
//
// Unlike AsPolynomial, which preserves a stepped or linear source
// segment by segment, this is the general simplification path: it can
// reduce a model with many layers to a few smooth regions, at the cost
// of fit error inside each region.
func FitPolynomial(m Model, tops []float64, order int, spacing float64) (*PolynomialModel, error) {
	if err := checkTops(tops); err != nil {
		return nil, err
	}
	if tops[len(tops)-1] != m.SurfaceRadius() {
		return nil, fmt.Errorf("radial: %w: the last layer top (%g km) must equal the surface radius (%g km)",
			ErrInvalidModel, tops[len(tops)-1], m.SurfaceRadius())
	}
	if order < 0 {
		return nil, fmt.Errorf("radial: %w: polynomial order must be ≥ 0 (got %d)",
			ErrInvalidModel, order)
	}
	if err := checkSpacing(spacing); err != nil {
		return nil, err
	}

	a := m.SurfaceRadius()
	var tables [numProperties][][]float64
	for _, p := range presentProperties(m) {
		coefs := make([][]float64, len(tops))
		bottom := 0.
		for i, top := range tops {
			samples := fitSamples(bottom, top, a, spacing, order)
			A := mat.NewDense(len(samples), order+1, nil)
			b := mat.NewVecDense(len(samples), nil)
			for j, r := range samples {
				v, err := m.value(p, r)
				if err != nil {
					return nil, err
				}
				x := r / a
				pow := 1.
				for k := 0; k <= order; k++ {
					A.Set(j, k, pow)
					pow *= x
				}
				b.SetVec(j, v)
			}
			var beta mat.VecDense
			if err := beta.SolveVec(A, b); err != nil {
				return nil, fmt.Errorf("radial: fitting %v over [%g,%g] km: %v", p, bottom, top, err)
			}
			coefs[i] = make([]float64, order+1)
			for k := 0; k <= order; k++ {
				coefs[i][k] = beta.AtVec(k)
			}
			bottom = top
		}
		tables[p] = coefs
	}
	return NewPolynomial(tops, polyProfileFrom(tables, m))
}

// fitSamples returns the sample radii for fitting one layer, keeping
// strictly inside (bottom, top) except at the model ends so values from
// neighboring layers never leak across a discontinuity.
func fitSamples(bottom, top, surface, spacing float64, order int) []float64 {
	n := int(math.Ceil((top-bottom)/spacing)) + 1
	if n < order+2 {
		n = order + 2
	}
	lo := bottom
	if lo != 0 {
		lo = math.Nextafter(bottom, math.Inf(1))
	}
	hi := top
	if hi != surface {
		hi = math.Nextafter(top, math.Inf(-1))
	}
	samples := make([]float64, n)
	for j := range samples {
		samples[j] = lo + (hi-lo)*float64(j)/float64(n-1)
	}
	return samples
}
