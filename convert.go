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
	"sort"
)

// Conversions never invent data: an optional property table appears on
// the converted model exactly when it is present on the source, and the
// reference frequency is carried through unchanged. Converting back and
// forth is not bit-exact, but bulk quantities (mass, gravity, pressure)
// survive any conversion cycle to within ~1% for reasonable spacing and
// order choices.

// presentProperties returns the properties m carries.
func presentProperties(m Model) []Property {
	var ps []Property
	for p := Property(0); p < numProperties; p++ {
		if m.has(p) {
			ps = append(ps, p)
		}
	}
	return ps
}

// profileFrom assembles a Profile from per-property tables, carrying
// over the reference frequency of m.
func profileFrom(tables [numProperties][]float64, m Model) Profile {
	p := Profile{
		Vp: tables[Vp], Vs: tables[Vs], Rho: tables[Rho],
		VPV: tables[VPV], VPH: tables[VPH], VSV: tables[VSV], VSH: tables[VSH], Eta: tables[Eta],
		QMu: tables[QMu], QKappa: tables[QKappa],
	}
	if f, ok := m.ReferenceFrequency(); ok {
		p.ReferenceFrequency = f
	}
	return p
}

func checkSpacing(spacing float64) error {
	if spacing <= 0 {
		return fmt.Errorf("radial: %w: spacing must be positive (got %g km)",
			ErrInvalidModel, spacing)
	}
	return nil
}

// AsLinear converts m to a piecewise-linear model. A stepped source
// converts exactly, with each layer's constant duplicated onto the two
// nodes bounding the layer. A polynomial source is sampled at its layer
// boundaries and every spacing km inside each layer; at interior layer
// boundaries the polynomial is evaluated just inside the layer to
// resolve the ambiguity at the shared radius. A linear source is
// returned unchanged.
func AsLinear(m Model, spacing float64) (*LinearModel, error) {
	switch src := m.(type) {
	case *LinearModel:
		return src, nil

	case *SteppedModel:
		n := len(src.tops)
		radii := make([]float64, 0, 2*n)
		bottom := 0.
		for _, top := range src.tops {
			radii = append(radii, bottom, top)
			bottom = top
		}
		var tables [numProperties][]float64
		for _, p := range presentProperties(src) {
			v := make([]float64, 0, 2*n)
			for i := 0; i < n; i++ {
				v = append(v, src.tables[p][i], src.tables[p][i])
			}
			tables[p] = v
		}
		return NewLinear(radii, profileFrom(tables, src))

	case *PolynomialModel:
		if err := checkSpacing(spacing); err != nil {
			return nil, err
		}
		radii, evalAt := src.sampleRadii(spacing)
		var tables [numProperties][]float64
		for _, p := range presentProperties(src) {
			v := make([]float64, len(evalAt))
			for i, r := range evalAt {
				val, err := src.value(p, r)
				if err != nil {
					return nil, err
				}
				v[i] = val
			}
			tables[p] = v
		}
		return NewLinear(radii, profileFrom(tables, src))
	}
	return nil, fmt.Errorf("radial: cannot convert %T to a linear model", m)
}

// sampleRadii returns the node radii of the piecewise-linear sampling of
// a polynomial model, and the radii the polynomials are evaluated at for
// each node. The two differ only at interior layer boundaries, where
// evaluation happens just inside the layer.
func (m *PolynomialModel) sampleRadii(spacing float64) (radii, evalAt []float64) {
	bottom := 0.
	for _, top := range m.tops {
		bottomIn := bottom
		if bottom != 0 {
			bottomIn = math.Nextafter(bottom, math.Inf(1))
		}
		radii = append(radii, bottom)
		evalAt = append(evalAt, bottomIn)

		nseg := int(math.Ceil((top - bottom) / spacing))
		for k := 1; k < nseg; k++ {
			r := bottom + float64(k)*(top-bottom)/float64(nseg)
			radii = append(radii, r)
			evalAt = append(evalAt, r)
		}

		topIn := top
		if top != m.surfaceRadius {
			topIn = math.Nextafter(top, math.Inf(-1))
		}
		radii = append(radii, top)
		evalAt = append(evalAt, topIn)
		bottom = top
	}
	return radii, evalAt
}

// AsStepped converts m to a stepped model. Linear and polynomial sources
// are resampled onto a regular grid of the given spacing [km] merged
// with the source's own layer boundaries, so existing discontinuities
// stay exactly on layer boundaries; each new layer takes the source
// value at the layer's radius midpoint. A stepped source is returned
// unchanged.
func AsStepped(m Model, spacing float64) (*SteppedModel, error) {
	if src, ok := m.(*SteppedModel); ok {
		return src, nil
	}
	if err := checkSpacing(spacing); err != nil {
		return nil, err
	}
	tops := resampleTops(m, spacing)
	var tables [numProperties][]float64
	for _, p := range presentProperties(m) {
		v := make([]float64, len(tops))
		bottom := 0.
		for i, top := range tops {
			val, err := m.value(p, (bottom+top)/2)
			if err != nil {
				return nil, err
			}
			v[i] = val
			bottom = top
		}
		tables[p] = v
	}
	return NewStepped(tops, profileFrom(tables, m))
}

// resampleTops merges a regular grid of the given spacing with the
// source model's own layer boundaries, deduplicated and sorted.
func resampleTops(m Model, spacing float64) []float64 {
	a := m.SurfaceRadius()
	var tops []float64
	for i := 1; ; i++ {
		r := float64(i) * spacing
		if r >= a {
			break
		}
		tops = append(tops, r)
	}
	tops = append(tops, a)
	tops = append(tops, m.LayerTops()...)
	sort.Float64s(tops)
	uniq := tops[:1]
	for _, t := range tops[1:] {
		if t != uniq[len(uniq)-1] && t <= a {
			uniq = append(uniq, t)
		}
	}
	return uniq
}

// AsPolynomial converts m to a polynomial model of the given order. A
// stepped source converts exactly for order 0, with higher-order
// coefficients zero. A linear source becomes one degree-1 polynomial per
// non-degenerate segment (zero-width discontinuity segments become layer
// boundaries), requiring order ≥ 1. A polynomial source is returned
// unchanged.
func AsPolynomial(m Model, order int) (*PolynomialModel, error) {
	switch src := m.(type) {
	case *PolynomialModel:
		return src, nil

	case *SteppedModel:
		if order < 0 {
			return nil, fmt.Errorf("radial: %w: polynomial order must be ≥ 0 (got %d)",
				ErrInvalidModel, order)
		}
		var tables [numProperties][][]float64
		for _, p := range presentProperties(src) {
			coefs := make([][]float64, len(src.tops))
			for i, v := range src.tables[p] {
				c := make([]float64, order+1)
				c[0] = v
				coefs[i] = c
			}
			tables[p] = coefs
		}
		return NewPolynomial(src.tops, polyProfileFrom(tables, src))

	case *LinearModel:
		if order < 1 {
			return nil, fmt.Errorf("radial: %w: converting a linear model needs polynomial order ≥ 1 (got %d)",
				ErrInvalidModel, order)
		}
		a := src.surfaceRadius
		var tops []float64
		var segs [][2]int // node index pairs of non-degenerate segments
		for i := 0; i < len(src.nodes)-1; i++ {
			if src.nodes[i] == src.nodes[i+1] {
				continue
			}
			tops = append(tops, src.nodes[i+1])
			segs = append(segs, [2]int{i, i + 1})
		}
		var tables [numProperties][][]float64
		for _, p := range presentProperties(src) {
			v := src.tables[p]
			coefs := make([][]float64, len(segs))
			for j, s := range segs {
				x1, x2 := src.nodes[s[0]]/a, src.nodes[s[1]]/a
				slope := (v[s[1]] - v[s[0]]) / (x2 - x1)
				c := make([]float64, order+1)
				c[0] = v[s[0]] - slope*x1
				c[1] = slope
				coefs[j] = c
			}
			tables[p] = coefs
		}
		return NewPolynomial(tops, polyProfileFrom(tables, src))
	}
	return nil, fmt.Errorf("radial: cannot convert %T to a polynomial model", m)
}

// polyProfileFrom assembles a PolyProfile from per-property coefficient
// matrices, carrying over the reference frequency of m.
func polyProfileFrom(tables [numProperties][][]float64, m Model) PolyProfile {
	p := PolyProfile{
		Vp: tables[Vp], Vs: tables[Vs], Rho: tables[Rho],
		VPV: tables[VPV], VPH: tables[VPH], VSV: tables[VSV], VSH: tables[VSH], Eta: tables[Eta],
		QMu: tables[QMu], QKappa: tables[QKappa],
	}
	if f, ok := m.ReferenceFrequency(); ok {
		p.ReferenceFrequency = f
	}
	return p
}
