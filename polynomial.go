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
)

// PolynomialModel is a model in which each property follows a polynomial
// within each layer. Following the convention of published reference
// models such as PREM, the polynomial argument is the radius normalized
// by the surface radius of the whole model, not by a per-layer radius.
type PolynomialModel struct {
	header
	tops   []float64
	tables polySet
}

// NewPolynomial constructs a polynomial model from layer top radii [km]
// and per-layer coefficient columns ordered constant term first. The top
// radii must increase strictly monotonically; the last one is the
// surface radius.
func NewPolynomial(tops []float64, p PolyProfile) (*PolynomialModel, error) {
	if err := checkTops(tops); err != nil {
		return nil, err
	}
	t, err := p.tables(len(tops))
	if err != nil {
		return nil, err
	}
	return &PolynomialModel{
		header: header{
			surfaceRadius: tops[len(tops)-1],
			refFrequency:  p.ReferenceFrequency,
		},
		tops:   append([]float64(nil), tops...),
		tables: t,
	}, nil
}

// NLayers returns the number of layers.
func (m *PolynomialModel) NLayers() int { return len(m.tops) }

// LayerTops returns a copy of the layer top radii [km].
func (m *PolynomialModel) LayerTops() []float64 { return append([]float64(nil), m.tops...) }

// Coefficients returns a copy of the polynomial coefficients of p for
// layer i, ordered constant term first.
func (m *PolynomialModel) Coefficients(p Property, i int) ([]float64, error) {
	if !m.tables.has(p) {
		return nil, fmt.Errorf("radial: %w: %v", ErrUndefinedProperty, p)
	}
	if i < 0 || i >= len(m.tops) {
		return nil, fmt.Errorf("radial: layer index %d out of range [0,%d)", i, len(m.tops))
	}
	return append([]float64(nil), m.tables[p][i]...), nil
}

// IsAnisotropic reports whether the model carries the anisotropy quintet.
func (m *PolynomialModel) IsAnisotropic() bool { return m.tables.has(VPV) }

// HasAttenuation reports whether the model carries quality factors.
func (m *PolynomialModel) HasAttenuation() bool { return m.tables.has(QMu) }

// HasDensity reports whether the model carries a density table.
func (m *PolynomialModel) HasDensity() bool { return m.tables.has(Rho) }

func (m *PolynomialModel) has(p Property) bool { return m.tables.has(p) }

func (m *PolynomialModel) locate(r float64) (int, error) {
	if err := checkRadius(m, r); err != nil {
		return 0, err
	}
	for i, top := range m.tops {
		if r < top {
			return i, nil
		}
	}
	return len(m.tops) - 1, nil // r equals the surface radius.
}

func (m *PolynomialModel) value(p Property, r float64) (float64, error) {
	if !m.tables.has(p) {
		return 0, fmt.Errorf("radial: %w: %v", ErrUndefinedProperty, p)
	}
	i, err := m.locate(r)
	if err != nil {
		return 0, err
	}
	return polyval(m.tables[p][i], r/m.surfaceRadius), nil
}

// polyval evaluates a polynomial with coefficients ordered constant term
// first, by Horner's method.
func polyval(c []float64, x float64) float64 {
	v := 0.
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}

// massBelow integrates 4πρr² analytically. For a density term ρₖxᵏ with
// x = r/a, the normalization is undone with a factor (1000a)⁻ᵏ so the
// integral can be taken directly in SI radius.
func (m *PolynomialModel) massBelow(r float64) (float64, error) {
	aM := m.surfaceRadius * 1e3
	mass := 0.
	bottom := 0.
	for i, top := range m.tops {
		upper := math.Min(top, r)
		if upper > bottom {
			b, u := bottom*1e3, upper*1e3
			for k, c := range m.tables[Rho][i] {
				mass += 4 * math.Pi * c * 1e3 / math.Pow(aM, float64(k)) *
					(math.Pow(u, float64(k)+3) - math.Pow(b, float64(k)+3)) / (float64(k) + 3)
			}
		}
		if top >= r {
			break
		}
		bottom = top
	}
	return mass, nil
}
