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

// SteppedModel is a model in which every property is constant within
// each layer. Layer i spans the radii [tops[i-1], tops[i]), with the
// first layer starting at the center and the last layer including the
// surface, so a query exactly at a layer top takes the value of the
// layer above it.
type SteppedModel struct {
	header
	tops   []float64
	tables tableSet
}

// NewStepped constructs a stepped model from layer top radii [km] and
// one property value per layer. The top radii must increase strictly
// monotonically; the last one is the surface radius.
func NewStepped(tops []float64, p Profile) (*SteppedModel, error) {
	if err := checkTops(tops); err != nil {
		return nil, err
	}
	t, err := p.tables(len(tops))
	if err != nil {
		return nil, err
	}
	return &SteppedModel{
		header: header{
			surfaceRadius: tops[len(tops)-1],
			refFrequency:  p.ReferenceFrequency,
		},
		tops:   append([]float64(nil), tops...),
		tables: t,
	}, nil
}

// NLayers returns the number of layers.
func (m *SteppedModel) NLayers() int { return len(m.tops) }

// LayerTops returns a copy of the layer top radii [km].
func (m *SteppedModel) LayerTops() []float64 { return append([]float64(nil), m.tops...) }

// IsAnisotropic reports whether the model carries the anisotropy quintet.
func (m *SteppedModel) IsAnisotropic() bool { return m.tables.anisotropic() }

// HasAttenuation reports whether the model carries quality factors.
func (m *SteppedModel) HasAttenuation() bool { return m.tables.attenuating() }

// HasDensity reports whether the model carries a density table.
func (m *SteppedModel) HasDensity() bool { return m.tables.has(Rho) }

func (m *SteppedModel) has(p Property) bool { return m.tables.has(p) }

func (m *SteppedModel) locate(r float64) (int, error) {
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

func (m *SteppedModel) value(p Property, r float64) (float64, error) {
	if !m.tables.has(p) {
		return 0, fmt.Errorf("radial: %w: %v", ErrUndefinedProperty, p)
	}
	i, err := m.locate(r)
	if err != nil {
		return 0, err
	}
	return m.tables[p][i], nil
}

// massBelow integrates 4πρr² analytically: each fully enclosed layer
// contributes (4/3)πρ(R³-R₀³), plus a partial term for the layer
// containing r.
func (m *SteppedModel) massBelow(r float64) (float64, error) {
	rho := m.tables[Rho]
	mass := 0.
	bottom := 0.
	for i, top := range m.tops {
		upper := math.Min(top, r)
		if upper > bottom {
			b, u := bottom*1e3, upper*1e3 // km to m
			mass += 4. / 3. * math.Pi * rho[i] * 1e3 * (u*u*u - b*b*b)
		}
		if top >= r {
			break
		}
		bottom = top
	}
	return mass, nil
}
