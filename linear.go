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

// LinearModel is a model in which properties are sampled at nodes and
// interpolated linearly between adjacent nodes. Two consecutive nodes at
// the same radius encode a discontinuity: the lower node carries the
// property values just below the radius, the upper node the values just
// above it.
type LinearModel struct {
	header
	nodes  []float64
	tables tableSet
}

// NewLinear constructs a piecewise-linear model from node radii [km] and
// one property value per node. The radii must start at zero and increase
// monotonically; a radius may repeat once to encode a discontinuity. The
// last radius is the surface radius.
func NewLinear(radii []float64, p Profile) (*LinearModel, error) {
	if err := checkNodes(radii); err != nil {
		return nil, err
	}
	t, err := p.tables(len(radii))
	if err != nil {
		return nil, err
	}
	return &LinearModel{
		header: header{
			surfaceRadius: radii[len(radii)-1],
			refFrequency:  p.ReferenceFrequency,
		},
		nodes:  append([]float64(nil), radii...),
		tables: t,
	}, nil
}

func checkNodes(radii []float64) error {
	if len(radii) < 2 {
		return fmt.Errorf("radial: %w: a linear model needs at least two nodes", ErrInvalidModel)
	}
	if radii[0] != 0 {
		return fmt.Errorf("radial: %w: the first node must be at the center (got %g km)",
			ErrInvalidModel, radii[0])
	}
	for i := 1; i < len(radii); i++ {
		if radii[i] < radii[i-1] {
			return fmt.Errorf("radial: %w: node radii must not decrease (node %d: %g < %g)",
				ErrInvalidModel, i, radii[i], radii[i-1])
		}
		if i >= 2 && radii[i] == radii[i-2] {
			return fmt.Errorf("radial: %w: node radius %g km repeats more than once",
				ErrInvalidModel, radii[i])
		}
	}
	if radii[len(radii)-1] == radii[len(radii)-2] {
		return fmt.Errorf("radial: %w: the surface cannot be a discontinuity", ErrInvalidModel)
	}
	if radii[len(radii)-1] <= 0 {
		return fmt.Errorf("radial: %w: surface radius must be positive", ErrInvalidModel)
	}
	return nil
}

// NLayers returns the number of inter-node intervals, including the
// zero-width intervals at discontinuities.
func (m *LinearModel) NLayers() int { return len(m.nodes) - 1 }

// NodeRadii returns a copy of the node radii [km].
func (m *LinearModel) NodeRadii() []float64 { return append([]float64(nil), m.nodes...) }

// LayerTops returns a copy of the node radii above the center [km].
func (m *LinearModel) LayerTops() []float64 { return append([]float64(nil), m.nodes[1:]...) }

// NodeValue returns the stored value of p at node i. Unlike Evaluate at
// the node's radius, this distinguishes the two sides of a
// discontinuity.
func (m *LinearModel) NodeValue(p Property, i int) (float64, error) {
	if !m.tables.has(p) {
		return 0, fmt.Errorf("radial: %w: %v", ErrUndefinedProperty, p)
	}
	if i < 0 || i >= len(m.nodes) {
		return 0, fmt.Errorf("radial: node index %d out of range [0,%d)", i, len(m.nodes))
	}
	return m.tables[p][i], nil
}

// IsAnisotropic reports whether the model carries the anisotropy quintet.
func (m *LinearModel) IsAnisotropic() bool { return m.tables.anisotropic() }

// HasAttenuation reports whether the model carries quality factors.
func (m *LinearModel) HasAttenuation() bool { return m.tables.attenuating() }

// HasDensity reports whether the model carries a density table.
func (m *LinearModel) HasDensity() bool { return m.tables.has(Rho) }

func (m *LinearModel) has(p Property) bool { return m.tables.has(p) }

// locate returns the index of the interval containing r. Scanning for
// the first interval whose upper node lies strictly above r means
// zero-width discontinuity intervals are never selected, so the interval
// width is always positive where it is used for interpolation; a query
// exactly at a discontinuity radius resolves to the interval just above
// it.
func (m *LinearModel) locate(r float64) (int, error) {
	if err := checkRadius(m, r); err != nil {
		return 0, err
	}
	for i := 0; i < len(m.nodes)-1; i++ {
		if r < m.nodes[i+1] {
			return i, nil
		}
	}
	return len(m.nodes) - 2, nil // r equals the surface radius.
}

func (m *LinearModel) value(p Property, r float64) (float64, error) {
	if !m.tables.has(p) {
		return 0, fmt.Errorf("radial: %w: %v", ErrUndefinedProperty, p)
	}
	i, err := m.locate(r)
	if err != nil {
		return 0, err
	}
	r0, r1 := m.nodes[i], m.nodes[i+1]
	v := m.tables[p]
	return (v[i]*(r1-r) + v[i+1]*(r-r0)) / (r1 - r0), nil
}

// massBelow integrates 4πρr² analytically over each inter-node interval,
// where density varies linearly with radius. Zero-width discontinuity
// intervals contribute nothing and are skipped.
func (m *LinearModel) massBelow(r float64) (float64, error) {
	rho := m.tables[Rho]
	mass := 0.
	for i := 0; i < len(m.nodes)-1; i++ {
		r0, r1 := m.nodes[i], m.nodes[i+1]
		if r1 == r0 {
			continue
		}
		upper := math.Min(r1, r)
		if upper <= r0 {
			break
		}
		// Work in SI. The linear fit passes through both interval
		// endpoints, so the constant term is corrected for the
		// interval's lower radius.
		a, b := r0*1e3, upper*1e3
		rho0 := rho[i] * 1e3
		slope := (rho[i+1] - rho[i]) / (r1 - r0) // (kg/m³)/m
		c := rho0 - slope*a
		mass += 4 * math.Pi * (c*(b*b*b-a*a*a)/3 + slope*(b*b*b*b-a*a*a*a)/4)
		if r1 >= r {
			break
		}
	}
	return mass, nil
}
