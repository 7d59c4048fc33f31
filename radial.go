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

// Package radial models the one-dimensional (radially symmetric) physical
// structure of planetary bodies for seismology. A model maps radius to
// seismic velocities, density, anisotropy parameters, and attenuation
// quality factors, and supports derived bulk quantities (mass, gravity,
// pressure, moment of inertia, elastic moduli) as well as conversion
// between the three model parameterizations: constant-per-layer (stepped),
// piecewise-linear, and polynomial-per-layer.
//
// Units follow the convention used by published reference models:
// radii and depths are in km, velocities in km/s, densities in g/cm³,
// frequencies in Hz. Derived quantities are returned in SI units
// (kg, m/s², Pa, kg m²).
package radial

import (
	"fmt"
	"strings"
)

// Version gives the version number.
const Version = "1.2.0"

// G is the gravitational constant [m³/(kg s²)].
const G = 6.67428e-11

// Property identifies one of the physical properties a model can carry.
type Property int

// The properties a model can carry. Vp and Vs are mandatory for every
// model; the others are optional. VPV, VPH, VSV, VSH, and Eta together
// form the anisotropy quintet and QMu and QKappa the attenuation pair;
// each group is either fully present or fully absent.
const (
	Vp Property = iota // isotropic P-wave velocity
	Vs                 // isotropic S-wave velocity
	Rho                // density
	VPV                // vertically polarized P-wave velocity
	VPH                // horizontally polarized P-wave velocity
	VSV                // vertically polarized S-wave velocity
	VSH                // horizontally polarized S-wave velocity
	Eta                // anisotropy shape parameter
	QMu                // shear quality factor
	QKappa             // bulk quality factor

	numProperties
)

type propInfo struct {
	name     string
	desc     string
	units    string
	velocity bool
}

var properties = [numProperties]propInfo{
	Vp:     {"vp", "Isotropic P-wave velocity", "km/s", true},
	Vs:     {"vs", "Isotropic S-wave velocity", "km/s", true},
	Rho:    {"rho", "Density", "g/cm³", false},
	VPV:    {"vpv", "Vertically polarized P-wave velocity", "km/s", true},
	VPH:    {"vph", "Horizontally polarized P-wave velocity", "km/s", true},
	VSV:    {"vsv", "Vertically polarized S-wave velocity", "km/s", true},
	VSH:    {"vsh", "Horizontally polarized S-wave velocity", "km/s", true},
	Eta:    {"eta", "Anisotropy shape parameter", "dimensionless", false},
	QMu:    {"qmu", "Shear quality factor", "dimensionless", false},
	QKappa: {"qkappa", "Bulk quality factor", "dimensionless", false},
}

func (p Property) String() string {
	if p < 0 || p >= numProperties {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return properties[p].name
}

// Description returns a human-readable description of the property.
func (p Property) Description() string { return properties[p].desc }

// Units returns the units the property is expressed in.
func (p Property) Units() string { return properties[p].units }

// isVelocity reports whether p is subject to attenuation correction.
func (p Property) isVelocity() bool {
	return p >= 0 && p < numProperties && properties[p].velocity
}

// ParseProperty converts a property name to a Property. Recognized names
// are the lowercase names returned by String, plus the aliases "density",
// "qμ", and "qκ". Matching is case-insensitive.
func ParseProperty(s string) (Property, error) {
	switch strings.ToLower(s) {
	case "density":
		return Rho, nil
	case "qμ":
		return QMu, nil
	case "qκ":
		return QKappa, nil
	}
	for p := Property(0); p < numProperties; p++ {
		if strings.EqualFold(s, properties[p].name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("radial: unknown property name %q", s)
}

// Model is a radially symmetric planet model. The three implementations
// are SteppedModel, LinearModel, and PolynomialModel; they differ only in
// how property values are interpolated within a layer. Models are
// immutable after construction and may be queried concurrently.
type Model interface {
	// SurfaceRadius returns the outer radius of the model [km].
	SurfaceRadius() float64

	// NLayers returns the number of layers in the model.
	NLayers() int

	// LayerTops returns the top radius of each layer [km], in
	// increasing order. The last element equals SurfaceRadius.
	LayerTops() []float64

	// IsAnisotropic reports whether the model carries the anisotropy
	// quintet (VPV, VPH, VSV, VSH, Eta).
	IsAnisotropic() bool

	// HasAttenuation reports whether the model carries the attenuation
	// pair (QMu, QKappa).
	HasAttenuation() bool

	// HasDensity reports whether the model carries a density table.
	HasDensity() bool

	// ReferenceFrequency returns the frequency [Hz] the model's
	// velocities are specified at, and whether one is defined.
	ReferenceFrequency() (float64, bool)

	// has reports whether the model carries a table for p.
	has(p Property) bool

	// locate returns the index of the layer containing radius r.
	locate(r float64) (int, error)

	// value evaluates property p at radius r without attenuation
	// correction.
	value(p Property, r float64) (float64, error)

	// massBelow returns the mass enclosed within radius r [kg],
	// computed with the closed-form layer integrals for the variant.
	massBelow(r float64) (float64, error)
}

// header holds the fields common to all model variants.
type header struct {
	surfaceRadius float64
	refFrequency  float64 // ≤ 0 means undefined
}

func (h *header) SurfaceRadius() float64 { return h.surfaceRadius }

func (h *header) ReferenceFrequency() (float64, bool) {
	if h.refFrequency > 0 {
		return h.refFrequency, true
	}
	return 0, false
}

// DepthOf converts a radius [km] to the corresponding depth [km].
func DepthOf(m Model, radius float64) float64 { return m.SurfaceRadius() - radius }

// RadiusOf converts a depth [km] to the corresponding radius [km].
func RadiusOf(m Model, depth float64) float64 { return m.SurfaceRadius() - depth }

// checkRadius verifies that r lies within [0, surface radius].
func checkRadius(m Model, r float64) error {
	if r < 0 || r > m.SurfaceRadius() {
		return fmt.Errorf("radial: %w: %g km (surface radius %g km)",
			ErrRadiusOutOfRange, r, m.SurfaceRadius())
	}
	return nil
}

// checkTops verifies that layer top radii are strictly increasing and
// end above zero.
func checkTops(tops []float64) error {
	if len(tops) == 0 {
		return fmt.Errorf("radial: %w: no layers", ErrInvalidModel)
	}
	prev := 0.
	for i, t := range tops {
		if t <= prev {
			return fmt.Errorf("radial: %w: layer tops must increase monotonically (layer %d: %g ≤ %g)",
				ErrInvalidModel, i, t, prev)
		}
		prev = t
	}
	return nil
}
