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

type evalConfig struct {
	depth   bool
	freq    float64
	hasFreq bool
}

// An EvalOption modifies how a property or derived quantity is
// evaluated.
type EvalOption func(*evalConfig)

// AtDepth makes the location argument a depth below the surface [km]
// instead of a radius.
func AtDepth() EvalOption {
	return func(c *evalConfig) { c.depth = true }
}

// AtFrequency corrects the returned velocity from the model's reference
// frequency to frequency f [Hz] using the model's quality factors. It
// applies to velocity properties only, and requires the model to carry
// both an attenuation pair and a reference frequency.
func AtFrequency(f float64) EvalOption {
	return func(c *evalConfig) { c.freq = f; c.hasFreq = true }
}

// resolve applies the options and converts a depth argument to a radius.
func resolve(m Model, r float64, opts []EvalOption) (float64, evalConfig) {
	var c evalConfig
	for _, o := range opts {
		o(&c)
	}
	if c.depth {
		r = m.SurfaceRadius() - r
	}
	return r, c
}

// Evaluate returns the value of property p at radius r [km]. With
// AtDepth, r is interpreted as a depth instead. With AtFrequency, a
// velocity is corrected for physical dispersion from the model's
// reference frequency to the given frequency.
func Evaluate(m Model, p Property, r float64, opts ...EvalOption) (float64, error) {
	r, c := resolve(m, r, opts)
	v, err := m.value(p, r)
	if err != nil {
		return 0, err
	}
	if !c.hasFreq {
		return v, nil
	}
	return correct(m, p, v, r, c.freq)
}

// correct applies the PREM-style physical dispersion correction,
// rescaling velocity v of property p at radius r from the model's
// reference frequency to frequency f. Correcting a P velocity requires
// the S velocity of the same polarization at the same radius, and vice
// versa.
func correct(m Model, p Property, v, r, f float64) (float64, error) {
	if !p.isVelocity() {
		return 0, fmt.Errorf("radial: %w: frequency correction of %v (only velocities disperse)",
			ErrUndefinedProperty, p)
	}
	if !m.HasAttenuation() {
		return 0, fmt.Errorf("radial: %w: frequency correction on a model without attenuation",
			ErrUndefinedProperty)
	}
	fref, ok := m.ReferenceFrequency()
	if !ok {
		return 0, fmt.Errorf("radial: %w: frequency correction on a model without a reference frequency",
			ErrUndefinedProperty)
	}
	if f == fref {
		return v, nil
	}
	if f <= 0 {
		return 0, fmt.Errorf("radial: frequency must be positive (got %g Hz)", f)
	}
	lnf := math.Log(fref/f) / math.Pi

	qmu, err := m.value(QMu, r)
	if err != nil {
		return 0, err
	}
	switch p {
	case Vs, VSV, VSH:
		return v * (1 - lnf*invQ(qmu)), nil
	}

	// P velocity: partition the correction between bulk and shear
	// attenuation using the companion S velocity.
	var companion Property
	switch p {
	case Vp:
		companion = Vs
	case VPV:
		companion = VSV
	case VPH:
		companion = VSH
	}
	vs, err := m.value(companion, r)
	if err != nil {
		return 0, err
	}
	qkappa, err := m.value(QKappa, r)
	if err != nil {
		return 0, err
	}
	e := 4. / 3. * (vs / v) * (vs / v)
	return v * (1 - lnf*((1-e)*invQ(qkappa)+e*invQ(qmu))), nil
}

// invQ returns 1/q, treating q = 0 as no dissipation (infinite quality
// factor), following the convention of published model tables.
func invQ(q float64) float64 {
	if q == 0 {
		return 0
	}
	return 1 / q
}

// VpAt returns the isotropic P-wave velocity [km/s] at radius r [km].
func VpAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, Vp, r, opts...)
}

// VsAt returns the isotropic S-wave velocity [km/s] at radius r [km].
func VsAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, Vs, r, opts...)
}

// RhoAt returns the density [g/cm³] at radius r [km].
func RhoAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, Rho, r, opts...)
}

// VPVAt returns the vertically polarized P-wave velocity [km/s] at
// radius r [km].
func VPVAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, VPV, r, opts...)
}

// VPHAt returns the horizontally polarized P-wave velocity [km/s] at
// radius r [km].
func VPHAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, VPH, r, opts...)
}

// VSVAt returns the vertically polarized S-wave velocity [km/s] at
// radius r [km].
func VSVAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, VSV, r, opts...)
}

// VSHAt returns the horizontally polarized S-wave velocity [km/s] at
// radius r [km].
func VSHAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, VSH, r, opts...)
}

// EtaAt returns the anisotropy shape parameter at radius r [km].
func EtaAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, Eta, r, opts...)
}

// QMuAt returns the shear quality factor at radius r [km].
func QMuAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, QMu, r, opts...)
}

// QKappaAt returns the bulk quality factor at radius r [km].
func QKappaAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	return Evaluate(m, QKappa, r, opts...)
}

// VoigtVsAt returns the Voigt-average isotropic-equivalent S-wave
// velocity [km/s] of an anisotropic model at radius r [km], defined by
// vs² = (2vsv² + vsh²)/3.
func VoigtVsAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	vsv, err := Evaluate(m, VSV, r, opts...)
	if err != nil {
		return 0, err
	}
	vsh, err := Evaluate(m, VSH, r, opts...)
	if err != nil {
		return 0, err
	}
	return math.Sqrt((2*vsv*vsv + vsh*vsh) / 3), nil
}

// VoigtVpAt returns the Voigt-average isotropic-equivalent P-wave
// velocity [km/s] of an anisotropic model at radius r [km], defined by
// vp² = (vpv² + 4vph²)/5.
func VoigtVpAt(m Model, r float64, opts ...EvalOption) (float64, error) {
	vpv, err := Evaluate(m, VPV, r, opts...)
	if err != nil {
		return 0, err
	}
	vph, err := Evaluate(m, VPH, r, opts...)
	if err != nil {
		return 0, err
	}
	return math.Sqrt((vpv*vpv + 4*vph*vph) / 5), nil
}
