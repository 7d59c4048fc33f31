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

package models

import (
	"math"
	"testing"

	"github.com/earthmodel/radial"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func absDifferent(a, b, tolerance float64) bool {
	return math.Abs(a-b) > tolerance || math.IsNaN(a) || math.IsNaN(b)
}

func TestPREMStructure(t *testing.T) {
	m := PREM()
	if r := m.SurfaceRadius(); r != 6371 {
		t.Errorf("surface radius = %g km, want 6371", r)
	}
	if n := m.NLayers(); n != 13 {
		t.Errorf("NLayers = %d, want 13", n)
	}
	if !m.IsAnisotropic() {
		t.Error("PREM is anisotropic")
	}
	if !m.HasAttenuation() {
		t.Error("PREM carries attenuation")
	}
	if f, ok := m.ReferenceFrequency(); !ok || f != 1 {
		t.Errorf("reference frequency = %g, %v; want 1 Hz", f, ok)
	}
}

func TestPREMValues(t *testing.T) {
	const testTolerance = 1.e-9
	m := PREM()

	// Published values from the model table.
	vp, err := radial.VpAt(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if different(vp, 11.2622, testTolerance) {
		t.Errorf("vp at the center = %g km/s, want 11.2622", vp)
	}
	qmu, err := radial.QMuAt(m, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if different(qmu, 84.6, testTolerance) {
		t.Errorf("qmu in the inner core = %g, want 84.6", qmu)
	}
	rho, err := radial.RhoAt(m, 6371)
	if err != nil {
		t.Fatal(err)
	}
	if different(rho, 1.020, testTolerance) {
		t.Errorf("ocean density = %g g/cm³, want 1.020", rho)
	}
	vs, err := radial.VsAt(m, 6371)
	if err != nil {
		t.Fatal(err)
	}
	if vs != 0 {
		t.Errorf("ocean vs = %g, want 0", vs)
	}

	// The outer core does not transmit shear waves.
	vs, err = radial.VsAt(m, 2500)
	if err != nil {
		t.Fatal(err)
	}
	if vs != 0 {
		t.Errorf("outer core vs = %g, want 0", vs)
	}
}

func TestPREMEarthConstants(t *testing.T) {
	m := PREM()

	mass, err := radial.TotalMass(m)
	if err != nil {
		t.Fatal(err)
	}
	if different(mass, 5.974e24, 0.003) {
		t.Errorf("total mass = %g kg, want 5.974e24 within 0.3%%", mass)
	}

	g, err := radial.Gravity(m, 6371)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(g, 9.81, 0.02) {
		t.Errorf("surface gravity = %g m/s², want 9.81±0.02", g)
	}

	moi, err := radial.MomentOfInertia(m)
	if err != nil {
		t.Fatal(err)
	}
	a := 6371e3
	if absDifferent(moi/(mass*a*a), 0.3308, 0.0001) {
		t.Errorf("moment of inertia factor = %g, want 0.3308±0.0001", moi/(mass*a*a))
	}

	// Central pressure, ~364 GPa in the published model.
	p, err := radial.Pressure(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if different(p, 3.64e11, 0.01) {
		t.Errorf("central pressure = %g Pa, want 3.64e11 within 1%%", p)
	}
}

func TestPREMAnisotropy(t *testing.T) {
	m := PREM()

	// In the anisotropic zone the published isotropic fits track the
	// Voigt averages of the polarized velocities to within a percent.
	for _, r := range []float64{6200, 6300} {
		iso, err := radial.VpAt(m, r)
		if err != nil {
			t.Fatal(err)
		}
		voigt, err := radial.VoigtVpAt(m, r)
		if err != nil {
			t.Fatal(err)
		}
		if different(iso, voigt, 0.01) {
			t.Errorf("vp(%g) = %g, Voigt average %g", r, iso, voigt)
		}
	}

	// Outside the anisotropic zone the polarized velocities collapse
	// onto the isotropic ones.
	iso, err := radial.VpAt(m, 4000)
	if err != nil {
		t.Fatal(err)
	}
	vpv, err := radial.VPVAt(m, 4000)
	if err != nil {
		t.Fatal(err)
	}
	if iso != vpv {
		t.Errorf("vp = %g but vpv = %g in the isotropic mantle", iso, vpv)
	}
	eta, err := radial.EtaAt(m, 4000)
	if err != nil {
		t.Fatal(err)
	}
	if eta != 1 {
		t.Errorf("eta = %g in the isotropic mantle, want 1", eta)
	}
}

func TestPREMCoreBoundaries(t *testing.T) {
	m := PREM()
	icb, cmb, err := radial.CoreBoundaries(m)
	if err != nil {
		t.Fatal(err)
	}
	// Layer 1 is the outer core, layer 2 the D″ region; the ocean on
	// top must not be mistaken for a second liquid core.
	if icb != 1 || cmb != 2 {
		t.Errorf("icb, cmb = %d, %d; want 1, 2", icb, cmb)
	}
	tops := m.LayerTops()
	if tops[icb-1] != 1221.5 || tops[cmb-1] != 3480 {
		t.Errorf("boundary radii = %g, %g; want 1221.5, 3480", tops[icb-1], tops[cmb-1])
	}
}

func TestPREMDispersion(t *testing.T) {
	m := PREM()

	ref, err := radial.VsAt(m, 6000)
	if err != nil {
		t.Fatal(err)
	}
	same, err := radial.VsAt(m, 6000, radial.AtFrequency(1))
	if err != nil {
		t.Fatal(err)
	}
	if ref != same {
		t.Errorf("vs at the reference frequency = %g, want %g", same, ref)
	}

	// Below the reference frequency shear velocity decreases.
	low, err := radial.VsAt(m, 6000, radial.AtFrequency(0.01))
	if err != nil {
		t.Fatal(err)
	}
	if low >= ref {
		t.Errorf("vs at 0.01 Hz = %g, want < %g", low, ref)
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	found := false
	for _, n := range names {
		if n == "prem" {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() = %v, want it to include prem", names)
	}
	if _, err := Get("prem"); err != nil {
		t.Error(err)
	}
	if _, err := Get("atlantis"); err == nil {
		t.Error("an unknown model name should be an error")
	}
}
