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
	"errors"
	"testing"
)

// twoLayerPoly returns a small PREM-like polynomial model with a
// density discontinuity at 500 km.
func twoLayerPoly(t *testing.T) *PolynomialModel {
	t.Helper()
	m, err := NewPolynomial([]float64{500, 1000}, PolyProfile{
		Vp:  [][]float64{{11, 0, -4}, {8, -2}},
		Vs:  [][]float64{{3.5, 0, -1}, {4.5, -1}},
		Rho: [][]float64{{13, 0, -8}, {5, -1}},
		QMu: [][]float64{{100}, {300}}, QKappa: [][]float64{{1000}, {50000}},
		ReferenceFrequency: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestSteppedToLinearExact(t *testing.T) {
	const testTolerance = 1.e-12
	s, err := NewStepped([]float64{500, 1000},
		Profile{Vp: []float64{10, 8}, Vs: []float64{5, 4}, Rho: []float64{6, 4},
			ReferenceFrequency: 1})
	if err != nil {
		t.Fatal(err)
	}
	l, err := AsLinear(s, 0)
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := l.ReferenceFrequency(); !ok || f != 1 {
		t.Errorf("reference frequency not carried through: %g, %v", f, ok)
	}
	for _, r := range []float64{0, 250, 499, 500, 750, 1000} {
		want, err := VpAt(s, r)
		if err != nil {
			t.Fatal(err)
		}
		got, err := VpAt(l, r)
		if err != nil {
			t.Fatal(err)
		}
		if different(got, want, testTolerance) {
			t.Errorf("vp(%g): linear %g, stepped %g", r, got, want)
		}
	}

	// Constant density per segment means the closed-form mass
	// integrals of the two variants agree exactly.
	ms, err := TotalMass(s)
	if err != nil {
		t.Fatal(err)
	}
	ml, err := TotalMass(l)
	if err != nil {
		t.Fatal(err)
	}
	if different(ms, ml, testTolerance) {
		t.Errorf("total mass: stepped %g, linear %g", ms, ml)
	}
}

func TestLinearToStepped(t *testing.T) {
	l, err := NewLinear([]float64{0, 500, 500, 1000},
		Profile{Vp: []float64{11, 10, 8, 7}, Vs: []float64{6, 5, 4, 3.5},
			Rho: []float64{12, 11, 5, 4}})
	if err != nil {
		t.Fatal(err)
	}
	s, err := AsStepped(l, 50)
	if err != nil {
		t.Fatal(err)
	}

	// The discontinuity must fall exactly on a layer boundary.
	found := false
	for _, top := range s.LayerTops() {
		if top == 500 {
			found = true
		}
	}
	if !found {
		t.Error("the discontinuity at 500 km is not a layer boundary of the resampled model")
	}

	// Each layer takes the source value at its midpoint.
	want, err := VpAt(l, 25)
	if err != nil {
		t.Fatal(err)
	}
	got, err := VpAt(s, 10)
	if err != nil {
		t.Fatal(err)
	}
	if different(got, want, 1e-12) {
		t.Errorf("first layer value = %g, want midpoint value %g", got, want)
	}

	ml, err := TotalMass(l)
	if err != nil {
		t.Fatal(err)
	}
	ms, err := TotalMass(s)
	if err != nil {
		t.Fatal(err)
	}
	if different(ms, ml, 0.01) {
		t.Errorf("total mass drifted: linear %g, stepped %g", ml, ms)
	}
}

func TestPolynomialToLinear(t *testing.T) {
	p := twoLayerPoly(t)
	l, err := AsLinear(p, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !l.HasAttenuation() {
		t.Error("attenuation tables were dropped")
	}

	for _, r := range []float64{0, 123, 499, 501, 900, 1000} {
		want, err := VpAt(p, r)
		if err != nil {
			t.Fatal(err)
		}
		got, err := VpAt(l, r)
		if err != nil {
			t.Fatal(err)
		}
		if different(got, want, 0.01) {
			t.Errorf("vp(%g): linear %g, polynomial %g", r, got, want)
		}
	}

	// The discontinuity survives: values just below and at 500 km
	// come from different layers.
	i := -1
	for j, r := range l.NodeRadii() {
		if r == 500 {
			i = j
			break
		}
	}
	if i < 0 {
		t.Fatal("no node at the 500 km discontinuity")
	}
	below, err := l.NodeValue(Rho, i)
	if err != nil {
		t.Fatal(err)
	}
	above, err := l.NodeValue(Rho, i+1)
	if err != nil {
		t.Fatal(err)
	}
	if !different(below, above, 0.01) {
		t.Errorf("density discontinuity collapsed: %g == %g", below, above)
	}

	mp, err := TotalMass(p)
	if err != nil {
		t.Fatal(err)
	}
	ml, err := TotalMass(l)
	if err != nil {
		t.Fatal(err)
	}
	if different(mp, ml, 0.01) {
		t.Errorf("total mass drifted: polynomial %g, linear %g", mp, ml)
	}
}

func TestLinearToPolynomialExact(t *testing.T) {
	const testTolerance = 1.e-12
	l, err := NewLinear([]float64{0, 500, 500, 1000},
		Profile{Vp: []float64{11, 10, 8, 7}, Vs: []float64{6, 5, 4, 3.5},
			Rho: []float64{12, 11, 5, 4}})
	if err != nil {
		t.Fatal(err)
	}
	p, err := AsPolynomial(l, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.NLayers() != 2 {
		t.Errorf("NLayers = %d, want 2", p.NLayers())
	}
	for _, r := range []float64{0, 250, 499, 500, 750, 1000} {
		want, err := RhoAt(l, r)
		if err != nil {
			t.Fatal(err)
		}
		got, err := RhoAt(p, r)
		if err != nil {
			t.Fatal(err)
		}
		if different(got, want, testTolerance) {
			t.Errorf("rho(%g): polynomial %g, linear %g", r, got, want)
		}
	}
}

func TestSteppedToPolynomialExact(t *testing.T) {
	const testTolerance = 1.e-12
	s, err := NewStepped([]float64{500, 1000},
		Profile{Vp: []float64{10, 8}, Vs: []float64{5, 4}, Rho: []float64{6, 4}})
	if err != nil {
		t.Fatal(err)
	}
	p, err := AsPolynomial(s, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []float64{0, 499, 500, 1000} {
		want, err := VpAt(s, r)
		if err != nil {
			t.Fatal(err)
		}
		got, err := VpAt(p, r)
		if err != nil {
			t.Fatal(err)
		}
		if different(got, want, testTolerance) {
			t.Errorf("vp(%g): polynomial %g, stepped %g", r, got, want)
		}
	}
}

func TestConversionRoundTrip(t *testing.T) {
	p := twoLayerPoly(t)
	l, err := AsLinear(p, 20)
	if err != nil {
		t.Fatal(err)
	}
	s, err := AsStepped(l, 20)
	if err != nil {
		t.Fatal(err)
	}

	mp, err := TotalMass(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range []Model{l, s} {
		mm, err := TotalMass(m)
		if err != nil {
			t.Fatal(err)
		}
		if different(mm, mp, 0.01) {
			t.Errorf("%T total mass = %g, want %g within 1%%", m, mm, mp)
		}
		gp, err := Gravity(p, 1000)
		if err != nil {
			t.Fatal(err)
		}
		gm, err := Gravity(m, 1000)
		if err != nil {
			t.Fatal(err)
		}
		if different(gm, gp, 0.01) {
			t.Errorf("%T surface gravity = %g, want %g within 1%%", m, gm, gp)
		}
		pp, err := Pressure(p, 0)
		if err != nil {
			t.Fatal(err)
		}
		pm, err := Pressure(m, 0)
		if err != nil {
			t.Fatal(err)
		}
		if different(pm, pp, 0.01) {
			t.Errorf("%T central pressure = %g, want %g within 1%%", m, pm, pp)
		}
	}
}

func TestResampleBoundaryMerge(t *testing.T) {
	// A source discontinuity sitting on an exact multiple of the
	// spacing must merge with the resampling grid instead of leaving a
	// sliver layer next to it.
	m, err := NewLinear([]float64{0, 0.8, 0.8, 1},
		Profile{Vp: []float64{2, 3, 5, 6}, Vs: []float64{1, 1, 2, 2}})
	if err != nil {
		t.Fatal(err)
	}
	got, err := AsStepped(m, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if n := got.NLayers(); n != 10 {
		t.Errorf("NLayers = %d, want 10", n)
	}
	found := 0
	for _, top := range got.LayerTops() {
		if top == 0.8 {
			found++
		} else if top > 0.8-1e-9 && top < 0.8+1e-9 {
			t.Errorf("layer top %v sits next to the 0.8 boundary", top)
		}
	}
	if found != 1 {
		t.Errorf("the 0.8 boundary appears %d times, want once", found)
	}
}

func TestConversionErrors(t *testing.T) {
	p := twoLayerPoly(t)
	if _, err := AsLinear(p, 0); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("AsLinear with zero spacing: got %v, want ErrInvalidModel", err)
	}
	if _, err := AsStepped(p, -1); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("AsStepped with negative spacing: got %v, want ErrInvalidModel", err)
	}
	l, err := AsLinear(p, 100)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := AsPolynomial(l, 0); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("AsPolynomial(linear, 0): got %v, want ErrInvalidModel", err)
	}
	s, err := AsStepped(p, 100)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := AsPolynomial(s, -1); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("AsPolynomial(stepped, -1): got %v, want ErrInvalidModel", err)
	}
}

func TestConversionIdentity(t *testing.T) {
	p := twoLayerPoly(t)
	if got, err := AsPolynomial(p, 3); err != nil || got != p {
		t.Errorf("AsPolynomial of a polynomial model should return it unchanged")
	}
	l, err := AsLinear(p, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got, err := AsLinear(l, 100); err != nil || got != l {
		t.Errorf("AsLinear of a linear model should return it unchanged")
	}
	s, err := AsStepped(p, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got, err := AsStepped(s, 100); err != nil || got != s {
		t.Errorf("AsStepped of a stepped model should return it unchanged")
	}
}

func TestFitPolynomial(t *testing.T) {
	const testTolerance = 1.e-8

	// Fitting a source that is itself polynomial of the same order
	// recovers it exactly (up to roundoff).
	p := twoLayerPoly(t)
	fit, err := FitPolynomial(p, []float64{500, 1000}, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []float64{0, 123, 499, 501, 900, 1000} {
		want, err := RhoAt(p, r)
		if err != nil {
			t.Fatal(err)
		}
		got, err := RhoAt(fit, r)
		if err != nil {
			t.Fatal(err)
		}
		if different(got, want, testTolerance) {
			t.Errorf("rho(%g): fit %g, source %g", r, got, want)
		}
	}

	// Collapsing many linear segments into one smooth region.
	l, err := AsLinear(p, 10)
	if err != nil {
		t.Fatal(err)
	}
	coarse, err := FitPolynomial(l, []float64{500, 1000}, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if coarse.NLayers() != 2 {
		t.Errorf("NLayers = %d, want 2", coarse.NLayers())
	}
	ml, err := TotalMass(l)
	if err != nil {
		t.Fatal(err)
	}
	mc, err := TotalMass(coarse)
	if err != nil {
		t.Fatal(err)
	}
	if different(mc, ml, 0.01) {
		t.Errorf("total mass after simplification = %g, want %g within 1%%", mc, ml)
	}

	// The requested boundaries must reach the surface.
	if _, err := FitPolynomial(p, []float64{500}, 2, 10); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("got %v, want ErrInvalidModel", err)
	}
}
