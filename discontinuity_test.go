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

// earthLike builds a linear model from (radius, vs) node pairs with
// dummy vp and density.
func earthLike(t *testing.T, radii, vs []float64) *LinearModel {
	t.Helper()
	vp := make([]float64, len(radii))
	rho := make([]float64, len(radii))
	for i := range vp {
		vp[i] = vs[i]*1.8 + 1
		rho[i] = 5
	}
	m, err := NewLinear(radii, Profile{Vp: vp, Vs: vs, Rho: rho})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestDiscontinuities(t *testing.T) {
	m := earthLike(t,
		[]float64{0, 600, 600, 1200, 1200, 2000},
		[]float64{3, 3, 0, 0, 4, 4})
	ds := Discontinuities(m)
	if len(ds) != 2 {
		t.Fatalf("found %d discontinuities, want 2", len(ds))
	}
	if ds[0].Radius != 600 || ds[0].Node != 1 {
		t.Errorf("first discontinuity = %+v, want radius 600 at node 1", ds[0])
	}
	if ds[1].Radius != 1200 || ds[1].Node != 3 {
		t.Errorf("second discontinuity = %+v, want radius 1200 at node 3", ds[1])
	}

	smooth := earthLike(t, []float64{0, 2000}, []float64{3, 4})
	if ds := Discontinuities(smooth); len(ds) != 0 {
		t.Errorf("smooth model reported %d discontinuities", len(ds))
	}
}

func TestCoreBoundaries(t *testing.T) {
	m := earthLike(t,
		[]float64{0, 600, 600, 1200, 1200, 2000},
		[]float64{3, 3, 0, 0, 4, 4})
	icb, cmb, err := CoreBoundaries(m)
	if err != nil {
		t.Fatal(err)
	}
	if icb != 2 || cmb != 4 {
		t.Errorf("icb, cmb = %d, %d; want 2, 4", icb, cmb)
	}
}

func TestCoreBoundariesOcean(t *testing.T) {
	// A liquid layer stack reaching the surface is an ocean, not a
	// second core.
	m := earthLike(t,
		[]float64{0, 600, 600, 1200, 1200, 1900, 1900, 2000},
		[]float64{3, 3, 0, 0, 4, 4, 0, 0})
	icb, cmb, err := CoreBoundaries(m)
	if err != nil {
		t.Fatal(err)
	}
	if icb != 2 || cmb != 4 {
		t.Errorf("icb, cmb = %d, %d; want 2, 4", icb, cmb)
	}
}

func TestCoreBoundariesStepped(t *testing.T) {
	m, err := NewStepped([]float64{600, 1200, 2000}, Profile{
		Vp:  []float64{6, 5, 8},
		Vs:  []float64{3, 0, 4},
		Rho: []float64{12, 10, 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	icb, cmb, err := CoreBoundaries(m)
	if err != nil {
		t.Fatal(err)
	}
	if icb != 1 || cmb != 2 {
		t.Errorf("icb, cmb = %d, %d; want 1, 2", icb, cmb)
	}
}

func TestCoreBoundariesErrors(t *testing.T) {
	// Liquid at the center.
	m := earthLike(t,
		[]float64{0, 1200, 1200, 2000},
		[]float64{0, 0, 4, 4})
	if _, _, err := CoreBoundaries(m); !errors.Is(err, ErrCoreStructure) {
		t.Errorf("liquid center: got %v, want ErrCoreStructure", err)
	}

	// No liquid shell at all (a Moon-like body).
	m = earthLike(t, []float64{0, 2000}, []float64{3, 4})
	if _, _, err := CoreBoundaries(m); !errors.Is(err, ErrCoreStructure) {
		t.Errorf("no core: got %v, want ErrCoreStructure", err)
	}

	// A second buried liquid shell with solid material above it.
	m = earthLike(t,
		[]float64{0, 500, 500, 1000, 1000, 1400, 1400, 1700, 1700, 2000},
		[]float64{3, 3, 0, 0, 4, 4, 0, 0, 5, 5})
	if _, _, err := CoreBoundaries(m); !errors.Is(err, ErrCoreStructure) {
		t.Errorf("two buried liquid shells: got %v, want ErrCoreStructure", err)
	}
}
