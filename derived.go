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

// checkDensity verifies that m can support mass-derived quantities.
func checkDensity(m Model) error {
	if !m.HasDensity() {
		return fmt.Errorf("radial: %w: %v", ErrUndefinedProperty, Rho)
	}
	return nil
}

// Mass returns the mass [kg] enclosed within radius r [km], using the
// closed-form layer integrals of the model variant.
func Mass(m Model, r float64, opts ...EvalOption) (float64, error) {
	r, _ = resolve(m, r, opts)
	if err := checkDensity(m); err != nil {
		return 0, err
	}
	if err := checkRadius(m, r); err != nil {
		return 0, err
	}
	return m.massBelow(r)
}

// TotalMass returns the mass [kg] of the whole model.
func TotalMass(m Model) (float64, error) {
	return Mass(m, m.SurfaceRadius())
}

// MassAbove returns the mass [kg] of the shell between radius r [km] and
// the surface.
func MassAbove(m Model, r float64, opts ...EvalOption) (float64, error) {
	total, err := TotalMass(m)
	if err != nil {
		return 0, err
	}
	below, err := Mass(m, r, opts...)
	if err != nil {
		return 0, err
	}
	return total - below, nil
}

// Gravity returns the gravitational acceleration [m/s²] at radius r
// [km]. Only the mass below r contributes; at the center the
// acceleration is zero.
func Gravity(m Model, r float64, opts ...EvalOption) (float64, error) {
	r, _ = resolve(m, r, opts)
	if r == 0 {
		if err := checkDensity(m); err != nil {
			return 0, err
		}
		return 0, nil
	}
	mass, err := Mass(m, r)
	if err != nil {
		return 0, err
	}
	rm := r * 1e3
	return G * mass / (rm * rm), nil
}

// Pressure returns the hydrostatic pressure [Pa] at radius r [km],
// integrating ρg from r to the surface by adaptive quadrature. Unlike
// the other integral quantities this has no closed form, because
// gravity itself is an integral of the density profile.
func Pressure(m Model, r float64, opts ...EvalOption) (float64, error) {
	r, _ = resolve(m, r, opts)
	if err := checkDensity(m); err != nil {
		return 0, err
	}
	if err := checkRadius(m, r); err != nil {
		return 0, err
	}
	var ferr error
	f := func(rm float64) float64 {
		rkm := rm / 1e3
		rho, err := m.value(Rho, rkm)
		if err != nil {
			ferr = err
			return 0
		}
		g, err := Gravity(m, rkm)
		if err != nil {
			ferr = err
			return 0
		}
		return rho * 1e3 * g
	}
	p := integrateShells(m, f, r, m.SurfaceRadius())
	return p, ferr
}

// MomentOfInertia returns the moment of inertia [kg m²] of the whole
// model about its rotation axis.
func MomentOfInertia(m Model) (float64, error) {
	return MomentOfInertiaBetween(m, 0, m.SurfaceRadius())
}

// MomentOfInertiaBetween returns the moment of inertia [kg m²] of the
// shell between radii r0 and r1 [km], by adaptive quadrature of
// (8/3)πρr⁴.
func MomentOfInertiaBetween(m Model, r0, r1 float64, opts ...EvalOption) (float64, error) {
	r0, _ = resolve(m, r0, opts)
	r1, _ = resolve(m, r1, opts)
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	if err := checkDensity(m); err != nil {
		return 0, err
	}
	if err := checkRadius(m, r0); err != nil {
		return 0, err
	}
	if err := checkRadius(m, r1); err != nil {
		return 0, err
	}
	var ferr error
	f := func(rm float64) float64 {
		rho, err := m.value(Rho, rm/1e3)
		if err != nil {
			ferr = err
			return 0
		}
		return 8. / 3. * math.Pi * rho * 1e3 * rm * rm * rm * rm
	}
	v := integrateShells(m, f, r0, r1)
	return v, ferr
}

// ShearModulus returns the shear modulus μ = ρvs² [Pa] at radius r [km].
func ShearModulus(m Model, r float64, opts ...EvalOption) (float64, error) {
	r, _ = resolve(m, r, opts)
	if err := checkDensity(m); err != nil {
		return 0, err
	}
	rho, err := m.value(Rho, r)
	if err != nil {
		return 0, err
	}
	vs, err := m.value(Vs, r)
	if err != nil {
		return 0, err
	}
	vsm := vs * 1e3
	return rho * 1e3 * vsm * vsm, nil
}

// BulkModulus returns the bulk modulus K = ρvp² - (4/3)μ [Pa] at radius
// r [km].
func BulkModulus(m Model, r float64, opts ...EvalOption) (float64, error) {
	r, _ = resolve(m, r, opts)
	mu, err := ShearModulus(m, r)
	if err != nil {
		return 0, err
	}
	rho, err := m.value(Rho, r)
	if err != nil {
		return 0, err
	}
	vp, err := m.value(Vp, r)
	if err != nil {
		return 0, err
	}
	vpm := vp * 1e3
	return rho*1e3*vpm*vpm - 4./3.*mu, nil
}

// PoissonsRatio returns Poisson's ratio ν = (3K-2μ)/(6K+2μ) at radius r
// [km].
func PoissonsRatio(m Model, r float64, opts ...EvalOption) (float64, error) {
	r, _ = resolve(m, r, opts)
	k, err := BulkModulus(m, r)
	if err != nil {
		return 0, err
	}
	mu, err := ShearModulus(m, r)
	if err != nil {
		return 0, err
	}
	return (3*k - 2*mu) / (6*k + 2*mu), nil
}

// YoungsModulus returns Young's modulus E = 2μ(1+ν) [Pa] at radius r
// [km].
func YoungsModulus(m Model, r float64, opts ...EvalOption) (float64, error) {
	r, _ = resolve(m, r, opts)
	mu, err := ShearModulus(m, r)
	if err != nil {
		return 0, err
	}
	nu, err := PoissonsRatio(m, r)
	if err != nil {
		return 0, err
	}
	return 2 * mu * (1 + nu), nil
}
