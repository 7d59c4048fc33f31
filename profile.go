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

	"gonum.org/v1/gonum/floats"
)

// Profile holds the property samples used to construct a SteppedModel
// (one value per layer) or a LinearModel (one value per node). Vp and Vs
// are mandatory. Rho, the anisotropy quintet (VPV, VPH, VSV, VSH, Eta),
// and the attenuation pair (QMu, QKappa) are optional; a nil or empty
// slice means the property is absent. The quality factors may be given
// under either their ASCII names (QMu, QKappa) or their Greek names
// (Qμ, Qκ); supplying both spellings with different contents is an
// error. A quality factor of zero means no dissipation (infinite Q),
// following the convention of published model tables.
//
// ReferenceFrequency is the frequency [Hz] the velocities are specified
// at; values ≤ 0 mean the model has no reference frequency and cannot
// be corrected to other frequencies.
type Profile struct {
	Vp, Vs []float64
	Rho    []float64

	VPV, VPH, VSV, VSH, Eta []float64

	QMu, QKappa []float64
	Qμ, Qκ      []float64

	ReferenceFrequency float64
}

// tableSet holds one sample table per property for the stepped and
// linear variants. An empty table means the property is absent.
type tableSet [numProperties][]float64

func (t *tableSet) has(p Property) bool { return len(t[p]) > 0 }

func (t *tableSet) anisotropic() bool { return t.has(VPV) }

func (t *tableSet) attenuating() bool { return t.has(QMu) }

// tables resolves the Greek/ASCII quality factor spellings and gathers
// the profile into a tableSet, checking that every supplied table has
// length n.
func (p *Profile) tables(n int) (tableSet, error) {
	var t tableSet
	qmu, qkappa, err := resolveQ(p.QMu, p.Qμ, p.QKappa, p.Qκ)
	if err != nil {
		return t, err
	}
	if len(p.Vp) == 0 || len(p.Vs) == 0 {
		return t, fmt.Errorf("radial: %w: vp and vs are mandatory", ErrInvalidModel)
	}
	in := [numProperties][]float64{
		Vp: p.Vp, Vs: p.Vs, Rho: p.Rho,
		VPV: p.VPV, VPH: p.VPH, VSV: p.VSV, VSH: p.VSH, Eta: p.Eta,
		QMu: qmu, QKappa: qkappa,
	}
	for prop, table := range in {
		if len(table) == 0 {
			continue
		}
		if len(table) != n {
			return t, fmt.Errorf("radial: %w: %v has %d values but the model has %d",
				ErrInvalidModel, Property(prop), len(table), n)
		}
		t[prop] = append([]float64(nil), table...)
	}
	if err := checkGroups(func(p Property) bool { return t.has(p) }); err != nil {
		return t, err
	}
	return t, nil
}

// resolveQ merges the ASCII and Greek spellings of the quality factor
// tables, failing if both spellings of a table are supplied with
// different contents.
func resolveQ(qmu, qμ, qkappa, qκ []float64) (mu, kappa []float64, err error) {
	mu, err = mergeSpellings("qmu", qmu, qμ)
	if err != nil {
		return nil, nil, err
	}
	kappa, err = mergeSpellings("qkappa", qkappa, qκ)
	return mu, kappa, err
}

func mergeSpellings(name string, ascii, greek []float64) ([]float64, error) {
	if len(ascii) == 0 {
		return greek, nil
	}
	if len(greek) == 0 {
		return ascii, nil
	}
	if len(ascii) != len(greek) || !floats.Equal(ascii, greek) {
		return nil, fmt.Errorf("radial: %w: %s given under both spellings with different values",
			ErrInvalidModel, name)
	}
	return ascii, nil
}

// checkGroups verifies that the anisotropy quintet and the attenuation
// pair are each either fully present or fully absent.
func checkGroups(has func(Property) bool) error {
	aniso := 0
	for _, p := range [...]Property{VPV, VPH, VSV, VSH, Eta} {
		if has(p) {
			aniso++
		}
	}
	if aniso != 0 && aniso != 5 {
		return fmt.Errorf("radial: %w: anisotropy requires vpv, vph, vsv, vsh, and eta together",
			ErrInvalidModel)
	}
	if has(QMu) != has(QKappa) {
		return fmt.Errorf("radial: %w: attenuation requires both qmu and qkappa",
			ErrInvalidModel)
	}
	return nil
}

// PolyProfile holds the polynomial coefficients used to construct a
// PolynomialModel. Each property is a slice with one coefficient column
// per layer, ordered constant term first; the polynomial argument is the
// radius normalized by the surface radius. Presence rules and the
// Greek/ASCII quality factor spellings are as for Profile.
type PolyProfile struct {
	Vp, Vs [][]float64
	Rho    [][]float64

	VPV, VPH, VSV, VSH, Eta [][]float64

	QMu, QKappa [][]float64
	Qμ, Qκ      [][]float64

	ReferenceFrequency float64
}

// polySet holds one coefficient matrix per property for the polynomial
// variant. A nil matrix means the property is absent.
type polySet [numProperties][][]float64

func (t *polySet) has(p Property) bool { return len(t[p]) > 0 }

func (p *PolyProfile) tables(n int) (polySet, error) {
	var t polySet
	qmu, err := mergePolySpellings("qmu", p.QMu, p.Qμ)
	if err != nil {
		return t, err
	}
	qkappa, err := mergePolySpellings("qkappa", p.QKappa, p.Qκ)
	if err != nil {
		return t, err
	}
	if len(p.Vp) == 0 || len(p.Vs) == 0 {
		return t, fmt.Errorf("radial: %w: vp and vs are mandatory", ErrInvalidModel)
	}
	in := [numProperties][][]float64{
		Vp: p.Vp, Vs: p.Vs, Rho: p.Rho,
		VPV: p.VPV, VPH: p.VPH, VSV: p.VSV, VSH: p.VSH, Eta: p.Eta,
		QMu: qmu, QKappa: qkappa,
	}
	for prop, coefs := range in {
		if len(coefs) == 0 {
			continue
		}
		if len(coefs) != n {
			return t, fmt.Errorf("radial: %w: %v has coefficients for %d layers but the model has %d",
				ErrInvalidModel, Property(prop), len(coefs), n)
		}
		cp := make([][]float64, n)
		for i, c := range coefs {
			if len(c) == 0 {
				return t, fmt.Errorf("radial: %w: %v has no coefficients for layer %d",
					ErrInvalidModel, Property(prop), i)
			}
			cp[i] = append([]float64(nil), c...)
		}
		t[prop] = cp
	}
	if err := checkGroups(func(p Property) bool { return t.has(p) }); err != nil {
		return t, err
	}
	return t, nil
}

func mergePolySpellings(name string, ascii, greek [][]float64) ([][]float64, error) {
	if len(ascii) == 0 {
		return greek, nil
	}
	if len(greek) == 0 {
		return ascii, nil
	}
	same := len(ascii) == len(greek)
	for i := 0; same && i < len(ascii); i++ {
		same = len(ascii[i]) == len(greek[i]) && floats.Equal(ascii[i], greek[i])
	}
	if !same {
		return nil, fmt.Errorf("radial: %w: %s given under both spellings with different values",
			ErrInvalidModel, name)
	}
	return ascii, nil
}
