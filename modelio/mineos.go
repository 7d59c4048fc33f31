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

package modelio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/earthmodel/radial"
)

// ReadMineos reads a model in the Mineos tabular deck format: a title
// line; a line with the anisotropy flag, the reference period [s], and
// the deck flag (which must be 1 for a tabular deck); a line with the
// node count and the knot counts of the inner and outer core; then one
// line per node with radius [m], density [kg/m³], vpv, vsv [m/s],
// qkappa, qshear, vph, vsh [m/s], and eta, ordered from the center up.
// Values are converted to km, g/cm³, and km/s. For an anisotropic deck
// the isotropic vp and vs are filled in with the Voigt averages of the
// quintet.
func ReadMineos(r io.Reader) (*radial.LinearModel, error) {
	scanner := bufio.NewScanner(r)
	var ifanis, ifdeck, n int
	var tref float64
	line := 0
	var radii []float64
	var p radial.Profile
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		switch line {
		case 1:
			continue // title
		case 2:
			fields := strings.Fields(text)
			if len(fields) != 3 {
				return nil, fmt.Errorf("modelio: deck line 2: expected 'ifanis tref ifdeck', got %q", text)
			}
			var err error
			if ifanis, err = strconv.Atoi(fields[0]); err != nil {
				return nil, fmt.Errorf("modelio: deck line 2: %v", err)
			}
			if tref, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, fmt.Errorf("modelio: deck line 2: %v", err)
			}
			if ifdeck, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("modelio: deck line 2: %v", err)
			}
			if ifdeck != 1 {
				return nil, fmt.Errorf("modelio: only tabular decks are supported (ifdeck = %d)", ifdeck)
			}
		case 3:
			// The knot counts of the inner and outer core are
			// redundant with the node table and are ignored.
			fields := strings.Fields(text)
			if len(fields) != 3 {
				return nil, fmt.Errorf("modelio: deck line 3: expected 'n nic noc', got %q", text)
			}
			var err error
			if n, err = strconv.Atoi(fields[0]); err != nil {
				return nil, fmt.Errorf("modelio: deck line 3: %v", err)
			}
			radii = make([]float64, 0, n)
			p = radial.Profile{
				Rho:    make([]float64, 0, n),
				VPV:    make([]float64, 0, n),
				VSV:    make([]float64, 0, n),
				QKappa: make([]float64, 0, n),
				QMu:    make([]float64, 0, n),
				VPH:    make([]float64, 0, n),
				VSH:    make([]float64, 0, n),
				Eta:    make([]float64, 0, n),
			}
		default:
			if text == "" {
				continue
			}
			fields := strings.Fields(text)
			if len(fields) != 9 {
				return nil, fmt.Errorf("modelio: deck line %d: expected 9 columns, got %d", line, len(fields))
			}
			vals := make([]float64, 9)
			for i, f := range fields {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("modelio: deck line %d: %v", line, err)
				}
				vals[i] = v
			}
			radii = append(radii, vals[0]/1000)
			p.Rho = append(p.Rho, vals[1]/1000)
			p.VPV = append(p.VPV, vals[2]/1000)
			p.VSV = append(p.VSV, vals[3]/1000)
			p.QKappa = append(p.QKappa, vals[4])
			p.QMu = append(p.QMu, vals[5])
			p.VPH = append(p.VPH, vals[6]/1000)
			p.VSH = append(p.VSH, vals[7]/1000)
			p.Eta = append(p.Eta, vals[8])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("modelio: reading deck: %v", err)
	}
	if len(radii) != n {
		return nil, fmt.Errorf("modelio: deck declares %d nodes but has %d", n, len(radii))
	}

	p.Vp = make([]float64, len(radii))
	p.Vs = make([]float64, len(radii))
	for i := range radii {
		p.Vp[i] = math.Sqrt((p.VPV[i]*p.VPV[i] + 4*p.VPH[i]*p.VPH[i]) / 5)
		p.Vs[i] = math.Sqrt((2*p.VSV[i]*p.VSV[i] + p.VSH[i]*p.VSH[i]) / 3)
	}
	if ifanis == 0 {
		// An isotropic deck repeats vp and vs in both polarization
		// columns; keep only the isotropic tables.
		p.VPV, p.VPH, p.VSV, p.VSH, p.Eta = nil, nil, nil, nil, nil
	}
	if tref > 0 {
		p.ReferenceFrequency = 1 / tref
	}
	return radial.NewLinear(radii, p)
}

// WriteMineos writes a linear model as a Mineos tabular deck with the
// given title. The model must carry density and quality factors; an
// isotropic model is written with its vp and vs in both polarization
// columns and eta = 1. The inner- and outer-core knot counts in the
// header are found by scanning for the liquid core, and are written as
// zero for models without an Earth-like core structure.
func WriteMineos(w io.Writer, m *radial.LinearModel, title string) error {
	if !m.HasDensity() {
		return fmt.Errorf("modelio: %w: a deck needs density", radial.ErrUndefinedProperty)
	}
	if !m.HasAttenuation() {
		return fmt.Errorf("modelio: %w: a deck needs quality factors", radial.ErrUndefinedProperty)
	}
	ifanis := 0
	if m.IsAnisotropic() {
		ifanis = 1
	}
	tref := -1.
	if f, ok := m.ReferenceFrequency(); ok {
		tref = 1 / f
	}
	radii := m.NodeRadii()
	nic, noc := coreKnots(m)
	if _, err := fmt.Fprintf(w, "%s\n%d %g 1\n%d %d %d\n", title, ifanis, tref, len(radii), nic, noc); err != nil {
		return err
	}

	cols := []radial.Property{radial.Rho, radial.VPV, radial.VSV, radial.QKappa, radial.QMu,
		radial.VPH, radial.VSH, radial.Eta}
	if ifanis == 0 {
		cols = []radial.Property{radial.Rho, radial.Vp, radial.Vs, radial.QKappa, radial.QMu,
			radial.Vp, radial.Vs, radial.Eta}
	}
	for i, r := range radii {
		row := make([]float64, len(cols))
		for j, p := range cols {
			if ifanis == 0 && p == radial.Eta {
				row[j] = 1
				continue
			}
			v, err := m.NodeValue(p, i)
			if err != nil {
				return err
			}
			row[j] = v
		}
		_, err := fmt.Fprintf(w, "%8.0f. %9.2f %9.2f %9.2f %9.1f %9.1f %9.2f %9.2f %9.5f\n",
			r*1000, row[0]*1000, row[1]*1000, row[2]*1000, row[3], row[4],
			row[5]*1000, row[6]*1000, row[7])
		if err != nil {
			return err
		}
	}
	return nil
}

// coreKnots converts the core boundary layer indices to the knot counts
// of the inner and outer core used in the deck header. In a linear
// model with doubled nodes at the core boundaries, the layer index of a
// region's first interval equals the number of nodes below it.
func coreKnots(m *radial.LinearModel) (nic, noc int) {
	icb, cmb, err := radial.CoreBoundaries(m)
	if err != nil {
		return 0, 0
	}
	return icb, cmb
}
