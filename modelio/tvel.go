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

// Package modelio reads and writes radial models in the text formats
// used by travel-time and normal-mode software: the tvel format and the
// Mineos tabular deck. Both formats are node-based and map onto the
// piecewise-linear model variant.
package modelio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/earthmodel/radial"
)

// ReadTvel reads a model in tvel format: two comment lines, then one
// line per node with depth [km], vp [km/s], vs [km/s], and optionally
// density [g/cm³], ordered from the surface down to the center. A
// repeated depth encodes a discontinuity. The deepest node must reach
// the center; its depth is the surface radius.
func ReadTvel(r io.Reader) (*radial.LinearModel, error) {
	scanner := bufio.NewScanner(r)
	var depths, vp, vs, rho []float64
	line := 0
	hasRho := false
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if line <= 2 || text == "" {
			continue // header comments
		}
		fields := strings.Fields(text)
		if len(fields) != 3 && len(fields) != 4 {
			return nil, fmt.Errorf("modelio: tvel line %d: expected 3 or 4 columns, got %d", line, len(fields))
		}
		if len(depths) == 0 {
			hasRho = len(fields) == 4
		} else if hasRho != (len(fields) == 4) {
			return nil, fmt.Errorf("modelio: tvel line %d: inconsistent column count", line)
		}
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("modelio: tvel line %d: %v", line, err)
			}
			vals[i] = v
		}
		depths = append(depths, vals[0])
		vp = append(vp, vals[1])
		vs = append(vs, vals[2])
		if hasRho {
			rho = append(rho, vals[3])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("modelio: reading tvel: %v", err)
	}
	if len(depths) < 2 {
		return nil, fmt.Errorf("modelio: tvel file has %d nodes, need at least 2", len(depths))
	}

	// Convert surface-down depths to center-up radii.
	surface := depths[len(depths)-1]
	n := len(depths)
	radii := make([]float64, n)
	p := radial.Profile{Vp: make([]float64, n), Vs: make([]float64, n)}
	if hasRho {
		p.Rho = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		j := n - 1 - i
		radii[i] = surface - depths[j]
		p.Vp[i] = vp[j]
		p.Vs[i] = vs[j]
		if hasRho {
			p.Rho[i] = rho[j]
		}
	}
	return radial.NewLinear(radii, p)
}

// WriteTvel writes a linear model in tvel format with the given title
// on the two comment lines. Density is included only if the model
// carries it; the anisotropy quintet and quality factors cannot be
// represented in this format and are dropped.
func WriteTvel(w io.Writer, m *radial.LinearModel, title string) error {
	if _, err := fmt.Fprintf(w, "%s - P\n%s - S\n", title, title); err != nil {
		return err
	}
	radii := m.NodeRadii()
	surface := m.SurfaceRadius()
	for i := len(radii) - 1; i >= 0; i-- {
		vp, err := m.NodeValue(radial.Vp, i)
		if err != nil {
			return err
		}
		vs, err := m.NodeValue(radial.Vs, i)
		if err != nil {
			return err
		}
		depth := surface - radii[i]
		if m.HasDensity() {
			rho, err := m.NodeValue(radial.Rho, i)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%9.3f %9.4f %9.4f %9.4f\n", depth, vp, vs, rho)
			if err != nil {
				return err
			}
		} else if _, err := fmt.Fprintf(w, "%9.3f %9.4f %9.4f\n", depth, vp, vs); err != nil {
			return err
		}
	}
	return nil
}
