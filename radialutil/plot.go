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

package radialutil

import (
	"fmt"

	"github.com/earthmodel/radial"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot samples the given properties every spacing km and saves them as
// profiles against radius to fileName, in the image format implied by
// its extension.
func Plot(m radial.Model, properties []string, spacing float64, fileName string) error {
	if spacing <= 0 {
		return fmt.Errorf("radial: plot spacing must be positive (got %g km)", spacing)
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.X.Label.Text = "Radius (km)"
	p.Y.Label.Text = "Velocity (km/s), density (g/cm³)"

	a := m.SurfaceRadius()
	var lines []interface{}
	for _, name := range properties {
		prop, err := radial.ParseProperty(name)
		if err != nil {
			return err
		}
		var xys plotter.XYs
		for i := 0; ; i++ {
			r := float64(i) * spacing
			if r > a {
				break
			}
			v, err := radial.Evaluate(m, prop, r)
			if err != nil {
				return err
			}
			xys = append(xys, struct{ X, Y float64 }{r, v})
		}
		lines = append(lines, name, xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, fileName)
}
