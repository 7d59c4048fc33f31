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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/earthmodel/radial"
	"github.com/earthmodel/radial/modelio"
	"github.com/earthmodel/radial/models"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// LoadModel loads the model given by name: the name of a built-in
// model, the path to a tvel file, or the path to a Mineos tabular deck.
func LoadModel(name string) (radial.Model, error) {
	if _, err := os.Stat(name); err != nil {
		return models.Get(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("radial: opening model file: %v", err)
	}
	defer f.Close()
	if strings.ToLower(filepath.Ext(name)) == ".tvel" {
		return modelio.ReadTvel(f)
	}
	return modelio.ReadMineos(f)
}

// Eval samples the model every spacing km and writes the evaluated
// output expressions to outputFile as CSV.
func Eval(m radial.Model, outputFile string, outputVariables map[string]string, spacing float64) error {
	o, err := radial.NewOutputter(spacing, outputVariables, nil)
	if err != nil {
		return err
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("radial: creating output file: %v", err)
	}
	if err := o.Write(m, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Convert converts m to the variant named by to ('stepped', 'linear',
// or 'polynomial') and writes the result to outputFile: in tvel format
// if the path ends in '.tvel', otherwise as a Mineos tabular deck.
// Stepped and polynomial results are resampled back onto nodes for
// writing, since both file formats are node-based.
func Convert(m radial.Model, to, outputFile, title string, spacing float64, order int) error {
	var out *radial.LinearModel
	switch to {
	case "linear":
		var err error
		out, err = radial.AsLinear(m, spacing)
		if err != nil {
			return err
		}
	case "stepped":
		s, err := radial.AsStepped(m, spacing)
		if err != nil {
			return err
		}
		if out, err = radial.AsLinear(s, spacing); err != nil {
			return err
		}
	case "polynomial":
		p, err := radial.AsPolynomial(m, order)
		if err != nil {
			return err
		}
		if out, err = radial.AsLinear(p, spacing); err != nil {
			return err
		}
	default:
		return fmt.Errorf("radial: invalid conversion target %q; valid options are 'stepped', 'linear', and 'polynomial'", to)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("radial: creating output file: %v", err)
	}
	if strings.ToLower(filepath.Ext(outputFile)) == ".tvel" {
		err = modelio.WriteTvel(f, out, title)
	} else {
		err = modelio.WriteMineos(f, out, title)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Describe writes a summary of the model structure and its bulk derived
// quantities to w.
func Describe(m radial.Model, w io.Writer) error {
	a := m.SurfaceRadius()
	fmt.Fprintf(w, "surface radius: %g km\n", a)
	fmt.Fprintf(w, "layers: %d\n", m.NLayers())
	fmt.Fprintf(w, "anisotropic: %v\n", m.IsAnisotropic())
	fmt.Fprintf(w, "attenuation: %v\n", m.HasAttenuation())
	if f, ok := m.ReferenceFrequency(); ok {
		fmt.Fprintf(w, "reference frequency: %g Hz\n", f)
	}
	if lm, ok := m.(*radial.LinearModel); ok {
		for _, d := range radial.Discontinuities(lm) {
			fmt.Fprintf(w, "discontinuity: %g km\n", d.Radius)
		}
	}
	if !m.HasDensity() {
		return nil
	}
	mass, err := radial.TotalMass(m)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "total mass: %.4g kg\n", mass)
	g, err := radial.Gravity(m, a)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "surface gravity: %.4g m/s²\n", g)
	moi, err := radial.MomentOfInertia(m)
	if err != nil {
		return err
	}
	aM := a * 1e3
	fmt.Fprintf(w, "moment of inertia factor: %.4f\n", moi/(mass*aM*aM))
	return nil
}

// GetStringMapString returns a map[string]string from a viper
// configuration, accounting for the fact that it might be a json object
// if it was set from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) map[string]string {
	i := cfg.Get(varName)
	switch i.(type) {
	case map[string]string:
		return i.(map[string]string)
	case map[string]interface{}:
		return cast.ToStringMapString(i)
	case string:
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			panic(err)
		}
		return o
	default:
		panic(fmt.Errorf("invalid type for GetStringMapString variable %s: %#v", varName, i))
	}
}
