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
	"encoding/csv"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/earthmodel/radial"
)

func TestLoadModelBuiltin(t *testing.T) {
	m, err := LoadModel("prem")
	if err != nil {
		t.Fatal(err)
	}
	if r := m.SurfaceRadius(); r != 6371 {
		t.Errorf("surface radius = %g, want 6371", r)
	}
	if _, err := LoadModel("atlantis"); err == nil {
		t.Error("an unknown model should be an error")
	}
}

func TestEval(t *testing.T) {
	dir, err := ioutil.TempDir("", "radialutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	m, err := LoadModel("prem")
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.csv")
	if err := Eval(m, out, map[string]string{"vp": "vp", "vs": "vs"}, 1000); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 9 { // header + radii 0, 1000, ..., 6000, 6371
		t.Errorf("got %d rows, want 9", len(rows))
	}
}

func TestConvertRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "radialutil")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	m, err := LoadModel("prem")
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "prem.tvel")
	if err := Convert(m, "linear", out, "PREM resampled", 100, 3); err != nil {
		t.Fatal(err)
	}
	got, err := LoadModel(out)
	if err != nil {
		t.Fatal(err)
	}
	if r := got.SurfaceRadius(); r != 6371 {
		t.Errorf("surface radius = %g, want 6371", r)
	}

	mp, err := radial.TotalMass(m)
	if err != nil {
		t.Fatal(err)
	}
	mg, err := radial.TotalMass(got)
	if err != nil {
		t.Fatal(err)
	}
	if 2*(mp-mg)/(mp+mg) > 0.01 || 2*(mg-mp)/(mp+mg) > 0.01 {
		t.Errorf("total mass drifted: %g vs %g", mp, mg)
	}

	if err := Convert(m, "hexagonal", out, "x", 100, 3); err == nil {
		t.Error("an unknown conversion target should be an error")
	}
}

func TestDescribe(t *testing.T) {
	m, err := LoadModel("prem")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Describe(m, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"surface radius: 6371 km",
		"layers: 13",
		"anisotropic: true",
		"reference frequency: 1 Hz",
		"total mass:",
		"moment of inertia factor:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("describe output is missing %q:\n%s", want, out)
		}
	}
}
