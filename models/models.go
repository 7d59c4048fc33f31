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

// Package models provides built-in named reference models.
package models

import (
	"fmt"
	"sort"

	"github.com/earthmodel/radial"
)

var registry = map[string]func() radial.Model{
	"prem": func() radial.Model { return PREM() },
}

// Names returns the names of the built-in models in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the built-in model with the given name.
func Get(name string) (radial.Model, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("models: no built-in model named %q (have %v)", name, Names())
	}
	return f(), nil
}
