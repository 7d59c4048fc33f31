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

import "errors"

// ErrInvalidModel is returned by the model constructors when the input
// arrays do not describe a valid model, for example when radii are not
// monotonic or property arrays have mismatched lengths.
var ErrInvalidModel = errors.New("invalid model specification")

// ErrRadiusOutOfRange is returned when a queried radius is negative or
// larger than the surface radius of the model.
var ErrRadiusOutOfRange = errors.New("radius out of range")

// ErrUndefinedProperty is returned when a requested property is not
// defined for a model, for example density on a model constructed
// without a density table, or an attenuation correction on a model
// without quality factors.
var ErrUndefinedProperty = errors.New("property not defined for model")

// ErrCoreStructure is returned by CoreBoundaries when a model does not
// have the assumed solid inner core / liquid outer core / solid mantle
// layering.
var ErrCoreStructure = errors.New("no unique liquid core found")
