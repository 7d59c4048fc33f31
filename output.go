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
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"runtime"
	"sort"
	"strconv"

	"github.com/Knetic/govaluate"
	"github.com/ctessum/requestcache"
)

// derivedNames are the derived bulk quantities available as output
// expression variables, besides the property names and "radius" and
// "depth".
var derivedNames = map[string]struct{}{
	"mass":     {},
	"gravity":  {},
	"pressure": {},
}

// An Outputter samples a model on a regular radius grid and evaluates
// user-specified expressions at every sample, writing the result as
// CSV. Expressions can use the model's property names (e.g. "vp",
// "qmu"), the derived quantities "mass", "gravity", and "pressure"
// (SI units), the sample position "radius" and "depth" [km], and
// functions.
type Outputter struct {
	spacing         float64
	outputVariables map[string]string
	outputFunctions map[string]govaluate.ExpressionFunction
}

// NewOutputter initializes an Outputter that samples every spacing km.
// outputVariables maps output column names to expressions. Default
// functions include 'exp(x)', 'log(x)', 'sqrt(x)', and 'abs(x)';
// outputFunctions may add more or override them.
func NewOutputter(spacing float64, outputVariables map[string]string, outputFunctions map[string]govaluate.ExpressionFunction) (*Outputter, error) {
	if spacing <= 0 {
		return nil, fmt.Errorf("radial: output spacing must be positive (got %g km)", spacing)
	}
	if len(outputVariables) == 0 {
		return nil, fmt.Errorf("radial: no output variables specified")
	}
	defaultOutputFuncs := map[string]govaluate.ExpressionFunction{
		"exp": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("radial: got %d arguments for function 'exp', but needs 1", len(arg))
			}
			return math.Exp(arg[0].(float64)), nil
		},
		"log": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("radial: got %d arguments for function 'log', but needs 1", len(arg))
			}
			return math.Log(arg[0].(float64)), nil
		},
		"sqrt": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("radial: got %d arguments for function 'sqrt', but needs 1", len(arg))
			}
			return math.Sqrt(arg[0].(float64)), nil
		},
		"abs": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("radial: got %d arguments for function 'abs', but needs 1", len(arg))
			}
			return math.Abs(arg[0].(float64)), nil
		},
	}
	for key, val := range outputFunctions {
		defaultOutputFuncs[key] = val
	}
	return &Outputter{
		spacing:         spacing,
		outputVariables: outputVariables,
		outputFunctions: defaultOutputFuncs,
	}, nil
}

// derivedRequest asks the sample cache for one derived quantity at one
// radius.
type derivedRequest struct {
	quantity string
	r        float64
}

// Write samples m and writes the evaluated expressions to w as CSV,
// one row per sample radius in increasing order, with a leading
// "radius" column. The last row is always at the surface radius, even
// when the spacing does not divide it evenly.
func (o *Outputter) Write(m Model, w io.Writer) error {
	exprs := make(map[string]*govaluate.EvaluableExpression, len(o.outputVariables))
	needed := make(map[string]struct{})
	for name, val := range o.outputVariables {
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(val, o.outputFunctions)
		if err != nil {
			return fmt.Errorf("radial: output variable %s: %v", name, err)
		}
		exprs[name] = expr
		for _, v := range expr.Vars() {
			if err := checkOutputVar(m, v); err != nil {
				return err
			}
			needed[v] = struct{}{}
		}
	}

	// Derived quantities cost an integral per sample (pressure
	// especially, which needs a quadrature whose integrand itself
	// integrates mass), so route them through a deduplicating
	// memory cache.
	proc := func(ctx context.Context, payload interface{}) (interface{}, error) {
		req := payload.(derivedRequest)
		switch req.quantity {
		case "mass":
			return Mass(m, req.r)
		case "gravity":
			return Gravity(m, req.r)
		case "pressure":
			return Pressure(m, req.r)
		}
		return nil, fmt.Errorf("radial: unknown derived quantity %s", req.quantity)
	}
	cache := requestcache.NewCache(proc, runtime.GOMAXPROCS(0),
		requestcache.Deduplicate(), requestcache.Memory(10000))

	names := make([]string, 0, len(o.outputVariables))
	for name := range o.outputVariables {
		names = append(names, name)
	}
	sort.Strings(names)

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"radius"}, names...)); err != nil {
		return err
	}
	a := m.SurfaceRadius()
	for i := 0; ; i++ {
		r := float64(i) * o.spacing
		if r >= a {
			r = a
		}
		params := make(map[string]interface{}, len(needed))
		for v := range needed {
			val, err := o.sample(m, cache, v, r)
			if err != nil {
				return err
			}
			params[v] = val
		}
		row := make([]string, 0, len(names)+1)
		row = append(row, strconv.FormatFloat(r, 'g', -1, 64))
		for _, name := range names {
			result, err := exprs[name].Evaluate(params)
			if err != nil {
				return fmt.Errorf("radial: output variable %s: %v", name, err)
			}
			v, ok := result.(float64)
			if !ok {
				return fmt.Errorf("radial: output variable %s: expression result is %T, not a number", name, result)
			}
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		if r == a {
			break
		}
	}
	cw.Flush()
	return cw.Error()
}

func checkOutputVar(m Model, v string) error {
	if v == "radius" || v == "depth" {
		return nil
	}
	if _, ok := derivedNames[v]; ok {
		if !m.HasDensity() {
			return fmt.Errorf("radial: %w: output variable %s needs density", ErrUndefinedProperty, v)
		}
		return nil
	}
	p, err := ParseProperty(v)
	if err != nil {
		return fmt.Errorf("radial: undefined output variable name '%s'", v)
	}
	if !m.has(p) {
		return fmt.Errorf("radial: %w: %v", ErrUndefinedProperty, p)
	}
	return nil
}

func (o *Outputter) sample(m Model, cache *requestcache.Cache, v string, r float64) (float64, error) {
	switch v {
	case "radius":
		return r, nil
	case "depth":
		return DepthOf(m, r), nil
	}
	if _, ok := derivedNames[v]; ok {
		req := cache.NewRequest(context.Background(), derivedRequest{quantity: v, r: r},
			fmt.Sprintf("%s:%g", v, r))
		result, err := req.Result()
		if err != nil {
			return 0, err
		}
		return result.(float64), nil
	}
	p, err := ParseProperty(v)
	if err != nil {
		return 0, err
	}
	return Evaluate(m, p, r)
}
