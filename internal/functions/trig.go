// Trigonometric words, honoring the configured angle mode.
// All six wrap nArgConv, which widens the operand to Flt and rejects a
// symbolic operand, then evaluate through float64 (math.Sin and friends);
// all six read the calculator's AngleMode to interpret/produce angles.
package functions

import (
	"math"

	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
	"github.com/vmauery/smrtclcltr-sub000/internal/units"
)

func toRadians(v float64, mode calculator.AngleMode) float64 {
	switch mode {
	case calculator.AngleDeg:
		return v * math.Pi / 180
	case calculator.AngleGrad:
		return v * math.Pi / 200
	default:
		return v
	}
}

func fromRadians(rad float64, mode calculator.AngleMode) float64 {
	switch mode {
	case calculator.AngleDeg:
		return rad * 180 / math.Pi
	case calculator.AngleGrad:
		return rad * 200 / math.Pi
	default:
		return rad
	}
}

func trigFn(name string, f func(rad float64) float64) *fn {
	return &fn{
		name: name, argsN: 1, respN: 1, usage: registry.UsageParen,
		help: "pop an angle in the current angle mode, push its " + name,
		op: func(c *calculator.Calculator) error {
			return nArgConv(c, 1, func(vals []*numeric.Flt, us []units.Unit) (numeric.Atom, units.Unit, error) {
				x, _ := vals[0].V.Float64()
				rad := toRadians(x, c.Config.AngleMode)
				return numeric.Reduce(numeric.NewFlt(f(rad), vals[0].Prec)), units.None, nil
			})
		},
	}
}

func invTrigFn(name string, f func(ratio float64) float64) *fn {
	return &fn{
		name: name, argsN: 1, respN: 1, usage: registry.UsageParen,
		help: "pop a ratio, push the angle (in the current angle mode) whose " + name[1:] + " it is",
		op: func(c *calculator.Calculator) error {
			return nArgConv(c, 1, func(vals []*numeric.Flt, us []units.Unit) (numeric.Atom, units.Unit, error) {
				x, _ := vals[0].V.Float64()
				rad := f(x)
				if math.IsNaN(rad) {
					return nil, units.None, cerr.Newf(cerr.Domain, "%s is undefined outside [-1, 1]", name)
				}
				return numeric.Reduce(numeric.NewFlt(fromRadians(rad, c.Config.AngleMode), vals[0].Prec)), units.None, nil
			})
		},
	}
}

var sinFn = trigFn("sin", math.Sin)
var cosFn = trigFn("cos", math.Cos)
var tanFn = trigFn("tan", math.Tan)
var asinFn = invTrigFn("asin", math.Asin)
var acosFn = invTrigFn("acos", math.Acos)
var atanFn = invTrigFn("atan", math.Atan)
