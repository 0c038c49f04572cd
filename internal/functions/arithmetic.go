// Arithmetic operator bodies: the closed {+ - * / % ^ neg} set plus
// abs, sqrt and factorial.
package functions

import (
	"math"
	"math/big"

	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
	"github.com/vmauery/smrtclcltr-sub000/internal/units"
)

var addFn = &fn{
	name: "+", argsN: 2, respN: 1, usage: registry.UsageInfix,
	help: "pop two values, push their sum",
}

var subFn = &fn{
	name: "-", argsN: 2, respN: 1, usage: registry.UsageInfix,
	help: "pop two values, push their difference",
}

var mulFn = &fn{
	name: "*", argsN: 2, respN: 1, usage: registry.UsageInfix,
	help: "pop two values, push their product",
}

var divFn = &fn{
	name: "/", argsN: 2, respN: 1, usage: registry.UsageInfix,
	help: "pop two values, push their quotient",
}

var modFn = &fn{
	name: "%", argsN: 2, respN: 1, usage: registry.UsageInfix,
	help: "pop two values, push the residue after the largest integral multiple",
}

var powFn = &fn{
	name: "^", argsN: 2, respN: 1, usage: registry.UsageInfix,
	help: "pop base and exponent, push base raised to exponent",
}

var negFn = &fn{
	name: "neg", argsN: 1, respN: 1, usage: registry.UsagePrefix,
	help: "pop a value, push its negation",
}

var absFn = &fn{
	name: "abs", argsN: 1, respN: 1, usage: registry.UsageParen,
	help: "pop a value, push its magnitude",
}

// The op closures below reference their own fn vars (addFn, subFn, ...) by
// name, which would otherwise create a package-level initialization cycle;
// assigning them in init() breaks that cycle without changing behavior.
func init() {
	addFn.op = func(c *calculator.Calculator) error {
		return nArgOp(c, 2, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			u, err := resultUnit(us[0], us[1])
			if err != nil {
				return nil, units.None, err
			}
			r, err := combine(addFn, vals[0], vals[1], env(c), numeric.Add)
			return r, u, err
		})
	}

	subFn.op = func(c *calculator.Calculator) error {
		return nArgOp(c, 2, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			u, err := resultUnit(us[0], us[1])
			if err != nil {
				return nil, units.None, err
			}
			r, err := combine(subFn, vals[0], vals[1], env(c), numeric.Sub)
			return r, u, err
		})
	}

	mulFn.op = func(c *calculator.Calculator) error {
		return nArgOp(c, 2, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			u, err := resultUnit(us[0], us[1])
			if err != nil {
				return nil, units.None, err
			}
			r, err := combine(mulFn, vals[0], vals[1], env(c), numeric.Mul)
			return r, u, err
		})
	}

	divFn.op = func(c *calculator.Calculator) error {
		return nArgOp(c, 2, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			u, err := resultUnit(us[0], us[1])
			if err != nil {
				return nil, units.None, err
			}
			r, err := combine(divFn, vals[0], vals[1], env(c), numeric.Div)
			return r, u, err
		})
	}

	modFn.op = func(c *calculator.Calculator) error {
		return nArgOp(c, 2, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			if r, ok := liftBinary(modFn, vals[0], vals[1]); ok {
				return r, units.None, nil
			}
			r, err := numeric.Mod(vals[0], vals[1], env(c))
			return r, units.None, err
		})
	}

	powFn.op = func(c *calculator.Calculator) error {
		return nArgOp(c, 2, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			if r, ok := liftBinary(powFn, vals[0], vals[1]); ok {
				return r, units.None, nil
			}
			r, err := numeric.Pow(vals[0], vals[1], env(c))
			return r, units.None, err
		})
	}

	negFn.op = func(c *calculator.Calculator) error {
		return nArgOp(c, 1, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			if r, ok := liftUnary(negFn, vals[0]); ok {
				return r, us[0], nil
			}
			return numeric.Reduce(numeric.Neg(vals[0])), us[0], nil
		})
	}

	absFn.op = func(c *calculator.Calculator) error {
		return nArgOp(c, 1, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			if r, ok := liftUnary(absFn, vals[0]); ok {
				return r, us[0], nil
			}
			r, err := absValue(vals[0], env(c))
			return r, us[0], err
		})
	}
}

func absValue(v numeric.Atom, e numeric.Env) (numeric.Atom, error) {
	switch a := v.(type) {
	case *numeric.Int:
		return numeric.NewIntFromBig(new(big.Int).Abs(a.V)), nil
	case *numeric.Rat:
		return numeric.NewRatFromBig(new(big.Rat).Abs(a.V)), nil
	case *numeric.Flt:
		return &numeric.Flt{V: new(big.Float).Abs(a.V), Prec: a.Prec}, nil
	case *numeric.Cmp:
		mag, _ := a.Polar()
		return numeric.Reduce(&numeric.Flt{V: mag, Prec: a.Prec}), nil
	default:
		return nil, cerr.New(cerr.InvalidArgument, "abs requires a numeric operand")
	}
}

var sqrtFn = &fn{
	name: "sqrt", argsN: 1, respN: 1, usage: registry.UsageParen,
	help: "pop a value, push its square root (complex if negative)",
}

var factorialFn = &fn{
	name: "!", argsN: 1, respN: 1, usage: registry.UsagePostfix,
	help: "pop a non-negative integer, push its factorial",
}

func init() {
	sqrtFn.op = func(calc *calculator.Calculator) error {
		return nArgOp(calc, 1, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			if r, ok := liftUnary(sqrtFn, vals[0]); ok {
				return r, us[0], nil
			}
			flt := numeric.ToFlt(vals[0], calc.Config.Precision)
			if flt == nil {
				return nil, units.None, cerr.New(cerr.InvalidArgument, "sqrt requires a real operand")
			}
			f, _ := flt.V.Float64()
			if f < 0 {
				cmp := numeric.NewCmp(0, math.Sqrt(-f), calc.Config.Precision)
				return numeric.Reduce(cmp), us[0], nil
			}
			return numeric.Reduce(numeric.NewFlt(math.Sqrt(f), flt.Prec)), us[0], nil
		})
	}

	factorialFn.op = func(c *calculator.Calculator) error {
		// Symbolic operands lift before the Int-only check, so "'x' !"
		// builds x! instead of being rejected for its kind.
		return nArgOp(c, 1, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			if r, ok := liftUnary(factorialFn, vals[0]); ok {
				return r, us[0], nil
			}
			n, ok := vals[0].(*numeric.Int)
			if !ok {
				return nil, units.None, cerr.Newf(cerr.InvalidArgument, "unsupported operand kind %s", vals[0].Kind())
			}
			if n.V.Sign() < 0 {
				return nil, units.None, cerr.New(cerr.Domain, "factorial of a negative integer is undefined")
			}
			if !n.V.IsUint64() {
				return nil, units.None, cerr.New(cerr.InvalidArgument, "factorial argument too large")
			}
			result := new(big.Int).MulRange(1, int64(n.V.Uint64()))
			if n.V.Sign() == 0 {
				result = big.NewInt(1)
			}
			return numeric.NewIntFromBig(result), us[0], nil
		})
	}
}

var toFloatFn = &fn{
	name: "f", argsN: 1, respN: 1, usage: registry.UsageNone,
	help: "pop a value, push it converted to a float at the current precision",
	op: func(c *calculator.Calculator) error {
		return nArgLimitedOp(c, 1, []numeric.Kind{numeric.KindInt, numeric.KindRat, numeric.KindFlt}, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			return numeric.ToFlt(vals[0], c.Config.Precision), us[0], nil
		})
	},
}

// resultUnit: compatible units keep the left operand's tag and the right
// operand's value is used as is (units.Compat only accepts identical tags,
// for which conversion is the identity); incompatible ones fail with
// UnitsMismatch, and either side being unitless carries the other's tag
// forward unchanged.
func resultUnit(a, b units.Unit) (units.Unit, error) {
	if a == nil || a.Empty() {
		return b, nil
	}
	if b == nil || b.Empty() {
		return a, nil
	}
	if !units.Compat(a, b) {
		return units.None, cerr.Newf(cerr.UnitsMismatch, "incompatible units %s and %s", a.String(), b.String())
	}
	return a, nil
}
