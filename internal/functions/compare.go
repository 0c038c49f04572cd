// Comparison operators. Each pushes Int(1)/Int(0) rather than a separate
// boolean atom (the value domain has no Bool kind); the
// execution flags recompute from that push on every write,
// which is exactly what if/while conditions read.
package functions

import (
	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
	"github.com/vmauery/smrtclcltr-sub000/internal/units"
)

func boolAtom(b bool) *numeric.Int {
	if b {
		return numeric.NewInt(1)
	}
	return numeric.NewInt(0)
}

// compareFn builds a comparison function (=, !=, <, >, <=, >=) from a
// predicate over Compare's three-way result.
func compareFn(name string, predicate func(cmp int) bool) *fn {
	f := &fn{name: name, argsN: 2, respN: 1, usage: registry.UsageInfix}
	f.op = func(c *calculator.Calculator) error {
		return nArgOp(c, 2, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			if r, ok := liftBinary(f, vals[0], vals[1]); ok {
				return r, units.None, nil
			}
			cmp, err := numeric.Compare(vals[0], vals[1], env(c))
			if err != nil {
				return nil, units.None, err
			}
			return boolAtom(predicate(cmp)), units.None, nil
		})
	}
	return f
}

var equalFn = compareFnHelp("=", "pop two values, push 1 if equal else 0", func(cmp int) bool { return cmp == 0 })
var notEqualFn = compareFnHelp("!=", "pop two values, push 1 if not equal else 0", func(cmp int) bool { return cmp != 0 })
var ltFn = compareFnHelp("<", "pop two values, push 1 if the first is less than the second", func(cmp int) bool { return cmp < 0 })
var gtFn = compareFnHelp(">", "pop two values, push 1 if the first is greater than the second", func(cmp int) bool { return cmp > 0 })
var leFn = compareFnHelp("<=", "pop two values, push 1 if the first is less than or equal to the second", func(cmp int) bool { return cmp <= 0 })
var geFn = compareFnHelp(">=", "pop two values, push 1 if the first is greater than or equal to the second", func(cmp int) bool { return cmp >= 0 })

func compareFnHelp(name, help string, predicate func(cmp int) bool) *fn {
	f := compareFn(name, predicate)
	f.help = help
	return f
}
