// Stack-manipulation words plus sum/mean list reductions.
package functions

import (
	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	"github.com/vmauery/smrtclcltr-sub000/internal/container"
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
	"github.com/vmauery/smrtclcltr-sub000/internal/units"
)

var dupFn = &fn{
	name: "dup", argsN: 1, respN: 2, usage: registry.UsageNone,
	help: "duplicate the top of the stack",
	op: func(c *calculator.Calculator) error {
		return wrapOp(c, func(c *calculator.Calculator) error {
			e, err := c.PopEntry()
			if err != nil {
				return err
			}
			c.PushUnit(e.Value, e.Unit)
			c.PushUnit(e.Value, e.Unit)
			return nil
		})
	},
}

var dropFn = &fn{
	name: "drop", argsN: 1, respN: 0, usage: registry.UsageNone,
	help: "discard the top of the stack",
	op: func(c *calculator.Calculator) error {
		return wrapOp(c, func(c *calculator.Calculator) error {
			_, err := c.PopEntry()
			return err
		})
	},
}

var swapFn = &fn{
	name: "swap", argsN: 2, respN: 2, usage: registry.UsageNone,
	help: "exchange the top two stack entries",
	op: func(c *calculator.Calculator) error {
		return wrapOp(c, func(c *calculator.Calculator) error {
			entries, err := popEntries(c, 2)
			if err != nil {
				return err
			}
			c.PushUnit(entries[1].Value, entries[1].Unit)
			c.PushUnit(entries[0].Value, entries[0].Unit)
			return nil
		})
	},
}

var overFn = &fn{
	name: "over", argsN: 2, respN: 3, usage: registry.UsageNone,
	help: "copy the second-from-top entry to the top",
	op: func(c *calculator.Calculator) error {
		return wrapOp(c, func(c *calculator.Calculator) error {
			entries, err := popEntries(c, 2)
			if err != nil {
				return err
			}
			c.PushUnit(entries[0].Value, entries[0].Unit)
			c.PushUnit(entries[1].Value, entries[1].Unit)
			c.PushUnit(entries[0].Value, entries[0].Unit)
			return nil
		})
	},
}

var clearFn = &fn{
	name: "clear", argsN: 0, respN: 0, usage: registry.UsageNone,
	help: "discard the entire stack",
	op: func(c *calculator.Calculator) error {
		c.Stack = nil
		return nil
	},
}

var sumFn = &fn{
	name: "sum", argsN: 1, respN: 1, usage: registry.UsageNone,
	help: "pop a list, push the sum of its elements",
	op: func(c *calculator.Calculator) error {
		return nArgLimitedOp(c, 1, []numeric.Kind{container.KindList}, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			l := vals[0].(*container.List)
			total, err := listSum(l, env(c))
			return total, units.None, err
		})
	},
}

// meanFn accepts a List operand only; a bare numeric operand is rejected
// rather than reinterpreted as a stack depth.
var meanFn = &fn{
	name: "mean", argsN: 1, respN: 1, usage: registry.UsageNone,
	help: "pop a list, push the arithmetic mean of its elements",
	op: func(c *calculator.Calculator) error {
		return nArgLimitedOp(c, 1, []numeric.Kind{container.KindList}, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
			l := vals[0].(*container.List)
			if len(l.Elements) == 0 {
				return nil, units.None, cerr.New(cerr.Domain, "mean of an empty list is undefined")
			}
			total, err := listSum(l, env(c))
			if err != nil {
				return nil, units.None, err
			}
			mean, err := numeric.Div(total, numeric.NewInt(int64(len(l.Elements))), env(c))
			return mean, units.None, err
		})
	},
}

func listSum(l *container.List, e numeric.Env) (numeric.Atom, error) {
	var total numeric.Atom = numeric.NewInt(0)
	for _, v := range l.Elements {
		var err error
		total, err = numeric.Add(total, v, e)
		if err != nil {
			return nil, err
		}
	}
	return numeric.Reduce(total), nil
}
