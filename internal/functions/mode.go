// Mode-setting words:
// thin wrappers around the Config fields the driver loop and display layer
// read back out of the Calculator. Each pops exactly the
// integer argument(s) it needs and pushes nothing back; the
// rollback contract still applies, so an out-of-range value leaves the
// stack untouched.
package functions

import (
	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
)

// popInt pops the top entry and requires it to be a plain Int, returning its
// int64 value.
func popInt(c *calculator.Calculator) (int64, error) {
	e, err := c.PopEntry()
	if err != nil {
		return 0, err
	}
	n, ok := e.Value.(*numeric.Int)
	if !ok {
		return 0, cerr.Newf(cerr.InvalidArgument, "expected an integer, got %s", e.Value.Kind())
	}
	return n.V.Int64(), nil
}

var baseFn = &fn{
	name: "base", argsN: 1, respN: 0, usage: registry.UsageNone,
	help: "pop an integer 2-36, set it as the default display/parse base",
	op: func(c *calculator.Calculator) error {
		return wrapOp(c, func(c *calculator.Calculator) error {
			n, err := popInt(c)
			if err != nil {
				return err
			}
			if n < 2 || n > 36 {
				return cerr.Newf(cerr.InvalidArgument, "base must be 2-36, got %d", n)
			}
			c.SetBase(int(n))
			return nil
		})
	},
}

var fixedBitsFn = &fn{
	name: "fixedbits", argsN: 1, respN: 0, usage: registry.UsageNone,
	help: "pop an integer, set it as the fixed integer display width (0 = unbounded)",
	op: func(c *calculator.Calculator) error {
		return wrapOp(c, func(c *calculator.Calculator) error {
			n, err := popInt(c)
			if err != nil {
				return err
			}
			if n < 0 {
				return cerr.Newf(cerr.InvalidArgument, "fixed bit width must be >= 0, got %d", n)
			}
			c.SetFixedBits(int(n))
			return nil
		})
	},
}

var precisionFn = &fn{
	name: "precision", argsN: 1, respN: 0, usage: registry.UsageNone,
	help: "pop an integer, set it as the floating-point display precision",
	op: func(c *calculator.Calculator) error {
		return wrapOp(c, func(c *calculator.Calculator) error {
			n, err := popInt(c)
			if err != nil {
				return err
			}
			if n <= 0 {
				return cerr.Newf(cerr.InvalidArgument, "precision must be > 0, got %d", n)
			}
			c.SetPrecision(uint(n))
			return nil
		})
	},
}

var signedModeFn = &fn{
	name: "signed", argsN: 0, respN: 0, usage: registry.UsageNone,
	help: "toggle signed/unsigned fixed-width integer display",
	op: func(c *calculator.Calculator) error {
		c.SetSignedMode(!c.Config.Signed)
		return nil
	},
}

var angleModeFn = &fn{
	name: "angle", argsN: 1, respN: 0, usage: registry.UsageNone,
	help: "pop 0/1/2, select radians/degrees/gradians for trig functions",
	op: func(c *calculator.Calculator) error {
		return wrapOp(c, func(c *calculator.Calculator) error {
			n, err := popInt(c)
			if err != nil {
				return err
			}
			mode := calculator.AngleMode(n)
			if mode != calculator.AngleRad && mode != calculator.AngleDeg && mode != calculator.AngleGrad {
				return cerr.Newf(cerr.InvalidArgument, "angle mode must be 0 (rad), 1 (deg) or 2 (grad), got %d", n)
			}
			c.SetAngleMode(mode)
			return nil
		})
	},
}

var mpqModeFn = &fn{
	name: "mpqmode", argsN: 0, respN: 0, usage: registry.UsageNone,
	help: "toggle whether rationals display as quotients or as floats",
	op: func(c *calculator.Calculator) error {
		if c.Config.MpqMode == calculator.MpqQuotient {
			c.SetMpqMode(calculator.MpqFloating)
		} else {
			c.SetMpqMode(calculator.MpqQuotient)
		}
		return nil
	},
}

var mpcModeFn = &fn{
	name: "mpcmode", argsN: 0, respN: 0, usage: registry.UsageNone,
	help: "cycle the complex display form: rectangular, polar, i/j",
	op: func(c *calculator.Calculator) error {
		switch c.Config.MpcMode {
		case numeric.DisplayRect:
			c.SetMpcMode(numeric.DisplayPolar)
		case numeric.DisplayPolar:
			c.SetMpcMode(numeric.DisplayIJ)
		default:
			c.SetMpcMode(numeric.DisplayRect)
		}
		return nil
	},
}

var exitFn = &fn{
	name: "exit", argsN: 0, respN: 0, usage: registry.UsageNone,
	help: "finish this line, then stop the read-eval loop",
	op: func(c *calculator.Calculator) error {
		c.Running = false
		return nil
	},
}

var debugFn = &fn{
	name: "debug", argsN: 0, respN: 0, usage: registry.UsageNone,
	help: "toggle verbose execution tracing",
	op: func(c *calculator.Calculator) error {
		c.Debug()
		return nil
	},
}

var undoFn = &fn{
	name: "undo", argsN: 0, respN: 0, usage: registry.UsageNone,
	help: "restore the stack to its state before the previous line, or before this line when no earlier snapshot remains",
	op: func(c *calculator.Calculator) error {
		return c.Undo()
	},
}

var cbaseFn = &fn{
	name: "cbase", argsN: 1, respN: 1, usage: registry.UsageNone,
	help: "retag the top-of-stack integer with the current display base",
	op: func(c *calculator.Calculator) error {
		return c.Cbase()
	},
}
