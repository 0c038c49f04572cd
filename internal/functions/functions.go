// Package functions implements the concrete function bodies that populate
// the registry: arithmetic, comparison, stack manipulation, trig, matrix
// construction, and mode-setting words,
// plus the three stack/rollback helper templates
// (n-arg-op/n-arg-conv/n-arg-limited-op). The full domain function
// library is an external collaborator, so this is a representative core
// set, not an exhaustive catalog.
package functions

import (
	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
	"github.com/vmauery/smrtclcltr-sub000/internal/symbolic"
	"github.com/vmauery/smrtclcltr-sub000/internal/units"
)

// fn is the concrete registry.Function every builtin in this package
// shares: a named, fixed-arity capability with an optional Op/Reop body
// (almost every function only ever populates one of the two).
type fn struct {
	name  string
	regex string
	argsN int
	respN int
	usage registry.SymbolicUsage
	help  string
	op    func(c *calculator.Calculator) error
	reop  func(c *calculator.Calculator, captures []string) error
}

func (f *fn) Name() string                          { return f.name }
func (f *fn) Regex() string                         { return f.regex }
func (f *fn) NumArgs() int                          { return f.argsN }
func (f *fn) NumResp() int                          { return f.respN }
func (f *fn) SymbolicUsage() registry.SymbolicUsage { return f.usage }
func (f *fn) Help() string                          { return f.help }

// Op/Reop type-assert back to the concrete Calculator (registry.Calc is
// kept deliberately minimal so internal/registry never depends on
// internal/calculator; see registry.Calc's doc comment).
func (f *fn) Op(calc registry.Calc) error {
	c, ok := calc.(*calculator.Calculator)
	if !ok {
		return cerr.Newf(cerr.InvalidArgument, "%s requires a calculator session", f.name)
	}
	if f.op == nil {
		return cerr.Newf(cerr.InvalidArgument, "%s has no direct stack form", f.name)
	}
	return f.op(c)
}

func (f *fn) Reop(calc registry.Calc, captures []string) error {
	c, ok := calc.(*calculator.Calculator)
	if !ok {
		return cerr.Newf(cerr.InvalidArgument, "%s requires a calculator session", f.name)
	}
	if f.reop == nil {
		return cerr.Newf(cerr.InvalidArgument, "%s has no regex-triggered form", f.name)
	}
	return f.reop(c, captures)
}

// styleFor maps a function's declared SymbolicUsage (registry metadata)
// to the symbolic.Style used when lifting it into a Node: any operation
// where one operand is Symbolic produces a Symbolic with the operator as
// its root.
func styleFor(u registry.SymbolicUsage) symbolic.Style {
	switch u {
	case registry.UsageParen:
		return symbolic.StyleParen
	case registry.UsagePrefix:
		return symbolic.StylePrefix
	case registry.UsageInfix:
		return symbolic.StyleInfix
	case registry.UsagePostfix:
		return symbolic.StylePostfix
	default:
		return symbolic.StyleNone
	}
}

func env(c *calculator.Calculator) numeric.Env {
	return numeric.Env{Precision: c.Config.Precision}
}

// wrapOp is the rollback contract every helper below builds on: either
// the operation completes and produces exactly the documented number of
// results, or the stack and mode flags are untouched. body runs against c
// directly (so it may pop/push freely); on error, c's stack and flags are
// restored to their pre-call state.
func wrapOp(c *calculator.Calculator, body func(c *calculator.Calculator) error) error {
	savedStack := append([]calculator.StackEntry(nil), c.Stack...)
	savedFlags := c.Flags
	if err := body(c); err != nil {
		c.Stack = savedStack
		c.Flags = savedFlags
		return err
	}
	return nil
}

func popEntries(c *calculator.Calculator, n int) ([]calculator.StackEntry, error) {
	if c.StackDepth() < n {
		return nil, cerr.Newf(cerr.InsufficientArgs, "need %d argument(s), have %d", n, c.StackDepth())
	}
	entries := make([]calculator.StackEntry, n)
	for i := n - 1; i >= 0; i-- {
		e, err := c.PopEntry()
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}

// nArgOp is the *n-arg-op* helper: pop n entries (deepest first),
// run body, push exactly one result carrying the forward-compatible unit,
// rolling the stack and flags back on any error.
func nArgOp(c *calculator.Calculator, n int, body func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error)) error {
	return wrapOp(c, func(c *calculator.Calculator) error {
		entries, err := popEntries(c, n)
		if err != nil {
			return err
		}
		vals := make([]numeric.Atom, n)
		us := make([]units.Unit, n)
		for i, e := range entries {
			vals[i] = e.Value
			us[i] = e.Unit
		}
		result, u, err := body(vals, us)
		if err != nil {
			return err
		}
		c.PushUnit(result, u)
		return nil
	})
}

// nArgConv is the *n-arg-conv* helper: like nArgOp, but first widens
// every input atom to Flt before handing them to body, the shape the
// transcendental wrappers in trig.go need.
func nArgConv(c *calculator.Calculator, n int, body func(vals []*numeric.Flt, us []units.Unit) (numeric.Atom, units.Unit, error)) error {
	return nArgOp(c, n, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
		flts := make([]*numeric.Flt, len(vals))
		for i, v := range vals {
			switch v.(type) {
			case *numeric.Int, *numeric.Rat, *numeric.Flt:
				flts[i] = numeric.ToFlt(v, c.Config.Precision)
			default:
				return nil, units.None, cerr.New(cerr.InvalidArgument, "operand must be a real number")
			}
		}
		return body(flts, us)
	})
}

// nArgLimitedOp is the *n-arg-limited-op* helper: pop n entries and
// reject the call outright if any popped atom's Kind is not in allowed.
func nArgLimitedOp(c *calculator.Calculator, n int, allowed []numeric.Kind, body func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error)) error {
	return nArgOp(c, n, func(vals []numeric.Atom, us []units.Unit) (numeric.Atom, units.Unit, error) {
		for _, v := range vals {
			ok := false
			for _, k := range allowed {
				if v.Kind() == k {
					ok = true
					break
				}
			}
			if !ok {
				return nil, units.None, cerr.Newf(cerr.InvalidArgument, "unsupported operand kind %s", v.Kind())
			}
		}
		return body(vals, us)
	})
}

// Register wires every builtin in this package into reg, an
// order-insensitive name map populated at startup.
func Register(reg *registry.Registry) {
	for _, f := range []registry.Function{
		addFn, subFn, mulFn, divFn, modFn, powFn,
		negFn, absFn, sqrtFn, factorialFn, toFloatFn,
		equalFn, notEqualFn, ltFn, gtFn, leFn, geFn,
		sinFn, cosFn, tanFn, asinFn, acosFn, atanFn,
		dupFn, dropFn, swapFn, overFn, clearFn, sumFn, meanFn,
		matrixBuilder,
		baseFn, fixedBitsFn, precisionFn, signedModeFn, angleModeFn, mpqModeFn, mpcModeFn,
		debugFn, undoFn, cbaseFn, exitFn,
	} {
		reg.Register(f)
	}
}
