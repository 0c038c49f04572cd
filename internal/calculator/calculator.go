// Package calculator implements the stack machine:
// the value stack, undo snapshots, variable table, mode
// flags, execution flags, and the run_one dispatch loop.
package calculator

import (
	"github.com/vmauery/smrtclcltr-sub000/internal/instr"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
	"github.com/vmauery/smrtclcltr-sub000/internal/units"
)

// AngleMode selects how trig functions interpret/produce angles.
type AngleMode int

const (
	AngleRad AngleMode = iota
	AngleDeg
	AngleGrad
)

// MpqMode controls whether a Rat renders as a quotient or as a float.
type MpqMode int

const (
	MpqQuotient MpqMode = iota
	MpqFloating
)

// Config is the calculator's mode-flag bundle.
type Config struct {
	Base        int
	FixedBits   int
	Precision   uint
	Signed      bool
	AngleMode   AngleMode
	MpqMode     MpqMode
	MpcMode     numeric.CmpDisplay
	Interactive bool
	Debug       bool
}

// DefaultConfig is the startup state: base 10,
// unbounded width, DefaultPrecision digits, signed decimal display.
func DefaultConfig() Config {
	return Config{
		Base:      10,
		FixedBits: 0,
		Precision: numeric.DefaultPrecision,
		Signed:    true,
		AngleMode: AngleRad,
		MpqMode:   MpqQuotient,
		MpcMode:   numeric.DisplayRect,
	}
}

// StackEntry wraps one value with the display/semantic attributes that
// were active when it was created.
type StackEntry struct {
	Base      int
	FixedBits int
	Precision uint
	Signed    bool
	Unit      units.Unit
	Value     numeric.Atom
}

// Calculator is one REPL instance's full mutable state.
type Calculator struct {
	Stack       []StackEntry   // index 0 = bottom, last = top
	SavedStacks [][]StackEntry // index 0 = most recent snapshot
	Variables   map[string]numeric.Atom
	Config      Config
	Flags       instr.Flags
	Running     bool
	Functions   *registry.Registry
}

// New builds a Calculator wired to reg, with default config and an empty
// stack.
func New(reg *registry.Registry) *Calculator {
	return &Calculator{
		Variables: make(map[string]numeric.Atom),
		Config:    DefaultConfig(),
		Running:   true,
		Functions: reg,
	}
}

// StackDepth satisfies registry.Calc.
func (c *Calculator) StackDepth() int {
	return len(c.Stack)
}

// Push wraps v in a StackEntry using the calculator's current display
// config, appends it to the top of the stack, and recomputes the execution
// flags; every value write recomputes them.
func (c *Calculator) Push(v numeric.Atom) {
	c.PushUnit(v, units.None)
}

// PushUnit is Push with an explicit unit tag ("On a binary op, if
// both entries carry units... the result carries the forward-compatible
// unit").
func (c *Calculator) PushUnit(v numeric.Atom, u units.Unit) {
	v = applyFixedWidth(&c.Flags, c.Config, v)
	c.Stack = append(c.Stack, StackEntry{
		Base:      c.Config.Base,
		FixedBits: c.Config.FixedBits,
		Precision: c.Config.Precision,
		Signed:    c.Config.Signed,
		Unit:      u,
		Value:     v,
	})
	updateFlags(&c.Flags, v)
}

// Pop removes and returns the top entry's value (satisfies program.Stack).
func (c *Calculator) Pop() (numeric.Atom, error) {
	e, err := c.PopEntry()
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

// PopEntry removes and returns the full top StackEntry, InsufficientArgs if
// the stack is empty.
func (c *Calculator) PopEntry() (StackEntry, error) {
	if len(c.Stack) == 0 {
		return StackEntry{}, newInsufficientArgs(1, 0)
	}
	n := len(c.Stack)
	e := c.Stack[n-1]
	c.Stack = c.Stack[:n-1]
	return e, nil
}

// Peek returns the i-th entry from the top (0 = top) without popping.
func (c *Calculator) Peek(i int) (StackEntry, bool) {
	idx := len(c.Stack) - 1 - i
	if idx < 0 || idx >= len(c.Stack) {
		return StackEntry{}, false
	}
	return c.Stack[idx], true
}

// SetVariable satisfies program.VarBinder (for-loop variable binding).
func (c *Calculator) SetVariable(name string, v numeric.Atom) {
	c.Variables[name] = v
}
