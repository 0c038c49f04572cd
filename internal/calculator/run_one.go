package calculator

import (
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/instr"
)

// RunOne dispatches a single parsed instruction.
// It reports the error that should abort the enclosing program, if any; a
// nil result tells the program executor to keep going.
func (c *Calculator) RunOne(itm instr.Instruction) error {
	switch itm.Kind {
	case instr.KindValue:
		c.Push(itm.Value)
		if itm.DisplayBase != 0 {
			c.Stack[len(c.Stack)-1].Base = itm.DisplayBase
		}
		return nil

	case instr.KindCall:
		return c.callFunction(itm.Call)

	case instr.KindVarRef:
		v, ok := c.Variables[itm.VarName]
		if !ok {
			return cerr.Newf(cerr.InvalidArgument, "undefined variable %q", itm.VarName)
		}
		c.Push(v)
		return nil

	case instr.KindError:
		return itm.Err

	case instr.KindComment, instr.KindBreak, instr.KindContinue:
		// break/continue are intercepted by their enclosing while/for
		// statement before reaching here; seeing one means it escaped
		// its loop, which is a no-op rather than a fatal error.
		return nil

	default:
		return nil
	}
}

func (c *Calculator) callFunction(call *instr.FunctionCall) error {
	if call.Captures != nil {
		return call.Function.Reop(c, call.Captures)
	}
	need := call.Function.NumArgs()
	if need < 0 {
		need = -need
	}
	if c.StackDepth() < need {
		return fmtInsufficientArgs(need, c.StackDepth())
	}
	return call.Function.Op(c)
}

// Runner adapts RunOne to the program.Runner signature, recording the first
// failure so the caller can report it after Execute returns.
func (c *Calculator) Runner() (run func(itm instr.Instruction, flags *instr.Flags) bool, lastErr *error) {
	var err error
	return func(itm instr.Instruction, flags *instr.Flags) bool {
		if e := c.RunOne(itm); e != nil {
			err = e
			return false
		}
		return true
	}, &err
}

// SnapshotForLine pushes a copy of the current stack onto SavedStacks,
// front-most, keeping the invariant that SavedStacks' front equals the
// stack immediately before the current line.
func (c *Calculator) SnapshotForLine() {
	snap := make([]StackEntry, len(c.Stack))
	copy(snap, c.Stack)
	c.SavedStacks = append([][]StackEntry{snap}, c.SavedStacks...)
}

// Rollback restores the stack from the most recently pushed pre-line
// snapshot and discards it ("a parse failure or a
// function failure... rolls the stack back to the pre-line snapshot").
// This is the driver's automatic rollback-on-error path; it is distinct
// from Undo's user-facing "undo the previous command" semantics below,
// which must look one snapshot further back because RunLine has already
// pushed a snapshot for the "undo" line itself by the time Undo runs.
func (c *Calculator) Rollback() error {
	if len(c.SavedStacks) == 0 {
		return cerr.New(cerr.InvalidArgument, "nothing to roll back")
	}
	c.Stack = c.SavedStacks[0]
	c.SavedStacks = c.SavedStacks[1:]
	return nil
}

// Undo restores the stack to its state before the command being undone.
// With the undone command on an earlier line there are two snapshots
// pending — this "undo" line's own (discarded) and the one before the
// undone command (restored). With the undone command on the *same* line
// ("1 2 + undo") the line's single snapshot is itself the pre-command
// state, so it is restored directly; either way the stack ends up
// byte-for-byte at its pre-command state.
func (c *Calculator) Undo() error {
	switch len(c.SavedStacks) {
	case 0:
		return cerr.New(cerr.InvalidArgument, "nothing to undo")
	case 1:
		c.Stack = c.SavedStacks[0]
		c.SavedStacks = nil
		return nil
	default:
		// Discard the snapshot SnapshotForLine pushed for this "undo"
		// line itself, then restore from and pop the one before it.
		c.SavedStacks = c.SavedStacks[1:]
		c.Stack = c.SavedStacks[0]
		c.SavedStacks = c.SavedStacks[1:]
		return nil
	}
}

// Debug toggles verbose tracing.
func (c *Calculator) Debug() {
	c.Config.Debug = !c.Config.Debug
}
