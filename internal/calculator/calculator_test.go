package calculator

import (
	"testing"

	"github.com/vmauery/smrtclcltr-sub000/internal/instr"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
)

func newCalc() *Calculator {
	return New(registry.New())
}

func TestPushPopRoundTrip(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(5))
	c.Push(numeric.NewInt(7))

	if c.StackDepth() != 2 {
		t.Fatalf("StackDepth() = %d, want 2", c.StackDepth())
	}
	top, err := c.Pop()
	if err != nil {
		t.Fatalf("Pop() error = %v", err)
	}
	if iv, ok := top.(*numeric.Int); !ok || iv.V.Int64() != 7 {
		t.Fatalf("Pop() = %v, want Int(7)", top)
	}
	if c.StackDepth() != 1 {
		t.Fatalf("StackDepth() after one Pop() = %d, want 1", c.StackDepth())
	}
}

func TestPopEmptyStackIsInsufficientArgs(t *testing.T) {
	c := newCalc()
	if _, err := c.Pop(); err == nil {
		t.Fatal("expected InsufficientArgs popping an empty stack")
	}
}

// SavedStacks' front equals the stack immediately before the
// current line. RunLine snapshots before every line, including the "undo"
// line itself, so when the undone command sat on an earlier line Undo()
// finds two snapshots pending: this one's own (discarded) and the one
// before the command being undone (restored). The single-snapshot case is
// covered by TestUndoWithSingleSnapshotRestoresIt.
func TestSnapshotUndoRoundTrip(t *testing.T) {
	c := newCalc()
	c.SnapshotForLine() // before "1" (stack: [])
	c.Push(numeric.NewInt(1))
	c.SnapshotForLine() // before "2" (stack: [1])
	c.Push(numeric.NewInt(2))
	c.SnapshotForLine() // before "undo" itself (stack: [1 2])

	if err := c.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if c.StackDepth() != 1 {
		t.Fatalf("StackDepth() after Undo() = %d, want 1", c.StackDepth())
	}
	v, _ := c.Pop()
	if iv, ok := v.(*numeric.Int); !ok || iv.V.Int64() != 1 {
		t.Fatalf("restored top = %v, want Int(1)", v)
	}
}

func TestUndoWithNoSnapshotIsError(t *testing.T) {
	c := newCalc()
	if err := c.Undo(); err == nil {
		t.Fatal("expected an error undoing with no snapshot taken")
	}
}

// With a single pending snapshot the undone command shares the "undo"
// word's own line ("1 2 + undo"), so that snapshot IS the pre-command
// state and Undo restores it directly.
func TestUndoWithSingleSnapshotRestoresIt(t *testing.T) {
	c := newCalc()
	c.SnapshotForLine() // before the line (stack: [])
	c.Push(numeric.NewInt(1))
	c.Push(numeric.NewInt(2))
	if err := c.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if c.StackDepth() != 0 {
		t.Errorf("StackDepth() after single-snapshot Undo() = %d, want 0", c.StackDepth())
	}
	if len(c.SavedStacks) != 0 {
		t.Errorf("SavedStacks length = %d, want 0 (the lone snapshot is consumed)", len(c.SavedStacks))
	}
}

// Rollback restores from the single most recent
// snapshot and discards it -- the driver's automatic rollback-on-error
// path, distinct from Undo's "look one snapshot further back" semantics.
func TestRollbackRestoresMostRecentSnapshot(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(5))
	c.SnapshotForLine() // before the failing line (stack: [5])
	c.Push(numeric.NewInt(99))

	if err := c.Rollback(); err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}
	if c.StackDepth() != 1 {
		t.Fatalf("StackDepth() after Rollback() = %d, want 1", c.StackDepth())
	}
	v, _ := c.Pop()
	if iv, ok := v.(*numeric.Int); !ok || iv.V.Int64() != 5 {
		t.Fatalf("restored top = %v, want Int(5)", v)
	}
}

func TestRollbackWithNoSnapshotIsError(t *testing.T) {
	c := newCalc()
	if err := c.Rollback(); err == nil {
		t.Fatal("expected an error rolling back with no snapshot taken")
	}
}

// RunOne resolves a KindVarRef against the variable table,
// which is how a for-loop's bound variable is read back inside its body.
func TestRunOneResolvesBoundVariable(t *testing.T) {
	c := newCalc()
	c.SetVariable("i", numeric.NewInt(7))
	if err := c.RunOne(instr.Instruction{Kind: instr.KindVarRef, VarName: "i"}); err != nil {
		t.Fatalf("RunOne(KindVarRef) error = %v", err)
	}
	if c.StackDepth() != 1 {
		t.Fatalf("StackDepth() = %d, want 1", c.StackDepth())
	}
	v, _ := c.Pop()
	if iv, ok := v.(*numeric.Int); !ok || iv.V.Int64() != 7 {
		t.Fatalf("pushed variable value = %v, want Int(7)", v)
	}
}

func TestRunOneRejectsUndefinedVariable(t *testing.T) {
	c := newCalc()
	if err := c.RunOne(instr.Instruction{Kind: instr.KindVarRef, VarName: "nope"}); err == nil {
		t.Fatal("expected an InvalidArgument error reading an unbound variable")
	}
	if c.StackDepth() != 0 {
		t.Errorf("StackDepth() after an undefined-variable read = %d, want 0", c.StackDepth())
	}
}

// Every value write recomputes zero/sign.
func TestPushUpdatesZeroAndSignFlags(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(0))
	if !c.Flags.Zero {
		t.Error("Flags.Zero should be set after pushing 0")
	}

	c.Push(numeric.NewInt(-3))
	if c.Flags.Zero {
		t.Error("Flags.Zero should clear after pushing a nonzero value")
	}
	if !c.Flags.Sign {
		t.Error("Flags.Sign should be set after pushing a negative value")
	}
}

// A fixed bit width truncates Int writes and sets
// carry/overflow when truncation actually changes the value.
func TestFixedWidthTruncationSetsOverflow(t *testing.T) {
	c := newCalc()
	c.SetFixedBits(8)
	c.Config.Signed = false

	c.Push(numeric.NewInt(256)) // one past unsigned 8-bit range
	if !c.Flags.Overflow {
		t.Error("Flags.Overflow should be set when truncation changes the value")
	}
	v, _ := c.Pop()
	iv := v.(*numeric.Int)
	if iv.V.Int64() != 0 {
		t.Errorf("256 truncated to 8 unsigned bits = %d, want 0", iv.V.Int64())
	}
}

func TestFixedWidthNoOverflowWhenInRange(t *testing.T) {
	c := newCalc()
	c.SetFixedBits(8)
	c.Config.Signed = false

	c.Push(numeric.NewInt(200))
	if c.Flags.Overflow {
		t.Error("Flags.Overflow should not be set for an in-range value")
	}
}

// cbase retags the top-of-stack value's display base without
// changing SetBase's role of setting the default for future literals.
func TestCbaseRetagsTopOfStackOnly(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(10)) // created at default base 10
	c.SetBase(16)
	if err := c.Cbase(); err != nil {
		t.Fatalf("Cbase() error = %v", err)
	}
	e, _ := c.Peek(0)
	if e.Base != 16 {
		t.Errorf("top entry base = %d, want 16", e.Base)
	}

	c.Push(numeric.NewInt(20)) // a later literal, created at base 16
	next, _ := c.Peek(0)
	if next.Base != 16 {
		t.Errorf("new entry base = %d, want 16 (SetBase affects future pushes too)", next.Base)
	}
}

func TestPeekOutOfRangeReturnsFalse(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(1))
	if _, ok := c.Peek(5); ok {
		t.Fatal("Peek past the bottom of the stack should report ok=false")
	}
}
