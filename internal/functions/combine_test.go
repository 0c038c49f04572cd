package functions

import (
	"testing"

	"github.com/vmauery/smrtclcltr-sub000/internal/container"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/symbolic"
)

func intElements(t *testing.T, l *container.List) []int64 {
	t.Helper()
	out := make([]int64, len(l.Elements))
	for i, e := range l.Elements {
		iv, ok := e.(*numeric.Int)
		if !ok {
			t.Fatalf("element %d is %T, want *numeric.Int", i, e)
		}
		out[i] = iv.V.Int64()
	}
	return out
}

// Broadcasting keeps operand order for non-commutative operators: with the
// scalar below the list on the stack ("10 {1 2 3} -"), each element is
// subtracted from the scalar, not the other way around.
func TestScalarMinusListKeepsOperandOrder(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(10))
	c.Push(container.NewList(numeric.NewInt(1), numeric.NewInt(2), numeric.NewInt(3)))
	if err := subFn.op(c); err != nil {
		t.Fatalf("sub op() error = %v", err)
	}
	e, _ := c.Peek(0)
	l, ok := e.Value.(*container.List)
	if !ok {
		t.Fatalf("top of stack is %T, want *container.List", e.Value)
	}
	got := intElements(t, l)
	want := []int64{9, 8, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("10 - {1 2 3}[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// A symbolic operand lifts through "!" ahead of the Int-only check, and
// the lifted node keeps the postfix rendering the quoted-expression
// grammar builds.
func TestFactorialLiftsSymbolicPostfix(t *testing.T) {
	c := newCalc()
	c.Push(symbolic.NewVariable("x"))
	if err := factorialFn.op(c); err != nil {
		t.Fatalf("! op() error = %v", err)
	}
	e, _ := c.Peek(0)
	n, ok := e.Value.(*symbolic.Node)
	if !ok {
		t.Fatalf("top of stack is %T, want *symbolic.Node", e.Value)
	}
	if got, want := n.String(), "x!"; got != want {
		t.Errorf("lifted factorial = %q, want %q", got, want)
	}
}

func TestListMinusScalarKeepsOperandOrder(t *testing.T) {
	c := newCalc()
	c.Push(container.NewList(numeric.NewInt(1), numeric.NewInt(2), numeric.NewInt(3)))
	c.Push(numeric.NewInt(1))
	if err := subFn.op(c); err != nil {
		t.Fatalf("sub op() error = %v", err)
	}
	e, _ := c.Peek(0)
	l := e.Value.(*container.List)
	got := intElements(t, l)
	want := []int64{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("{1 2 3}[%d] - 1 = %d, want %d", i, got[i], want[i])
		}
	}
}
