package symbolic_test

import (
	"testing"

	"github.com/vmauery/smrtclcltr-sub000/internal/functions"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
	. "github.com/vmauery/smrtclcltr-sub000/internal/symbolic"
)

func fn(t *testing.T, reg *registry.Registry, name string) registry.Function {
	t.Helper()
	f, ok := reg.ByName(name)
	if !ok {
		t.Fatalf("no registered function %q", name)
	}
	return f
}

func newReg() *registry.Registry {
	reg := registry.New()
	functions.Register(reg)
	return reg
}

// Infix operators wrap a child in parentheses iff the child's
// operator has strictly lower precedence" — no parens needed when the
// right-hand multiply binds tighter than the addition at the root.
func TestStringNoParensWhenChildBindsTighter(t *testing.T) {
	reg := newReg()
	x := NewVariable("x")
	two := NewAtom(numeric.NewInt(2))
	one := NewAtom(numeric.NewInt(1))

	mul := NewBinary(fn(t, reg, "*"), StyleInfix, x, two)
	add := NewBinary(fn(t, reg, "+"), StyleInfix, mul, one)

	if got, want := add.String(), "x*2+1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// The symmetric case: a lower-precedence left child under a tighter-binding
// root must be parenthesized so re-parsing recovers the same tree shape.
func TestStringParensWhenChildBindsLooser(t *testing.T) {
	reg := newReg()
	x := NewVariable("x")
	one := NewAtom(numeric.NewInt(1))
	three := NewAtom(numeric.NewInt(3))

	add := NewBinary(fn(t, reg, "+"), StyleInfix, x, one)
	mul := NewBinary(fn(t, reg, "*"), StyleInfix, add, three)

	if got, want := mul.String(), "(x+1)*3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// Wrapper functions like sin/gamma always render style=paren,
// which is atomic to any parent regardless of precedence.
func TestUnaryParenStyleNeverParenthesized(t *testing.T) {
	reg := newReg()
	x := NewVariable("x")
	call := NewUnary(fn(t, reg, "abs"), x)
	two := NewAtom(numeric.NewInt(2))
	mul := NewBinary(fn(t, reg, "*"), StyleInfix, call, two)

	if got, want := mul.String(), "abs(x)*2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLeafIsZeroOnlyForZeroAtom(t *testing.T) {
	zero := NewAtom(numeric.NewInt(0))
	nonzero := NewAtom(numeric.NewInt(1))
	v := NewVariable("x")

	if !zero.IsZero() {
		t.Error("zero atom leaf should be IsZero")
	}
	if nonzero.IsZero() {
		t.Error("nonzero atom leaf should not be IsZero")
	}
	if v.IsZero() {
		t.Error("variable leaf should never be IsZero")
	}
}
