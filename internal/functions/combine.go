package functions

import (
	"github.com/vmauery/smrtclcltr-sub000/internal/container"
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
	"github.com/vmauery/smrtclcltr-sub000/internal/symbolic"
)

// liftBinary covers the rule that "any operation where one operand is
// Symbolic produces a Symbolic with the operator as its root": when either
// a or b is already a symbolic.Node, the other is lifted into a bare
// symbolic.NewAtom leaf and the two are combined under self's root.
func liftBinary(self *fn, a, b numeric.Atom) (numeric.Atom, bool) {
	sa, aIsSym := a.(*symbolic.Node)
	sb, bIsSym := b.(*symbolic.Node)
	if !aIsSym && !bIsSym {
		return nil, false
	}
	left, right := sa, sb
	if !aIsSym {
		left = symbolic.NewAtom(a)
	}
	if !bIsSym {
		right = symbolic.NewAtom(b)
	}
	return symbolic.NewBinary(self, styleFor(self.usage), left, right), true
}

// liftUnary is liftBinary's single-operand counterpart, for neg/abs/sqrt/
// factorial (the trig wrappers do not lift; see trig.go). A postfix operator keeps its postfix
// rendering (x!, the shape the quoted-expression grammar builds);
// everything else renders as a fn(x) call.
func liftUnary(self *fn, a numeric.Atom) (numeric.Atom, bool) {
	sa, ok := a.(*symbolic.Node)
	if !ok {
		return nil, false
	}
	if self.usage == registry.UsagePostfix {
		return symbolic.NewBinary(self, symbolic.StylePostfix, sa, nil), true
	}
	return symbolic.NewUnary(self, sa), true
}

// combineOp is the numeric.Add/Sub/Mul/Div/Mod shape every binary
// arithmetic operator in this package threads through combine. It is an
// alias for container.BinOp (rather than its own defined type) so a
// combineOp value can be passed straight through to MatrixScalar/ListScalar
// without a conversion at every call site.
type combineOp = container.BinOp

// flipOp swaps an operator's operand order. MatrixScalar/ListScalar always
// apply op(element, scalar), so when the scalar was the left operand the
// flipped form keeps "5 {1 2} -" meaning 5-element, not element-5.
func flipOp(op combineOp) combineOp {
	return func(a, b numeric.Atom, env numeric.Env) (numeric.Atom, error) {
		return op(b, a, env)
	}
}

// combine dispatches a binary arithmetic operator across the value
// domain: Symbolic operands lift first; List/Matrix operands use
// container's broadcast/shape-aware algebra; everything else falls
// through to the plain numeric tower, which already owns Time's
// special-cased rules.
func combine(self *fn, a, b numeric.Atom, env numeric.Env, op combineOp) (numeric.Atom, error) {
	if r, ok := liftBinary(self, a, b); ok {
		return r, nil
	}

	ma, aIsMatrix := a.(*container.Matrix)
	mb, bIsMatrix := b.(*container.Matrix)
	switch {
	case aIsMatrix && bIsMatrix:
		return matrixOp(self.name, ma, mb, env)
	case aIsMatrix:
		return container.MatrixScalar(ma, b, op, env)
	case bIsMatrix:
		return container.MatrixScalar(mb, a, flipOp(op), env)
	}

	if la, ok := a.(*container.List); ok {
		return container.ListScalar(la, b, op, env)
	}
	if lb, ok := b.(*container.List); ok {
		return container.ListScalar(lb, a, flipOp(op), env)
	}

	return op(a, b, env)
}

func matrixOp(name string, a, b *container.Matrix, env numeric.Env) (numeric.Atom, error) {
	switch name {
	case "+":
		return container.MatrixAdd(a, b, env)
	case "-":
		return container.MatrixSub(a, b, env)
	case "*":
		return container.MatrixMul(a, b, env)
	case "/":
		return container.MatrixDiv(a, b, env)
	default:
		return nil, cerr.Newf(cerr.InvalidArgument, "%s is not defined for matrices", name)
	}
}
