// Package symbolic implements the symbolic-expression tree:
// an immutable, shared-owned AST of functions and atoms,
// with precedence-aware re-emission.
//
// Sharing is explicit but cheap: Go's garbage collector means a *Node
// pointer copied into two parents is already a duplicated shared handle,
// with no separate refcount to manage.
// Builders only assemble trees bottom-up (every constructor takes
// already-built children), so the result is a DAG of shared leaves with no
// cycles.
package symbolic

import (
	"fmt"
	"strings"

	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
)

// Style controls how a node's operator renders relative to its operands.
type Style int

const (
	StyleNone Style = iota
	StyleParen
	StylePrefix
	StyleInfix
	StylePostfix
)

// Kind extends numeric.Kind's tag space so a Symbolic handle can sit in a
// StackEntry alongside any other atom.
const Kind = numeric.FirstContainerKind + 3

// Node is one symbolic-expression tree node. fn == nil means this is an
// atom (a Variable or a NumericAtom leaf).
type Node struct {
	Fn    registry.Function
	Style Style
	Left  *Node // nil for a bare atom/variable leaf
	Right *Node // nil unless the operator is binary

	// Leaf payload, only meaningful when Fn == nil.
	Variable string
	Atom     numeric.Atom
}

// NewVariable builds a bare variable leaf, e.g. "x".
func NewVariable(name string) *Node {
	return &Node{Variable: name}
}

// NewAtom builds a bare numeric-literal leaf.
func NewAtom(a numeric.Atom) *Node {
	return &Node{Atom: a}
}

// NewUnary builds `fn(operand)` as a function call (style = paren), the
// shape every wrapper function (sin, cos, gamma, ...) produces.
func NewUnary(fn registry.Function, operand *Node) *Node {
	return &Node{Fn: fn, Style: StyleParen, Left: operand}
}

// NewBinary builds an infix operator node with the operator at its root.
func NewBinary(fn registry.Function, style Style, left, right *Node) *Node {
	return &Node{Fn: fn, Style: style, Left: left, Right: right}
}

// IsLeaf reports whether n is an atom or variable (no operator).
func (n *Node) IsLeaf() bool {
	return n.Fn == nil
}

// Kind satisfies numeric.Atom so a Symbolic handle can be pushed directly
// onto the calculator stack.
func (n *Node) Kind() numeric.Kind { return Kind }

// IsZero reports whether n is a numeric-literal leaf equal to zero; any
// other shape (variable, operator tree) is never zero.
func (n *Node) IsZero() bool {
	return n.IsLeaf() && n.Atom != nil && n.Atom.IsZero()
}

// priority is the precedence table backing fn_prio: higher
// binds tighter. Matches the quoted-expression grammar:
// addsub(1) < multdiv(2) < expon(3) < postfix!(4) < atomic(6). Unary "neg"
// has no entry here: it always renders StyleParen (see NewUnary), which is
// atomic to its parent regardless of this table.
var priority = map[string]int{
	"=": 0,
	"+": 1, "-": 1,
	"*": 2, "/": 2, "%": 2,
	"^": 3,
	"!": 4,
}

const atomicPriority = 6

// Priority returns fn_prio for n's root operator, or atomicPriority for a
// leaf — the value the precedence-aware printer compares against a
// parent's priority to decide whether to parenthesize n.
func (n *Node) Priority() int {
	if n.IsLeaf() {
		return atomicPriority
	}
	if p, ok := priority[n.Fn.Name()]; ok {
		return p
	}
	// Function calls rendered fn(x) never need parens around their own
	// argument list, so they behave like an atomic term to their parent.
	return atomicPriority
}

// String re-emits n as infix text. An operand of an infix, prefix or
// postfix operator is wrapped in parentheses iff its operator has strictly
// lower precedence than n's, except that an infix right operand is also
// wrapped at equal precedence, so "x-(y-z)" keeps its parentheses and
// re-parses to the same tree. A fn(...) call's argument is never wrapped.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, -1)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, parentPriority int) {
	if n.IsLeaf() {
		if n.Atom != nil {
			sb.WriteString(n.Atom.String())
		} else {
			sb.WriteString(n.Variable)
		}
		return
	}

	needParen := n.Priority() < parentPriority

	switch n.Style {
	case StyleParen:
		sb.WriteString(n.Fn.Name())
		sb.WriteByte('(')
		n.Left.write(sb, -1)
		if n.Right != nil {
			sb.WriteByte(',')
			n.Right.write(sb, -1)
		}
		sb.WriteByte(')')
		return
	case StylePrefix:
		if needParen {
			sb.WriteByte('(')
		}
		sb.WriteString(n.Fn.Name())
		n.Left.write(sb, n.Priority())
		if needParen {
			sb.WriteByte(')')
		}
		return
	case StylePostfix:
		if needParen {
			sb.WriteByte('(')
		}
		n.Left.write(sb, n.Priority())
		sb.WriteString(n.Fn.Name())
		if needParen {
			sb.WriteByte(')')
		}
		return
	default: // StyleInfix, StyleNone
		if needParen {
			sb.WriteByte('(')
		}
		n.Left.write(sb, n.Priority())
		sb.WriteString(n.Fn.Name())
		n.Right.write(sb, n.Priority()+1)
		if needParen {
			sb.WriteByte(')')
		}
	}
}

// GoString supports "%#v"-style debug dumps via fmt/kr-pretty without the
// printer needing to know about Node's internals.
func (n *Node) GoString() string {
	return fmt.Sprintf("symbolic.Node{%s}", n.String())
}
