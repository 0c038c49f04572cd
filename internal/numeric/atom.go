// Package numeric implements the numeric tower:
// arbitrary-precision Int, Rat, Flt and Cmp, plus the Time atom, the
// widening ladder Int < Rat < Flt < Cmp, and post-operation reduction.
package numeric

// Kind tags the concrete atom behind the Atom interface. Packages that add
// their own atoms (container.List, container.Matrix, symbolic.Node, ...)
// use Kind values from FirstContainerKind upward so every
// atom in the system — numeric or not — shares one tag space.
type Kind int

const (
	KindInt Kind = iota
	KindRat
	KindFlt
	KindCmp
	KindTime
	// FirstContainerKind is the first Kind value a downstream package may
	// use for its own atoms (List, Matrix, Program, Symbolic, ...).
	FirstContainerKind Kind = 100
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindRat:
		return "rat"
	case KindFlt:
		return "flt"
	case KindCmp:
		return "cmp"
	case KindTime:
		return "time"
	default:
		return "?"
	}
}

// Atom is the closed value type shared by every stack entry: a numeric
// atom (this package) or a container atom (internal/container,
// internal/symbolic). Arithmetic (internal/numeric) only ever widens and
// reduces within the five kinds declared here; container/symbolic atoms
// implement Atom for storage in a StackEntry but are not operands of
// Add/Sub/Mul/... in this package (see internal/container and
// internal/functions' combine.go for how those combine).
type Atom interface {
	Kind() Kind
	String() string
	IsZero() bool
}

// rank places the four arithmetic atoms on the widening ladder. Time is
// handled outside the ladder; time arithmetic has its own rules.
func rank(k Kind) int {
	switch k {
	case KindInt:
		return 0
	case KindRat:
		return 1
	case KindFlt:
		return 2
	case KindCmp:
		return 3
	default:
		return -1
	}
}
