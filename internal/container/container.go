// Package container implements the List and Matrix container atoms and
// their elementwise/shape-aware algebra. Program
// and Symbolic, the other two container atoms, live in
// internal/program and internal/symbolic respectively, since each needs
// its own dependency (instr, registry) that container does not.
package container

import (
	"fmt"
	"strings"

	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
)

const (
	// KindList and KindMatrix extend numeric.Kind's tag space (see
	// numeric.FirstContainerKind) so a StackEntry can hold any atom,
	// numeric or container, behind one interface.
	KindList = numeric.FirstContainerKind + iota
	KindMatrix
)

// List is an ordered sequence of numeric atoms.
type List struct {
	Elements []numeric.Atom
}

func NewList(elements ...numeric.Atom) *List {
	return &List{Elements: elements}
}

func (l *List) Kind() numeric.Kind { return KindList }
func (l *List) IsZero() bool       { return len(l.Elements) == 0 }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Matrix is a rows x cols row-major sequence of numeric atoms.
type Matrix struct {
	Rows, Cols int
	Values     []numeric.Atom
}

// NewMatrix builds a Matrix, enforcing the rows*cols == len(values)
// invariant.
func NewMatrix(rows, cols int, values []numeric.Atom) (*Matrix, error) {
	if rows*cols != len(values) {
		return nil, fmt.Errorf("matrix shape %dx%d does not match %d values", rows, cols, len(values))
	}
	return &Matrix{Rows: rows, Cols: cols, Values: values}, nil
}

func (m *Matrix) Kind() numeric.Kind { return KindMatrix }
func (m *Matrix) IsZero() bool       { return len(m.Values) == 0 }

func (m *Matrix) At(r, c int) numeric.Atom {
	return m.Values[r*m.Cols+c]
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < m.Rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < m.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.At(r, c).String())
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
