package container

import (
	"math/big"

	"golang.org/x/exp/slices"

	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
)

// BinOp is a plain numeric binary operator (numeric.Add, numeric.Sub, ...),
// threaded through List/Matrix broadcasting below.
type BinOp func(a, b numeric.Atom, env numeric.Env) (numeric.Atom, error)

// ListScalar broadcasts op(element, scalar) across every element of l
// (a scalar broadcasts elementwise across a list).
func ListScalar(l *List, scalar numeric.Atom, op BinOp, env numeric.Env) (*List, error) {
	out := make([]numeric.Atom, len(l.Elements))
	for i, e := range l.Elements {
		r, err := op(e, scalar, env)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return &List{Elements: out}, nil
}

// MatrixScalar broadcasts op(element, scalar) across every value of m
// (matrix-by-scalar is elementwise).
func MatrixScalar(m *Matrix, scalar numeric.Atom, op BinOp, env numeric.Env) (*Matrix, error) {
	out := make([]numeric.Atom, len(m.Values))
	for i, e := range m.Values {
		r, err := op(e, scalar, env)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return &Matrix{Rows: m.Rows, Cols: m.Cols, Values: out}, nil
}

// MatrixAdd/MatrixSub require identical shapes.
func matrixElementwise(a, b *Matrix, op BinOp, env numeric.Env) (*Matrix, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return nil, cerr.New(cerr.Domain, "matrix shape mismatch")
	}
	// slices.Clone gives each result its own backing array rather than
	// aliasing a's, so the two operand matrices stay independently
	// mutable (matrix values are plain numeric.Atom, so a shallow clone
	// suffices — elements themselves are replaced, never mutated in place).
	out := slices.Clone(a.Values)
	for i := range out {
		r, err := op(out[i], b.Values[i], env)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return &Matrix{Rows: a.Rows, Cols: a.Cols, Values: out}, nil
}

func MatrixAdd(a, b *Matrix, env numeric.Env) (*Matrix, error) {
	return matrixElementwise(a, b, numeric.Add, env)
}

func MatrixSub(a, b *Matrix, env numeric.Env) (*Matrix, error) {
	return matrixElementwise(a, b, numeric.Sub, env)
}

// MatrixMul enforces shape compatibility for matrix*matrix.
func MatrixMul(a, b *Matrix, env numeric.Env) (*Matrix, error) {
	if a.Cols != b.Rows {
		return nil, cerr.New(cerr.Domain, "matrix shape mismatch for multiplication")
	}
	out := make([]numeric.Atom, a.Rows*b.Cols)
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			var sum numeric.Atom = numeric.NewInt(0)
			for k := 0; k < a.Cols; k++ {
				term, err := numeric.Mul(a.At(r, k), b.At(k, c), env)
				if err != nil {
					return nil, err
				}
				sum, err = numeric.Add(sum, term, env)
				if err != nil {
					return nil, err
				}
			}
			out[r*b.Cols+c] = sum
		}
	}
	return &Matrix{Rows: a.Rows, Cols: b.Cols, Values: out}, nil
}

// MatrixDiv is matrix*inverse(other); division by a
// non-invertible or non-square matrix fails with Domain.
func MatrixDiv(a, b *Matrix, env numeric.Env) (*Matrix, error) {
	inv, err := MatrixInverse(b, env)
	if err != nil {
		return nil, err
	}
	return MatrixMul(a, inv, env)
}

// MatrixInverse computes the inverse via Gauss-Jordan elimination over
// Flt. Only square, non-singular
// matrices invert ("A x A^-1 = I when det A != 0; inv throws
// otherwise").
func MatrixInverse(m *Matrix, env numeric.Env) (*Matrix, error) {
	n := m.Rows
	if n != m.Cols {
		return nil, cerr.New(cerr.Domain, "inverse requires a square matrix")
	}
	prec := env.Precision
	if prec == 0 {
		prec = numeric.DefaultPrecision
	}

	// Augment [M | I] with big.Float entries and row-reduce.
	aug := make([][]*big.Float, n)
	for r := 0; r < n; r++ {
		aug[r] = make([]*big.Float, 2*n)
		for c := 0; c < n; c++ {
			f := numeric.ToFlt(m.At(r, c), prec)
			if f == nil {
				return nil, cerr.New(cerr.Domain, "inverse requires real matrix entries")
			}
			aug[r][c] = f.V
		}
		for c := 0; c < n; c++ {
			v := 0.0
			if r == c {
				v = 1.0
			}
			aug[r][n+c] = big.NewFloat(v)
		}
	}

	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < n; r++ {
			if aug[r][col].Sign() != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			return nil, cerr.New(cerr.Domain, "matrix is singular")
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		pivot := aug[col][col]
		for c := 0; c < 2*n; c++ {
			aug[col][c] = new(big.Float).Quo(aug[col][c], pivot)
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := new(big.Float).Set(aug[r][col])
			if factor.Sign() == 0 {
				continue
			}
			for c := 0; c < 2*n; c++ {
				term := new(big.Float).Mul(factor, aug[col][c])
				aug[r][c] = new(big.Float).Sub(aug[r][c], term)
			}
		}
	}

	out := make([]numeric.Atom, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r*n+c] = numeric.Reduce(&numeric.Flt{V: aug[r][n+c], Prec: prec})
		}
	}
	return &Matrix{Rows: n, Cols: n, Values: out}, nil
}
