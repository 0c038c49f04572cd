package numeric

import (
	"math/big"

	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
)

// Env carries the display/computation settings an operation needs beyond
// the two operands: the calculator's current precision.
type Env struct {
	Precision uint
}

func (e Env) prec() uint {
	if e.Precision == 0 {
		return DefaultPrecision
	}
	return e.Precision
}

// hasTime reports whether either operand is a Time atom; Time never
// participates in the widening ladder, so any combination the dedicated
// time rules above each operator don't claim is a Domain error.
func hasTime(a, b Atom) bool {
	_, ta := a.(*Time)
	_, tb := b.(*Time)
	return ta || tb
}

// Add implements the "+" operator of the closed operation set.
func Add(a, b Atom, env Env) (Atom, error) {
	if ta, tb, ok := asTimes(a, b); ok {
		return addTime(ta, tb)
	}
	if hasTime(a, b) {
		return nil, cerr.New(cerr.Domain, "cannot add a time and a scalar")
	}
	wa, wb, k := widen(a, b, env.prec())
	switch k {
	case KindInt:
		return Reduce(NewIntFromBig(new(big.Int).Add(wa.(*Int).V, wb.(*Int).V))), nil
	case KindRat:
		return Reduce(NewRatFromBig(new(big.Rat).Add(wa.(*Rat).V, wb.(*Rat).V))), nil
	case KindFlt:
		fa, fb := wa.(*Flt), wb.(*Flt)
		return Reduce(&Flt{V: new(big.Float).SetPrec(fa.V.Prec()).Add(fa.V, fb.V), Prec: fa.Prec}), nil
	case KindCmp:
		ca, cb := wa.(*Cmp), wb.(*Cmp)
		return Reduce(&Cmp{
			Re:   new(big.Float).SetPrec(ca.Re.Prec()).Add(ca.Re, cb.Re),
			Im:   new(big.Float).SetPrec(ca.Im.Prec()).Add(ca.Im, cb.Im),
			Prec: ca.Prec,
		}), nil
	}
	return nil, cerr.New(cerr.InvalidArgument, "unsupported operand kinds for +")
}

// Sub implements the "-" operator.
func Sub(a, b Atom, env Env) (Atom, error) {
	if ta, tb, ok := asTimes(a, b); ok {
		return subTime(ta, tb)
	}
	if hasTime(a, b) {
		return nil, cerr.New(cerr.Domain, "cannot subtract a time and a scalar")
	}
	return Add(a, Neg(b), env)
}

// Mul implements the "*" operator.
func Mul(a, b Atom, env Env) (Atom, error) {
	if _, _, ok := asTimes(a, b); ok {
		return nil, cerr.New(cerr.Domain, "cannot multiply two times")
	}
	if t, scalar, _, ok := asTimeScalar(a, b); ok {
		return mulTime(t, scalar, env)
	}
	wa, wb, k := widen(a, b, env.prec())
	switch k {
	case KindInt:
		return Reduce(NewIntFromBig(mulInt(wa.(*Int).V, wb.(*Int).V))), nil
	case KindRat:
		return Reduce(NewRatFromBig(new(big.Rat).Mul(wa.(*Rat).V, wb.(*Rat).V))), nil
	case KindFlt:
		fa, fb := wa.(*Flt), wb.(*Flt)
		return Reduce(&Flt{V: new(big.Float).SetPrec(fa.V.Prec()).Mul(fa.V, fb.V), Prec: fa.Prec}), nil
	case KindCmp:
		ca, cb := wa.(*Cmp), wb.(*Cmp)
		re := new(big.Float).SetPrec(ca.Re.Prec())
		im := new(big.Float).SetPrec(ca.Re.Prec())
		t1 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(ca.Re, cb.Re)
		t2 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(ca.Im, cb.Im)
		re.Sub(t1, t2)
		t3 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(ca.Re, cb.Im)
		t4 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(ca.Im, cb.Re)
		im.Add(t3, t4)
		return Reduce(&Cmp{Re: re, Im: im, Prec: ca.Prec}), nil
	}
	return nil, cerr.New(cerr.InvalidArgument, "unsupported operand kinds for *")
}

// Div implements the "/" operator.
func Div(a, b Atom, env Env) (Atom, error) {
	if ta, tb, ok := asTimes(a, b); ok {
		return divTime(ta, tb)
	}
	if t, scalar, timeWasFirst, ok := asTimeScalar(a, b); ok && timeWasFirst {
		return divTimeScalar(t, scalar, env)
	}
	if hasTime(a, b) {
		return nil, cerr.New(cerr.Domain, "cannot divide a scalar by a time")
	}
	if b.IsZero() {
		return nil, cerr.New(cerr.Domain, "division by zero")
	}
	wa, wb, k := widen(a, b, env.prec())
	switch k {
	case KindInt:
		ia, ib := wa.(*Int), wb.(*Int)
		q, r := new(big.Int).QuoRem(ia.V, ib.V, new(big.Int))
		if r.Sign() == 0 {
			return Reduce(NewIntFromBig(q)), nil
		}
		return Reduce(NewRatFromBig(new(big.Rat).SetFrac(ia.V, ib.V))), nil
	case KindRat:
		return Reduce(NewRatFromBig(new(big.Rat).Quo(wa.(*Rat).V, wb.(*Rat).V))), nil
	case KindFlt:
		fa, fb := wa.(*Flt), wb.(*Flt)
		return Reduce(&Flt{V: new(big.Float).SetPrec(fa.V.Prec()).Quo(fa.V, fb.V), Prec: fa.Prec}), nil
	case KindCmp:
		ca, cb := wa.(*Cmp), wb.(*Cmp)
		denom := new(big.Float).SetPrec(ca.Re.Prec())
		t1 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(cb.Re, cb.Re)
		t2 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(cb.Im, cb.Im)
		denom.Add(t1, t2)
		re := new(big.Float).SetPrec(ca.Re.Prec())
		im := new(big.Float).SetPrec(ca.Re.Prec())
		n1 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(ca.Re, cb.Re)
		n2 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(ca.Im, cb.Im)
		re.Add(n1, n2)
		re.Quo(re, denom)
		n3 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(ca.Im, cb.Re)
		n4 := new(big.Float).SetPrec(ca.Re.Prec()).Mul(ca.Re, cb.Im)
		im.Sub(n3, n4)
		im.Quo(im, denom)
		return Reduce(&Cmp{Re: re, Im: im, Prec: ca.Prec}), nil
	}
	return nil, cerr.New(cerr.InvalidArgument, "unsupported operand kinds for /")
}

// Mod implements the "mod"/"%" operator. On rationals it is the residue
// after the largest integral multiple; it is undefined on
// complex operands.
func Mod(a, b Atom, env Env) (Atom, error) {
	if a.Kind() == KindCmp || b.Kind() == KindCmp {
		return nil, cerr.New(cerr.Domain, "% is undefined on complex operands")
	}
	if hasTime(a, b) {
		return nil, cerr.New(cerr.Domain, "% is undefined on time values")
	}
	if b.IsZero() {
		return nil, cerr.New(cerr.Domain, "modulo by zero")
	}
	wa, wb, k := widen(a, b, env.prec())
	switch k {
	case KindInt:
		ia, ib := wa.(*Int), wb.(*Int)
		return Reduce(NewIntFromBig(new(big.Int).Mod(ia.V, new(big.Int).Abs(ib.V)))), nil
	case KindRat, KindFlt:
		ra, err := toRatForMod(wa, env)
		if err != nil {
			return nil, err
		}
		rb, err := toRatForMod(wb, env)
		if err != nil {
			return nil, err
		}
		quotient := new(big.Rat).Quo(ra.V, rb.V)
		floorQ := new(big.Int).Quo(quotient.Num(), quotient.Denom())
		if quotient.Sign() < 0 && new(big.Int).Mod(quotient.Num(), quotient.Denom()).Sign() != 0 {
			floorQ.Sub(floorQ, big.NewInt(1))
		}
		product := new(big.Rat).Mul(rb.V, new(big.Rat).SetInt(floorQ))
		residue := new(big.Rat).Sub(ra.V, product)
		if k == KindFlt {
			return Reduce(&Flt{V: ToFlt(NewRatFromBig(residue), env.prec()).V, Prec: env.prec()}), nil
		}
		return Reduce(NewRatFromBig(residue)), nil
	}
	return nil, cerr.New(cerr.InvalidArgument, "unsupported operand kinds for mod")
}

func toRatForMod(a Atom, env Env) (*Rat, error) {
	switch v := a.(type) {
	case *Rat:
		return v, nil
	case *Flt:
		return ToRat(v, env.prec())
	default:
		return nil, cerr.New(cerr.InvalidArgument, "mod requires rational or float operands")
	}
}

// Pow implements the "^" operator.
func Pow(a, b Atom, env Env) (Atom, error) {
	if hasTime(a, b) {
		return nil, cerr.New(cerr.Domain, "^ is undefined on time values")
	}
	if bi, ok := b.(*Int); ok && a.Kind() != KindCmp {
		return powInt(a, bi, env)
	}
	fa := ToFlt(a, env.prec())
	fb := ToFlt(b, env.prec())
	af, _ := fa.V.Float64()
	bf, _ := fb.V.Float64()
	return Reduce(NewFlt(mathPow(af, bf), env.prec())), nil
}

func powInt(a Atom, b *Int, env Env) (Atom, error) {
	if !b.V.IsInt64() {
		return nil, cerr.New(cerr.InvalidArgument, "exponent too large")
	}
	n := b.V.Int64()
	switch v := a.(type) {
	case *Int:
		if n < 0 {
			return Reduce(NewRatFromBig(new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Exp(v.V, big.NewInt(-n), nil)))), nil
		}
		return Reduce(NewIntFromBig(new(big.Int).Exp(v.V, big.NewInt(n), nil))), nil
	case *Rat:
		num := new(big.Int).Exp(v.V.Num(), big.NewInt(absI64(n)), nil)
		den := new(big.Int).Exp(v.V.Denom(), big.NewInt(absI64(n)), nil)
		if n < 0 {
			num, den = den, num
		}
		return Reduce(NewRatFromBig(new(big.Rat).SetFrac(num, den))), nil
	case *Flt:
		f, _ := v.V.Float64()
		return Reduce(NewFlt(mathPow(f, float64(n)), env.prec())), nil
	}
	return nil, cerr.New(cerr.InvalidArgument, "unsupported base for ^")
}

func absI64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Neg implements unary "-".
func Neg(a Atom) Atom {
	switch v := a.(type) {
	case *Int:
		return NewIntFromBig(new(big.Int).Neg(v.V))
	case *Rat:
		return NewRatFromBig(new(big.Rat).Neg(v.V))
	case *Flt:
		return &Flt{V: new(big.Float).SetPrec(v.V.Prec()).Neg(v.V), Prec: v.Prec}
	case *Cmp:
		return &Cmp{
			Re:   new(big.Float).SetPrec(v.Re.Prec()).Neg(v.Re),
			Im:   new(big.Float).SetPrec(v.Im.Prec()).Neg(v.Im),
			Prec: v.Prec,
		}
	case *Time:
		return &Time{V: new(big.Rat).Neg(v.V), Absolute: v.Absolute}
	default:
		return a
	}
}

// Compare implements "cmp": -1, 0 or 1. Undefined (Domain error) for Cmp
// operands, which have no total order.
func Compare(a, b Atom, env Env) (int, error) {
	if a.Kind() == KindCmp || b.Kind() == KindCmp {
		return 0, cerr.New(cerr.Domain, "complex values are not ordered")
	}
	if ta, tb, ok := asTimes(a, b); ok {
		if ta.Absolute != tb.Absolute {
			return 0, cerr.New(cerr.Domain, "cannot compare an absolute time with a duration")
		}
		return ta.V.Cmp(tb.V), nil
	}
	if hasTime(a, b) {
		return 0, cerr.New(cerr.Domain, "cannot compare a time with a scalar")
	}
	wa, wb, k := widen(a, b, env.prec())
	switch k {
	case KindInt:
		return wa.(*Int).V.Cmp(wb.(*Int).V), nil
	case KindRat:
		return wa.(*Rat).V.Cmp(wb.(*Rat).V), nil
	case KindFlt:
		return wa.(*Flt).V.Cmp(wb.(*Flt).V), nil
	}
	return 0, cerr.New(cerr.InvalidArgument, "unsupported operand kinds for cmp")
}
