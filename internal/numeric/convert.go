package numeric

import (
	"math/big"

	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
)

// ToFlt widens any arithmetic atom to Flt at the given precision.
func ToFlt(a Atom, precDigits uint) *Flt {
	switch v := a.(type) {
	case *Int:
		bits := digitsToBits(precDigits)
		f := new(big.Float).SetPrec(bits).SetInt(v.V)
		return &Flt{V: f, Prec: precDigits}
	case *Rat:
		bits := digitsToBits(precDigits)
		f := new(big.Float).SetPrec(bits).SetRat(v.V)
		return &Flt{V: f, Prec: precDigits}
	case *Flt:
		return v
	default:
		return nil
	}
}

// ToCmp widens any arithmetic atom to Cmp at the given precision.
func ToCmp(a Atom, precDigits uint) *Cmp {
	if c, ok := a.(*Cmp); ok {
		return c
	}
	f := ToFlt(a, precDigits)
	bits := digitsToBits(precDigits)
	return &Cmp{
		Re:   f.V,
		Im:   new(big.Float).SetPrec(bits),
		Prec: precDigits,
	}
}

// ToRat narrows a Flt back to a Rat via continued-fraction approximation,
// keeping the result only if the residual error is within 10^(-precision).
// Returns a ConversionLoss error otherwise.
func ToRat(f *Flt, precDigits uint) (*Rat, error) {
	r, err := continuedFractionRat(f.V, precDigits)
	if err != nil {
		return nil, err
	}
	return NewRatFromBig(r), nil
}

// continuedFractionRat builds successive continued-fraction convergents of
// x and stops at the first one whose residual |x - p/q| is within the
// precision floor.
func continuedFractionRat(x *big.Float, precDigits uint) (*big.Rat, error) {
	bits := x.Prec()
	if bits == 0 {
		bits = digitsToBits(precDigits)
	}
	tolerance := new(big.Float).SetPrec(bits)
	tolerance.SetFloat64(1)
	ten := new(big.Float).SetPrec(bits).SetFloat64(10)
	tenToPrec := new(big.Float).SetPrec(bits).SetFloat64(1)
	for i := uint(0); i < precDigits; i++ {
		tenToPrec.Mul(tenToPrec, ten)
	}
	tolerance.Quo(tolerance, tenToPrec)

	neg := x.Sign() < 0
	cur := new(big.Float).SetPrec(bits).Abs(x)

	var p0, p1, q0, q1 = big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(1)
	const maxTerms = 128
	for i := 0; i < maxTerms; i++ {
		a, _ := cur.Int(nil)
		p2 := new(big.Int).Add(new(big.Int).Mul(a, p1), p0)
		q2 := new(big.Int).Add(new(big.Int).Mul(a, q1), q0)

		candidate := new(big.Rat).SetFrac(p2, q2)
		approx := new(big.Float).SetPrec(bits).SetRat(candidate)
		diff := new(big.Float).SetPrec(bits).Sub(new(big.Float).SetPrec(bits).Abs(x), approx)
		diff.Abs(diff)
		if diff.Cmp(tolerance) <= 0 {
			if neg {
				p2 = new(big.Int).Neg(p2)
			}
			return new(big.Rat).SetFrac(p2, q2), nil
		}

		frac := new(big.Float).SetPrec(bits).Sub(cur, new(big.Float).SetPrec(bits).SetInt(a))
		if frac.Sign() == 0 {
			if neg {
				p2 = new(big.Int).Neg(p2)
			}
			return new(big.Rat).SetFrac(p2, q2), nil
		}
		one := new(big.Float).SetPrec(bits).SetFloat64(1)
		cur = new(big.Float).SetPrec(bits).Quo(one, frac)

		p0, p1 = p1, p2
		q0, q1 = q1, q2
	}
	return nil, cerr.Newf(cerr.ConversionLoss,
		"float to rational conversion did not converge within precision %d", precDigits)
}

// Reduce normalizes an arithmetic atom after a binary op:
// Cmp with zero imaginary part becomes Flt; Rat with denominator 1
// becomes Int; Flt equal to zero becomes Int.
func Reduce(a Atom) Atom {
	switch v := a.(type) {
	case *Cmp:
		if v.Im.Sign() == 0 {
			return &Flt{V: v.Re, Prec: v.Prec}
		}
		return v
	case *Flt:
		if v.V.Sign() == 0 {
			return NewInt(0)
		}
		return v
	case *Rat:
		if v.V.IsInt() {
			return NewIntFromBig(new(big.Int).Set(v.V.Num()))
		}
		return v
	default:
		return a
	}
}

// widen brings a and b to the same kind, the narrower common ancestor on
// the ladder Int < Rat < Flt < Cmp, at the supplied display precision.
func widen(a, b Atom, precDigits uint) (Atom, Atom, Kind) {
	ra, rb := rank(a.Kind()), rank(b.Kind())
	target := ra
	if rb > target {
		target = rb
	}
	return widenTo(a, Kind(targetKind(target)), precDigits),
		widenTo(b, Kind(targetKind(target)), precDigits),
		Kind(targetKind(target))
}

func targetKind(r int) Kind {
	switch r {
	case 0:
		return KindInt
	case 1:
		return KindRat
	case 2:
		return KindFlt
	default:
		return KindCmp
	}
}

func widenTo(a Atom, k Kind, precDigits uint) Atom {
	if a.Kind() == k {
		return a
	}
	switch k {
	case KindRat:
		i := a.(*Int)
		return &Rat{V: new(big.Rat).SetInt(i.V)}
	case KindFlt:
		return ToFlt(a, precDigits)
	case KindCmp:
		return ToCmp(a, precDigits)
	default:
		return a
	}
}
