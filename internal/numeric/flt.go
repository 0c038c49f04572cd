package numeric

import "math/big"

// DefaultPrecision is the digit precision used when none is configured
// (precision 1..max_precision).
const DefaultPrecision = 34

// Flt is an arbitrary-precision float that tracks the precision (in decimal
// digits) it was created at.
type Flt struct {
	V    *big.Float
	Prec uint // decimal digits, as configured by the calculator
}

func NewFlt(v float64, precDigits uint) *Flt {
	if precDigits == 0 {
		precDigits = DefaultPrecision
	}
	f := new(big.Float).SetPrec(digitsToBits(precDigits)).SetFloat64(v)
	return &Flt{V: f, Prec: precDigits}
}

func NewFltFromBig(v *big.Float, precDigits uint) *Flt {
	if precDigits == 0 {
		precDigits = DefaultPrecision
	}
	return &Flt{V: v, Prec: precDigits}
}

func (f *Flt) Kind() Kind     { return KindFlt }
func (f *Flt) String() string { return f.V.Text('g', int(f.Prec)) }
func (f *Flt) IsZero() bool   { return f.V.Sign() == 0 }

// digitsToBits converts a decimal-digit precision into the bit precision
// math/big.Float wants, using the standard log2(10) ≈ 3.32193 expansion
// factor plus headroom for rounding.
func digitsToBits(digits uint) uint {
	return uint(float64(digits)*3.32193) + 8
}
