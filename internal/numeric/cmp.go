package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// CmpDisplay selects how a Cmp atom renders (the mpc display mode).
type CmpDisplay int

const (
	DisplayRect CmpDisplay = iota
	DisplayPolar
	DisplayIJ
)

// Cmp is a complex number stored as a Cartesian pair of float components;
// polar/ij are display modes only, never the storage form.
type Cmp struct {
	Re, Im *big.Float
	Prec   uint
	Mode   CmpDisplay
}

func NewCmp(re, im float64, precDigits uint) *Cmp {
	if precDigits == 0 {
		precDigits = DefaultPrecision
	}
	bits := digitsToBits(precDigits)
	return &Cmp{
		Re:   new(big.Float).SetPrec(bits).SetFloat64(re),
		Im:   new(big.Float).SetPrec(bits).SetFloat64(im),
		Prec: precDigits,
	}
}

// NewCmpFromRats builds a Cmp from exact rational components, so a
// "(re,im)" literal never narrows through float64 on its way in.
func NewCmpFromRats(re, im *big.Rat, precDigits uint) *Cmp {
	if precDigits == 0 {
		precDigits = DefaultPrecision
	}
	bits := digitsToBits(precDigits)
	return &Cmp{
		Re:   new(big.Float).SetPrec(bits).SetRat(re),
		Im:   new(big.Float).SetPrec(bits).SetRat(im),
		Prec: precDigits,
	}
}

func (c *Cmp) Kind() Kind   { return KindCmp }
func (c *Cmp) IsZero() bool { return c.Re.Sign() == 0 && c.Im.Sign() == 0 }

func (c *Cmp) String() string {
	switch c.Mode {
	case DisplayPolar:
		mag, ang := c.Polar()
		return fmt.Sprintf("(%s,<%s)", mag.Text('g', int(c.Prec)), ang.Text('g', int(c.Prec)))
	case DisplayIJ:
		if c.Im.Sign() >= 0 {
			return fmt.Sprintf("%s+%sj", c.Re.Text('g', int(c.Prec)), c.Im.Text('g', int(c.Prec)))
		}
		return fmt.Sprintf("%s%sj", c.Re.Text('g', int(c.Prec)), c.Im.Text('g', int(c.Prec)))
	default:
		return fmt.Sprintf("(%s,%s)", c.Re.Text('g', int(c.Prec)), c.Im.Text('g', int(c.Prec)))
	}
}

// Polar returns the magnitude/angle (radians) pair for display mode DisplayPolar.
func (c *Cmp) Polar() (*big.Float, *big.Float) {
	re64, _ := c.Re.Float64()
	im64, _ := c.Im.Float64()
	mag := newFloatFrom(math.Hypot(re64, im64), c.Prec)
	ang := newFloatFrom(math.Atan2(im64, re64), c.Prec)
	return mag, ang
}

func newFloatFrom(v float64, precDigits uint) *big.Float {
	return new(big.Float).SetPrec(digitsToBits(precDigits)).SetFloat64(v)
}
