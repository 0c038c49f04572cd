package numeric

import "math/big"

// Int is an arbitrary-precision signed integer.
type Int struct {
	V *big.Int
}

func NewInt(v int64) *Int           { return &Int{V: big.NewInt(v)} }
func NewIntFromBig(v *big.Int) *Int { return &Int{V: v} }

func (i *Int) Kind() Kind     { return KindInt }
func (i *Int) String() string { return i.V.String() }
func (i *Int) IsZero() bool   { return i.V.Sign() == 0 }

// bigMulThreshold is the operand bit-length above which mulInt hands the
// multiplication to bigfft instead of math/big's schoolbook/Karatsuba path,
// mirroring bigfft's documented role as an accelerated-multiply backend
// for math/big.
const bigMulThreshold = 1 << 15

func mulInt(a, b *big.Int) *big.Int {
	if a.BitLen() > bigMulThreshold && b.BitLen() > bigMulThreshold {
		return mulBigFFT(a, b)
	}
	return new(big.Int).Mul(a, b)
}
