package numeric

import (
	"math"
	"math/big"

	"modernc.org/mathutil"
)

// Rat is a reduced rational p/q, q > 0, gcd(|p|,q)=1.
// math/big.Rat already maintains this invariant internally (SetFrac
// reduces via Euclid's algorithm), so reduce is mostly a cheap sanity
// pass; the int64 fast path below goes through mathutil.GCDUint64 instead of
// big.Int.GCD, ahead of the general big.Int fallback (this is the tower's
// only use of mathutil).
type Rat struct {
	V *big.Rat
}

func NewRat(num, den int64) *Rat {
	return &Rat{V: big.NewRat(num, den)}
}

func NewRatFromBig(v *big.Rat) *Rat {
	return &Rat{V: reduceRat(v)}
}

func (r *Rat) Kind() Kind     { return KindRat }
func (r *Rat) String() string { return r.V.RatString() }
func (r *Rat) IsZero() bool   { return r.V.Sign() == 0 }

// reduceRat re-validates a big.Rat's reduced form; big.Rat's own
// arithmetic always returns an already-reduced value, but values built by
// SetFrac directly from externally supplied numerator/denominator pairs
// (e.g. a parsed "p/q" literal) are re-checked here.
func reduceRat(v *big.Rat) *big.Rat {
	num, den := v.Num(), v.Denom()
	if num.IsInt64() && den.IsInt64() && num.Int64() != math.MinInt64 {
		g := int64(mathutil.GCDUint64(uint64(absInt64(num.Int64())), uint64(den.Int64())))
		if g > 1 {
			return new(big.Rat).SetFrac(
				new(big.Int).Quo(num, big.NewInt(g)),
				new(big.Int).Quo(den, big.NewInt(g)),
			)
		}
		return v
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(big.NewInt(1)) > 0 {
		return new(big.Rat).SetFrac(
			new(big.Int).Quo(num, g),
			new(big.Int).Quo(den, g),
		)
	}
	return v
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
