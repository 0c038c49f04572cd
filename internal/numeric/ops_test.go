package numeric

import (
	"math/big"
	"testing"

	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
)

func TestAddWidensToCommonAncestor(t *testing.T) {
	env := Env{Precision: DefaultPrecision}

	sum, err := Add(NewInt(2), NewRat(1, 2), env)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	r, ok := sum.(*Rat)
	if !ok {
		t.Fatalf("Add(Int, Rat) = %T, want *Rat", sum)
	}
	if want := big.NewRat(5, 2); r.V.Cmp(want) != 0 {
		t.Errorf("2 + 1/2 = %s, want %s", r.V, want)
	}
}

func TestReduceRatWithDenominatorOneBecomesInt(t *testing.T) {
	sum, err := Add(NewRat(1, 2), NewRat(1, 2), Env{Precision: DefaultPrecision})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := sum.(*Int); !ok {
		t.Fatalf("1/2 + 1/2 reduced to %T, want *Int", sum)
	}
}

func TestReduceCmpWithZeroImaginaryBecomesFlt(t *testing.T) {
	c := NewCmp(3, 4, DefaultPrecision)
	reduced := Reduce(&Cmp{Re: c.Re, Im: new(big.Float).SetPrec(c.Im.Prec()), Prec: c.Prec})
	if _, ok := reduced.(*Flt); !ok {
		t.Fatalf("Reduce(Cmp with Im=0) = %T, want *Flt", reduced)
	}
}

func TestRatIsAlwaysReduced(t *testing.T) {
	r := NewRatFromBig(big.NewRat(6, 4))
	if r.V.Num().Int64() != 3 || r.V.Denom().Int64() != 2 {
		t.Errorf("6/4 reduced to %s, want 3/2", r.V)
	}
	if r.V.Sign() == 0 {
		return
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.V.Num()), r.V.Denom())
	if g.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("gcd(|num|,den) = %s, want 1", g)
	}
	if r.V.Denom().Sign() <= 0 {
		t.Errorf("denominator %s is not positive", r.V.Denom())
	}
}

func TestDivByZeroIsDomainError(t *testing.T) {
	_, err := Div(NewInt(1), NewInt(0), Env{Precision: DefaultPrecision})
	if !cerr.Is(err, cerr.Domain) {
		t.Fatalf("Div by zero = %v, want Domain error", err)
	}
}

func TestModOnComplexIsUndefined(t *testing.T) {
	_, err := Mod(NewCmp(1, 1, DefaultPrecision), NewInt(2), Env{Precision: DefaultPrecision})
	if !cerr.Is(err, cerr.Domain) {
		t.Fatalf("Mod on complex = %v, want Domain error", err)
	}
}

func TestCompareComplexIsUndefined(t *testing.T) {
	_, err := Compare(NewCmp(1, 1, DefaultPrecision), NewInt(0), Env{Precision: DefaultPrecision})
	if !cerr.Is(err, cerr.Domain) {
		t.Fatalf("Compare on complex = %v, want Domain error", err)
	}
}

func TestTimeDurationArithmetic(t *testing.T) {
	dur := NewDuration(big.NewRat(5, 1))
	abs := NewAbsolute(big.NewRat(1000, 1))

	sum, err := addTime(abs, dur)
	if err != nil {
		t.Fatalf("time + duration: %v", err)
	}
	st := sum.(*Time)
	if !st.Absolute {
		t.Errorf("time + duration should stay absolute")
	}
	if st.V.Cmp(big.NewRat(1005, 1)) != 0 {
		t.Errorf("1000 + 5 = %s, want 1005", st.V)
	}

	diff, err := subTime(abs, abs)
	if err != nil {
		t.Fatalf("time - time: %v", err)
	}
	dt := diff.(*Time)
	if dt.Absolute {
		t.Errorf("time - time should yield a duration, not an absolute time")
	}
	if !dt.IsZero() {
		t.Errorf("t - t should be zero duration, got %s", dt.V)
	}

	if _, err := divTime(abs, abs); !cerr.Is(err, cerr.Domain) {
		t.Fatalf("dividing by an absolute time should be a Domain error, got %v", err)
	}
}

// Time never joins the widening ladder: any time/scalar mix the dedicated
// time rules don't claim surfaces as a Domain error instead of widening.
func TestTimeScalarMixIsDomainError(t *testing.T) {
	env := Env{Precision: DefaultPrecision}
	dur := NewDuration(big.NewRat(5, 1))

	if _, err := Add(dur, NewInt(1), env); !cerr.Is(err, cerr.Domain) {
		t.Errorf("duration + scalar = %v, want Domain error", err)
	}
	if _, err := Sub(NewInt(1), dur, env); !cerr.Is(err, cerr.Domain) {
		t.Errorf("scalar - duration = %v, want Domain error", err)
	}
	if _, err := Mul(dur, dur, env); !cerr.Is(err, cerr.Domain) {
		t.Errorf("duration * duration = %v, want Domain error", err)
	}
	if _, err := Div(NewInt(1), dur, env); !cerr.Is(err, cerr.Domain) {
		t.Errorf("scalar / duration = %v, want Domain error", err)
	}
	if _, err := Mod(dur, NewInt(2), env); !cerr.Is(err, cerr.Domain) {
		t.Errorf("duration mod scalar = %v, want Domain error", err)
	}
	if _, err := Pow(dur, NewInt(2), env); !cerr.Is(err, cerr.Domain) {
		t.Errorf("duration ^ scalar = %v, want Domain error", err)
	}
	if _, err := Compare(dur, NewInt(5), env); !cerr.Is(err, cerr.Domain) {
		t.Errorf("compare(duration, scalar) = %v, want Domain error", err)
	}
}

func TestCompareTimes(t *testing.T) {
	env := Env{Precision: DefaultPrecision}
	d5 := NewDuration(big.NewRat(5, 1))
	d7 := NewDuration(big.NewRat(7, 1))
	abs := NewAbsolute(big.NewRat(1000, 1))

	cmp, err := Compare(d5, d7, env)
	if err != nil {
		t.Fatalf("Compare(5s, 7s): %v", err)
	}
	if cmp != -1 {
		t.Errorf("Compare(5s, 7s) = %d, want -1", cmp)
	}
	if _, err := Compare(d5, abs, env); !cerr.Is(err, cerr.Domain) {
		t.Errorf("compare(duration, absolute) = %v, want Domain error", err)
	}
}

// "time * scalar yields a duration", exactly, through the rational path.
func TestMulDurationByScalar(t *testing.T) {
	env := Env{Precision: DefaultPrecision}
	dur := NewDuration(big.NewRat(3, 2))
	out, err := Mul(dur, NewInt(4), env)
	if err != nil {
		t.Fatalf("duration * 4: %v", err)
	}
	ot := out.(*Time)
	if ot.Absolute {
		t.Error("duration * scalar should stay a duration")
	}
	if ot.V.Cmp(big.NewRat(6, 1)) != 0 {
		t.Errorf("1.5s * 4 = %s, want 6", ot.V)
	}
}

func TestFltToRatConversionLossOnUnreachablePrecision(t *testing.T) {
	pi := NewFlt(3.14159265358979323846, 40)
	// Asking for a tighter precision than the continued-fraction search
	// can satisfy in a bounded number of terms should surface as a
	// ConversionLoss rather than silently returning a poor rational.
	_, err := ToRat(pi, 60)
	if err != nil && !cerr.Is(err, cerr.ConversionLoss) {
		t.Fatalf("ToRat failure kind = %v, want ConversionLoss", err)
	}
}
