package numeric

import (
	"fmt"
	"math/big"
	"time"

	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
)

// Time is an exact-rational duration (seconds) or absolute instant
// (epoch-seconds).
type Time struct {
	V        *big.Rat
	Absolute bool
}

func NewDuration(seconds *big.Rat) *Time {
	return &Time{V: seconds, Absolute: false}
}

func NewAbsolute(epochSeconds *big.Rat) *Time {
	return &Time{V: epochSeconds, Absolute: true}
}

func (t *Time) Kind() Kind   { return KindTime }
func (t *Time) IsZero() bool { return t.V.Sign() == 0 }

func (t *Time) String() string {
	if t.Absolute {
		sec, _ := t.V.Float64()
		return time.Unix(int64(sec), 0).UTC().Format(time.RFC3339)
	}
	sec, _ := t.V.Float64()
	return time.Duration(sec * float64(time.Second)).String()
}

// DurationSeconds converts a numeric magnitude plus a duration
// suffix into exact seconds.
func DurationSeconds(magnitude *big.Rat, suffix string) (*big.Rat, error) {
	switch suffix {
	case "ns":
		return new(big.Rat).Quo(magnitude, big.NewRat(1_000_000_000, 1)), nil
	case "us":
		return new(big.Rat).Quo(magnitude, big.NewRat(1_000_000, 1)), nil
	case "ms":
		return new(big.Rat).Quo(magnitude, big.NewRat(1_000, 1)), nil
	case "s":
		return new(big.Rat).Set(magnitude), nil
	case "m":
		return new(big.Rat).Mul(magnitude, big.NewRat(60, 1)), nil
	case "h":
		return new(big.Rat).Mul(magnitude, big.NewRat(3600, 1)), nil
	case "d":
		return new(big.Rat).Mul(magnitude, big.NewRat(86400, 1)), nil
	default:
		return nil, fmt.Errorf("unknown duration suffix %q", suffix)
	}
}

// asTimes reports whether both operands are Time atoms.
func asTimes(a, b Atom) (*Time, *Time, bool) {
	ta, aok := a.(*Time)
	tb, bok := b.(*Time)
	return ta, tb, aok && bok
}

// asTimeScalar reports whether exactly one operand is a Time and the other
// a plain scalar, returning the Time, the scalar, and whether a (rather
// than b) was the Time operand.
func asTimeScalar(a, b Atom) (t *Time, scalar Atom, timeWasFirst, ok bool) {
	if ta, isTime := a.(*Time); isTime {
		if _, bIsTime := b.(*Time); !bIsTime {
			return ta, b, true, true
		}
	}
	if tb, isTime := b.(*Time); isTime {
		if _, aIsTime := a.(*Time); !aIsTime {
			return tb, a, false, true
		}
	}
	return nil, nil, false, false
}

// addTime implements "time + duration"; adding two absolute
// times is a Domain error (there is no meaningful "sum of two instants").
func addTime(a, b *Time) (Atom, error) {
	if a.Absolute && b.Absolute {
		return nil, cerr.New(cerr.Domain, "cannot add two absolute times")
	}
	return &Time{V: new(big.Rat).Add(a.V, b.V), Absolute: a.Absolute || b.Absolute}, nil
}

// subTime implements "time - time" (yields a duration) and
// "time - duration" (yields a time of the same absoluteness).
func subTime(a, b *Time) (Atom, error) {
	if a.Absolute && b.Absolute {
		return &Time{V: new(big.Rat).Sub(a.V, b.V), Absolute: false}, nil
	}
	return &Time{V: new(big.Rat).Sub(a.V, b.V), Absolute: a.Absolute}, nil
}

// mulTime implements "time * scalar" (yields a duration); multiplying an
// absolute time by a scalar has no physical meaning.
func mulTime(t *Time, scalar Atom, env Env) (Atom, error) {
	if t.Absolute {
		return nil, cerr.New(cerr.Domain, "cannot multiply an absolute time")
	}
	s, err := scalarToRat(scalar, env)
	if err != nil {
		return nil, err
	}
	return &Time{V: new(big.Rat).Mul(t.V, s), Absolute: false}, nil
}

// divTime implements "time / time" (dividing by a time is an
// error for absolute times; duration/duration yields a dimensionless
// ratio).
func divTime(a, b *Time) (Atom, error) {
	if b.Absolute {
		return nil, cerr.New(cerr.Domain, "cannot divide by an absolute time")
	}
	if b.V.Sign() == 0 {
		return nil, cerr.New(cerr.Domain, "division by zero duration")
	}
	return Reduce(NewRatFromBig(new(big.Rat).Quo(a.V, b.V))), nil
}

// divTimeScalar implements "duration / scalar" (yields a duration of the
// same absoluteness); dividing an absolute time by a scalar has no
// physical meaning.
func divTimeScalar(t *Time, scalar Atom, env Env) (Atom, error) {
	if t.Absolute {
		return nil, cerr.New(cerr.Domain, "cannot divide an absolute time by a scalar")
	}
	s, err := scalarToRat(scalar, env)
	if err != nil {
		return nil, err
	}
	if s.Sign() == 0 {
		return nil, cerr.New(cerr.Domain, "division by zero")
	}
	return &Time{V: new(big.Rat).Quo(t.V, s), Absolute: false}, nil
}

// scalarToRat converts the scalar operand of a time op to an exact
// rational, going through the continued-fraction narrowing for a Flt.
func scalarToRat(a Atom, env Env) (*big.Rat, error) {
	switch v := a.(type) {
	case *Int:
		return new(big.Rat).SetInt(v.V), nil
	case *Rat:
		return new(big.Rat).Set(v.V), nil
	case *Flt:
		r, err := ToRat(v, env.prec())
		if err != nil {
			return nil, err
		}
		return r.V, nil
	default:
		return nil, cerr.New(cerr.InvalidArgument, "time arithmetic requires a real scalar")
	}
}
