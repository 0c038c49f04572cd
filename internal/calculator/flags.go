package calculator

import (
	"math/big"

	"github.com/vmauery/smrtclcltr-sub000/internal/instr"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
)

// updateFlags recomputes zero/sign from v; every value write does this
// not just comparison functions.
func updateFlags(flags *instr.Flags, v numeric.Atom) {
	flags.Zero = v.IsZero()
	flags.Sign = signOf(v) < 0
}

func signOf(v numeric.Atom) int {
	switch a := v.(type) {
	case *numeric.Int:
		return a.V.Sign()
	case *numeric.Rat:
		return a.V.Sign()
	case *numeric.Flt:
		return a.V.Sign()
	default:
		return 0
	}
}

// applyFixedWidth truncates v into cfg.FixedBits (two's complement for
// signed mode) when both v is an Int and a fixed width is configured,
// setting flags.Carry/Overflow when truncation actually changed the value.
// Values outside fixed-width mode, or non-Int atoms, pass through untouched.
func applyFixedWidth(flags *instr.Flags, cfg Config, v numeric.Atom) numeric.Atom {
	iv, ok := v.(*numeric.Int)
	if !ok || cfg.FixedBits <= 0 {
		flags.Carry = false
		flags.Overflow = false
		return v
	}

	modulus := new(big.Int).Lsh(big.NewInt(1), uint(cfg.FixedBits))
	wrapped := new(big.Int).Mod(iv.V, modulus)
	if wrapped.Sign() < 0 {
		wrapped.Add(wrapped, modulus)
	}

	if cfg.Signed {
		half := new(big.Int).Rsh(modulus, 1)
		if wrapped.Cmp(half) >= 0 {
			wrapped.Sub(wrapped, modulus)
		}
	}

	overflowed := wrapped.Cmp(iv.V) != 0
	flags.Overflow = overflowed
	flags.Carry = overflowed

	return numeric.NewIntFromBig(wrapped)
}

func newInsufficientArgs(want, got int) error {
	return fmtInsufficientArgs(want, got)
}
