package parser

import (
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
)

var (
	reISOTime     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?)?$`)
	reDuration    = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(ns|us|ms|s|m|h|d)$`)
	reComplex     = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)([ij])$`)
	reComplexRect = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)([+-]\d+(?:\.\d+)?)[ij]$`)
	reRational    = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)/(\d+(?:\.\d+)?)$`)
	reHex         = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	reOct         = regexp.MustCompile(`^0[0-7]+$`)
	reBin         = regexp.MustCompile(`^0[bB][01]+$`)
	reFloat       = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+)([eE][+-]?\d+)?$`)
	reIntE        = regexp.MustCompile(`^[+-]?\d+[eE][+-]?\d+$`)
)

// classifyLiteral tries each literal rule in turn against a single
// NUMBERISH token, first match wins. base is the calculator's currently
// configured default base, used for a bare (unprefixed) digit run. The
// second result is the literal's own display base for base-prefixed
// integers (0b/0/0x), so "0xff" re-renders as 0xff whatever the configured
// default; 0 means no preference.
func classifyLiteral(text string, base int) (numeric.Atom, int, bool) {
	if m := reISOTime.FindStringSubmatch(text); m != nil {
		if t, err := parseISOTime(text); err == nil {
			return numeric.NewAbsolute(epochSecondsRat(t)), 0, true
		}
	}
	if m := reDuration.FindStringSubmatch(text); m != nil {
		if mag, ok := parseRatLiteral(m[1]); ok {
			if sec, err := numeric.DurationSeconds(mag, m[2]); err == nil {
				return numeric.NewDuration(sec), 0, true
			}
		}
	}
	if m := reComplexRect.FindStringSubmatch(text); m != nil {
		re, ok1 := parseFloatLiteral(m[1])
		im, ok2 := parseFloatLiteral(m[2])
		if ok1 && ok2 {
			return numeric.Reduce(&numeric.Cmp{Re: re, Im: im, Prec: numeric.DefaultPrecision}), 0, true
		}
	}
	if m := reComplex.FindStringSubmatch(text); m != nil {
		if im, ok := parseFloatLiteral(m[1]); ok {
			re := new(big.Float).SetPrec(im.Prec())
			return numeric.Reduce(&numeric.Cmp{Re: re, Im: im, Prec: numeric.DefaultPrecision}), 0, true
		}
	}
	if m := reRational.FindStringSubmatch(text); m != nil {
		num, ok1 := parseRatLiteral(m[1])
		den, ok2 := parseRatLiteral(m[2])
		if ok1 && ok2 && den.Sign() != 0 {
			r := new(big.Rat).Quo(num, den)
			return numeric.Reduce(numeric.NewRatFromBig(r)), 0, true
		}
	}
	if reHex.MatchString(text) {
		if v, ok := new(big.Int).SetString(text[2:], 16); ok {
			return numeric.NewIntFromBig(v), 16, true
		}
	}
	if reBin.MatchString(text) {
		if v, ok := new(big.Int).SetString(text[2:], 2); ok {
			return numeric.NewIntFromBig(v), 2, true
		}
	}
	if reOct.MatchString(text) {
		if v, ok := new(big.Int).SetString(text[1:], 8); ok {
			return numeric.NewIntFromBig(v), 8, true
		}
	}
	if reFloat.MatchString(text) || reIntE.MatchString(text) {
		if f, ok := parseFloatLiteral(text); ok {
			return numeric.Reduce(numeric.NewFltFromBig(f, numeric.DefaultPrecision)), 0, true
		}
	}
	if v, ok := new(big.Int).SetString(text, base); ok {
		return numeric.NewIntFromBig(v), 0, true
	}
	return nil, 0, false
}

func epochSecondsRat(t time.Time) *big.Rat {
	r := new(big.Rat).SetInt64(t.Unix())
	if ns := t.Nanosecond(); ns != 0 {
		r.Add(r, big.NewRat(int64(ns), 1_000_000_000))
	}
	return r
}

func parseISOTime(text string) (time.Time, error) {
	if strings.Contains(text, "T") {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, text); err == nil {
				return t, nil
			}
		}
	}
	return time.Parse("2006-01-02", text)
}

func parseRatLiteral(s string) (*big.Rat, bool) {
	r, ok := new(big.Rat).SetString(s)
	return r, ok
}

func parseFloatLiteral(s string) (*big.Float, bool) {
	f, ok := new(big.Float).SetPrec(numeric.DefaultPrecision * 4).SetString(s)
	return f, ok
}
