package registry

import "testing"

// fakeFn is a minimal Function for registry-only tests, independent of any
// concrete function body package.
type fakeFn struct {
	name, regex string
	argsN       int
}

func (f fakeFn) Name() string                 { return f.name }
func (f fakeFn) Regex() string                { return f.regex }
func (f fakeFn) NumArgs() int                 { return f.argsN }
func (f fakeFn) NumResp() int                 { return 1 }
func (f fakeFn) SymbolicUsage() SymbolicUsage { return UsageNone }
func (f fakeFn) Op(Calc) error                { return nil }
func (f fakeFn) Reop(Calc, []string) error    { return nil }
func (f fakeFn) Help() string                 { return "" }

// Names used purely as operators are stored in a second bucket from
// word-named functions; a word and an operator each resolve through
// ByName, and an unregistered name resolves in neither.
func TestWordAndOperatorBucketsBothResolve(t *testing.T) {
	r := New()
	r.Register(fakeFn{name: "dup"})
	r.Register(fakeFn{name: "+"})

	if _, ok := r.ByName("dup"); !ok {
		t.Fatal("expected \"dup\" to be registered")
	}
	if _, ok := r.ByName("+"); !ok {
		t.Fatal("expected \"+\" to be registered")
	}
	if _, ok := r.ByName("nope"); ok {
		t.Fatal("unregistered name should not resolve")
	}
}

func TestAllNamesSorted(t *testing.T) {
	r := New()
	r.Register(fakeFn{name: "zeta"})
	r.Register(fakeFn{name: "alpha"})
	r.Register(fakeFn{name: "mu"})

	got := r.AllNames()
	want := []string{"alpha", "mu", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("AllNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllNames() = %v, want %v", got, want)
		}
	}
}

func TestPrefixMatches(t *testing.T) {
	r := New()
	for _, n := range []string{"sin", "sinh", "sqrt", "sum"} {
		r.Register(fakeFn{name: n})
	}
	got := r.PrefixMatches("si")
	want := []string{"sin", "sinh"}
	if len(got) != len(want) {
		t.Fatalf("PrefixMatches(\"si\") = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PrefixMatches(\"si\") = %v, want %v", got, want)
		}
	}
}

// Regex variants are tried in registration order and
// only match at the start of the remaining input.
func TestMatchRegexTriesInRegistrationOrder(t *testing.T) {
	r := New()
	first := fakeFn{name: "first", regex: `^[0-9]+matrix\b`}
	second := fakeFn{name: "second", regex: `^[0-9]+matrix\b`}
	r.Register(first)
	r.Register(second)

	fn, captures, ok := r.MatchRegex("2matrix rest")
	if !ok {
		t.Fatal("expected a regex match")
	}
	if fn.Name() != "first" {
		t.Fatalf("matched function = %q, want \"first\" (earlier registration)", fn.Name())
	}
	if captures[0] != "2matrix" {
		t.Fatalf("captures[0] = %q, want \"2matrix\"", captures[0])
	}
}

func TestMatchRegexOnlyAnchoredAtStart(t *testing.T) {
	r := New()
	r.Register(fakeFn{name: "matrixFn", regex: `^[0-9]+matrix\b`})

	if _, _, ok := r.MatchRegex("not 2matrix"); ok {
		t.Fatal("regex must only match at the start of the remainder")
	}
}
