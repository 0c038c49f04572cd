// Package registry implements the function registry: an
// order-insensitive name → handle map populated at
// startup, plus the parallel regex-variant and operator-bucket lookups the
// parser and calculator need. There is no process-global instance: each
// caller builds its own with New (the CLI one per process, the websocket
// server one per connection).
package registry

import (
	"regexp"
	"sort"
	"sync"
)

// SymbolicUsage describes how a function's name is rendered when it
// appears at the root of a symbolic expression.
type SymbolicUsage int

const (
	UsageNone SymbolicUsage = iota
	UsageParen
	UsagePrefix
	UsageInfix
	UsagePostfix
)

// Calc is the minimal surface a function's op()/reop() needs from the
// calculator, kept as an interface here to avoid registry depending on
// internal/calculator (which depends on registry).
type Calc interface {
	// Only the stack depth is exposed at this layer, so registry has no
	// dependency on internal/numeric either; Pop/Push/Peek live on
	// *calculator.Calculator, which function bodies assert Calc back to.
	StackDepth() int
}

// Function is the capability set every registered calculator function
// implements.
type Function interface {
	Name() string
	Regex() string // "" if this function has no regex-triggered variant
	NumArgs() int  // >=0 exact, <0 "at least |n|"
	NumResp() int
	SymbolicUsage() SymbolicUsage
	Op(calc Calc) error
	Reop(calc Calc, captures []string) error
	Help() string
}

// regexVariant pairs a compiled pattern with the function it triggers,
// tried in registration order ahead of the fixed lexer rules.
type regexVariant struct {
	re *regexp.Regexp
	fn Function
}

// Registry is one name -> handle map. Word-named functions and
// bare operators live in separate buckets so operators never shadow
// identifiers.
type Registry struct {
	mu        sync.RWMutex
	words     map[string]Function
	operators map[string]Function
	variants  []regexVariant
}

func New() *Registry {
	return &Registry{
		words:     make(map[string]Function),
		operators: make(map[string]Function),
	}
}

// isWordName reports whether name is alphanumeric/underscore (a word
// name) as opposed to a bare operator token like "+" or "<=".
func isWordName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

// Register adds fn to the registry under its Name(), and to the
// regex-variant list if it declares a Regex() pattern.
func (r *Registry) Register(fn Function) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if isWordName(fn.Name()) {
		r.words[fn.Name()] = fn
	} else {
		r.operators[fn.Name()] = fn
	}
	if pat := fn.Regex(); pat != "" {
		r.variants = append(r.variants, regexVariant{re: regexp.MustCompile(pat), fn: fn})
	}
}

// ByName looks up a function by exact name, words first (so operators
// never shadow identifiers), then operators.
func (r *Registry) ByName(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.words[name]; ok {
		return fn, true
	}
	fn, ok := r.operators[name]
	return fn, ok
}

// AllNames returns every registered name (words and operators), sorted.
func (r *Registry) AllNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.words)+len(r.operators))
	for n := range r.words {
		names = append(names, n)
	}
	for n := range r.operators {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PrefixMatches returns the sorted, registered names beginning with p, for
// completion.
func (r *Registry) PrefixMatches(p string) []string {
	var out []string
	for _, n := range r.AllNames() {
		if len(n) >= len(p) && n[:len(p)] == p {
			out = append(out, n)
		}
	}
	return out
}

// MatchRegex tries every registered regex variant, in registration order,
// against the remainder of the input, returning the first match.
func (r *Registry) MatchRegex(remainder string) (Function, []string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.variants {
		if loc := v.re.FindStringSubmatchIndex(remainder); loc != nil && loc[0] == 0 {
			groups := v.re.FindStringSubmatch(remainder)
			return v.fn, groups, true
		}
	}
	return nil, nil, false
}
