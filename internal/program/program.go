// Package program implements the resumable Program/Statement iterators:
// a Program is a flat sequence of simple instructions and nested
// control-flow Statements (if/elif/else, while, for), each exposing the
// same next_item(flags) contract so the top-level executor never needs to
// know how deep it is nested.
//
// A target implementation may prefer explicit iterators over
// generator/coroutine syntax; these are plain finite state
// machines rather than goroutines, which keeps single-stepping and undo
// straightforward.
package program

import (
	"errors"
	"strings"

	"github.com/vmauery/smrtclcltr-sub000/internal/container"
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/instr"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/symbolic"
)

// ErrAborted is returned by Execute when the runner rejects an instruction.
var ErrAborted = errors.New("program aborted")

// Statement is anything exposing the next_item(flags) contract: Program
// itself, and each control-flow construct below.
type Statement interface {
	NextItem(flags *instr.Flags) (instr.Instruction, bool)
	Reset()
}

// Stack is the minimal stack surface for_statement needs to pop its setup
// result, kept as an interface so this package never depends on
// internal/calculator (which depends on this package).
type Stack interface {
	Pop() (numeric.Atom, error)
}

// VarBinder is the minimal variable-table surface for_statement needs to
// bind its loop variable each iteration.
type VarBinder interface {
	SetVariable(name string, v numeric.Atom)
}

type item struct {
	simple *instr.Instruction
	stmt   Statement
}

// Program is a sequence of Instructions plus a cursor and a standalone flag
// (true for `$(...)` quoted programs).
type Program struct {
	Standalone bool

	items  []item
	cursor int
	active Statement
}

// New builds an empty Program; standalone is true for a `$(...)` literal.
func New(standalone bool) *Program {
	return &Program{Standalone: standalone}
}

// Kind extends numeric.Kind's tag space so a quoted `$(...)` program is a
// first-class stack value.
const Kind = numeric.FirstContainerKind + 2

// Kind satisfies numeric.Atom.
func (p *Program) Kind() numeric.Kind { return Kind }

// IsZero reports whether p has no instructions.
func (p *Program) IsZero() bool { return p.Len() == 0 }

// String re-emits p as source text, wrapping a quoted program back in its
// `$( ... )` form so a program literal round-trips through parse and
// format.
func (p *Program) String() string {
	var parts []string
	for _, it := range p.items {
		if t := itemString(it); t != "" {
			parts = append(parts, t)
		}
	}
	body := strings.Join(parts, " ")
	if p.Standalone {
		if body == "" {
			return "$( )"
		}
		return "$( " + body + " )"
	}
	return body
}

func itemString(it item) string {
	if it.simple != nil {
		i := *it.simple
		switch i.Kind {
		case instr.KindValue:
			if i.Value.Kind() == symbolic.Kind {
				// Node.String() is bare infix text; the literal re-wraps
				// in its quotes so the program body re-parses.
				return "'" + i.Value.String() + "'"
			}
			return i.Value.String()
		case instr.KindCall:
			if i.Call.Captures != nil {
				return i.Call.Captures[0]
			}
			return i.Call.Function.Name()
		case instr.KindVarRef:
			return i.VarName
		case instr.KindBreak:
			return "break"
		case instr.KindContinue:
			return "continue"
		default:
			return ""
		}
	}
	switch st := it.stmt.(type) {
	case *IfElifStatement:
		var sb strings.Builder
		for i, b := range st.Branches {
			switch {
			case i == 0:
				sb.WriteString("if " + b.Cond.String() + " then " + b.Body.String())
			case b.Cond.Len() == 0:
				sb.WriteString(" else " + b.Body.String())
			default:
				sb.WriteString(" elif " + b.Cond.String() + " then " + b.Body.String())
			}
		}
		sb.WriteString(" endif")
		return sb.String()
	case *WhileStatement:
		return "while " + st.Cond.String() + " do " + st.Body.String() + " done"
	case *ForStatement:
		return "for " + st.Variable + " in " + st.Setup.String() + " do " + st.Body.String() + " done"
	default:
		return ""
	}
}

// Append adds a simple instruction to the end of the program.
func (p *Program) Append(i instr.Instruction) {
	p.items = append(p.items, item{simple: &i})
}

// AppendStatement adds a nested control-flow statement.
func (p *Program) AppendStatement(s Statement) {
	p.items = append(p.items, item{stmt: s})
}

// Len reports the number of top-level items; used by if_elif_statement to
// recognize an empty (else) condition.
func (p *Program) Len() int {
	return len(p.items)
}

// NextItem delegates into whichever child statement is currently open,
// advancing the cursor once that child reports NOOP.
func (p *Program) NextItem(flags *instr.Flags) (instr.Instruction, bool) {
	for {
		if p.active != nil {
			itm, ok := p.active.NextItem(flags)
			if ok {
				return itm, true
			}
			p.active.Reset()
			p.active = nil
			p.cursor++
			continue
		}
		if p.cursor >= len(p.items) {
			return instr.Instruction{}, false
		}
		it := p.items[p.cursor]
		if it.simple != nil {
			p.cursor++
			return *it.simple, true
		}
		p.active = it.stmt
	}
}

// Walk calls visit once for every nested control-flow Statement reachable
// from p (including those inside if/while/for conditions and bodies),
// depth-first. Used by the calculator to bind a freshly parsed Program's
// for-loops to itself before execution (see internal/calculator).
func (p *Program) Walk(visit func(Statement)) {
	for _, it := range p.items {
		if it.stmt == nil {
			continue
		}
		visit(it.stmt)
		switch s := it.stmt.(type) {
		case *IfElifStatement:
			for _, b := range s.Branches {
				b.Cond.Walk(visit)
				b.Body.Walk(visit)
			}
		case *WhileStatement:
			s.Cond.Walk(visit)
			s.Body.Walk(visit)
		case *ForStatement:
			s.Setup.Walk(visit)
			s.Body.Walk(visit)
		}
	}
}

// Reset rewinds the cursor to the start so one Program object may be
// executed repeatedly; the executor resets it at the start of every
// top-level execution.
func (p *Program) Reset() {
	p.cursor = 0
	p.active = nil
	for _, it := range p.items {
		if it.stmt != nil {
			it.stmt.Reset()
		}
	}
}

// Runner executes one SimpleInstruction (normally calculator.run_one) and
// reports whether execution may continue.
type Runner func(itm instr.Instruction, flags *instr.Flags) bool

// Execute runs the program to completion through runner.
func (p *Program) Execute(runner Runner, flags *instr.Flags) error {
	p.Reset()
	for {
		itm, ok := p.NextItem(flags)
		if !ok {
			return nil
		}
		if !runner(itm, flags) {
			return ErrAborted
		}
	}
}

// IfBranch is one (continue_next, condition, body) triple of an
// if/elif/else chain. An empty Cond marks the else branch,
// which is unconditionally entered when reached.
type IfBranch struct {
	ContinueNext bool
	Cond         *Program
	Body         *Program
}

type ifState int

const (
	ifCond ifState = iota
	ifBody
	ifDone
)

// IfElifStatement is the if/elif/else/endif control structure.
type IfElifStatement struct {
	Branches []*IfBranch
	Stack    Stack

	idx   int
	state ifState
}

func NewIfElifStatement(branches []*IfBranch) *IfElifStatement {
	return &IfElifStatement{Branches: branches}
}

func (s *IfElifStatement) Reset() {
	s.idx = 0
	s.state = ifCond
	for _, b := range s.Branches {
		b.Cond.Reset()
		b.Body.Reset()
	}
}

func (s *IfElifStatement) NextItem(flags *instr.Flags) (instr.Instruction, bool) {
	for {
		if s.idx >= len(s.Branches) {
			return instr.Instruction{}, false
		}
		branch := s.Branches[s.idx]
		switch s.state {
		case ifCond:
			if branch.Cond.Len() == 0 {
				// else: unconditionally entered.
				s.state = ifBody
				continue
			}
			itm, ok := branch.Cond.NextItem(flags)
			if ok {
				return itm, true
			}
			s.Stack.Pop() // discard the tested value
			if flags.Zero {
				s.idx++
				continue
			}
			s.state = ifBody
			continue
		case ifBody:
			itm, ok := branch.Body.NextItem(flags)
			if !ok {
				s.state = ifDone
				continue
			}
			return itm, true
		case ifDone:
			return instr.Instruction{}, false
		}
	}
}

type whileState int

const (
	whileCond whileState = iota
	whileBody
	whileDone
)

// WhileStatement is the while/do/done loop.
type WhileStatement struct {
	Cond  *Program
	Body  *Program
	Stack Stack

	state whileState
}

func NewWhileStatement(cond, body *Program) *WhileStatement {
	return &WhileStatement{Cond: cond, Body: body}
}

func (s *WhileStatement) Reset() {
	s.state = whileCond
	s.Cond.Reset()
	s.Body.Reset()
}

func (s *WhileStatement) NextItem(flags *instr.Flags) (instr.Instruction, bool) {
	for {
		switch s.state {
		case whileCond:
			itm, ok := s.Cond.NextItem(flags)
			if ok {
				return itm, true
			}
			s.Cond.Reset()
			s.Stack.Pop() // discard the tested value
			if flags.Zero {
				s.state = whileDone
				continue
			}
			s.state = whileBody
			continue
		case whileBody:
			itm, ok := s.Body.NextItem(flags)
			if !ok {
				s.Body.Reset()
				s.state = whileCond
				continue
			}
			switch itm.Kind {
			case instr.KindBreak:
				s.Body.Reset()
				s.state = whileDone
				continue
			case instr.KindContinue:
				s.Body.Reset()
				s.state = whileCond
				continue
			}
			return itm, true
		case whileDone:
			return instr.Instruction{}, false
		}
	}
}

type forState int

const (
	forSetup forState = iota
	forBody
	forDone
)

// ForStatement is the for/in/do/done loop: Setup computes a List, one
// element binds to Variable per iteration of Body.
type ForStatement struct {
	Variable string
	Setup    *Program
	Body     *Program
	Stack    Stack
	Vars     VarBinder

	state      forState
	elements   []numeric.Atom
	idx        int
	pendingErr error
}

func NewForStatement(variable string, setup, body *Program, stack Stack, vars VarBinder) *ForStatement {
	return &ForStatement{Variable: variable, Setup: setup, Body: body, Stack: stack, Vars: vars}
}

func (s *ForStatement) Reset() {
	s.state = forSetup
	s.elements = nil
	s.idx = 0
	s.pendingErr = nil
	s.Setup.Reset()
	s.Body.Reset()
}

func (s *ForStatement) advance() {
	s.idx++
	if s.idx >= len(s.elements) {
		s.state = forDone
		return
	}
	s.Vars.SetVariable(s.Variable, s.elements[s.idx])
}

func (s *ForStatement) NextItem(flags *instr.Flags) (instr.Instruction, bool) {
	for {
		switch s.state {
		case forSetup:
			itm, ok := s.Setup.NextItem(flags)
			if ok {
				return itm, true
			}
			s.Setup.Reset()
			v, err := s.Stack.Pop()
			if err != nil {
				s.pendingErr = err
				s.state = forDone
				continue
			}
			lst, ok := v.(*container.List)
			if !ok {
				s.pendingErr = cerr.New(cerr.Domain, "for requires a list on the stack")
				s.state = forDone
				continue
			}
			s.elements = lst.Elements
			s.idx = 0
			if len(s.elements) == 0 {
				s.state = forDone
				continue
			}
			s.Vars.SetVariable(s.Variable, s.elements[0])
			s.state = forBody
			continue
		case forBody:
			itm, ok := s.Body.NextItem(flags)
			if !ok {
				s.Body.Reset()
				s.advance()
				continue
			}
			switch itm.Kind {
			case instr.KindBreak:
				s.Body.Reset()
				s.state = forDone
				continue
			case instr.KindContinue:
				s.Body.Reset()
				s.advance()
				continue
			}
			return itm, true
		case forDone:
			if s.pendingErr != nil {
				e := s.pendingErr
				s.pendingErr = nil
				return instr.Instruction{Kind: instr.KindError, Err: e}, true
			}
			return instr.Instruction{}, false
		}
	}
}
