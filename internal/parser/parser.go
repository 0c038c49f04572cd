// Package parser turns one input line into a Program:
// numeric/complex/time/duration/matrix/list/program/symbolic literals,
// function/operator/regex-function tokens, and the if/elif/else/endif,
// while/do/done, for/in/do/done control-flow grammar.
//
// The lexer (internal/lexer) only slices the line into coarse token
// shapes; this package does the attribute-driven, PEG-style work of
// deciding which literal rule a NUMBERISH chunk matches and of
// recognizing the control-flow keywords.
package parser

import (
	"math"
	"math/big"

	"github.com/vmauery/smrtclcltr-sub000/internal/container"
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/instr"
	"github.com/vmauery/smrtclcltr-sub000/internal/lexer"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/program"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
)

// Parser consumes the full text of one user line. Global parse state is
// limited to two fields: the currently configured default base (for
// prefix-less integer literals) and the comma-allowed flag, passed
// through this struct rather than a true global (the mutation scope is
// one call to Parse).
type Parser struct {
	sc            *lexer.Scanner
	reg           *registry.Registry
	base          int
	commasAllowed bool
}

// New builds a Parser over source, ready to classify bare digit runs in
// base (the calculator's currently configured display base).
func New(source string, reg *registry.Registry, base int) *Parser {
	if base == 0 {
		base = 10
	}
	return &Parser{sc: lexer.NewScanner(source), reg: reg, base: base, commasAllowed: true}
}

var blockStops = map[lexer.TokenType]bool{
	lexer.TokenElif: true, lexer.TokenElse: true, lexer.TokenEndif: true,
	lexer.TokenDone: true, lexer.TokenThen: true,
}

// Parse consumes the whole line and returns a top-level, non-standalone
// Program, or a ParseError; nothing ever panics past this entry point.
func (p *Parser) Parse() (prog *program.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			prog = nil
			if ce, ok := r.(*cerr.CalcError); ok {
				err = ce
				return
			}
			err = cerr.Newf(cerr.Parse, "%v", r)
		}
	}()
	prog = p.parseBlock(nil)
	tok := p.sc.PeekToken()
	if tok.Type != lexer.TokenEOF {
		return nil, cerr.Newf(cerr.Parse, "unexpected token %q", tok.Lexeme).WithSpan(tok.Start, tok.End)
	}
	return prog, nil
}

// parseBlock collects instructions/statements until it meets a token in
// stop (nil means "run to EOF"), used both for the top-level line and for
// every if/while/for/quoted-program body.
func (p *Parser) parseBlock(stop map[lexer.TokenType]bool) *program.Program {
	prog := program.New(false)
	for {
		tok := p.sc.PeekToken()
		if tok.Type == lexer.TokenEOF {
			return prog
		}
		if stop != nil && stop[tok.Type] {
			return prog
		}
		switch tok.Type {
		case lexer.TokenIf:
			prog.AppendStatement(p.parseIf())
		case lexer.TokenWhile:
			prog.AppendStatement(p.parseWhile())
		case lexer.TokenFor:
			prog.AppendStatement(p.parseFor())
		case lexer.TokenBreak:
			p.sc.Next()
			prog.Append(instr.Instruction{Kind: instr.KindBreak})
		case lexer.TokenContinue:
			p.sc.Next()
			prog.Append(instr.Instruction{Kind: instr.KindContinue})
		default:
			prog.Append(p.parseSimple())
		}
	}
}

// parseSimpleRun parses one or more SimpleInstructions, stopping at the
// first control-flow keyword in stop. Used for if/while/for conditions,
// which may never themselves contain nested control flow: keeping the
// elif/else/endif keywords out of conditions keeps lexing deterministic.
func (p *Parser) parseSimpleRun(stop map[lexer.TokenType]bool) *program.Program {
	prog := program.New(false)
	for {
		tok := p.sc.PeekToken()
		if tok.Type == lexer.TokenEOF || stop[tok.Type] {
			return prog
		}
		prog.Append(p.parseSimple())
	}
}

func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	tok := p.sc.Next()
	if tok.Type != t {
		panic(cerr.Newf(cerr.Parse, "expected %s, got %q", t, tok.Lexeme).WithSpan(tok.Start, tok.End))
	}
	return tok
}

// parseIf implements `if simple+ then instr+ (elif simple+ then instr+)*
// (else instr+)? endif`.
func (p *Parser) parseIf() *program.IfElifStatement {
	var branches []*program.IfBranch
	p.expect(lexer.TokenIf)
	for {
		cond := p.parseSimpleRun(map[lexer.TokenType]bool{lexer.TokenThen: true})
		p.expect(lexer.TokenThen)
		body := p.parseBlock(blockStops)
		branches = append(branches, &program.IfBranch{Cond: cond, Body: body})

		next := p.sc.PeekToken()
		if next.Type == lexer.TokenElif {
			p.sc.Next()
			continue
		}
		break
	}
	if p.sc.PeekToken().Type == lexer.TokenElse {
		p.sc.Next()
		body := p.parseBlock(blockStops)
		branches = append(branches, &program.IfBranch{Cond: program.New(false), Body: body})
	}
	p.expect(lexer.TokenEndif)
	stmt := program.NewIfElifStatement(branches)
	stmt.Stack = pendingStackBinder{}
	return stmt
}

// parseWhile implements `while simple+ do loop-instr+ done`.
func (p *Parser) parseWhile() *program.WhileStatement {
	p.expect(lexer.TokenWhile)
	cond := p.parseSimpleRun(map[lexer.TokenType]bool{lexer.TokenDo: true})
	p.expect(lexer.TokenDo)
	body := p.parseBlock(blockStops)
	p.expect(lexer.TokenDone)
	stmt := program.NewWhileStatement(cond, body)
	stmt.Stack = pendingStackBinder{}
	return stmt
}

// parseFor implements `for variable in simple+ do loop-instr+ done`.
// The returned ForStatement's Stack/Vars are a pendingStackBinder
// placeholder; Calculator.BindForLoops rebinds them to the real Calculator
// before the first Execute (see internal/calculator/exec.go).
func (p *Parser) parseFor() *program.ForStatement {
	p.expect(lexer.TokenFor)
	variable := p.expect(lexer.TokenWord).Lexeme
	p.expect(lexer.TokenIn)
	setup := p.parseSimpleRun(map[lexer.TokenType]bool{lexer.TokenDo: true})
	p.expect(lexer.TokenDo)
	body := p.parseBlock(blockStops)
	p.expect(lexer.TokenDone)
	return program.NewForStatement(variable, setup, body, pendingStackBinder{}, pendingStackBinder{})
}

// pendingStackBinder is a placeholder Stack/VarBinder swapped out for the
// real Calculator by Calculator.BindForLoops before a statement ever runs
// (see internal/calculator/exec.go). Parsing happens before a Calculator
// instance is threaded in, so the statement is built once here and bound
// to its runtime calculator on first execution.
type pendingStackBinder struct{}

func (pendingStackBinder) Pop() (numeric.Atom, error) {
	return nil, cerr.New(cerr.Domain, "for loop used outside of a calculator session")
}
func (pendingStackBinder) SetVariable(name string, v numeric.Atom) {}

// parseSimple parses exactly one SimpleInstruction: a value literal, a
// quoted program/symbolic, or a function/operator/regex call.
func (p *Parser) parseSimple() instr.Instruction {
	if fn, captures, rest, ok := p.tryRegexFunction(); ok {
		p.sc.SkipBytes(len(rest))
		return instr.Instruction{Kind: instr.KindCall, Call: &instr.FunctionCall{Function: fn, Captures: captures}}
	}

	tok := p.sc.PeekToken()
	switch tok.Type {
	case lexer.TokenNumberish:
		p.sc.Next()
		return p.literalInstruction(tok)
	case lexer.TokenOperator:
		if tok.Lexeme == "-" {
			if v, ok := p.tryNegativeLiteral(); ok {
				return v
			}
		}
		p.sc.Next()
		return p.callInstruction(tok)
	case lexer.TokenLParen:
		p.sc.Next()
		return p.parseParenComplex(tok)
	case lexer.TokenLBracket:
		p.sc.Next()
		return p.parseMatrix(tok)
	case lexer.TokenLBrace:
		p.sc.Next()
		return p.parseList(tok)
	case lexer.TokenDollarParen:
		p.sc.Next()
		return p.parseQuotedProgram(tok)
	case lexer.TokenQuote:
		p.sc.Next()
		return p.parseSymbolicLiteral(tok)
	case lexer.TokenWord:
		p.sc.Next()
		return p.callOrVarInstruction(tok)
	default:
		p.sc.Next()
		panic(cerr.Newf(cerr.Parse, "unexpected token %q", tok.Lexeme).WithSpan(tok.Start, tok.End))
	}
}

// tryRegexFunction probes every registered regex-variant against the
// unconsumed input; regex functions are tried, in registration order,
// ahead of ordinary word/operator tokenizing.
func (p *Parser) tryRegexFunction() (registry.Function, []string, string, bool) {
	remainder := p.sc.Remainder()
	fn, captures, ok := p.reg.MatchRegex(remainder)
	if !ok {
		return nil, nil, "", false
	}
	return fn, captures, captures[0], true
}

// tryNegativeLiteral recognizes a signed literal's optional leading '-',
// accepting a literal only when the '-' is immediately adjacent (no
// intervening whitespace) to a following NUMBERISH chunk; otherwise '-'
// is the ordinary binary/unary subtract operator.
func (p *Parser) tryNegativeLiteral() (instr.Instruction, bool) {
	minus := p.sc.PeekToken()
	p.sc.Next()
	next := p.sc.PeekToken()
	if next.Type != lexer.TokenNumberish || next.Start != minus.End {
		p.sc.SeekTo(minus.Start)
		return instr.Instruction{}, false
	}
	p.sc.Next()
	atom, baseHint, ok := classifyLiteral("-"+next.Lexeme, p.base)
	if !ok {
		p.sc.SeekTo(minus.Start)
		return instr.Instruction{}, false
	}
	return instr.Instruction{Kind: instr.KindValue, Value: atom, DisplayBase: baseHint, Start: minus.Start, End: next.End}, true
}

func (p *Parser) literalInstruction(tok lexer.Token) instr.Instruction {
	text, end := p.mergeGroupedDigits(tok)
	atom, baseHint, ok := classifyLiteral(text, p.base)
	if !ok {
		panic(cerr.Newf(cerr.Parse, "not a recognized literal: %q", text).WithSpan(tok.Start, end))
	}
	return instr.Instruction{Kind: instr.KindValue, Value: atom, DisplayBase: baseHint, Start: tok.Start, End: end}
}

// mergeGroupedDigits joins "1,000,000"-style digit-grouped integers back
// into one literal. The lexer emits the comma as its own token, so the
// grouping is reassembled here, and only while the comma-allowed flag is
// set — inside (…,…) complex literals and quoted symbolic expressions the
// comma is a separator instead.
func (p *Parser) mergeGroupedDigits(tok lexer.Token) (string, int) {
	text, end := tok.Lexeme, tok.End
	if !p.commasAllowed || !allDigits(text) {
		return text, end
	}
	for {
		c := p.sc.PeekToken()
		if c.Type != lexer.TokenComma || c.Start != end {
			return text, end
		}
		save := c.Start
		p.sc.Next()
		d := p.sc.PeekToken()
		if d.Type != lexer.TokenNumberish || d.Start != c.End || !allDigits(d.Lexeme) {
			p.sc.SeekTo(save)
			return text, end
		}
		p.sc.Next()
		text += d.Lexeme
		end = d.End
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (p *Parser) callInstruction(tok lexer.Token) instr.Instruction {
	fn, ok := p.reg.ByName(tok.Lexeme)
	if !ok {
		panic(cerr.Newf(cerr.Parse, "unknown function or operator %q", tok.Lexeme).WithSpan(tok.Start, tok.End))
	}
	return instr.Instruction{Kind: instr.KindCall, Call: &instr.FunctionCall{Function: fn}, Start: tok.Start, End: tok.End}
}

// callOrVarInstruction resolves a bare word against the registry first;
// a word that names no registered function or operator is a read of a
// for-loop-bound variable instead, resolved at dispatch time against the
// calculator's variable table rather than here, since binding happens per
// for-loop iteration, long after parsing.
//
// In a configured base above 10 a letters-only literal like "ff" lexes as
// a word (the lexer's numberish rule needs a leading digit), so an
// unregistered word is tried as a base-N integer before falling back to a
// variable reference. Registered names still win: "f" stays the
// force-to-float word even in hex mode.
func (p *Parser) callOrVarInstruction(tok lexer.Token) instr.Instruction {
	if fn, ok := p.reg.ByName(tok.Lexeme); ok {
		return instr.Instruction{Kind: instr.KindCall, Call: &instr.FunctionCall{Function: fn}, Start: tok.Start, End: tok.End}
	}
	if p.base > 10 {
		if v, ok := new(big.Int).SetString(tok.Lexeme, p.base); ok {
			return instr.Instruction{Kind: instr.KindValue, Value: numeric.NewIntFromBig(v), Start: tok.Start, End: tok.End}
		}
	}
	return instr.Instruction{Kind: instr.KindVarRef, VarName: tok.Lexeme, Start: tok.Start, End: tok.End}
}

// parseParenComplex parses the `(real,imag)` and `(mag,<angle)` complex
// literal forms.
func (p *Parser) parseParenComplex(open lexer.Token) instr.Instruction {
	wasCommas := p.commasAllowed
	p.commasAllowed = false
	defer func() { p.commasAllowed = wasCommas }()

	polar := false
	first := p.parseNumberToken()
	p.expect(lexer.TokenComma)
	if t := p.sc.PeekToken(); t.Type == lexer.TokenOperator && t.Lexeme == "<" {
		polar = true
		p.sc.Next()
	}
	second := p.parseNumberToken()
	close := p.expect(lexer.TokenRParen)

	prec := uint(numeric.DefaultPrecision)
	if polar {
		// The polar form goes through float64 for cos/sin, the same
		// double-precision transcendental path the trig words use.
		mag, _ := first.Float64()
		ang, _ := second.Float64()
		re := mag * math.Cos(ang)
		im := mag * math.Sin(ang)
		return instr.Instruction{
			Kind:  instr.KindValue,
			Value: numeric.Reduce(numeric.NewCmp(re, im, prec)),
			Start: open.Start, End: close.End,
		}
	}
	return instr.Instruction{
		Kind:  instr.KindValue,
		Value: numeric.Reduce(numeric.NewCmpFromRats(first, second, prec)),
		Start: open.Start, End: close.End,
	}
}

// parseNumberToken consumes one signed numeric literal token (used inside
// complex/matrix/list literals, where only numbers - not full
// instructions - are legal).
func (p *Parser) parseNumberToken() *big.Rat {
	neg := false
	if t := p.sc.PeekToken(); t.Type == lexer.TokenOperator && t.Lexeme == "-" {
		neg = true
		p.sc.Next()
	}
	tok := p.expect(lexer.TokenNumberish)
	r, ok := new(big.Rat).SetString(tok.Lexeme)
	if !ok {
		panic(cerr.Newf(cerr.Parse, "expected a number, got %q", tok.Lexeme).WithSpan(tok.Start, tok.End))
	}
	if neg {
		r.Neg(r)
	}
	return r
}

// parseMatrix parses `[ [ n … ] [ n … ] … ]` and the single-row
// shorthand `[ [ n … n … ] ]`.
func (p *Parser) parseMatrix(open lexer.Token) instr.Instruction {
	var rows [][]numeric.Atom
	for {
		if p.sc.PeekToken().Type == lexer.TokenRBracket {
			break
		}
		p.expect(lexer.TokenLBracket)
		var row []numeric.Atom
		for p.sc.PeekToken().Type != lexer.TokenRBracket {
			row = append(row, classifyOrPanic(p.parseNumberToken()))
		}
		p.expect(lexer.TokenRBracket)
		rows = append(rows, row)
	}
	close := p.expect(lexer.TokenRBracket)

	if len(rows) == 0 {
		m, _ := container.NewMatrix(0, 0, nil)
		return instr.Instruction{Kind: instr.KindValue, Value: m, Start: open.Start, End: close.End}
	}
	cols := len(rows[0])
	var values []numeric.Atom
	for _, r := range rows {
		if len(r) != cols {
			panic(cerr.New(cerr.Parse, "matrix rows have inconsistent length").WithSpan(open.Start, close.End))
		}
		values = append(values, r...)
	}
	m, err := container.NewMatrix(len(rows), cols, values)
	if err != nil {
		panic(cerr.Newf(cerr.Parse, "%s", err).WithSpan(open.Start, close.End))
	}
	return instr.Instruction{Kind: instr.KindValue, Value: m, Start: open.Start, End: close.End}
}

// parseList parses `{ n n … }`.
func (p *Parser) parseList(open lexer.Token) instr.Instruction {
	var elems []numeric.Atom
	for p.sc.PeekToken().Type != lexer.TokenRBrace {
		elems = append(elems, classifyOrPanic(p.parseNumberToken()))
	}
	close := p.expect(lexer.TokenRBrace)
	return instr.Instruction{Kind: instr.KindValue, Value: container.NewList(elems...), Start: open.Start, End: close.End}
}

func classifyOrPanic(r *big.Rat) numeric.Atom {
	return numeric.Reduce(numeric.NewRatFromBig(r))
}

// parseQuotedProgram parses `$( instructions )`: a Program pushed onto
// the stack as a first-class value, not executed at parse time.
func (p *Parser) parseQuotedProgram(open lexer.Token) instr.Instruction {
	body := p.parseBlock(map[lexer.TokenType]bool{lexer.TokenRParen: true})
	close := p.expect(lexer.TokenRParen)
	body.Standalone = true
	return instr.Instruction{Kind: instr.KindValue, Value: body, Start: open.Start, End: close.End}
}

// parseSymbolicLiteral parses a `' expr '` quoted symbolic expression,
// suppressing the comma-allowed flag for the duration so the comma can
// act as a separator without being confused with digit grouping.
func (p *Parser) parseSymbolicLiteral(open lexer.Token) instr.Instruction {
	wasCommas := p.commasAllowed
	p.commasAllowed = false
	defer func() { p.commasAllowed = wasCommas }()

	node := p.parseEquation()
	close := p.expect(lexer.TokenQuote)
	return instr.Instruction{Kind: instr.KindValue, Value: node, Start: open.Start, End: close.End}
}
