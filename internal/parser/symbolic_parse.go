package parser

import (
	cerr "github.com/vmauery/smrtclcltr-sub000/internal/errors"
	"github.com/vmauery/smrtclcltr-sub000/internal/lexer"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
	"github.com/vmauery/smrtclcltr-sub000/internal/symbolic"
)

// mustFn looks up a symbolic operator's registered Function handle,
// panicking (caught by Parser.Parse's recover) if the operator registry
// doesn't carry it — every operator this grammar uses must be registered
// by internal/functions for both stack dispatch and symbolic rendering.
func (p *Parser) mustFn(name string) registry.Function {
	fn, ok := p.reg.ByName(name)
	if !ok {
		panic(cerr.Newf(cerr.Parse, "symbolic operator %q is not registered", name))
	}
	return fn
}

// The quoted-expression grammar, lowest to highest precedence:
//
//	equation  := addsub ('=' addsub)?
//	addsub    := multdiv (('+'|'-') multdiv)*
//	multdiv   := negation (('*'|'/'|'%') negation)*
//	negation  := '-' expon | expon
//	expon     := factorial ('^' factorial)?
//	factorial := atomic '!'?
//	atomic    := number | variable | '(' equation ')' | fn '(' equation ')'

func (p *Parser) parseEquation() *symbolic.Node {
	left := p.parseAddSub()
	if t := p.sc.PeekToken(); t.Type == lexer.TokenOperator && t.Lexeme == "=" {
		p.sc.Next()
		right := p.parseAddSub()
		fn := p.mustFn("=")
		return symbolic.NewBinary(fn, symbolic.StyleInfix, left, right)
	}
	return left
}

func (p *Parser) parseAddSub() *symbolic.Node {
	left := p.parseMulDiv()
	for {
		t := p.sc.PeekToken()
		if t.Type != lexer.TokenOperator || (t.Lexeme != "+" && t.Lexeme != "-") {
			return left
		}
		p.sc.Next()
		right := p.parseMulDiv()
		fn := p.mustFn(t.Lexeme)
		left = symbolic.NewBinary(fn, symbolic.StyleInfix, left, right)
	}
}

func (p *Parser) parseMulDiv() *symbolic.Node {
	left := p.parseNegation()
	for {
		t := p.sc.PeekToken()
		if t.Type != lexer.TokenOperator || (t.Lexeme != "*" && t.Lexeme != "/" && t.Lexeme != "%") {
			return left
		}
		p.sc.Next()
		right := p.parseNegation()
		fn := p.mustFn(t.Lexeme)
		left = symbolic.NewBinary(fn, symbolic.StyleInfix, left, right)
	}
}

// parseNegation implements `'-' expon | expon`. Unary minus renders as a
// paren-style wrapper (`neg(x)`), the same shape used for every
// other unary symbolic wrapper (sin, cos, gamma, ...), rather than
// overloading the binary "-" operator's infix Fn for a unary role.
func (p *Parser) parseNegation() *symbolic.Node {
	if t := p.sc.PeekToken(); t.Type == lexer.TokenOperator && t.Lexeme == "-" {
		p.sc.Next()
		operand := p.parseExpon()
		return symbolic.NewUnary(p.mustFn("neg"), operand)
	}
	return p.parseExpon()
}

func (p *Parser) parseExpon() *symbolic.Node {
	left := p.parseFactorial()
	if t := p.sc.PeekToken(); t.Type == lexer.TokenOperator && t.Lexeme == "^" {
		p.sc.Next()
		right := p.parseFactorial()
		fn := p.mustFn("^")
		return symbolic.NewBinary(fn, symbolic.StyleInfix, left, right)
	}
	return left
}

func (p *Parser) parseFactorial() *symbolic.Node {
	operand := p.parseAtomic()
	if t := p.sc.PeekToken(); t.Type == lexer.TokenOperator && t.Lexeme == "!" {
		p.sc.Next()
		return symbolic.NewBinary(p.mustFn("!"), symbolic.StylePostfix, operand, nil)
	}
	return operand
}

// parseAtomic implements `number | variable | '(' equation ')' | fn '('
// equation ')'`. Variables are lowercase-letter words; a word that names a
// registered function and is followed by '(' is instead a function call
// whose sole argument is the parenthesized equation.
func (p *Parser) parseAtomic() *symbolic.Node {
	tok := p.sc.PeekToken()
	switch tok.Type {
	case lexer.TokenNumberish:
		p.sc.Next()
		atom, _, ok := classifyLiteral(tok.Lexeme, p.base)
		if !ok {
			panic(cerr.Newf(cerr.Parse, "not a recognized literal: %q", tok.Lexeme).WithSpan(tok.Start, tok.End))
		}
		return symbolic.NewAtom(atom)
	case lexer.TokenLParen:
		p.sc.Next()
		inner := p.parseEquation()
		p.expect(lexer.TokenRParen)
		return inner
	case lexer.TokenWord:
		p.sc.Next()
		if fn, ok := p.reg.ByName(tok.Lexeme); ok && p.sc.PeekToken().Type == lexer.TokenLParen {
			p.sc.Next()
			arg := p.parseEquation()
			p.expect(lexer.TokenRParen)
			return symbolic.NewUnary(fn, arg)
		}
		for _, r := range tok.Lexeme {
			if r < 'a' || r > 'z' {
				panic(cerr.Newf(cerr.Parse, "variable %q must be lowercase letters", tok.Lexeme).WithSpan(tok.Start, tok.End))
			}
		}
		return symbolic.NewVariable(tok.Lexeme)
	default:
		panic(cerr.Newf(cerr.Parse, "unexpected token %q in symbolic expression", tok.Lexeme).WithSpan(tok.Start, tok.End))
	}
}
