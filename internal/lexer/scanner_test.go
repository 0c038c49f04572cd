package lexer

import "testing"

func types(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestScanTokensShape(t *testing.T) {
	cases := []struct {
		src  string
		want []TokenType
	}{
		{"2 3 +", []TokenType{TokenNumberish, TokenNumberish, TokenOperator, TokenEOF}},
		{"dup drop", []TokenType{TokenWord, TokenWord, TokenEOF}},
		{"if 1 then 2 endif", []TokenType{TokenIf, TokenNumberish, TokenThen, TokenNumberish, TokenEndif, TokenEOF}},
		{"$( 1 2 + )", []TokenType{TokenDollarParen, TokenNumberish, TokenNumberish, TokenOperator, TokenRParen, TokenEOF}},
		{"{ 1 2 3 }", []TokenType{TokenLBrace, TokenNumberish, TokenNumberish, TokenNumberish, TokenRBrace, TokenEOF}},
		{"# just a comment", []TokenType{TokenEOF}},
		{"<= != <", []TokenType{TokenOperator, TokenOperator, TokenOperator, TokenEOF}},
	}
	for _, c := range cases {
		got := types(NewScanner(c.src).ScanTokens())
		if len(got) != len(c.want) {
			t.Fatalf("%q: got %v, want %v", c.src, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("%q: token %d = %s, want %s", c.src, i, got[i], c.want[i])
			}
		}
	}
}

func TestKeywordsDoNotShadowPrefixWords(t *testing.T) {
	// "ifempty" must lex as one WORD, not "if" + "empty" (keywords
	// keywords are reserved exact words, not prefixes).
	toks := NewScanner("ifempty").ScanTokens()
	if len(toks) != 2 || toks[0].Type != TokenWord || toks[0].Lexeme != "ifempty" {
		t.Fatalf("got %v, want single WORD token", toks)
	}
}

func TestPeekTokenDoesNotConsume(t *testing.T) {
	s := NewScanner("1 2")
	peeked := s.PeekToken()
	actual := s.Next()
	if peeked.Type != actual.Type || peeked.Lexeme != actual.Lexeme {
		t.Fatalf("PeekToken() = %v, Next() = %v, want equal", peeked, actual)
	}
	second := s.Next()
	if second.Lexeme != "2" {
		t.Fatalf("second token = %q, want \"2\"", second.Lexeme)
	}
}

func TestRemainderAndSkipBytesForRegexFunctions(t *testing.T) {
	s := NewScanner("1 2 3 4 2matrix")
	for i := 0; i < 4; i++ {
		s.Next()
	}
	rem := s.Remainder()
	if rem != "2matrix" {
		t.Fatalf("Remainder() = %q, want \"2matrix\"", rem)
	}
	s.SkipBytes(len(rem))
	if !s.AtEnd() {
		t.Fatalf("expected AtEnd() after SkipBytes past the whole remainder")
	}
}

func TestCommentsDiscarded(t *testing.T) {
	toks := NewScanner("1 + 2 # trailing comment").ScanTokens()
	got := types(toks)
	want := []TokenType{TokenNumberish, TokenOperator, TokenNumberish, TokenEOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
