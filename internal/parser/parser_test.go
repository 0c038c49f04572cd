package parser

import (
	"testing"

	"github.com/vmauery/smrtclcltr-sub000/internal/functions"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
)

func newReg() *registry.Registry {
	reg := registry.New()
	functions.Register(reg)
	return reg
}

// Grammar: "if simple+ then instr+ (elif ...)* (else instr+)? endif"
// parses to a single top-level statement item.
func TestParseIfElifElseShape(t *testing.T) {
	prog, err := New("if 1 2 > then 10 elif 1 1 > then 20 else 30 endif", newReg(), 10).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (one IfElifStatement item)", prog.Len())
	}
}

func TestParseWhileShape(t *testing.T) {
	prog, err := New("0 while dup 3 < do 1 + done", newReg(), 10).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog.Len() != 2 { // push 0, then the while statement
		t.Fatalf("Len() = %d, want 2", prog.Len())
	}
}

func TestParseForShape(t *testing.T) {
	prog, err := New("for i in { 1 2 3 } do i done", newReg(), 10).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", prog.Len())
	}
}

func TestParseQuotedProgramIsNotExpanded(t *testing.T) {
	// a quoted program pushed on the stack is a value, not inlined
	// into the enclosing program's instruction list.
	prog, err := New("$( 1 2 + )", newReg(), 10).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (one KindValue instruction holding the quoted Program)", prog.Len())
	}
}

func TestParseUnterminatedIfIsParseError(t *testing.T) {
	_, err := New("if 1 then 2", newReg(), 10).Parse()
	if err == nil {
		t.Fatalf("expected a ParseError for a missing endif")
	}
}

// An unrecognized operator symbol is still a ParseError: only the operator
// bucket is closed-world. A bare word is not (see
// TestParseUnknownWordIsAVariableReference below) since for-loops bind
// for-loop variables to plain identifiers the parser cannot resolve ahead
// of execution.
func TestParseUnknownOperatorIsParseError(t *testing.T) {
	_, err := New("2 3 @@", newReg(), 10).Parse()
	if err == nil {
		t.Fatalf("expected a ParseError for an unregistered operator symbol")
	}
}

// A bare word not found in the registry is a read of a
// for-loop-bound variable, resolved against the calculator's variable
// table at run_one time — not a parse-time failure, since the binding
// happens per iteration, long after parsing.
func TestParseUnknownWordIsAVariableReference(t *testing.T) {
	prog, err := New("2 3 frobnicate", newReg(), 10).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v, want a successful parse of a variable reference", err)
	}
	if prog.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (push 2, push 3, read variable \"frobnicate\")", prog.Len())
	}
}

func TestParseMismatchedMatrixRowsIsParseError(t *testing.T) {
	_, err := New("[[1 2][3]]", newReg(), 10).Parse()
	if err == nil {
		t.Fatalf("expected a ParseError for inconsistent matrix row lengths")
	}
}

func TestParseTrailingGarbageIsParseError(t *testing.T) {
	_, err := New("1 2 + )", newReg(), 10).Parse()
	if err == nil {
		t.Fatalf("expected a ParseError for an unmatched trailing ')'")
	}
}

// The optional leading '-' of a signed literal only applies when the
// '-' is immediately adjacent to the digits; "3 - 1" must still parse as
// subtraction, not the literal -1 following a bare 3.
func TestNegativeLiteralRequiresNoIntervalSpace(t *testing.T) {
	prog, err := New("3 - 1", newReg(), 10).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (push 3, call '-', push 1)", prog.Len())
	}
}

// Digit-grouping commas are legal in a plain integer literal at the top
// level, where the comma-allowed flag is set.
func TestGroupedIntegerLiteral(t *testing.T) {
	prog, err := New("1,000,000 2 +", newReg(), 10).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (push 1000000, push 2, call '+')", prog.Len())
	}
}

func TestAdjacentMinusIsNegativeLiteral(t *testing.T) {
	prog, err := New("-1 2 +", newReg(), 10).Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if prog.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (push -1, push 2, call '+')", prog.Len())
	}
}
