package errors

import (
	"errors"
	"testing"
)

func TestErrorFormatsKindMessageAndSpan(t *testing.T) {
	e := New(Domain, "divide by zero").WithSpan(3, 7)
	want := "Domain: divide by zero (at 3:7)"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorOmitsMessageAndSpanWhenAbsent(t *testing.T) {
	e := New(InsufficientArgs, "")
	if got, want := e.Error(), "InsufficientArgs"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewfFormatsMessage(t *testing.T) {
	e := Newf(InvalidArgument, "bad base %d", 37)
	if got, want := e.Message, "bad base 37"; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestIsMatchesKindAndRejectsOthers(t *testing.T) {
	e := New(Overflow, "")
	if !Is(e, Overflow) {
		t.Error("Is(e, Overflow) = false, want true")
	}
	if Is(e, Domain) {
		t.Error("Is(e, Domain) = true, want false")
	}
	if Is(errors.New("plain"), Overflow) {
		t.Error("Is(plain error, Overflow) = true, want false")
	}
}

func TestWrapUnwrapReachesCause(t *testing.T) {
	cause := errors.New("underlying")
	e := Wrap(ConversionLoss, cause, "lost precision")
	if Cause(e) != cause {
		t.Errorf("Cause(e) = %v, want %v", Cause(e), cause)
	}
	if errors.Unwrap(e) == nil {
		t.Error("Unwrap() = nil, want a wrapped cause")
	}
}
