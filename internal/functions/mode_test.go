package functions

import (
	"testing"

	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
)

func newCalc() *calculator.Calculator {
	return calculator.New(registry.New())
}

func TestBaseFnSetsDisplayBase(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(16))
	if err := baseFn.op(c); err != nil {
		t.Fatalf("base op() error = %v", err)
	}
	if c.Config.Base != 16 {
		t.Errorf("Config.Base = %d, want 16", c.Config.Base)
	}
	if c.StackDepth() != 0 {
		t.Errorf("StackDepth() = %d, want 0 (base consumes its argument)", c.StackDepth())
	}
}

func TestBaseFnRejectsOutOfRange(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(37))
	if err := baseFn.op(c); err == nil {
		t.Fatal("expected an InvalidArgument error for base 37")
	}
	if c.StackDepth() != 1 {
		t.Errorf("StackDepth() after a rejected base = %d, want 1 (untouched)", c.StackDepth())
	}
}

func TestFixedBitsFnRejectsNegative(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(-1))
	if err := fixedBitsFn.op(c); err == nil {
		t.Fatal("expected an InvalidArgument error for a negative bit width")
	}
}

func TestPrecisionFnSetsPrecision(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(12))
	if err := precisionFn.op(c); err != nil {
		t.Fatalf("precision op() error = %v", err)
	}
	if c.Config.Precision != 12 {
		t.Errorf("Config.Precision = %d, want 12", c.Config.Precision)
	}
}

func TestSignedModeFnToggles(t *testing.T) {
	c := newCalc()
	before := c.Config.Signed
	if err := signedModeFn.op(c); err != nil {
		t.Fatalf("signed op() error = %v", err)
	}
	if c.Config.Signed == before {
		t.Error("signed mode did not toggle")
	}
	if err := signedModeFn.op(c); err != nil {
		t.Fatalf("signed op() error = %v", err)
	}
	if c.Config.Signed != before {
		t.Error("signed mode did not toggle back")
	}
}

func TestAngleModeFnRejectsOutOfRange(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(3))
	if err := angleModeFn.op(c); err == nil {
		t.Fatal("expected an InvalidArgument error for angle mode 3")
	}
}

func TestAngleModeFnAcceptsDegrees(t *testing.T) {
	c := newCalc()
	c.Push(numeric.NewInt(1))
	if err := angleModeFn.op(c); err != nil {
		t.Fatalf("angle op() error = %v", err)
	}
	if c.Config.AngleMode != calculator.AngleDeg {
		t.Errorf("Config.AngleMode = %v, want AngleDeg", c.Config.AngleMode)
	}
}

func TestMpqModeFnToggles(t *testing.T) {
	c := newCalc()
	before := c.Config.MpqMode
	if err := mpqModeFn.op(c); err != nil {
		t.Fatalf("mpqmode op() error = %v", err)
	}
	if c.Config.MpqMode == before {
		t.Error("mpqmode did not toggle")
	}
}

func TestMpcModeFnCyclesAllThreeForms(t *testing.T) {
	c := newCalc()
	want := []numeric.CmpDisplay{numeric.DisplayPolar, numeric.DisplayIJ, numeric.DisplayRect}
	for i, w := range want {
		if err := mpcModeFn.op(c); err != nil {
			t.Fatalf("mpcmode op() error = %v", err)
		}
		if c.Config.MpcMode != w {
			t.Errorf("after %d toggles MpcMode = %v, want %v", i+1, c.Config.MpcMode, w)
		}
	}
}

func TestCbaseRequiresTopOfStack(t *testing.T) {
	c := newCalc()
	if err := cbaseFn.op(c); err == nil {
		t.Fatal("expected an InsufficientArgs error popping cbase with an empty stack")
	}
}
