package calculator

import (
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
)

// SetBase sets the default display/parse base for future literals.
// cbase (below) retags an existing value instead.
func (c *Calculator) SetBase(b int) {
	c.Config.Base = b
}

func (c *Calculator) SetFixedBits(n int) {
	c.Config.FixedBits = n
}

func (c *Calculator) SetPrecision(p uint) {
	c.Config.Precision = p
}

func (c *Calculator) SetSignedMode(signed bool) {
	c.Config.Signed = signed
}

func (c *Calculator) SetAngleMode(m AngleMode) {
	c.Config.AngleMode = m
}

func (c *Calculator) SetMpqMode(m MpqMode) {
	c.Config.MpqMode = m
}

func (c *Calculator) SetMpcMode(m numeric.CmpDisplay) {
	c.Config.MpcMode = m
}

// Cbase retags the top-of-stack integer with the calculator's currently
// configured display base, without changing its value. Kept separate from
// SetBase's "set the default for future literals" role.
func (c *Calculator) Cbase() error {
	if len(c.Stack) == 0 {
		return fmtInsufficientArgs(1, 0)
	}
	top := len(c.Stack) - 1
	c.Stack[top].Base = c.Config.Base
	return nil
}
