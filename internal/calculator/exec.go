package calculator

import (
	"github.com/vmauery/smrtclcltr-sub000/internal/program"
)

// BindForLoops wires every control-flow statement nested in p to c's own
// stack/variable surface: for-loops need somewhere to pop their setup list
// and bind their loop variable, if/while need somewhere to pop the value
// their condition leaves behind. The parser builds these
// statements before any Calculator exists for the line (parsing and
// execution are separate phases), so the calculator that
// actually runs the line finishes construction here, once, before the
// first Execute.
func (c *Calculator) BindForLoops(p *program.Program) {
	p.Walk(func(s program.Statement) {
		switch st := s.(type) {
		case *program.ForStatement:
			st.Stack = c
			st.Vars = c
		case *program.IfElifStatement:
			st.Stack = c
		case *program.WhileStatement:
			st.Stack = c
		}
	})
}

// Execute runs prog to completion against c, binding any nested
// for-loops first.
func (c *Calculator) Execute(p *program.Program) error {
	c.BindForLoops(p)
	run, lastErr := c.Runner()
	err := p.Execute(run, &c.Flags)
	if *lastErr != nil {
		return *lastErr
	}
	return err
}
