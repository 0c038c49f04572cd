// Package driver implements the line-I/O collaborator interface and the
// per-line snapshot/parse/execute/render cycle. The terminal front-end,
// file/stdin plumbing, and logging sinks sit behind LineIO; this package
// owns just the loop and the narrow interface it drives them through.
package driver

import (
	"io"

	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	"github.com/vmauery/smrtclcltr-sub000/internal/parser"
)

// LineIO is the external line-editing/rendering collaborator.
// A terminal implementation lives in terminal.go; tests can supply a
// stub over in-memory buffers.
type LineIO interface {
	// ReadLine returns the next input line, or ok=false at end-of-input.
	ReadLine() (line string, ok bool)
	SetInteractive(bool)
	Size() (rows, cols int)
	Out(format string, args ...interface{})
	Err(format string, args ...interface{})
}

// Driver runs one Calculator against one LineIO collaborator.
type Driver struct {
	Calc *calculator.Calculator
	IO   LineIO
}

// New builds a Driver over an already-constructed Calculator.
func New(calc *calculator.Calculator, io LineIO) *Driver {
	return &Driver{Calc: calc, IO: io}
}

// Run reads lines from d.IO until end-of-input, processing each with
// RunLine. It never returns an error: end-of-input
// is a clean exit, and per-line failures are reported through d.IO.Err
// and leave the calculator running.
func (d *Driver) Run() {
	for d.Calc.Running {
		line, ok := d.IO.ReadLine()
		if !ok {
			break
		}
		d.RunLine(line)
	}
	if !d.Calc.Config.Interactive {
		// RunLine's per-line render is interactive-only, so a one-shot
		// CLI invocation would otherwise never print its answer.
		d.showStack()
	}
}

// RunLine executes the per-line cycle: snapshot, parse, execute,
// render. A parse failure or a function failure is reported and rolls the
// stack back to the pre-line snapshot; the calculator keeps running
// either way.
func (d *Driver) RunLine(line string) {
	d.Calc.SnapshotForLine()

	p := parser.New(line, d.Calc.Functions, d.Calc.Config.Base)
	prog, err := p.Parse()
	if err != nil {
		d.reportAndRollback(err)
		return
	}

	if err := d.Calc.Execute(prog); err != nil {
		d.reportAndRollback(err)
		return
	}

	if d.Calc.Config.Interactive {
		d.showStack()
	}
}

func (d *Driver) reportAndRollback(err error) {
	d.IO.Err("%s", err.Error())
	if rerr := d.Calc.Rollback(); rerr != nil {
		// Nothing was snapshotted (should not happen: RunLine always
		// snapshots first), surface the rollback failure too.
		d.IO.Err("%s", rerr.Error())
	}
}

func (d *Driver) showStack() {
	var sb stackWriter
	d.Calc.ShowStack(&sb)
	if sb.Len() > 0 {
		d.IO.Out("%s", sb.String())
	}
}

// stackWriter adapts io.Writer to the string-building ShowStack wants
// without pulling strings.Builder's API into this file's surface.
type stackWriter struct {
	buf []byte
}

func (s *stackWriter) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

func (s *stackWriter) Len() int { return len(s.buf) }

func (s *stackWriter) String() string { return string(s.buf) }

var _ io.Writer = (*stackWriter)(nil)

// AutoComplete implements the completion callback: the state-th
// registered function name beginning with prefix, or ok=false once
// exhausted.
func (d *Driver) AutoComplete(prefix string, state int) (name string, ok bool) {
	matches := d.Calc.Functions.PrefixMatches(prefix)
	if state < 0 || state >= len(matches) {
		return "", false
	}
	return matches[state], true
}
