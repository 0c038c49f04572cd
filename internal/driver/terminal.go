package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Terminal is the default LineIO collaborator: stdin/stdout/stderr, with
// interactivity auto-detected via go-isatty so a piped session renders
// without prompts or row indices.
type Terminal struct {
	in          *bufio.Scanner
	out         io.Writer
	errw        io.Writer
	interactive bool
	rows, cols  int
}

// NewTerminal wires a Terminal to os.Stdin/os.Stdout/os.Stderr, defaulting
// interactivity to whether stdout is attached to a TTY.
func NewTerminal() *Terminal {
	t := &Terminal{
		in:   bufio.NewScanner(os.Stdin),
		out:  os.Stdout,
		errw: os.Stderr,
		rows: 24,
		cols: 80,
	}
	t.interactive = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return t
}

func (t *Terminal) ReadLine() (string, bool) {
	if t.interactive {
		fmt.Fprint(t.out, "> ")
	}
	if !t.in.Scan() {
		return "", false
	}
	return t.in.Text(), true
}

func (t *Terminal) SetInteractive(v bool) { t.interactive = v }

// Interactive reports the auto-detected (or overridden) interactivity, so
// the CLI can seed the calculator's own interactive flag from it.
func (t *Terminal) Interactive() bool { return t.interactive }

func (t *Terminal) Size() (rows, cols int) { return t.rows, t.cols }

func (t *Terminal) Out(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
	fmt.Fprintln(t.out)
}

func (t *Terminal) Err(format string, args ...interface{}) {
	fmt.Fprintf(t.errw, format, args...)
	fmt.Fprintln(t.errw)
}

var _ LineIO = (*Terminal)(nil)
