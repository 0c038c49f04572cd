package driver

import (
	"fmt"
	"os"
)

// LineList is a LineIO over a fixed, pre-supplied sequence of lines
// (positional command-line tokens, joined and appended as a single
// final input line, force non-interactive mode — stdin is never read).
type LineList struct {
	lines       []string
	pos         int
	interactive bool
}

// NewLineList builds a non-interactive LineIO that yields lines in order
// and then reports end-of-input.
func NewLineList(lines ...string) *LineList {
	return &LineList{lines: lines}
}

func (l *LineList) ReadLine() (string, bool) {
	if l.pos >= len(l.lines) {
		return "", false
	}
	line := l.lines[l.pos]
	l.pos++
	return line, true
}

func (l *LineList) SetInteractive(v bool) { l.interactive = v }

func (l *LineList) Size() (rows, cols int) { return 24, 80 }

func (l *LineList) Out(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	fmt.Println()
}

func (l *LineList) Err(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
}

var _ LineIO = (*LineList)(nil)
