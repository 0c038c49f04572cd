package calculator

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kr/pretty"

	"github.com/vmauery/smrtclcltr-sub000/internal/container"
	"github.com/vmauery/smrtclcltr-sub000/internal/numeric"
	"github.com/vmauery/smrtclcltr-sub000/internal/program"
	"github.com/vmauery/smrtclcltr-sub000/internal/symbolic"
)

// sessionID tags debug trace lines (debug mode). It is one id per
// process, shared by every Calculator in that process: traces from
// different processes can be told apart, traces from calculators in the
// same process (such as several websocket sessions) cannot.
var sessionID = uuid.New().String()[:8]

// ShowStack renders the stack newest-at-bottom, one line per
// entry, prefixing row indices when interactive and a debug tag when
// config.Debug is set.
func (c *Calculator) ShowStack(w io.Writer) {
	n := len(c.Stack)
	for i := 0; i < n; i++ {
		e := c.Stack[i]
		row := n - i // distance from the top; row 1 is top-of-stack
		var sb strings.Builder
		if c.Config.Interactive {
			fmt.Fprintf(&sb, "%d: ", row)
		}
		sb.WriteString(renderEntry(e, c.Config))
		if !e.Unit.Empty() {
			fmt.Fprintf(&sb, " %s", e.Unit.String())
		}
		if c.Config.Debug {
			fmt.Fprintf(&sb, "  [%s %s]", sessionID, debugTag(e))
		}
		fmt.Fprintln(w, sb.String())
	}
	if c.Config.Debug {
		fmt.Fprintf(w, "%# v\n", pretty.Formatter(c.Config))
	}
}

func renderEntry(e StackEntry, cfg Config) string {
	switch v := e.Value.(type) {
	case *numeric.Int:
		return renderInt(v, e)
	case *numeric.Rat:
		if cfg.MpqMode == MpqFloating {
			return numeric.ToFlt(v, e.Precision).String()
		}
		return v.String()
	case *numeric.Cmp:
		shown := *v
		shown.Mode = cfg.MpcMode
		return shown.String()
	case *symbolic.Node:
		// Node.String() is bare infix text (it also renders sub-nodes);
		// a symbolic stack entry re-wraps in the quotes it was parsed
		// from, the way a Program re-wraps in $( ... ), so the rendered
		// form re-parses as a symbolic rather than as postfix tokens.
		return "'" + v.String() + "'"
	default:
		return e.Value.String()
	}
}

func renderInt(iv *numeric.Int, e StackEntry) string {
	switch e.Base {
	case 2:
		return "0b" + iv.V.Text(2)
	case 8:
		return "0" + iv.V.Text(8)
	case 16:
		return "0x" + iv.V.Text(16)
	default:
		if iv.V.IsInt64() {
			return humanize.Comma(iv.V.Int64())
		}
		return iv.V.String()
	}
}

// debugTag renders the per-entry mode summary, e.g.
// "u32,p:50,dec,mpz".
func debugTag(e StackEntry) string {
	width := "arb"
	if e.FixedBits > 0 {
		sign := "s"
		if !e.Signed {
			sign = "u"
		}
		width = fmt.Sprintf("%s%d", sign, e.FixedBits)
	}

	base := "dec"
	switch e.Base {
	case 2:
		base = "bin"
	case 8:
		base = "oct"
	case 16:
		base = "hex"
	}

	return fmt.Sprintf("%s,p:%d,%s,%s", width, e.Precision, base, typeTag(e.Value))
}

func typeTag(v numeric.Atom) string {
	switch v.(type) {
	case *numeric.Int:
		return "mpz"
	case *numeric.Rat:
		return "mpq"
	case *numeric.Flt:
		return "mpf"
	case *numeric.Cmp:
		return "mpc"
	case *numeric.Time:
		return "time"
	case *container.List:
		return "list"
	case *container.Matrix:
		return "matrix"
	case *program.Program:
		return "prog"
	case *symbolic.Node:
		return "sym"
	default:
		return "?"
	}
}
