// Command smrtclcltr is the driver-loop entry point: it wires
// a fresh function registry and calculator to a terminal LineIO
// collaborator and runs the read-parse-execute-render cycle until
// end-of-input. A "serve" subcommand wires the same driver loop to a
// websocket front-end instead (one Calculator per connection).
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	"github.com/vmauery/smrtclcltr-sub000/internal/driver"
	"github.com/vmauery/smrtclcltr-sub000/internal/functions"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
)

const usage = `usage: smrtclcltr [-v level] [tokens...]
       smrtclcltr serve [addr]

  -v level   set verbosity (0 = emergency .. 9 = trace)

Remaining arguments are joined with spaces and run as one final input
line; when present, stdin is not read and the run is non-interactive.

"serve" starts a websocket front-end (default addr ":8420") instead of
reading stdin; each connection gets its own calculator instance.`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 && args[0] == "serve" {
		addr := ":8420"
		if len(args) > 1 {
			addr = args[1]
		}
		if err := driver.ServeWS(addr); err != nil {
			fmt.Fprintf(os.Stderr, "smrtclcltr: serve: %v\n", err)
			return 1
		}
		return 0
	}

	verbosity := 0
	var tokens []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-h" || a == "--help":
			fmt.Println(usage)
			return 0
		case a == "-v":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "smrtclcltr: -v requires a level")
				return 1
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				fmt.Fprintf(os.Stderr, "smrtclcltr: invalid -v level %q\n", args[i])
				return 1
			}
			verbosity = n
		case strings.HasPrefix(a, "-v") && len(a) > 2:
			n, err := strconv.Atoi(a[2:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "smrtclcltr: invalid -v level %q\n", a)
				return 1
			}
			verbosity = n
		default:
			tokens = append(tokens, a)
		}
	}

	reg := registry.New()
	functions.Register(reg)

	calc := calculator.New(reg)
	calc.Config.Debug = verbosity >= 9

	var io driver.LineIO
	if len(tokens) > 0 {
		// positional tokens force non-interactive mode; stdin is
		// treated as closed.
		calc.Config.Interactive = false
		io = driver.NewLineList(strings.Join(tokens, " "))
	} else {
		term := driver.NewTerminal()
		calc.Config.Interactive = term.Interactive()
		io = term
	}
	io.SetInteractive(calc.Config.Interactive)

	d := driver.New(calc, io)
	d.Run()
	return 0
}
