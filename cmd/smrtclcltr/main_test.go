package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets the testscript scripts under testdata/script "exec
// smrtclcltr ..." against this same test binary instead of a separately
// built executable, the way cmd/go's own script tests work.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"smrtclcltr": func() int { return run(os.Args[1:]) },
	}))
}

// TestScripts runs end-to-end scenarios as golden-file scripts against
// the CLI's own argv surface.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
