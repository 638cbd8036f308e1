package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/zuri-tickets/chiphash/internal/cli"
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(chiphash.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(chiphash.ExitCodeForError(err))
	}
}
