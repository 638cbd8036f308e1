package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode represents how results are rendered for the current output stream.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, redirected output and tests.
	ModePlain Mode = iota
	// ModeStyled is used when a human is watching the terminal.
	ModeStyled
)

// DetectMode returns ModeStyled only when w is an *os.File attached to a terminal.
func DetectMode(w io.Writer) Mode {
	f, ok := w.(*os.File)
	if !ok {
		return ModePlain
	}
	if !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}
	return ModeStyled
}

// IsStyled is a convenience function that returns true if w gets styled output.
func IsStyled(w io.Writer) bool {
	return DetectMode(w) == ModeStyled
}
