package tui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

// PlainSummary is the one-line report used when output is not a terminal.
func PlainSummary(s chiphash.Summary) string {
	line := fmt.Sprintf("Hashed %d %s from %s into %s", s.Rows, rowWord(s.Rows), s.InputPath, s.OutputPath)
	if s.FallbackRows > 0 {
		line += fmt.Sprintf(" (%d with raw attributes)", s.FallbackRows)
	}
	return line
}

// StyledSummary renders the run report as a bordered panel.
func StyledSummary(s chiphash.Summary) string {
	title := TitleStyle.Render(SymbolCheck + " Hashing complete")

	rows := []string{
		field("Input", s.InputPath),
		field("Output", s.OutputPath),
		field("Rows", fmt.Sprintf("%d", s.Rows)),
	}
	if s.FallbackRows > 0 {
		rows = append(rows, LabelStyle.Render("Raw attrs")+WarningStyle.Render(fmt.Sprintf("%d", s.FallbackRows)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{title, ""}, rows...)...)
	return BoxStyle.Render(body)
}

// WriteSummary writes the styled panel when w is a terminal, the plain line otherwise.
func WriteSummary(w io.Writer, s chiphash.Summary) error {
	var out string
	if IsStyled(w) {
		out = StyledSummary(s)
	} else {
		out = PlainSummary(s)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func field(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(filepath.ToSlash(value))
}

func rowWord(n int) string {
	if n == 1 {
		return "row"
	}
	return "rows"
}
