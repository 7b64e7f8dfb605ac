package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	wordwrap "github.com/muesli/reflow/wordwrap"
	termenv "github.com/muesli/termenv"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultWidth = 80
	margin       = 4
)

var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// isTerminal returns true when stdout is a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the width of stdout, or a default
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// render returns Markdown text formatted for the terminal. Output which is
// not a terminal is returned unchanged, and text which cannot be rendered
// is word-wrapped.
func render(text string) string {
	if !isTerminal() {
		return text
	}
	r := markdownRenderer()
	if r == nil {
		return wordwrap.String(text, terminalWidth()-margin)
	}
	out, err := r.Render(text)
	if err != nil {
		return wordwrap.String(text, terminalWidth()-margin)
	}
	return strings.Trim(out, "\n")
}

// markdownRenderer returns a renderer styled for the terminal background,
// or nil when one cannot be created
func markdownRenderer() *glamour.TermRenderer {
	rendererOnce.Do(func() {
		style := "dark"
		if !termenv.HasDarkBackground() {
			style = "light"
		}
		if r, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(terminalWidth()-margin),
		); err == nil {
			renderer = r
		}
	})
	return renderer
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
