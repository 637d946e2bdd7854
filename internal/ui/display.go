package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is assumed when no terminal width can be read.
const DefaultTermWidth = 120

// CompactWidth is the narrowest terminal that still fits the wide day
// cells: seven cells plus the header arrows.
const CompactWidth = 44

// Terminal is the width the calendar is laid out for.
type Terminal struct {
	Width int
}

// DetectTerminal reads the width from stdout, or from stderr when stdout
// is redirected, since pick draws the dialog on stderr and prints the date
// on stdout.
func DetectTerminal() *Terminal {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		fd := f.Fd()
		if !term.IsTerminal(fd) {
			continue
		}
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return &Terminal{Width: w}
		}
	}
	return &Terminal{Width: DefaultTermWidth}
}

// FixedTerminal pins the width.
func FixedTerminal(width int) *Terminal {
	return &Terminal{Width: width}
}

// Compact reports whether day cells must drop their padding to fit.
func (t *Terminal) Compact() bool {
	return t.Width < CompactWidth
}
