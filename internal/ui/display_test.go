package ui

import (
	"strings"
	"testing"
)

func TestTerminalCompact(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{width: 30, want: true},
		{width: CompactWidth - 1, want: true},
		{width: CompactWidth, want: false},
		{width: DefaultTermWidth, want: false},
	}
	for _, tt := range tests {
		if got := FixedTerminal(tt.width).Compact(); got != tt.want {
			t.Errorf("FixedTerminal(%d).Compact() = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestStatusMarks(t *testing.T) {
	if got := Successf("created %s", "a.toml"); got != "✓ created a.toml" {
		t.Errorf("Successf = %q", got)
	}
	if got := Errorf("bad %d", 1); got != "✗ bad 1" {
		t.Errorf("Errorf = %q", got)
	}
	if got := Warningf("%s", "careful"); !strings.HasPrefix(got, "⚠ ") {
		t.Errorf("Warningf = %q", got)
	}
}
