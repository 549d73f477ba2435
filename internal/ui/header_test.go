package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncateBarCountsOnlyVisibleCells(t *testing.T) {
	styled := "\x1b[38;2;113;156;214mstdout\x1b[0m  " +
		"\x1b[38;2;201;79;109mstderr\x1b[0m  1.2 kB in 34 writes"

	if got := truncateBar(styled, 80); got != styled {
		t.Fatalf("content within width was modified: %q", got)
	}

	got := truncateBar(styled, 10)
	if w := ansi.StringWidth(got); w > 10 {
		t.Fatalf("visible width = %d, want <= 10", w)
	}

	// The visible text must be a clean prefix of the unstyled content:
	// no escape bytes counted as cells, no sequence cut in half.
	visible := strings.TrimSuffix(ansi.Strip(got), "…")
	if !strings.HasPrefix(ansi.Strip(styled), visible) {
		t.Fatalf("visible text %q is not a prefix of the plain content", visible)
	}
}

func TestTruncateBarZeroWidthPassthrough(t *testing.T) {
	if got := truncateBar("untouched", 0); got != "untouched" {
		t.Fatalf("truncateBar with zero width = %q", got)
	}
}
