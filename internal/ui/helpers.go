package ui

import (
	"strings"

	"github.com/pzielke/trolley/internal/shop"
)

// truncate shortens a string to maxLen runes, appending an ellipsis when it
// was cut.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads a string with spaces up to width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// categoryIndex locates a category in display order, falling back to the
// catch-all bucket for unknown values.
func categoryIndex(category string) int {
	cats := shop.Categories()
	for i, c := range cats {
		if c == category {
			return i
		}
	}
	return len(cats) - 1
}
