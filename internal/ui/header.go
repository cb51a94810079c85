package ui

import (
	"fmt"
	"strings"

	"github.com/pzielke/trolley/internal/filter"
	"github.com/pzielke/trolley/internal/shop"
)

// renderHeader renders the top bar with the logo, cache summary, and the
// active category tab.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	total, purchased := m.controller.Store().Summary()

	parts := []string{
		bg.Render("trolley", styles.Logo),
		bg.Render(fmt.Sprintf("%d items", total), styles.Text),
		bg.Render(fmt.Sprintf("%d purchased", purchased), styles.MutedText),
		bg.Render(categoryTabLabel(m.filterState.ActiveCategory), styles.AccentText),
	}

	line := bg.Join(parts, "  ")
	if m.searching || m.filterState.SearchQuery != "" {
		line += bg.Spaces(2) + bg.Render(m.searchInput.View(), styles.Text)
	}

	return styles.Header.Width(max(m.width, 0)).Render(line)
}

// renderCommandBar renders the key hint line under the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	hints := "a add • e edit • d delete • space toggle • / search • f filter • r refresh • ? help • q quit"
	if m.mode == ModeForm {
		hints = "enter save • tab next field • esc cancel"
	}

	return " " + styles.FaintText.Render(hints)
}

// categoryTabLabel names the active category tab, including the
// show-everything sentinel.
func categoryTabLabel(category string) string {
	if category == filter.CategoryAll {
		return "All"
	}
	return shop.CategoryLabel(category)
}

// renderHelp renders the full-screen key reference.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	rows := []struct{ key, desc string }{
		{"j/k, up/down", "move selection"},
		{"g/G", "jump to top/bottom"},
		{"space, enter", "toggle purchased"},
		{"a", "add a product"},
		{"e", "edit the selected product"},
		{"d", "delete the selected product"},
		{"/", "search by name"},
		{"f", "cycle category filter"},
		{"r", "refresh from the server"},
		{"T", "cycle theme"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(styles.AccentText.Bold(true).Render("Keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(styles.WarningText.Render(padRight(row.key, 14)))
		b.WriteString(styles.Text.Render(row.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(styles.FaintText.Render("press any key to close"))
	b.WriteString("\n")
	return b.String()
}
