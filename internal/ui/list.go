package ui

import (
	"fmt"
	"strings"

	"github.com/pzielke/trolley/internal/filter"
	"github.com/pzielke/trolley/internal/shop"
)

// productMeta formats the secondary line shown under a product name.
func productMeta(p shop.Product) string {
	return fmt.Sprintf("%s pcs • %s", p.Quantity, shop.CategoryLabel(p.Category))
}

// renderList renders the filtered product rows.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	visible := m.visibleProducts()

	if len(visible) == 0 {
		msg := "Your list is empty. Press a to add a product."
		if m.filterState != filter.Default() {
			msg = "No products match the current filter."
		}
		return "\n  " + styles.MutedText.Render(msg) + "\n"
	}

	nameWidth := m.width - 24
	if nameWidth < 16 {
		nameWidth = 16
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, p := range visible {
		selected := i == m.selectedRow

		cursor := "  "
		if selected {
			cursor = styles.AccentText.Render("> ")
		}

		name := truncate(p.Name, nameWidth)
		nameStyled := styles.Text.Render(name)
		if selected {
			nameStyled = styles.Selected.Render(name)
		}

		badge := styles.ToBuyBadge.Render("To buy")
		if p.Purchased {
			badge = styles.PurchasedBadge.Render("Purchased")
			if !selected {
				nameStyled = styles.FaintText.Strikethrough(true).Render(name)
			}
		}

		b.WriteString("  ")
		b.WriteString(cursor)
		b.WriteString(nameStyled)
		b.WriteString(" ")
		b.WriteString(badge)
		b.WriteString("\n")

		b.WriteString("      ")
		b.WriteString(styles.MutedText.Render(productMeta(p)))
		b.WriteString("\n\n")
	}

	return b.String()
}
