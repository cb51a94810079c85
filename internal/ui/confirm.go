package ui

import (
	"fmt"
	"strings"
)

// renderConfirm renders the delete confirmation prompt. Nothing is sent to
// the server until the user answers yes.
func (m Model) renderConfirm() string {
	styles := m.theme.Styles()

	question := fmt.Sprintf("Delete %q from your list?", m.confirmTarget.Name)

	var b strings.Builder
	b.WriteString("\n\n  ")
	b.WriteString(styles.DangerText.Render(question))
	b.WriteString("\n\n  ")
	b.WriteString(styles.FaintText.Render("y delete • n cancel"))
	b.WriteString("\n")
	return b.String()
}

// renderNotice renders a blocking failure notice. Any key dismisses it and
// returns to whatever view was underneath.
func (m Model) renderNotice() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString("\n\n  ")
	b.WriteString(styles.WarningText.Render(m.notice))
	b.WriteString("\n\n  ")
	b.WriteString(styles.FaintText.Render("press any key to continue"))
	b.WriteString("\n")
	return b.String()
}
