package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pzielke/trolley/internal/edit"
	"github.com/pzielke/trolley/internal/shop"
)

const (
	formFocusName = iota
	formFocusQuantity
	formFocusCategory
	formFieldCount
)

// syncFormInputs copies the controller's edit form into the text inputs.
// Called when entering the form and after a successful submit, so the
// inputs always reflect the authoritative form state.
func (m *Model) syncFormInputs() {
	if m.controller == nil {
		return
	}
	form := m.controller.Edit().Form()
	m.nameInput.SetValue(form.Name)
	m.qtyInput.SetValue(form.Quantity)
	m.catFormIndex = categoryIndex(form.Category)
}

// formValues assembles the current input state into a form submission.
func (m Model) formValues() edit.Form {
	return edit.Form{
		Name:     m.nameInput.Value(),
		Quantity: m.qtyInput.Value(),
		Category: shop.Categories()[m.catFormIndex],
	}
}

// focusFormField moves textinput focus to match formFocus.
func (m *Model) focusFormField() {
	m.nameInput.Blur()
	m.qtyInput.Blur()
	switch m.formFocus {
	case formFocusName:
		m.nameInput.Focus()
	case formFocusQuantity:
		m.qtyInput.Focus()
	}
}

// handleFormKey processes keyboard input for the add/edit form.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Abandon the form. The cache is untouched either way.
		m.controller.ResetForm()
		m.mode = ModeBrowse
		m.syncFormInputs()
		return m, nil

	case "tab", "down":
		m.formFocus = (m.formFocus + 1) % formFieldCount
		m.focusFormField()
		return m, nil

	case "shift+tab", "up":
		m.formFocus = (m.formFocus + formFieldCount - 1) % formFieldCount
		m.focusFormField()
		return m, nil

	case "enter":
		return m, m.submitCmd(m.formValues())

	case "left":
		if m.formFocus == formFocusCategory {
			count := len(shop.Categories())
			m.catFormIndex = (m.catFormIndex + count - 1) % count
			return m, nil
		}

	case "right":
		if m.formFocus == formFocusCategory {
			m.catFormIndex = (m.catFormIndex + 1) % len(shop.Categories())
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case formFocusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case formFocusQuantity:
		m.qtyInput, cmd = m.qtyInput.Update(msg)
	}
	return m, cmd
}

// renderForm renders the add/edit form.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	title := "Add product"
	if _, editing := m.controller.Edit().Editing(); editing {
		title = "Edit product"
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderFormField("Name", m.nameInput.View(), m.formFocus == formFocusName))
	b.WriteString(m.renderFormField("Quantity", m.qtyInput.View(), m.formFocus == formFocusQuantity))
	b.WriteString(m.renderFormField("Category", m.renderCategoryPicker(), m.formFocus == formFocusCategory))

	b.WriteString("\n  ")
	b.WriteString(styles.FaintText.Render("enter save • tab next field • esc cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderFormField(label, value string, focused bool) string {
	styles := m.theme.Styles()

	labelStyle := styles.MutedText
	if focused {
		labelStyle = styles.AccentText
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(padRight(label, 10)))
	b.WriteString(value)
	b.WriteString("\n\n")
	return b.String()
}

// renderCategoryPicker renders the category options on one line with the
// current choice highlighted.
func (m Model) renderCategoryPicker() string {
	styles := m.theme.Styles()

	parts := make([]string, 0, len(shop.Categories()))
	for i, cat := range shop.Categories() {
		label := shop.CategoryLabel(cat)
		if i == m.catFormIndex {
			parts = append(parts, styles.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, styles.FaintText.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}
