// Package ui provides the Bubble Tea TUI for trolley.
package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pzielke/trolley/internal/edit"
	"github.com/pzielke/trolley/internal/filter"
	"github.com/pzielke/trolley/internal/prefs"
	"github.com/pzielke/trolley/internal/shop"
	"github.com/pzielke/trolley/internal/state"
)

// Mode represents what the main area currently shows.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeForm
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *state.Controller
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *state.Controller
	prefsPath  string

	// UI state
	theme  Theme
	mode   Mode
	width  int
	height int
	ready  bool

	// Browse state
	selectedRow int
	filterState filter.State
	catIndex    int // index into filterCategories()
	searching   bool
	searchInput textinput.Model

	// Form state
	nameInput    textinput.Model
	qtyInput     textinput.Model
	catFormIndex int // index into shop.Categories()
	formFocus    int // 0 = name, 1 = quantity, 2 = category

	// Overlays
	confirmTarget *shop.Product // delete confirmation, nil when hidden
	notice        string        // blocking failure notice, empty when hidden
	showHelp      bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Placeholder = "Search products..."
	search.Prompt = "/"
	search.CharLimit = 60

	name := textinput.New()
	name.Placeholder = "Product name"
	name.CharLimit = 80

	qty := textinput.New()
	qty.Placeholder = "1"
	qty.CharLimit = 12

	m := Model{
		ctx:         ctx,
		controller:  opts.Controller,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		mode:        ModeBrowse,
		filterState: filter.Default(),
		searchInput: search,
		nameInput:   name,
		qtyInput:    qty,
	}
	m.syncFormInputs()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	// Populate the cache wholesale on start.
	if m.controller == nil {
		return nil
	}
	return m.opCmd(opLoad, func(ctx context.Context, c *state.Controller) error {
		return c.Load(ctx)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case opDoneMsg:
		return m.handleOpDone(msg)
	}

	return m, nil
}

// View implements tea.Model. The whole screen is rebuilt from the cache on
// every call; no incremental diffing happens at this scale.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.notice != "" {
		return m.renderNotice()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.confirmTarget != nil {
		return m.renderConfirm()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.mode {
	case ModeForm:
		b.WriteString(m.renderForm())
	default:
		b.WriteString(m.renderList())
	}

	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The failure notice is blocking: any key acknowledges it.
	if m.notice != "" {
		m.notice = ""
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.confirmTarget != nil {
		return m.handleConfirmKey(msg)
	}

	if m.mode == ModeForm {
		return m.handleFormKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	return m.handleBrowseKey(msg)
}

// handleBrowseKey processes keyboard input for the list view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "r":
		return m, m.opCmd(opLoad, func(ctx context.Context, c *state.Controller) error {
			return c.Load(ctx)
		})

	case "f":
		m.cycleCategory()
		m.selectedRow = 0
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil

	case "a":
		// New product: make sure any abandoned edit is cleared first.
		m.controller.ResetForm()
		m.enterForm()
		return m, nil

	case "e":
		if p, ok := m.selectedProduct(); ok {
			m.controller.StartEdit(p)
			m.enterForm()
		}
		return m, nil

	case "d":
		if p, ok := m.selectedProduct(); ok {
			m.confirmTarget = &p
		}
		return m, nil

	case " ", "enter":
		if p, ok := m.selectedProduct(); ok {
			id := p.ID
			return m, m.opCmd(opToggle, func(ctx context.Context, c *state.Controller) error {
				return c.Toggle(ctx, id)
			})
		}
		return m, nil

	case "j", "down":
		if m.selectedRow < len(m.visibleProducts())-1 {
			m.selectedRow++
		}
		return m, nil

	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case "g", "home":
		m.selectedRow = 0
		return m, nil

	case "G", "end":
		if count := len(m.visibleProducts()); count > 0 {
			m.selectedRow = count - 1
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search field is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.filterState.SearchQuery = ""
		m.clampSelection()
		return m, nil

	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filterState.SearchQuery = m.searchInput.Value()
	m.clampSelection()
	return m, cmd
}

// handleConfirmKey processes the delete confirmation overlay.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.confirmTarget.ID
		m.confirmTarget = nil
		return m, m.opCmd(opDelete, func(ctx context.Context, c *state.Controller) error {
			return c.Delete(ctx, id)
		})

	case "n", "N", "esc":
		m.confirmTarget = nil
		return m, nil
	}
	return m, nil
}

// handleOpDone applies the outcome of a finished API operation.
func (m Model) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		var failure *state.Failure
		if errors.As(msg.err, &failure) {
			m.notice = failure.Notice
		} else {
			m.notice = msg.err.Error()
		}
		return m, nil
	}

	if msg.kind == opSubmit {
		// Controller reset the form on success; mirror it and go back to the list.
		m.mode = ModeBrowse
		m.syncFormInputs()
	}
	m.clampSelection()
	return m, nil
}

// cycleCategory advances the active category tab, wrapping back to "all".
func (m *Model) cycleCategory() {
	tabs := filterCategories()
	m.catIndex = (m.catIndex + 1) % len(tabs)
	m.filterState.ActiveCategory = tabs[m.catIndex]
}

// filterCategories returns the category tabs in display order, "all" first.
func filterCategories() []string {
	return append([]string{filter.CategoryAll}, shop.Categories()...)
}

// visibleProducts derives the filtered view of the cache.
func (m Model) visibleProducts() []shop.Product {
	return filter.Apply(m.controller.Store().Products(), m.filterState)
}

// selectedProduct returns the product under the cursor, if any.
func (m Model) selectedProduct() (shop.Product, bool) {
	visible := m.visibleProducts()
	if m.selectedRow < 0 || m.selectedRow >= len(visible) {
		return shop.Product{}, false
	}
	return visible[m.selectedRow], true
}

// clampSelection keeps the cursor inside the filtered list.
func (m *Model) clampSelection() {
	count := len(m.visibleProducts())
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// enterForm switches to the form view, seeding inputs from the edit state.
func (m *Model) enterForm() {
	m.mode = ModeForm
	m.syncFormInputs()
	m.formFocus = 0
	m.focusFormField()
}

// Messages

type opKind int

const (
	opLoad opKind = iota
	opSubmit
	opToggle
	opDelete
)

type opDoneMsg struct {
	kind opKind
	err  error
}

// Commands

// opCmd runs one controller operation off the update loop and reports the
// outcome.
func (m Model) opCmd(kind opKind, op func(context.Context, *state.Controller) error) tea.Cmd {
	ctx := m.ctx
	controller := m.controller
	return func() tea.Msg {
		return opDoneMsg{kind: kind, err: op(ctx, controller)}
	}
}

// submitCmd validates and sends the current form values.
func (m Model) submitCmd(values edit.Form) tea.Cmd {
	return m.opCmd(opSubmit, func(ctx context.Context, c *state.Controller) error {
		return c.Submit(ctx, values)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
