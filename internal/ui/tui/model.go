package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackivy/onboarding/internal/survey"
)

// Focus is the region of the modal receiving keys.
type Focus int

// Focus regions.
const (
	FocusOptions Focus = iota
	FocusOther
	FocusDate
	FocusNav
)

// Navigation buttons in display order.
const (
	ButtonBack = iota
	ButtonNext
	ButtonClose
)

const (
	// defaultLineBudget is the option list height before the first
	// WindowSizeMsg, and for one-off renders.
	defaultLineBudget = 12
	minLineBudget     = 2

	// baseChromeLines counts every line outside the option list: frame
	// border and padding (4), progress and prompt with its margin (3),
	// both scroll markers (2), the blank line before the buttons (1), the
	// buttons (1) and the footer with its margin (2).
	baseChromeLines = 13
	otherInputLines = 3
	errorLines      = 2
)

// Model is the Bubble Tea model for the survey modal.
type Model struct {
	Dialog *survey.Dialog

	// Cursor is the highlighted row: an option on choice pages, the
	// checkbox on the consent page.
	Cursor int
	// Offset is the first option shown. It resets on every page change.
	Offset int
	Focus  Focus
	Button int

	other     textinput.Model
	date      [3]textinput.Model
	dateField int

	Width  int
	Height int
	Err    error
}

// NewModel creates a model over d. The dialog is opened if it is not.
func NewModel(d *survey.Dialog) Model {
	if !d.Open() {
		d.SetOpen(true)
	}

	other := textinput.New()
	other.Placeholder = "Type your response here"
	other.CharLimit = 120

	m := Model{Dialog: d, other: other, Button: ButtonNext}
	for i, ph := range []string{"MM", "DD", "YYYY"} {
		in := textinput.New()
		in.Placeholder = ph
		in.CharLimit = len(ph)
		in.Width = len(ph) + 1
		m.date[i] = in
	}
	m.enterPage()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.clampOffset()
		return m, nil

	case OpenMsg:
		m.Dialog.SetOpen(msg.Open)
		if !msg.Open {
			return m, tea.Quit
		}
		m.enterPage()
		return m, nil

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		if !m.Dialog.Open() {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m.close()
	case "tab":
		m.cycleFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil
	}

	switch m.Focus {
	case FocusOther, FocusDate:
		if msg.String() == "enter" {
			m.cycleFocus(1)
			return m, nil
		}
		return m.updateInputs(msg)
	case FocusNav:
		return m.handleNavKey(msg)
	}
	return m.handleOptionKey(msg)
}

func (m Model) handleOptionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.Dialog.Wizard()
	page := w.Current()

	switch msg.String() {
	case "q":
		return m.close()
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.clampOffset()
	case "down", "j":
		if m.Cursor < m.rowCount()-1 {
			m.Cursor++
		}
		m.clampOffset()
	case " ", "enter":
		switch page.Kind {
		case survey.KindChoice:
			effect := w.Select(page.Options[m.Cursor].Label)
			m.syncOther()
			// The Other input takes lines away from the option list.
			m.clampOffset()
			if effect == survey.EffectFocusNavigation {
				m.focusNav(ButtonNext)
			}
		case survey.KindConsent:
			w.SetConsent(!w.Consent())
		}
	case "right", "n":
		m.advance()
	case "left", "b":
		m.retreat()
	case "f":
		return m.finish()
	}
	return m, nil
}

func (m Model) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.close()
	case "left", "h":
		if m.Button > ButtonBack {
			m.Button--
		}
	case "right", "l":
		if m.Button < ButtonClose {
			m.Button++
		}
	case "up", "k":
		m.Focus = FocusOptions
	case " ", "enter":
		return m.press(m.Button)
	}
	return m, nil
}

// press activates a navigation button. Disabled buttons do nothing.
func (m Model) press(button int) (tea.Model, tea.Cmd) {
	switch button {
	case ButtonBack:
		m.retreat()
	case ButtonNext:
		if m.Dialog.Wizard().IsLast() {
			return m.finish()
		}
		m.advance()
	case ButtonClose:
		return m.close()
	}
	return m, nil
}

func (m *Model) advance() {
	m.commitInputs()
	if m.Dialog.Advance() {
		m.enterPage()
	}
}

func (m *Model) retreat() {
	m.commitInputs()
	if m.Dialog.Retreat() {
		m.enterPage()
	}
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	m.commitInputs()
	if err := m.Dialog.Finish(); err != nil {
		// The wizard keeps the message for display.
		return m, nil
	}
	return m.quitIfClosed()
}

func (m Model) close() (tea.Model, tea.Cmd) {
	m.Dialog.Close()
	return m.quitIfClosed()
}

// quitIfClosed stops the program once the host has hidden the dialog. A host
// that keeps it open keeps the current page on screen.
func (m Model) quitIfClosed() (tea.Model, tea.Cmd) {
	if m.Dialog.Open() {
		return m, nil
	}
	return m, tea.Quit
}

// enterPage resets per-page UI state after the page changes.
func (m *Model) enterPage() {
	w := m.Dialog.Wizard()
	if w == nil {
		return
	}
	m.Cursor = 0
	m.Offset = 0
	m.Focus = FocusOptions
	m.dateField = 0
	if w.Current().Kind == survey.KindDate {
		m.Focus = FocusDate
	}

	d := w.BirthDate()
	m.date[0].SetValue(d.Month)
	m.date[1].SetValue(d.Day)
	m.date[2].SetValue(d.Year)
	m.syncOther()
	m.applyFocus()
}

// syncOther mirrors the wizard's free text into the input.
func (m *Model) syncOther() {
	w := m.Dialog.Wizard()
	m.other.SetValue(w.OtherText())
	if !w.ShowOtherInput() && m.Focus == FocusOther {
		m.Focus = FocusOptions
		m.applyFocus()
	}
}

// commitInputs writes text input values back into the wizard.
func (m *Model) commitInputs() {
	w := m.Dialog.Wizard()
	if w == nil {
		return
	}
	if w.ShowOtherInput() {
		w.SetOtherText(m.other.Value())
	}
	if w.Current().Kind == survey.KindDate {
		w.SetBirthDate(survey.BirthDate{
			Month: m.date[0].Value(),
			Day:   m.date[1].Value(),
			Year:  m.date[2].Value(),
		})
	}
}

func (m *Model) focusNav(button int) {
	m.Focus = FocusNav
	m.Button = button
	m.applyFocus()
}

// cycleFocus moves focus between the regions present on the current page.
func (m *Model) cycleFocus(step int) {
	w := m.Dialog.Wizard()
	var regions []Focus
	switch w.Current().Kind {
	case survey.KindDate:
		if m.Focus == FocusDate {
			next := m.dateField + step
			if next >= 0 && next < len(m.date) {
				m.dateField = next
				m.applyFocus()
				return
			}
		}
		regions = []Focus{FocusDate, FocusNav}
	default:
		regions = []Focus{FocusOptions}
		if w.ShowOtherInput() {
			regions = append(regions, FocusOther)
		}
		regions = append(regions, FocusNav)
	}

	cur := 0
	for i, r := range regions {
		if r == m.Focus {
			cur = i
		}
	}
	m.commitInputs()
	m.Focus = regions[(cur+step+len(regions))%len(regions)]
	if m.Focus == FocusDate {
		m.dateField = 0
		if step < 0 {
			m.dateField = len(m.date) - 1
		}
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.other.Blur()
	for i := range m.date {
		m.date[i].Blur()
	}
	switch m.Focus {
	case FocusOther:
		m.other.Focus()
	case FocusDate:
		m.date[m.dateField].Focus()
	}
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.Dialog.Open() {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.Focus {
	case FocusOther:
		m.other, cmd = m.other.Update(msg)
		m.Dialog.Wizard().SetOtherText(m.other.Value())
	case FocusDate:
		m.date[m.dateField], cmd = m.date[m.dateField].Update(msg)
		m.commitInputs()
	}
	return m, cmd
}

// rowCount is the number of cursor rows on the current page.
func (m Model) rowCount() int {
	page := m.Dialog.Wizard().Current()
	switch page.Kind {
	case survey.KindChoice:
		return len(page.Options)
	case survey.KindConsent:
		return 1
	}
	return 0
}

// chromeLines is the number of rendered lines outside the option list.
func (m Model) chromeLines() int {
	w := m.Dialog.Wizard()
	n := baseChromeLines
	if w.ShowOtherInput() {
		n += otherInputLines
	}
	if w.Error() != "" {
		n += errorLines
	}
	return n
}

// lineBudget is how many lines the option list may use so the whole modal
// fits in the terminal.
func (m Model) lineBudget() int {
	if m.Height <= 0 || m.Dialog.Wizard() == nil {
		return defaultLineBudget
	}
	budget := m.Height - m.chromeLines()
	if budget < minLineBudget {
		budget = minLineBudget
	}
	return budget
}

// optionLines is the rendered height of an option.
func optionLines(o survey.Option) int {
	if o.Description != "" {
		return 2
	}
	return 1
}

// windowEnd returns the exclusive end of the options shown from offset.
// At least one option is always shown.
func (m Model) windowEnd(offset int) int {
	w := m.Dialog.Wizard()
	if w == nil {
		return offset
	}
	opts := w.Current().Options
	budget := m.lineBudget()
	end := offset
	for end < len(opts) {
		h := optionLines(opts[end])
		if end > offset && h > budget {
			break
		}
		budget -= h
		end++
	}
	return end
}

// clampOffset scrolls so the cursor stays inside the window.
func (m *Model) clampOffset() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	for m.Offset < m.Cursor && m.Cursor >= m.windowEnd(m.Offset) {
		m.Offset++
	}
	if m.Offset < 0 {
		m.Offset = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
