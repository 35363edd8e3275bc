package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackivy/onboarding/internal/survey"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func send(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func newTestModel() (Model, *[]bool) {
	calls := &[]bool{}
	var d *survey.Dialog
	d = survey.NewDialog(func(open bool) {
		*calls = append(*calls, open)
		d.SetOpen(open)
	})
	return NewModel(d), calls
}

func TestNewModel_OpensDialog(t *testing.T) {
	m, _ := newTestModel()
	if !m.Dialog.Open() {
		t.Fatal("expected dialog to be open")
	}
	if m.Dialog.Wizard().Index() != 1 {
		t.Errorf("expected page 1, got %d", m.Dialog.Wizard().Index())
	}
}

func TestSelectAndAdvance(t *testing.T) {
	m, _ := newTestModel()

	m, _ = send(t, m, "down", "space", "right")

	w := m.Dialog.Wizard()
	if w.Gating() != survey.StatusIndustry {
		t.Errorf("expected gating %q, got %q", survey.StatusIndustry, w.Gating())
	}
	if w.Current().ID != survey.PageIndustry {
		t.Errorf("expected industry page, got %s", w.Current().ID)
	}
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("expected cursor and offset reset, got %d/%d", m.Cursor, m.Offset)
	}
}

func TestBackDisabledOnFirstPage(t *testing.T) {
	m, _ := newTestModel()
	m, _ = send(t, m, "left")
	if m.Dialog.Wizard().Index() != 1 {
		t.Errorf("expected to stay on page 1")
	}
}

func TestScrollOffsetResetsOnAdvance(t *testing.T) {
	m, _ := newTestModel()
	m.Height = 20

	m, _ = send(t, m, "down", "space", "right")
	for i := 0; i < 20; i++ {
		m, _ = send(t, m, "down")
	}
	if m.Offset == 0 {
		t.Fatal("expected list to scroll")
	}
	if m.Cursor < m.Offset || m.Cursor >= m.windowEnd(m.Offset) {
		t.Errorf("cursor %d not visible from offset %d", m.Cursor, m.Offset)
	}

	m, _ = send(t, m, "right")
	if m.Offset != 0 || m.Cursor != 0 {
		t.Errorf("expected offset reset, got offset %d cursor %d", m.Offset, m.Cursor)
	}
}

func TestOtherInput(t *testing.T) {
	m, _ := newTestModel()
	m, _ = send(t, m, "down", "space", "right")

	// Other is the last industry option.
	for i := 0; i < len(survey.IndustryPage.Options)-1; i++ {
		m, _ = send(t, m, "down")
	}
	m, _ = send(t, m, "space")
	if !strings.Contains(renderView(m), "Please specify:") {
		t.Fatal("expected free-text field while Other is selected")
	}

	m, _ = send(t, m, "tab")
	if m.Focus != FocusOther {
		t.Fatalf("expected focus on Other input, got %v", m.Focus)
	}
	m, _ = send(t, m, "S", "p", "a", "c", "e")
	if got := m.Dialog.Wizard().OtherText(); got != "Space" {
		t.Errorf("expected other text %q, got %q", "Space", got)
	}

	m, _ = send(t, m, "tab", "tab", "up", "space")
	if m.Dialog.Wizard().ShowOtherInput() {
		t.Error("expected Other to be deselected")
	}
	if strings.Contains(renderView(m), "Please specify:") {
		t.Error("expected free-text field hidden")
	}
}

func TestHobbyNudgeFocusesNavigation(t *testing.T) {
	m, _ := newTestModel()
	w := m.Dialog.Wizard()
	for w.Current().ID != survey.PageHobbies {
		w.Advance()
	}
	m.enterPage()

	m, _ = send(t, m, "space", "down", "space")
	if m.Focus != FocusOptions {
		t.Fatalf("expected focus on options after two hobbies")
	}
	m, _ = send(t, m, "down", "space")
	if m.Focus != FocusNav || m.Button != ButtonNext {
		t.Errorf("expected focus on Next after the third hobby, got focus %v button %d", m.Focus, m.Button)
	}
}

func TestDateInput(t *testing.T) {
	m, _ := newTestModel()
	w := m.Dialog.Wizard()
	for w.Current().ID != survey.PageBirthDate {
		w.Advance()
	}
	m.enterPage()

	if m.Focus != FocusDate {
		t.Fatalf("expected focus on date inputs")
	}
	m, _ = send(t, m, "0", "2", "tab", "1", "4", "tab", "1", "9", "9", "9")

	want := survey.BirthDate{Month: "02", Day: "14", Year: "1999"}
	if got := w.BirthDate(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestFinishRequiresConsent(t *testing.T) {
	m, calls := newTestModel()
	w := m.Dialog.Wizard()
	for w.CanAdvance() {
		w.Advance()
	}
	m.enterPage()

	m, cmd := send(t, m, "f")
	if cmd != nil {
		t.Error("expected program to keep running")
	}
	if !strings.Contains(renderView(m), survey.ConsentMessage) {
		t.Error("expected consent message in view")
	}
	if len(*calls) != 0 {
		t.Errorf("expected no OnOpenChange calls, got %v", *calls)
	}

	m, _ = send(t, m, "space")
	if strings.Contains(renderView(m), survey.ConsentMessage) {
		t.Error("expected consent message cleared")
	}

	_, cmd = send(t, m, "f")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if len(*calls) != 1 || (*calls)[0] {
		t.Errorf("expected a single OnOpenChange(false), got %v", *calls)
	}
}

func TestCloseKey(t *testing.T) {
	m, calls := newTestModel()
	m, cmd := send(t, m, "esc")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.Dialog.Open() {
		t.Error("expected dialog closed")
	}
	if len(*calls) != 1 {
		t.Errorf("expected one OnOpenChange call, got %d", len(*calls))
	}
	if renderView(m) != "" {
		t.Error("expected empty view once closed")
	}
}

func TestCloseKey_HostKeepsOpen(t *testing.T) {
	var calls []bool
	d := survey.NewDialog(func(open bool) { calls = append(calls, open) })
	m := NewModel(d)
	m, _ = send(t, m, "down", "space", "right")

	m, cmd := send(t, m, "esc")
	if cmd != nil {
		t.Error("expected program to keep running")
	}
	if len(calls) != 1 || calls[0] {
		t.Errorf("expected a single OnOpenChange(false), got %v", calls)
	}
	if !m.Dialog.Open() {
		t.Fatal("expected dialog to stay open")
	}
	w := m.Dialog.Wizard()
	if w.Current().ID != survey.PageIndustry || w.Gating() != survey.StatusIndustry {
		t.Errorf("expected answers kept, on page %s with status %q", w.Current().ID, w.Gating())
	}
	if !strings.Contains(renderView(m), survey.IndustryPage.Prompt) {
		t.Error("expected the current page to stay on screen")
	}
}

func TestRenderView_Buttons(t *testing.T) {
	m, _ := newTestModel()
	out := renderView(m)
	for _, want := range []string{"Question 1 of 6", survey.StatusPage.Prompt, "Back", "Next", "Close"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}

	w := m.Dialog.Wizard()
	for w.CanAdvance() {
		w.Advance()
	}
	if !strings.Contains(renderView(m), "Finish") {
		t.Error("expected Finish on last page")
	}
}

func TestRender(t *testing.T) {
	d := survey.NewDialog(nil)
	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "University Affiliate") {
		t.Error("expected options in rendered output")
	}
}

func TestOpenMsg(t *testing.T) {
	m, _ := newTestModel()
	m.Dialog.Wizard().Select(survey.StatusIndustry)

	next, cmd := m.Update(OpenMsg{Open: false})
	m = next.(Model)
	if cmd == nil || m.Dialog.Open() {
		t.Fatal("expected dialog hidden and program quitting")
	}
}

func hobbiesModel(height int) Model {
	m, _ := newTestModel()
	w := m.Dialog.Wizard()
	for w.Current().ID != survey.PageHobbies {
		w.Advance()
	}
	m.enterPage()
	m.Height = height
	return m
}

func assertFitsHeight(t *testing.T, m Model) {
	t.Helper()
	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines > m.Height {
		t.Errorf("view is %d lines, terminal is %d (cursor %d, offset %d)", lines, m.Height, m.Cursor, m.Offset)
	}
	if !strings.Contains(view, "Question ") {
		t.Error("expected the progress header to stay visible")
	}
	if !strings.Contains(view, survey.HobbiesPage.Prompt) {
		t.Error("expected the prompt to stay visible")
	}
}

func TestScrollWindowFitsTerminal_Descriptions(t *testing.T) {
	m := hobbiesModel(24)

	for i := 0; i < 15; i++ {
		m, _ = send(t, m, "down")
		assertFitsHeight(t, m)
	}
	if m.Cursor < m.Offset || m.Cursor >= m.windowEnd(m.Offset) {
		t.Errorf("cursor %d not visible from offset %d", m.Cursor, m.Offset)
	}
	if !strings.Contains(m.View(), survey.HobbiesPage.Options[m.Cursor].Label) {
		t.Error("expected the highlighted option to be rendered")
	}
}

func TestScrollWindowFitsTerminal_OtherInput(t *testing.T) {
	m := hobbiesModel(24)

	for m.Cursor < len(survey.HobbiesPage.Options)-1 {
		m, _ = send(t, m, "down")
	}
	m, _ = send(t, m, "space")
	if !m.Dialog.Wizard().ShowOtherInput() {
		t.Fatal("expected the Other input to be shown")
	}
	assertFitsHeight(t, m)
	if !strings.Contains(m.View(), "Please specify:") {
		t.Error("expected the Other input to be rendered")
	}
}
