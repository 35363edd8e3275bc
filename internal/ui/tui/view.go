package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackivy/onboarding/internal/survey"
)

func renderView(m Model) string {
	w := m.Dialog.Wizard()
	if w == nil {
		return ""
	}

	var b strings.Builder
	page := w.Current()

	b.WriteString(progressStyle.Render(w.Progress()))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(page.Prompt))
	b.WriteString("\n")

	switch page.Kind {
	case survey.KindChoice:
		renderOptions(&b, m, page)
		if w.ShowOtherInput() {
			renderOther(&b, m)
		}
	case survey.KindDate:
		renderDate(&b, m)
	case survey.KindConsent:
		renderConsent(&b, m)
	}

	if msg := w.Error(); msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	renderButtons(&b, m)
	renderFooter(&b, m)

	style := frameStyle
	if m.Width > 0 {
		style = style.MaxWidth(m.Width)
	}
	return style.Render(b.String())
}

func renderOptions(b *strings.Builder, m Model, page survey.Page) {
	w := m.Dialog.Wizard()
	end := m.windowEnd(m.Offset)

	if m.Offset > 0 {
		b.WriteString(descriptionStyle.Render(scrollUp))
		b.WriteString("\n")
	}

	for i := m.Offset; i < end; i++ {
		o := page.Options[i]
		cursor := " "
		if i == m.Cursor && m.Focus == FocusOptions {
			cursor = cursorStyle.Render(cursorMark)
		}

		box := uncheckedBox
		line := o.Label
		if o.Emoji != "" {
			line = o.Emoji + "  " + line
		}
		if w.IsSelected(page.ID, o.Label) {
			box = checkedBox
			line = selectedStyle.Render(line)
		}

		fmt.Fprintf(b, "%s %s %s\n", cursor, box, line)
		if o.Description != "" {
			fmt.Fprintf(b, "      %s\n", descriptionStyle.Render(o.Description))
		}
	}

	if end < len(page.Options) {
		b.WriteString(descriptionStyle.Render(scrollDown))
		b.WriteString("\n")
	}
}

func renderOther(b *strings.Builder, m Model) {
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Please specify:"))
	b.WriteString("\n")
	b.WriteString(m.other.View())
	b.WriteString("\n")
}

func renderDate(b *strings.Builder, m Model) {
	fmt.Fprintf(b, "%s  %s / %s / %s\n",
		labelStyle.Render("Date of birth:"),
		m.date[0].View(), m.date[1].View(), m.date[2].View())
}

func renderConsent(b *strings.Builder, m Model) {
	w := m.Dialog.Wizard()
	box := uncheckedBox
	if w.Consent() {
		box = checkedBox
	}
	cursor := " "
	if m.Focus == FocusOptions {
		cursor = cursorStyle.Render(cursorMark)
	}
	fmt.Fprintf(b, "%s %s I confirm\n", cursor, box)
}

func renderButtons(b *strings.Builder, m Model) {
	w := m.Dialog.Wizard()
	next := "Next"
	if w.IsLast() {
		next = "Finish"
	}

	labels := []string{"Back", next, "Close"}
	enabled := []bool{w.CanRetreat(), true, true}

	parts := make([]string, len(labels))
	for i, label := range labels {
		style := buttonStyle
		switch {
		case !enabled[i]:
			style = disabledButtonStyle
		case m.Focus == FocusNav && m.Button == i:
			style = activeButtonStyle
		}
		parts[i] = style.Render(label)
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n")
}

func renderFooter(b *strings.Builder, m Model) {
	hint := "up/down move  space select  tab focus  right next  left back  esc close"
	if m.Dialog.Wizard().IsLast() {
		hint = "space check  f finish  left back  esc close"
	}
	b.WriteString(footerStyle.Render(hint))
}

// Render writes the current page once without starting a program. It is
// used when stdout is not a terminal.
func Render(out io.Writer, d *survey.Dialog) error {
	_, err := io.WriteString(out, renderView(NewModel(d))+"\n")
	return err
}
