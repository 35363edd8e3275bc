package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackivy/onboarding/internal/survey"
)

// Run shows the survey modal until it is finished or closed.
func Run(ctx context.Context, d *survey.Dialog) error {
	m := NewModel(d)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		// Leave the host with a closed dialog on interrupt.
		d.Close()
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	return nil
}
