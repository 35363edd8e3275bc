package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorOrange = lipgloss.Color("#f97316")
	colorPeach  = lipgloss.Color("#fdba74")
	colorRed    = lipgloss.Color("#ef4444")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
	colorCard   = lipgloss.Color("#303338")

	// Styles
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOrange).
			Background(colorCard).
			Padding(1, 2)

	progressStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorCard).
			Background(colorPeach).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorOrange).
			Bold(true)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			MarginTop(1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorOrange).
			Padding(0, 2)

	activeButtonStyle = buttonStyle.
				Underline(true).
				Bold(true)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorPeach)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			MarginTop(1)
)

const (
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
	cursorMark   = ">"
	scrollUp     = "  ..."
	scrollDown   = "  ..."
)
