package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette (the subset this app uses), true-color hex.
// https://catppuccin.com/palette
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorLavender lipgloss.Color = "#b4befe"
	colorMauve    lipgloss.Color = "#cba6f7"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
)

// Semantic aliases.
const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	dimStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)

	cursorStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	spinnerStyle = lipgloss.NewStyle().Foreground(colorAccent)

	statusOKStyle  = lipgloss.NewStyle().Foreground(colorInfo)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorSky)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)

	badgeUpcoming  = lipgloss.NewStyle().Foreground(colorSky)
	badgeOngoing   = lipgloss.NewStyle().Foreground(colorSuccess)
	badgeCompleted = lipgloss.NewStyle().Foreground(colorOverlay1)
	badgeDraft     = lipgloss.NewStyle().Foreground(colorWarning)
)

// paletteColors returns every color constant for validation.
func paletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorRed, colorYellow, colorGreen, colorTeal,
		colorSky, colorLavender, colorMauve,
		colorText, colorSubtext0,
		colorOverlay1, colorOverlay0, colorSurface2,
	}
}
