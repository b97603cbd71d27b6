package cli

import "github.com/charmbracelet/lipgloss"

// Foregrounds adapt to light and dark terminals.
var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C25E00", Dark: "#FF8C00"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF4D4D"})
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8A6D00", Dark: "#FFD700"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007A7A", Dark: "#00CFCF"}).Bold(true)
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#6C6C6C"})
	textStyle    = lipgloss.NewStyle()
)

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }
func Text(text string) string    { return textStyle.Render(text) }

// Occupied renders text as Primary when n is non-zero and Silent otherwise.
func Occupied(n int, text string) string {
	if n == 0 {
		return Silent(text)
	}
	return Primary(text)
}
