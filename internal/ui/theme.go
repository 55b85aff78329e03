package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig selects the color scheme.
type ThemeConfig struct {
	Mode    string // "dark", "light" or "" for terminal detection
	NoColor bool
}

// Colors holds the palette as hex strings.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme carries colors and derived lipgloss styles.
type Theme struct {
	NoColor bool
	Colors  Colors

	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Card    lipgloss.Style
}

var (
	darkColors = Colors{
		Primary:   "#2A6EBB",
		Secondary: "#FFD520",
		Success:   "#10B981",
		Warning:   "#F59E0B",
		Error:     "#EF4444",
		Muted:     "#6B7280",
	}
	lightColors = Colors{
		Primary:   "#003087",
		Secondary: "#B45309",
		Success:   "#059669",
		Warning:   "#B45309",
		Error:     "#DC2626",
		Muted:     "#9CA3AF",
	}
)

// NewTheme builds a Theme. NO_COLOR in the environment disables color.
func NewTheme(cfg ThemeConfig) *Theme {
	noColor := cfg.NoColor || os.Getenv("NO_COLOR") != ""

	colors := darkColors
	switch cfg.Mode {
	case "light":
		colors = lightColors
	case "dark":
	default:
		if !lipgloss.HasDarkBackground() {
			colors = lightColors
		}
	}

	t := &Theme{NoColor: noColor, Colors: colors}
	if noColor {
		t.Title = lipgloss.NewStyle().Bold(true)
		t.Success = lipgloss.NewStyle()
		t.Warning = lipgloss.NewStyle()
		t.Error = lipgloss.NewStyle()
		t.Muted = lipgloss.NewStyle()
		t.Card = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
		return t
	}

	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Primary)).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Success))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Warning))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Error)).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))
	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Primary)).
		Padding(0, 1)
	return t
}
