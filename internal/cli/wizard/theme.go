package wizard

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette used by the prompts, as light/dark pairs.
var (
	brandBlue   = lipgloss.AdaptiveColor{Light: "#003087", Dark: "#2A6EBB"}
	brandYellow = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FFD520"}
	okGreen     = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	errRed      = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	dimGray     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
)

// newWizardTheme returns the Charm theme recolored with the brand palette.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeCharm()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(brandBlue)
	f.Title = f.Title.Foreground(brandBlue).Bold(true)
	f.Description = f.Description.Foreground(dimGray)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(errRed)
	f.ErrorMessage = f.ErrorMessage.Foreground(errRed)
	f.SelectSelector = f.SelectSelector.Foreground(brandYellow).SetString("› ")
	f.MultiSelectSelector = f.MultiSelectSelector.Foreground(brandYellow).SetString("› ")
	f.SelectedOption = f.SelectedOption.Foreground(okGreen)
	f.SelectedPrefix = f.SelectedPrefix.Foreground(okGreen).SetString("[x] ")
	f.UnselectedPrefix = f.UnselectedPrefix.Foreground(dimGray).SetString("[ ] ")
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(brandYellow)
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(brandYellow)
	f.FocusedButton = f.FocusedButton.Background(brandBlue)
	f.Next = f.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = f.Title
	t.Group.Description = f.Description
	return t
}
