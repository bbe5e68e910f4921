// Package tui provides the terminal dashboard for LifeOS.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lifeos-app/lifeos/internal/model"
)

// Palette is the theme-dependent color set. The preference store's
// theme side effect swaps the active palette, which is the TUI's
// version of flipping the dark-mode flag on a document root.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Danger  lipgloss.Color
	Success lipgloss.Color
	Border  lipgloss.Color
	Text    lipgloss.Color
}

// LightPalette returns the light theme colors.
func LightPalette() Palette {
	return Palette{
		Primary: lipgloss.Color("#7C3AED"),
		Accent:  lipgloss.Color("#2563EB"),
		Muted:   lipgloss.Color("#6B7280"),
		Danger:  lipgloss.Color("#DC2626"),
		Success: lipgloss.Color("#059669"),
		Border:  lipgloss.Color("#D1D5DB"),
		Text:    lipgloss.Color("#111827"),
	}
}

// DarkPalette returns the dark theme colors.
func DarkPalette() Palette {
	return Palette{
		Primary: lipgloss.Color("#A78BFA"),
		Accent:  lipgloss.Color("#60A5FA"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Danger:  lipgloss.Color("#F87171"),
		Success: lipgloss.Color("#34D399"),
		Border:  lipgloss.Color("#4B5563"),
		Text:    lipgloss.Color("#F9FAFB"),
	}
}

// PaletteFor returns the palette for a theme.
func PaletteFor(theme model.Theme) Palette {
	if theme == model.ThemeDark {
		return DarkPalette()
	}
	return LightPalette()
}

// Styles bundles the lipgloss styles built from a palette.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	NavActive lipgloss.Style
	NavItem   lipgloss.Style
	Box       lipgloss.Style
	Value     lipgloss.Style
	Danger    lipgloss.Style
	Success   lipgloss.Style
	Help      lipgloss.Style
}

// BuildStyles derives the style set for a palette.
func BuildStyles(p Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),
		NavActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		NavItem: lipgloss.NewStyle().
			Foreground(p.Muted),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2).
			MarginBottom(1),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Danger: lipgloss.NewStyle().
			Foreground(p.Danger),
		Success: lipgloss.NewStyle().
			Foreground(p.Success),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
	}
}
