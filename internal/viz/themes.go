package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI panels.
type Theme struct {
	Name       string
	Border     lipgloss.Color
	Title      lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	SelectedFg lipgloss.Color
	SelectedBg lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:       "neon",
		Border:     lipgloss.Color("#444466"),
		Title:      lipgloss.Color("#00ffff"),
		Accent:     lipgloss.Color("#ff00ff"),
		Muted:      lipgloss.Color("#666688"),
		SelectedFg: lipgloss.Color("#000000"),
		SelectedBg: lipgloss.Color("#00ff88"),
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Border:     lipgloss.Color("#005500"),
		Title:      lipgloss.Color("#00ff00"),
		Accent:     lipgloss.Color("#88ff88"),
		Muted:      lipgloss.Color("#005500"),
		SelectedFg: lipgloss.Color("#001100"),
		SelectedBg: lipgloss.Color("#00ff00"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Border:     lipgloss.Color("#888888"),
		Title:      lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#0088ff"),
		Muted:      lipgloss.Color("#888888"),
		SelectedFg: lipgloss.Color("#000000"),
		SelectedBg: lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{ThemeNeon, ThemeRetro, ThemeMinimal}
)

// GetTheme returns a theme by name, defaulting to neon.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

// NextTheme cycles to the theme after the named one.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeNeon
}

// ThemeNames returns the available theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
