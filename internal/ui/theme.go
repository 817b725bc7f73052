package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Border      string
	BorderFocus string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		TabSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Portrait: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 3),

		ErrorPanel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 2),

		HelpPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Title       lipgloss.Style
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	DangerText  lipgloss.Style

	Tab         lipgloss.Style
	TabSelected lipgloss.Style

	Portrait   lipgloss.Style
	ErrorPanel lipgloss.Style
	HelpPanel  lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
}

// GetTheme returns the named theme, defaulting to Tabby for unknown names.
func GetTheme(name string) Theme {
	for _, t := range themes() {
		if t.Name == name {
			return t
		}
	}
	return tabbyTheme()
}

// NextTheme returns the name following current in the cycle order.
func NextTheme(current string) string {
	all := themes()
	for i, t := range all {
		if t.Name == current {
			return all[(i+1)%len(all)].Name
		}
	}
	return all[0].Name
}

// ThemeNames lists every available theme name in cycle order.
func ThemeNames() []string {
	all := themes()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}
	return names
}

func themes() []Theme {
	return []Theme{tabbyTheme(), tuxedoTheme(), calicoTheme()}
}

func tabbyTheme() Theme {
	return Theme{
		Name:        "Tabby",
		Background:  "#1f1a17",
		Surface:     "#2a231e",
		Border:      "#5a4a3a",
		BorderFocus: "#e8985a",
		Text:        "#efe3d2",
		Muted:       "#b3a18c",
		Faint:       "#7d6f5e",
		Accent:      "#e8985a",
		Success:     "#9fbf6a",
		Warning:     "#e3b55e",
		Danger:      "#d96c5f",
	}
}

func tuxedoTheme() Theme {
	return Theme{
		Name:        "Tuxedo",
		Background:  "#101114",
		Surface:     "#1a1c21",
		Border:      "#3c4048",
		BorderFocus: "#e6e8eb",
		Text:        "#e6e8eb",
		Muted:       "#9aa0a8",
		Faint:       "#5d636b",
		Accent:      "#c2c7cf",
		Success:     "#8fc98f",
		Warning:     "#d9c278",
		Danger:      "#d98080",
	}
}

func calicoTheme() Theme {
	return Theme{
		Name:        "Calico",
		Background:  "#fbf4ea",
		Surface:     "#f2e7d8",
		Border:      "#c9b8a3",
		BorderFocus: "#c2602e",
		Text:        "#3a3028",
		Muted:       "#78695a",
		Faint:       "#a59482",
		Accent:      "#c2602e",
		Success:     "#5c8a4e",
		Warning:     "#b07d2f",
		Danger:      "#b04a3a",
	}
}
