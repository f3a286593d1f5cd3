package tui

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles shared by the dashboard views.
var (
	// Header style - bold white on dark blue
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("25")).
			Bold(true).
			Padding(0, 1)

	// Active tab - highlighted with rounded border
	activeTabStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("69")).
			Foreground(lipgloss.Color("231")).
			Bold(true).
			Padding(0, 1)

	// Inactive tab - dim
	tabStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	// Section title style - bold cyan
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			MarginTop(1)

	// Caption style - for the per-view descriptions
	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(90)

	// Dim style - units and secondary info
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// Baseline style - the human reference line annotations
	baselineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// Band style - the shaded pass-rate range annotations
	bandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	// Unavailable style - for views whose source column is absent
	unavailableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Italic(true).
				MarginTop(1)

	// Footer style - keyboard hints
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	// Container style - rounded border around the whole dashboard
	containerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 2)
)

// categoryColors is a fixed rotation for legal-category series; categories
// past the palette wrap around.
var categoryColors = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

func categoryColor(i int) string {
	return categoryColors[i%len(categoryColors)]
}
