package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskapp/internal/config/colors"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	IDStyle       lipgloss.Style
	ValueStyle    lipgloss.Style

	// Status styles
	DoneStyle    lipgloss.Style
	PendingStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// Label chips
	LabelChipStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	IDStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	DoneStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Done))

	PendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Pending))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg))

	LabelChipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.LabelFg)).
		Background(lipgloss.Color(scheme.LabelBg)).
		Padding(0, 1)
}

// StatusMark renders the checkbox shown in front of a task
func StatusMark(done bool) string {
	if done {
		return DoneStyle.Render("[x]")
	}
	return PendingStyle.Render("[ ]")
}

// LabelChip renders a label name as a colored chip
func LabelChip(text string) string {
	return LabelChipStyle.Render(text)
}
