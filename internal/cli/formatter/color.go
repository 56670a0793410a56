package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Each color has a light-background variant so the week stays
// readable in both terminal themes.
var (
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#427b58", Dark: "#8ec07c"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"}
	ColorRed    = lipgloss.AdaptiveColor{Light: "#9d0006", Dark: "#fb4934"}
	ColorBlue   = lipgloss.AdaptiveColor{Light: "#076678", Dark: "#83a598"}
	ColorPurple = lipgloss.AdaptiveColor{Light: "#8f3f71", Dark: "#d3869b"}
	ColorDim    = lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"}
	ColorFg     = lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"}
	ColorHeader = lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"}
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	morningStyle   = lipgloss.NewStyle().Foreground(ColorBlue)
	afternoonStyle = lipgloss.NewStyle().Foreground(ColorPurple)
)

var stateStyles = map[domain.WeekState]lipgloss.Style{
	domain.WeekGenerated: StyleGreen,
	domain.WeekEdited:    StyleYellow,
}

// StateColor is green for a generated week, yellow once edited, dim otherwise.
func StateColor(state domain.WeekState) lipgloss.Style {
	if s, ok := stateStyles[state]; ok {
		return s
	}
	return StyleDim
}

// StateIndicator returns a colored marker such as "● EDITED".
func StateIndicator(state domain.WeekState) string {
	if state == "" {
		state = domain.WeekEmpty
	}
	return StateColor(state).Render("● " + strings.ToUpper(string(state)))
}

// SessionColor tells the morning (sáng) and afternoon (chiều) sessions apart.
func SessionColor(afternoon bool) lipgloss.Style {
	if afternoon {
		return afternoonStyle
	}
	return morningStyle
}

// Header renders an upper-cased title over a rule of the same width.
func Header(text string) string {
	upper := strings.ToUpper(text)
	rule := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(rule))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
