package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityIndicator returns a colored priority marker such as "● HIGH".
func PriorityIndicator(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("● HIGH")
	case domain.PriorityMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.PriorityLow:
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(p)))
	}
}

// VerdictIndicator returns a colored verdict marker for a current activity.
func VerdictIndicator(v domain.Verdict) string {
	switch v {
	case domain.VerdictContinue:
		return StyleGreen.Render("✔ CONTINUE")
	case domain.VerdictReconsider:
		return StyleYellow.Render("? RECONSIDER")
	case domain.VerdictStop:
		return StyleRed.Render("✖ STOP")
	default:
		return StyleDim.Render(string(v))
	}
}

// RecTypeBadge labels why an activity was picked.
func RecTypeBadge(t domain.RecommendationType) string {
	switch t {
	case domain.RecommendImprovement:
		return StyleBlue.Render("improvement")
	case domain.RecommendStrength:
		return StylePurple.Render("strength")
	case domain.RecommendAgeBased:
		return StyleGreen.Render("age-based")
	default:
		return StyleDim.Render(string(t))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
