package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	return HumanDateFrom(t, time.Now())
}

// HumanDateFrom is HumanDate against a fixed reference time.
func HumanDateFrom(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// AttributeList renders attribute names comma-separated, or a dim dash.
func AttributeList(attrs []string, style lipgloss.Style) string {
	if len(attrs) == 0 {
		return Dim("--")
	}
	return style.Render(strings.Join(attrs, ", "))
}

// FormatBudget renders an optional monthly budget in US dollars.
func FormatBudget(b *float64) string {
	if b == nil {
		return Dim("--")
	}
	return fmt.Sprintf("$%.0f/month", *b)
}

// Warnings renders pipeline warnings, one per line.
func Warnings(warnings []string) string {
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("WARNING: ") + Dim(w) + "\n")
	}
	return b.String()
}
