package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// sproutHuhTheme styles forms with the formatter palette.
func sproutHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// studentFormValues are the raw strings collected by the student form.
type studentFormValues struct {
	Name       string
	Grade      string
	Address    string
	Budget     string
	Activities string
}

// studentForm collects the fields the add command was not given.
func studentForm(v *studentFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Child's name").
				Value(&v.Name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Grade").
				Description("As printed on the report, e.g. EYP 3 or Grade 4").
				Value(&v.Grade).
				Validate(validateRequired("grade")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Home address (optional)").
				Description("Used to find venues nearby").
				Value(&v.Address),
			huh.NewInput().
				Title("Monthly budget in USD (optional)").
				Placeholder("150").
				Value(&v.Budget).
				Validate(validateOptionalBudget),
			huh.NewInput().
				Title("Current activities (optional)").
				Description("Comma-separated, e.g. Swimming, Piano").
				Value(&v.Activities),
		),
	).WithTheme(sproutHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateOptionalBudget accepts empty or a non-negative number.
func validateOptionalBudget(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// parseBudget converts a validated budget string; empty means no budget.
func parseBudget(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func splitActivities(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
