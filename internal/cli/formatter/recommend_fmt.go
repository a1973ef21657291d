package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/contract"
)

const maxVenuesShown = 3

// FormatRecommendations renders the full recommendation response.
func FormatRecommendations(resp *contract.RecommendationResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(resp.StudentName), Dim(fmt.Sprintf("%s · age %d", resp.Grade, resp.Age)))
	b.WriteString(FormatProfile(resp.Profile))
	if resp.Location != nil {
		fmt.Fprintf(&b, "%s %s (%.4f, %.4f) %s\n", Dim("Location:"), resp.Location.Country,
			resp.Location.Latitude, resp.Location.Longitude, Dim(string(resp.Location.ClimateZone)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Recommended activities"))
	b.WriteString("\n\n")
	if len(resp.Recommendations) == 0 {
		b.WriteString(Dim("No suitable activities found for this age and budget.") + "\n")
	}
	for i, rec := range resp.Recommendations {
		b.WriteString(formatRecommendation(i+1, rec))
		if i < len(resp.Recommendations)-1 {
			b.WriteString("\n")
		}
	}

	if len(resp.CurrentActivityEvaluations) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatEvaluations(resp.CurrentActivityEvaluations))
	}
	if len(resp.ParentActions) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatParentActions(resp.ParentActions))
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(Warnings(resp.Warnings))
	}
	return b.String()
}

func formatRecommendation(n int, rec contract.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s  %s\n",
		Bold(fmt.Sprintf("%d.", n)),
		StyleFg.Render(rec.Name),
		RecTypeBadge(rec.RecommendationType),
		PriorityIndicator(rec.Priority),
	)
	if len(rec.TargetedAttributes) > 0 {
		fmt.Fprintf(&b, "   %s %s\n", Dim("Builds:"), AttributeList(rec.TargetedAttributes, StyleBlue))
	}
	place := string(rec.ActivityType)
	if rec.HomeBased {
		place = "at home"
	}
	fmt.Fprintf(&b, "   %s %s  %s %s  %s %.0f%%\n",
		Dim("Cost:"), rec.EstimatedCost,
		Dim("Where:"), place,
		Dim("Fit:"), rec.FeasibilityScore.Overall,
	)
	if rec.Description != "" {
		fmt.Fprintf(&b, "   %s\n", Dim(rec.Description))
	}
	for i, v := range rec.Venues {
		if i == maxVenuesShown {
			fmt.Fprintf(&b, "   %s\n", Dim(fmt.Sprintf("+%d more nearby", len(rec.Venues)-maxVenuesShown)))
			break
		}
		b.WriteString("   " + formatVenue(v) + "\n")
	}
	return b.String()
}

func formatVenue(v contract.Venue) string {
	parts := []string{StyleGreen.Render("⌂ " + v.Name)}
	if v.Distance != nil {
		parts = append(parts, Dim(fmt.Sprintf("%.1f km", *v.Distance/1000)))
	}
	if v.Rating != nil {
		parts = append(parts, StyleYellow.Render(fmt.Sprintf("★ %.1f", *v.Rating)))
	}
	if v.Address != "" {
		parts = append(parts, Dim(v.Address))
	}
	return strings.Join(parts, "  ")
}
