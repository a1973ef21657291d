package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/contract"
)

// FormatEvaluations renders the current-activity verdicts.
func FormatEvaluations(evals []contract.CurrentActivityEvaluation) string {
	var b strings.Builder
	b.WriteString(Header("Current activities"))
	b.WriteString("\n\n")
	if len(evals) == 0 {
		b.WriteString(Dim("No current activities recorded.") + "\n")
		return b.String()
	}
	for _, e := range evals {
		fmt.Fprintf(&b, "%s  %s  %s\n", StyleFg.Render(e.ActivityName), VerdictIndicator(e.Verdict),
			Dim(fmt.Sprintf("alignment %d/100", e.AlignmentScore)))
		fmt.Fprintf(&b, "   %s\n", Dim(e.Reasoning))
		if len(e.Alternatives) > 0 {
			fmt.Fprintf(&b, "   %s %s\n", Dim("Consider:"), AttributeList(e.Alternatives, StyleBlue))
		}
	}
	return b.String()
}

// FormatParentActions renders the home action plan.
func FormatParentActions(actions []contract.ParentAction) string {
	var b strings.Builder
	b.WriteString(Header("At home"))
	b.WriteString("\n\n")
	if len(actions) == 0 {
		b.WriteString(Dim("Nothing to add at home right now.") + "\n")
		return b.String()
	}
	for i, a := range actions {
		fmt.Fprintf(&b, "%s %s  %s  %s\n", Bold(fmt.Sprintf("%d.", i+1)), StyleFg.Render(a.Title),
			PriorityIndicator(a.Priority), Dim(a.TargetArea))
		for _, h := range a.Activities {
			fmt.Fprintf(&b, "   • %s %s\n", h.Name, Dim(fmt.Sprintf("(%s, %s)", h.Frequency, h.Duration)))
		}
		fmt.Fprintf(&b, "   %s %s %s\n", Dim("Expect:"), a.ExpectedOutcome, Dim("in "+a.TimeToSeeResults))
	}
	return b.String()
}
