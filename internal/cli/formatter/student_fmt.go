package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
)

// FormatStudentList renders students as a table.
func FormatStudentList(students []*domain.Student) string {
	if len(students) == 0 {
		return Dim("No students found.") + "\n"
	}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Name),
			s.Grade,
			fmt.Sprintf("%d", s.Age()),
			FormatBudget(s.MonthlyBudget),
		})
	}
	return RenderTable([]string{"ID", "NAME", "GRADE", "AGE", "BUDGET"}, rows)
}

// FormatStudent renders one student with their current activities.
func FormatStudent(s *domain.Student, activities []*domain.CurrentActivity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold(s.Name), TruncID(s.ID))
	fmt.Fprintf(&b, "%s %s (age %d)\n", Dim("Grade:"), s.Grade, s.Age())
	if s.HomeAddress != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Home:"), s.HomeAddress)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Budget:"), FormatBudget(s.MonthlyBudget))

	names := make([]string, 0, len(activities))
	for _, a := range activities {
		names = append(names, a.Name)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Activities:"), AttributeList(names, StyleFg))
	return b.String()
}

// FormatReportList renders a student's reports, newest first.
func FormatReportList(reports []*domain.Report) string {
	if len(reports) == 0 {
		return Dim("No reports imported.") + "\n"
	}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		term := r.Term
		if term == "" {
			term = Dim("--")
		}
		source := r.SourceFile
		if source == "" {
			source = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			r.Grade,
			term,
			fmt.Sprintf("%d", len(r.LearnerProfileAttributes)),
			source,
			HumanDate(r.CreatedAt),
		})
	}
	return RenderTable([]string{"ID", "GRADE", "TERM", "ATTRIBUTES", "SOURCE", "IMPORTED"}, rows)
}

// FormatProfile renders the weak and strong attribute lists.
func FormatProfile(p domain.LearnerProfile) string {
	return fmt.Sprintf("%s %s\n%s %s\n",
		Dim("Needs attention:"), AttributeList(p.WeakAttributes, StyleYellow),
		Dim("Strengths:      "), AttributeList(p.StrongAttributes, StyleGreen),
	)
}
