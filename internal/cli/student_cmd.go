package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/spf13/cobra"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "student",
		Aliases: []string{"students"},
		Short:   "Manage children",
	}

	cmd.AddCommand(
		newStudentAddCmd(app),
		newStudentListCmd(app),
		newStudentShowCmd(app),
		newStudentUpdateCmd(app),
		newStudentRemoveCmd(app),
	)

	return cmd
}

func newStudentAddCmd(app *App) *cobra.Command {
	var name, grade, address string
	var budget float64
	var activities []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a child",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Student{
				Name:          name,
				Grade:         grade,
				HomeAddress:   strings.TrimSpace(address),
				MonthlyBudget: floatFlag(cmd, "budget", budget),
			}

			if strings.TrimSpace(name) == "" || strings.TrimSpace(grade) == "" {
				if !app.interactive() {
					return fmt.Errorf("--name and --grade are required")
				}
				v := studentFormValues{Name: name, Grade: grade, Address: address}
				if s.MonthlyBudget != nil {
					v.Budget = fmt.Sprintf("%g", *s.MonthlyBudget)
				}
				v.Activities = strings.Join(activities, ", ")
				if err := studentForm(&v).Run(); err != nil {
					return err
				}
				s.Name = v.Name
				s.Grade = v.Grade
				s.HomeAddress = strings.TrimSpace(v.Address)
				s.MonthlyBudget = parseBudget(v.Budget)
				activities = splitActivities(v.Activities)
			}

			if err := app.Students.Create(cmd.Context(), s, activities); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) [%s]\n", s.Name, s.Grade, s.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Child's name")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade as printed on the report (e.g. \"EYP 3\")")
	cmd.Flags().StringVar(&address, "address", "", "Home address used for venue search")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Default monthly budget in USD")
	cmd.Flags().StringArrayVar(&activities, "activity", nil, "Current activity (repeatable)")

	return cmd
}

func newStudentListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List children",
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := app.Students.List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), students)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudentList(students))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newStudentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a child and their current activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Students.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			activities, err := app.Activities.List(cmd.Context(), s.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudent(s, activities))
			return nil
		},
	}
}

func newStudentUpdateCmd(app *App) *cobra.Command {
	var name, grade, address string
	var budget float64
	var clearBudget bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a child's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Students.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				s.Name = name
			}
			if cmd.Flags().Changed("grade") {
				s.Grade = grade
			}
			if cmd.Flags().Changed("address") {
				s.HomeAddress = strings.TrimSpace(address)
			}
			if b := floatFlag(cmd, "budget", budget); b != nil {
				s.MonthlyBudget = b
			}
			if clearBudget {
				s.MonthlyBudget = nil
			}

			if err := app.Students.Update(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s [%s]\n", s.Name, s.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Child's name")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade as printed on the report")
	cmd.Flags().StringVar(&address, "address", "", "Home address (empty clears it)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Default monthly budget in USD")
	cmd.Flags().BoolVar(&clearBudget, "no-budget", false, "Clear the default budget")
	cmd.MarkFlagsMutuallyExclusive("budget", "no-budget")

	return cmd
}

func newStudentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a child with their reports and activities",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Students.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.Students.Delete(cmd.Context(), s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s [%s]\n", s.Name, s.DisplayID())
			return nil
		},
	}
}
