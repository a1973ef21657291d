package cli

import (
	"fmt"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"activities"},
		Short:   "Manage the activities a child already attends",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var studentRef string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Record a current activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Activities.Add(cmd.Context(), studentRef, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added activity %s\n", a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "Child ID or ID prefix")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var studentRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List current activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Activities.List(cmd.Context(), studentRef)
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No current activities."))
				return nil
			}
			rows := make([][]string, 0, len(activities))
			for _, a := range activities {
				rows = append(rows, []string{a.Name, formatter.HumanDate(a.CreatedAt)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ACTIVITY", "ADDED"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "Child ID or ID prefix")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	var studentRef string

	cmd := &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a current activity",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Activities.Remove(cmd.Context(), studentRef, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed activity %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "Child ID or ID prefix")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}
