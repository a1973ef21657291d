package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/alexanderramin/sprout/internal/profile"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Import and inspect school reports",
	}

	cmd.AddCommand(
		newReportImportCmd(app),
		newReportListCmd(app),
		newReportShowCmd(app),
	)

	return cmd
}

func newReportImportCmd(app *App) *cobra.Command {
	var studentRef, file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a parsed report from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := app.Reports.ImportFile(cmd.Context(), studentRef, file)
			if err != nil {
				return err
			}

			p := profile.Analyze(rep)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s report (%d attributes) [%s]\n",
				rep.Grade, len(rep.LearnerProfileAttributes), formatter.TruncID(rep.ID))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "Child ID or ID prefix")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the report JSON")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagFilename("file", "json")

	return cmd
}

func newReportListCmd(app *App) *cobra.Command {
	var studentRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a child's reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := app.Reports.List(cmd.Context(), studentRef)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReportList(reports))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "Child ID or ID prefix")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func newReportShowCmd(app *App) *cobra.Command {
	var studentRef string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the latest report and the profile derived from it",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := app.Reports.Latest(cmd.Context(), studentRef)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rep)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", formatter.Header(strings.TrimSpace(rep.Grade+" "+rep.Term)),
				formatter.Dim("imported "+formatter.HumanDate(rep.CreatedAt)))
			fmt.Fprint(out, formatter.FormatProfile(profile.Analyze(rep)))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "Child ID or ID prefix")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the stored report as JSON")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}
