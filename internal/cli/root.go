package cli

import (
	"github.com/alexanderramin/sprout/internal/logging"
	"github.com/alexanderramin/sprout/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Students   service.StudentService
	Reports    service.ReportService
	Activities service.ActivityService
	Recommend  service.RecommendationService

	// IsInteractive reports whether forms may prompt on the terminal.
	// Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "sprout" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "sprout",
		Short:         "Activity recommendations from school reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(logging.ContextWithRequestID(cmd.Context()))
		},
	}

	root.AddCommand(
		newStudentCmd(app),
		newReportCmd(app),
		newActivityCmd(app),
		newRecommendCmd(app),
		newEvaluateCmd(app),
		newActionsCmd(app),
	)

	return root
}
