package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	var (
		studentRef  string
		budget      float64
		flexibility string
		lat, lng    float64
		address     string
		climate     string
		coastal     bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:     "recommend",
		Aliases: []string{"rec"},
		Short:   "Recommend enrichment activities from the latest report",
		Long: `Recommend activities that target the attributes the latest report flags
as needing attention, balanced with a few that build on strengths.

Without a location, costs are shown in USD and no venues are searched.
Pass --lat/--lng or --address (or set a home address on the child) to
localise costs and find venues nearby.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.RecommendationRequest{
				StudentID:   studentRef,
				Budget:      floatFlag(cmd, "budget", budget),
				Flexibility: domain.BudgetFlexibility(flexibility),
				ClimateZone: domain.ClimateZone(climate),
				Latitude:    floatFlag(cmd, "lat", lat),
				Longitude:   floatFlag(cmd, "lng", lng),
				Address:     strings.TrimSpace(address),
			}
			if cmd.Flags().Changed("coastal") {
				req.IsCoastal = &coastal
			}

			resp, err := app.Recommend.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "Child ID or ID prefix")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Monthly budget in USD (defaults to the child's budget)")
	enumFlag(cmd, &flexibility, "flexibility", flexibilityValues, "How strictly to apply the budget")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude for venue search")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude for venue search")
	cmd.Flags().StringVar(&address, "address", "", "Address to geocode for venue search")
	enumFlag(cmd, &climate, "climate", climateValues, "Climate zone (derived from location when omitted)")
	cmd.Flags().BoolVar(&coastal, "coastal", false, "Whether water activities are practical (derived from location when omitted)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("student")
	cmd.MarkFlagsRequiredTogether("lat", "lng")

	return cmd
}

func newEvaluateCmd(app *App) *cobra.Command {
	var studentRef string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Check whether current activities still fit the child's needs",
		RunE: func(cmd *cobra.Command, args []string) error {
			evals, err := app.Recommend.Evaluate(cmd.Context(), studentRef)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), evals)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEvaluations(evals))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "Child ID or ID prefix")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func newActionsCmd(app *App) *cobra.Command {
	var studentRef string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Suggest things parents can do at home",
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := app.Recommend.ParentActions(cmd.Context(), studentRef)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), actions)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatParentActions(actions))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentRef, "student", "", "Child ID or ID prefix")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}
