package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/nurse-roster/pkg/core/services"
)

// AdvanceCmd creates the advance command
func AdvanceCmd(app *AppContext) *cobra.Command {
	var historyPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "advance <solution_file>",
		Short: "Fold a solved week into the history and prepare the next week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.loadInstance(historyPath)
			if err != nil {
				return err
			}
			scn := result.Scenario

			r, err := loadSolution(scn, args[0], result.Week)
			if err != nil {
				return err
			}

			report, err := services.EvaluateRoster(scn, r, app.Logger)
			if err != nil {
				return err
			}
			if !report.Feasible() && !force {
				return fmt.Errorf("solution breaks %d hard constraints, use --force to advance anyway", len(report.Hard))
			}

			advanced, err := services.AdvanceWeek(app.Ctx, scn, r, app.Store, app.weekPublisher(), app.Cfg.OutputDir, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Week %d advanced (cost %d)\n\n", advanced.Week, report.Cost)
			fmt.Printf("Solution:   %s\n", advanced.SolutionFile)
			if advanced.HistoryFile != "" {
				fmt.Printf("History:    %s\n", advanced.HistoryFile)
			}
			if advanced.RecordID != "" {
				fmt.Printf("Record ID:  %s\n", advanced.RecordID)
			}
			if advanced.Completed {
				fmt.Printf("\nThe horizon of %s is complete.\n", scn.Name())
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&historyPath, "history", "", "History file entering the solved week (defaults to the configured initial history)")
	cmd.Flags().BoolVar(&force, "force", false, "Advance even when the solution is infeasible")
	return cmd
}
