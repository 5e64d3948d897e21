package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
)

// ValidateCmd creates the validate command
func ValidateCmd(app *AppContext) *cobra.Command {
	var historyPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load the scenario, a history and its week data and report what was found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.loadInstance(historyPath)
			if err != nil {
				return err
			}
			scn := result.Scenario

			fmt.Printf("\n✓ Instance loaded\n\n")
			fmt.Printf("Scenario:   %s (%d weeks)\n", scn.Name(), scn.NbWeeks())
			fmt.Printf("Week:       %d (%s)\n", result.Week, result.WeekFile)
			fmt.Printf("Nurses:     %d\n", scn.NbNurses())
			fmt.Printf("Contracts:  %d\n", scn.NbContracts())
			fmt.Printf("Shifts:     %v\n", scn.Shifts().Names().Names())
			fmt.Printf("Skills:     %v\n", scn.Skills().Names())

			prefs, err := scn.Preferences()
			if err != nil {
				return err
			}
			fmt.Printf("Requests:   %d shift-off requests", prefs.Count())
			if result.SkippedRequests > 0 {
				fmt.Printf(" (%d skipped)", result.SkippedRequests)
			}
			fmt.Println()

			if len(result.Inconsistencies) > 0 {
				fmt.Printf("\nMinimum demand above optimal demand:\n")
				for _, cell := range result.Inconsistencies {
					fmt.Printf("  %s %s %s\n",
						calendar.DayName(cell.Day),
						scn.Shifts().Name(cell.Shift),
						scn.Skills().Name(cell.Skill))
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&historyPath, "history", "", "History file to start from (defaults to the configured initial history)")
	return cmd
}
