package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/services"
	"github.com/jakechorley/nurse-roster/pkg/instance"
)

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View the stored running totals of every nurse, week by week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return fmt.Errorf("no history store configured (store.backend)")
			}

			scn, err := instance.LoadScenario(app.Cfg.ScenarioPath())
			if err != nil {
				return fmt.Errorf("failed to load scenario: %w", err)
			}

			app.Logger.Debug("history command", zap.String("scenario", scn.Name()))

			weeks, err := services.ViewHistory(app.Ctx, app.Store, scn, app.Logger)
			if err != nil {
				return err
			}
			if len(weeks) == 0 {
				fmt.Printf("\nNo stored history for %s\n\n", scn.Name())
				return nil
			}

			// ANSI color codes
			const (
				colorReset  = "\033[0m"
				colorGreen  = "\033[32m"
				colorRed    = "\033[31m"
				colorYellow = "\033[33m"
			)

			fmt.Printf("\nStored history of %s (assignments/weekends entering each week)\n\n", scn.Name())

			// Calculate column widths
			maxNameLen := 12
			for _, nurse := range scn.Nurses() {
				if len(nurse.Name) > maxNameLen {
					maxNameLen = len(nurse.Name)
				}
			}
			nameColWidth := maxNameLen + 2
			weekColWidth := 14

			// Print header row with week labels
			fmt.Printf("%-*s", nameColWidth, "")
			for _, week := range weeks {
				fmt.Printf("%-*s", weekColWidth, weekLabel(week.Record.Week, scn.NbWeeks()))
			}
			fmt.Println()

			// Print header row with record dates
			fmt.Printf("%-*s", nameColWidth, "")
			for _, week := range weeks {
				fmt.Printf("%-*s", weekColWidth, week.Record.CreatedAt.Local().Format("Jan 02 15:04"))
			}
			fmt.Println()

			// Print separator
			fmt.Print(strings.Repeat("-", nameColWidth))
			for range weeks {
				fmt.Print(strings.Repeat("-", weekColWidth))
			}
			fmt.Println()

			// Print each nurse's row
			for n, nurse := range scn.Nurses() {
				fmt.Printf("%-*s", nameColWidth, nurse.Name)
				for _, week := range weeks {
					state := week.States[n]
					complete := week.Record.Week >= scn.NbWeeks()
					cell := fmt.Sprintf("%d/%d", state.TotalAssignments, state.TotalWeekends)
					color := totalsColor(state, nurse, complete, colorGreen, colorYellow, colorRed)
					fmt.Printf("%s%-*s%s", color, weekColWidth, cell, colorReset)
				}
				fmt.Println()
			}

			// Legend
			fmt.Println()
			fmt.Println("Legend:")
			fmt.Printf("  %sX/Y%s = X assignments and Y worked weekends, within contract\n", colorGreen, colorReset)
			fmt.Printf("  %sX/Y%s = below the contract minimum at the end of the horizon\n", colorYellow, colorReset)
			fmt.Printf("  %sX/Y%s = above a contract maximum\n", colorRed, colorReset)
			fmt.Println()

			return nil
		},
	}

	return cmd
}

// weekLabel names the week a record enters; the record after the last week closes the horizon
func weekLabel(week, nbWeeks int) string {
	if week >= nbWeeks {
		return "End"
	}
	return fmt.Sprintf("Week %d", week)
}

// totalsColor picks the colour of a nurse's running totals. Exceeding a maximum
// can no longer be undone; falling short of the minimum only counts once the
// horizon is complete.
func totalsColor(state model.State, nurse model.Nurse, complete bool, ok, under, over string) string {
	if state.TotalAssignments > nurse.MaxTotalShifts() || state.TotalWeekends > nurse.MaxTotalWeekends() {
		return over
	}
	if complete && state.TotalAssignments < nurse.MinTotalShifts() {
		return under
	}
	return ok
}
