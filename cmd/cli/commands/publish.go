package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/nurse-roster/pkg/core/services"
)

// PublishCmd creates the publish command
func PublishCmd(app *AppContext) *cobra.Command {
	var historyPath string

	cmd := &cobra.Command{
		Use:   "publish <solution_file>",
		Short: "Publish a solved week to the roster spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cfg.Publish.RosterSheetID == "" {
				return fmt.Errorf("no roster spreadsheet configured (publish.rosterSheetID)")
			}

			result, err := app.loadInstance(historyPath)
			if err != nil {
				return err
			}

			r, err := loadSolution(result.Scenario, args[0], result.Week)
			if err != nil {
				return err
			}

			sheets, err := app.sheetsClient()
			if err != nil {
				return err
			}

			start, _ := app.Cfg.Start()
			published, err := services.PublishRoster(app.Ctx, result.Scenario, r, sheets, app.Cfg.Publish.RosterSheetID, start, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster published to tab %q\n", published.Title)
			fmt.Printf("https://docs.google.com/spreadsheets/d/%s\n\n", app.Cfg.Publish.RosterSheetID)

			return nil
		},
	}

	cmd.Flags().StringVar(&historyPath, "history", "", "History file entering the solved week (defaults to the configured initial history)")
	return cmd
}
