package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/services"
)

// EvaluateCmd creates the evaluate command
func EvaluateCmd(app *AppContext) *cobra.Command {
	var historyPath string

	cmd := &cobra.Command{
		Use:   "evaluate <solution_file>",
		Short: "Check a solved week against the hard constraints and compute its cost",
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

			printReport(scn, result.Week, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&historyPath, "history", "", "History file entering the solved week (defaults to the configured initial history)")
	return cmd
}

type criterionCost struct {
	name string
	cost int
}

// sortedCosts orders the cost per criterion from most to least expensive
func sortedCosts(report evaluator.Report) []criterionCost {
	var costs []criterionCost
	for name, cost := range report.CostByCriterion() {
		costs = append(costs, criterionCost{name: name, cost: cost})
	}
	sort.Slice(costs, func(i, j int) bool {
		if costs[i].cost != costs[j].cost {
			return costs[i].cost > costs[j].cost
		}
		return costs[i].name < costs[j].name
	})
	return costs
}

// violationLocation renders where a violation happened, e.g. "Alice Tue"
func violationLocation(scn *model.Scenario, v evaluator.Violation) string {
	location := "coverage"
	if v.Nurse >= 0 && v.Nurse < scn.NbNurses() {
		location = scn.Nurse(v.Nurse).Name
	}
	if v.Day >= 0 {
		location += " " + calendar.DayName(v.Day)
	}
	return location
}

func printReport(scn *model.Scenario, week int, report evaluator.Report) {
	const (
		colorReset = "\033[0m"
		colorGreen = "\033[32m"
		colorRed   = "\033[31m"
	)

	fmt.Printf("\nWeek %d of %s\n\n", week, scn.Name())

	if report.Feasible() {
		fmt.Printf("%s✓ Feasible%s\n", colorGreen, colorReset)
	} else {
		fmt.Printf("%s✗ Infeasible: %d hard violations%s\n", colorRed, len(report.Hard), colorReset)
		for _, v := range report.Hard {
			fmt.Printf("  %-20s %-14s %s\n", v.CriterionName, violationLocation(scn, v), v.Description)
		}
	}

	fmt.Printf("\nCost: %d\n", report.Cost)
	for _, c := range sortedCosts(report) {
		fmt.Printf("  %-20s %6d\n", c.name, c.cost)
	}
	fmt.Println()
}
