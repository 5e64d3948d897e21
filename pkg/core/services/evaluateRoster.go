package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
	"github.com/jakechorley/nurse-roster/pkg/core/evaluator/criteria"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/roster"
)

// EvaluateRoster checks r against every hard and soft constraint of the
// scenario's current week
func EvaluateRoster(scn *model.Scenario, r *roster.Roster, logger *zap.Logger) (evaluator.Report, error) {
	week, err := evaluator.NewWeekState(scn, r)
	if err != nil {
		return evaluator.Report{}, fmt.Errorf("failed to prepare week: %w", err)
	}

	report := evaluator.Evaluate(week, criteria.Default())

	for _, v := range report.Hard {
		logger.Debug("Hard violation",
			zap.String("criterion", v.CriterionName),
			zap.String("description", v.Description))
	}
	logger.Info("Roster evaluated",
		zap.Int("week", week.Week),
		zap.Bool("feasible", report.Feasible()),
		zap.Int("hardViolations", len(report.Hard)),
		zap.Int("cost", report.Cost))

	return report, nil
}
