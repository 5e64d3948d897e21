package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/instance"
)

// InstancePaths locates the files of one instance week
type InstancePaths struct {
	Scenario string
	History  string

	// WeekFile resolves the week file of the week named by the history file
	WeekFile func(week int) (string, error)
}

// LoadInstanceResult is a scenario positioned on one week, with what was
// noticed while loading it
type LoadInstanceResult struct {
	Scenario        *model.Scenario
	Week            int
	WeekFile        string
	SkippedRequests int
	Inconsistencies []model.DemandCell
}

// LoadInstance reads the scenario, the history entering a week and that week's
// data, and returns the scenario positioned on the week
func LoadInstance(ctx context.Context, paths InstancePaths, strict bool, logger *zap.Logger) (*LoadInstanceResult, error) {
	logger.Debug("Loading instance",
		zap.String("scenario", paths.Scenario),
		zap.String("history", paths.History),
		zap.Bool("strict", strict))

	scn, err := instance.LoadScenario(paths.Scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}

	history, err := instance.LoadHistory(paths.History, scn)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if err := history.Apply(scn); err != nil {
		return nil, fmt.Errorf("failed to apply history: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	weekFile, err := paths.WeekFile(history.Week)
	if err != nil {
		return nil, fmt.Errorf("failed to locate week %d: %w", history.Week, err)
	}

	week, err := instance.LoadWeek(weekFile, scn, instance.Options{Strict: strict, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to load week data: %w", err)
	}
	if err := week.Apply(scn); err != nil {
		return nil, fmt.Errorf("failed to apply week data: %w", err)
	}

	demand, err := scn.Demand()
	if err != nil {
		return nil, err
	}
	inconsistencies := demand.Inconsistencies()
	for _, cell := range inconsistencies {
		logger.Warn("Minimum demand exceeds optimal demand",
			zap.String("day", dayName(cell.Day)),
			zap.String("shift", scn.Shifts().Name(cell.Shift)),
			zap.String("skill", scn.Skills().Name(cell.Skill)))
	}

	logger.Info("Instance loaded",
		zap.String("scenario", scn.Name()),
		zap.Int("week", history.Week),
		zap.String("weekName", week.Name),
		zap.Int("nurses", scn.NbNurses()),
		zap.Int("skippedRequests", week.Skipped))

	return &LoadInstanceResult{
		Scenario:        scn,
		Week:            history.Week,
		WeekFile:        weekFile,
		SkippedRequests: week.Skipped,
		Inconsistencies: inconsistencies,
	}, nil
}
