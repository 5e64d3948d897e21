package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/roster"
	"github.com/jakechorley/nurse-roster/pkg/db"
	"github.com/jakechorley/nurse-roster/pkg/events"
	"github.com/jakechorley/nurse-roster/pkg/instance"
)

// WeekPublisher announces that a week is ready to be solved
type WeekPublisher interface {
	PublishWeekReady(ctx context.Context, event events.WeekReady) error
}

// AdvanceWeekResult describes what advancing past a solved week produced
type AdvanceWeekResult struct {
	// Week is the solved week
	Week int

	// States are the histories entering the following week
	States []model.State

	SolutionFile string

	// HistoryFile is empty when the solved week closed the horizon
	HistoryFile string

	// RecordID is empty when no store is configured
	RecordID string

	// Completed is true when the solved week was the last of the horizon
	Completed bool
}

// AdvanceWeek folds the solved roster of the scenario's current week into its
// history and moves the scenario to the following week.
//
// The solution and the next history file are written to outputDir. When store
// is set the next history is recorded there, and when publisher is set the next
// week is announced. After the last week of the horizon only the solution and
// the record are written and the scenario stays on its week.
func AdvanceWeek(
	ctx context.Context,
	scn *model.Scenario,
	r *roster.Roster,
	store db.HistoryStore,
	publisher WeekPublisher,
	outputDir string,
	logger *zap.Logger,
) (*AdvanceWeekResult, error) {
	week, err := scn.ThisWeek()
	if err != nil {
		return nil, err
	}
	lastWeek, err := scn.IsLastWeek()
	if err != nil {
		return nil, err
	}
	weekName, err := scn.WeekName()
	if err != nil {
		return nil, err
	}
	prev, err := scn.HistoryState()
	if err != nil {
		return nil, err
	}

	logger.Debug("Advancing week",
		zap.String("scenario", scn.Name()),
		zap.Int("week", week),
		zap.Bool("lastWeek", lastWeek))

	next, err := roster.AdvanceHistory(scn, prev, r)
	if err != nil {
		return nil, fmt.Errorf("failed to fold roster into history: %w", err)
	}

	result := &AdvanceWeekResult{
		Week:         week,
		States:       next,
		SolutionFile: filepath.Join(outputDir, instance.SolutionFileName(scn, week)),
		Completed:    lastWeek,
	}

	if err := instance.SaveSolution(result.SolutionFile, scn, week, r); err != nil {
		return nil, fmt.Errorf("failed to save solution: %w", err)
	}

	if !lastWeek {
		result.HistoryFile = filepath.Join(outputDir, instance.HistoryFileName(scn, week+1))
		if err := instance.SaveHistory(result.HistoryFile, scn, week+1, next); err != nil {
			return nil, fmt.Errorf("failed to save history: %w", err)
		}
	}

	if store != nil {
		record, err := db.NewHistoryRecord(scn, week+1, weekName, next)
		if err != nil {
			return nil, fmt.Errorf("failed to build history record: %w", err)
		}
		if err := store.InsertHistory(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to store history record: %w", err)
		}
		result.RecordID = record.ID
		logger.Debug("Stored history record", zap.String("id", record.ID), zap.Int("week", record.Week))
	}

	if lastWeek {
		logger.Info("Horizon completed", zap.String("scenario", scn.Name()), zap.Int("weeks", scn.NbWeeks()))
		return result, nil
	}

	if publisher != nil {
		event := events.WeekReady{
			Scenario:    scn.Name(),
			Week:        week + 1,
			HistoryFile: result.HistoryFile,
			RecordID:    result.RecordID,
			IsLastWeek:  week+1 == scn.NbWeeks()-1,
			CreatedAt:   time.Now().UTC(),
		}
		if err := publisher.PublishWeekReady(ctx, event); err != nil {
			return nil, fmt.Errorf("failed to publish week ready event: %w", err)
		}
	}

	if err := scn.AdvanceWeek(next); err != nil {
		return nil, fmt.Errorf("failed to advance scenario: %w", err)
	}

	logger.Info("Week advanced",
		zap.String("scenario", scn.Name()),
		zap.Int("week", week+1),
		zap.String("history", result.HistoryFile))

	return result, nil
}
