package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/db"
)

// WeekHistory is the latest stored history entering one week
type WeekHistory struct {
	Record db.HistoryRecord

	// States holds one state per scenario nurse, in scenario order
	States []model.State
}

// ViewHistory returns the latest stored history of every week of the
// scenario, oldest week first
func ViewHistory(ctx context.Context, store db.HistoryStore, scn *model.Scenario, logger *zap.Logger) ([]WeekHistory, error) {
	logger.Debug("Fetching stored history", zap.String("scenario", scn.Name()))

	records, err := store.GetHistory(ctx, scn.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	latest := db.LatestPerWeek(records)
	weeks := make([]WeekHistory, 0, len(latest))
	for _, record := range latest {
		states, err := record.States(scn)
		if err != nil {
			return nil, fmt.Errorf("failed to read week %d: %w", record.Week, err)
		}
		weeks = append(weeks, WeekHistory{Record: record, States: states})
	}

	logger.Debug("Fetched stored history",
		zap.Int("records", len(records)),
		zap.Int("weeks", len(weeks)))

	return weeks, nil
}
