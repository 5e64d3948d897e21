package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/nurse-roster/pkg/db"
	"github.com/jakechorley/nurse-roster/pkg/events"
)

// mockHistoryStore implements db.HistoryStore
type mockHistoryStore struct {
	inserted  []*db.HistoryRecord
	records   []db.HistoryRecord
	insertErr error
	getErr    error
}

func (m *mockHistoryStore) InsertHistory(ctx context.Context, record *db.HistoryRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, record)
	return nil
}

func (m *mockHistoryStore) GetHistory(ctx context.Context, scenario string) ([]db.HistoryRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var records []db.HistoryRecord
	for _, r := range m.records {
		if r.Scenario == scenario {
			records = append(records, r)
		}
	}
	return records, nil
}

// mockPublisher implements WeekPublisher
type mockPublisher struct {
	events []events.WeekReady
	err    error
}

func (m *mockPublisher) PublishWeekReady(ctx context.Context, event events.WeekReady) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

// mockSheets implements RosterSheets
type mockSheets struct {
	spreadsheetID string
	published     *sheetsclient.PublishedRoster
	err           error
}

func (m *mockSheets) PublishRoster(ctx context.Context, spreadsheetID string, roster *sheetsclient.PublishedRoster) error {
	if m.err != nil {
		return m.err
	}
	m.spreadsheetID = spreadsheetID
	m.published = roster
	return nil
}

func testdataPath(name string) string {
	return filepath.Join("..", "..", "instance", "testdata", name)
}

func testPaths() InstancePaths {
	return InstancePaths{
		Scenario: testdataPath("Sc-n003w4.txt"),
		History:  testdataPath("H0-n003w4-0.txt"),
		WeekFile: func(week int) (string, error) {
			return testdataPath("WD-n003w4-0.txt"), nil
		},
	}
}

// loadWeekZero loads week 0 of the n003w4 test instance
func loadWeekZero(t *testing.T) *LoadInstanceResult {
	t.Helper()
	result, err := LoadInstance(context.Background(), testPaths(), false, zap.NewNop())
	require.NoError(t, err)
	return result
}
