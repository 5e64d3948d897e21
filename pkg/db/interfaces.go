package db

import "context"

// HistoryStore defines the interface for history record persistence.
// Both postgres.DB and redisstore.Store implement this interface.
type HistoryStore interface {
	InsertHistory(ctx context.Context, record *HistoryRecord) error
	GetHistory(ctx context.Context, scenario string) ([]HistoryRecord, error)
}
