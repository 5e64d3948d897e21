// Package redisstore keeps history records in Redis, one hash per scenario
// with a JSON value per record.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/jakechorley/nurse-roster/pkg/db"
)

const keyPrefix = "nurse-roster:history:"

var _ db.HistoryStore = (*Store)(nil)

// Options configure the Redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store implements db.HistoryStore on a Redis client
type Store struct {
	client redis.UniversalClient
}

// New connects to Redis and checks the connection
func New(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}

	return &Store{client: client}, nil
}

// NewWithClient wraps an existing client
func NewWithClient(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

// Close closes the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}

func scenarioKey(scenario string) string {
	return keyPrefix + scenario
}

// InsertHistory stores record under its scenario's hash
func (s *Store) InsertHistory(ctx context.Context, record *db.HistoryRecord) error {
	value, err := encodeRecord(record)
	if err != nil {
		return err
	}

	if err := s.client.HSet(ctx, scenarioKey(record.Scenario), record.ID, value).Err(); err != nil {
		return fmt.Errorf("failed to store history record %s: %w", record.ID, err)
	}
	return nil
}

// GetHistory returns every record of scenario, ordered by week then creation time
func (s *Store) GetHistory(ctx context.Context, scenario string) ([]db.HistoryRecord, error) {
	values, err := s.client.HGetAll(ctx, scenarioKey(scenario)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history of %s: %w", scenario, err)
	}

	return decodeRecords(values)
}

func encodeRecord(record *db.HistoryRecord) ([]byte, error) {
	value, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode history record %s: %w", record.ID, err)
	}
	return value, nil
}

func decodeRecords(values map[string]string) ([]db.HistoryRecord, error) {
	records := make([]db.HistoryRecord, 0, len(values))
	for id, value := range values {
		var r db.HistoryRecord
		if err := json.Unmarshal([]byte(value), &r); err != nil {
			return nil, fmt.Errorf("failed to decode history record %s: %w", id, err)
		}
		records = append(records, r)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Week != records[j].Week {
			return records[i].Week < records[j].Week
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}
