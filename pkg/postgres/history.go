package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/nurse-roster/pkg/db"
)

// InsertHistory inserts a history record and its nurse rows in one transaction
func (d *DB) InsertHistory(ctx context.Context, record *db.HistoryRecord) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var weekName *string
	if record.WeekName != "" {
		weekName = &record.WeekName
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO history_record (id, scenario, week, week_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, record.ID, record.Scenario, record.Week, weekName, record.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}

	for i, n := range record.Nurses {
		_, err := tx.Exec(ctx, `
			INSERT INTO nurse_history (record_id, position, nurse, last_shift, cons_shifts,
				cons_days_work, cons_days_off, total_assignments, total_weekends)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, record.ID, i, n.Nurse, n.LastShift, n.ConsShifts, n.ConsDaysWork, n.ConsDaysOff,
			n.TotalAssignments, n.TotalWeekends)
		if err != nil {
			return fmt.Errorf("failed to insert nurse history for %s: %w", n.Nurse, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetHistory retrieves every history record of a scenario, ordered by week then creation time
func (d *DB) GetHistory(ctx context.Context, scenario string) ([]db.HistoryRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, week, week_name, created_at
		FROM history_record
		WHERE scenario = $1
		ORDER BY week, created_at
	`, scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to query history records: %w", err)
	}

	var records []db.HistoryRecord
	index := make(map[string]int)
	for rows.Next() {
		r := db.HistoryRecord{Scenario: scenario}
		var weekName *string
		var createdAt time.Time
		if err := rows.Scan(&r.ID, &r.Week, &weekName, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		if weekName != nil {
			r.WeekName = *weekName
		}
		r.CreatedAt = createdAt.UTC()
		index[r.ID] = len(records)
		records = append(records, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history records: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	nurseRows, err := d.pool.Query(ctx, `
		SELECT n.record_id, n.nurse, n.last_shift, n.cons_shifts, n.cons_days_work,
			n.cons_days_off, n.total_assignments, n.total_weekends
		FROM nurse_history n
		JOIN history_record h ON h.id = n.record_id
		WHERE h.scenario = $1
		ORDER BY n.record_id, n.position
	`, scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to query nurse history: %w", err)
	}
	defer nurseRows.Close()

	for nurseRows.Next() {
		var recordID string
		var n db.NurseHistory
		if err := nurseRows.Scan(&recordID, &n.Nurse, &n.LastShift, &n.ConsShifts, &n.ConsDaysWork,
			&n.ConsDaysOff, &n.TotalAssignments, &n.TotalWeekends); err != nil {
			return nil, fmt.Errorf("failed to scan nurse history: %w", err)
		}
		i, ok := index[recordID]
		if !ok {
			continue
		}
		records[i].Nurses = append(records[i].Nurses, n)
	}

	if err := nurseRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nurse history: %w", err)
	}

	return records, nil
}
