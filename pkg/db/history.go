package db

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// NewHistoryRecord builds a record of the states entering week
func NewHistoryRecord(scn *model.Scenario, week int, weekName string, states []model.State) (*HistoryRecord, error) {
	if len(states) != scn.NbNurses() {
		return nil, fmt.Errorf("expected %d nurse states, got %d", scn.NbNurses(), len(states))
	}

	nurses := make([]NurseHistory, len(states))
	for n, s := range states {
		nurses[n] = NurseHistory{
			Nurse:            scn.Nurse(n).Name,
			LastShift:        scn.Shifts().Name(s.Shift),
			ConsShifts:       s.ConsShifts,
			ConsDaysWork:     s.ConsDaysWork,
			ConsDaysOff:      s.ConsDaysOff,
			TotalAssignments: s.TotalAssignments,
			TotalWeekends:    s.TotalWeekends,
		}
	}

	return &HistoryRecord{
		ID:        uuid.New().String(),
		Scenario:  scn.Name(),
		Week:      week,
		WeekName:  weekName,
		CreatedAt: time.Now().UTC(),
		Nurses:    nurses,
	}, nil
}

// States resolves the record against scn, returning one state per scenario nurse
func (r *HistoryRecord) States(scn *model.Scenario) ([]model.State, error) {
	if r.Scenario != scn.Name() {
		return nil, fmt.Errorf("record %s belongs to scenario %s, not %s", r.ID, r.Scenario, scn.Name())
	}

	states := make([]model.State, scn.NbNurses())
	seen := make([]bool, scn.NbNurses())
	for _, nh := range r.Nurses {
		nurse, ok := scn.NurseIndex(nh.Nurse)
		if !ok {
			return nil, fmt.Errorf("record %s: unknown nurse %q", r.ID, nh.Nurse)
		}
		if seen[nurse] {
			return nil, fmt.Errorf("record %s: nurse %s listed twice", r.ID, nh.Nurse)
		}
		seen[nurse] = true

		shift, ok := scn.Shifts().Index(nh.LastShift)
		if !ok {
			return nil, fmt.Errorf("record %s: unknown shift %q", r.ID, nh.LastShift)
		}
		states[nurse] = model.State{
			Shift:            shift,
			ConsShifts:       nh.ConsShifts,
			ConsDaysWork:     nh.ConsDaysWork,
			ConsDaysOff:      nh.ConsDaysOff,
			TotalAssignments: nh.TotalAssignments,
			TotalWeekends:    nh.TotalWeekends,
		}
	}

	for n, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("record %s: no state for nurse %s", r.ID, scn.Nurse(n).Name)
		}
	}
	return states, nil
}

// LatestPerWeek keeps the most recent record of each week, ordered by week.
// A week advanced twice leaves two records; only the later one is current.
func LatestPerWeek(records []HistoryRecord) []HistoryRecord {
	latest := make(map[int]HistoryRecord)
	for _, r := range records {
		if cur, ok := latest[r.Week]; !ok || r.CreatedAt.After(cur.CreatedAt) {
			latest[r.Week] = r
		}
	}

	result := make([]HistoryRecord, 0, len(latest))
	for _, r := range latest {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Week < result[j].Week
	})
	return result
}
