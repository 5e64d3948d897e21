package evaluator

import (
	"fmt"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/roster"
)

// WeekState is the read-only view of one week that criteria validate
type WeekState struct {
	Scenario *model.Scenario
	Roster   *roster.Roster

	// Week is the index of the week in the horizon
	Week int

	// LastWeek is true for the final week of the horizon, where totals are checked
	LastWeek bool

	// History holds the per-nurse states entering the week
	History []model.State

	Demand      model.Demand
	Preferences model.Preferences
}

// NewWeekState snapshots the current week of scn for validating r.
// Fails if the scenario has no week loaded or r does not fit the scenario.
func NewWeekState(scn *model.Scenario, r *roster.Roster) (*WeekState, error) {
	week, err := scn.Week()
	if err != nil {
		return nil, fmt.Errorf("failed to read current week: %w", err)
	}
	if r.NbNurses() != scn.NbNurses() {
		return nil, fmt.Errorf("roster has %d nurses, scenario has %d", r.NbNurses(), scn.NbNurses())
	}
	if week.Demand.IsZero() {
		return nil, fmt.Errorf("demand of week %d is not loaded", week.Index)
	}

	return &WeekState{
		Scenario:    scn,
		Roster:      r,
		Week:        week.Index,
		LastWeek:    week.Index == scn.NbWeeks()-1,
		History:     week.History,
		Demand:      week.Demand,
		Preferences: week.Preferences,
	}, nil
}

// ShiftsOf returns the shift worked by nurse on each day, model.RestShift on days off
func (ws *WeekState) ShiftsOf(nurse int) [calendar.DaysPerWeek]int {
	var shifts [calendar.DaysPerWeek]int
	for day := range shifts {
		shifts[day] = ws.Roster.AssignmentOf(nurse, day).Shift
	}
	return shifts
}

// WorkedDays returns the number of days nurse works in the week
func (ws *WeekState) WorkedDays(nurse int) int {
	count := 0
	for day := 0; day < calendar.DaysPerWeek; day++ {
		if ws.Roster.Works(nurse, day) {
			count++
		}
	}
	return count
}

// WorksWeekend reports whether nurse works on Saturday or Sunday
func (ws *WeekState) WorksWeekend(nurse int) bool {
	return ws.Roster.Works(nurse, calendar.Saturday) || ws.Roster.Works(nurse, calendar.Sunday)
}

// NurseName returns the name of nurse for violation descriptions
func (ws *WeekState) NurseName(nurse int) string {
	return ws.Scenario.Nurse(nurse).Name
}
