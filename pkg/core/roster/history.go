package roster

import (
	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/errs"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// AdvanceHistory folds one solved week into the history states that entered it
// and returns the states entering the following week. prev is not modified.
//
// Per nurse and day:
//   - the shift run grows while the same shift repeats, restarts at 1 on a
//     different shift and drops to 0 on a day off
//   - the work and off runs grow while the day keeps the same classification
//     and restart at 1 otherwise
//   - totals only grow; a week with any Saturday or Sunday worked counts as one weekend
func AdvanceHistory(scn *model.Scenario, prev []model.State, r *Roster) ([]model.State, error) {
	if len(prev) != scn.NbNurses() {
		return nil, errs.InvalidConfiguration("history", "expected %d nurse states, got %d", scn.NbNurses(), len(prev))
	}
	if r.NbNurses() != scn.NbNurses() {
		return nil, errs.InvalidConfiguration("roster", "expected %d nurses, got %d", scn.NbNurses(), r.NbNurses())
	}

	next := make([]model.State, len(prev))
	for n, state := range prev {
		next[n] = foldWeek(state, r, n)
	}
	return next, nil
}

func foldWeek(s model.State, r *Roster, nurse int) model.State {
	s, workedWeekend := foldDays(s, r, nurse, calendar.DaysPerWeek)
	if workedWeekend {
		s.TotalWeekends++
	}
	return s
}

// foldDays applies the first days of the week to s and reports whether a
// weekend day was worked
func foldDays(s model.State, r *Roster, nurse, days int) (model.State, bool) {
	workedWeekend := false

	for day := 0; day < days; day++ {
		a := r.AssignmentOf(nurse, day)

		if a.IsOff() {
			if s.IsWorking() {
				s.ConsDaysOff = 1
			} else {
				s.ConsDaysOff++
			}
			s.Shift = model.RestShift
			s.ConsShifts = 0
			s.ConsDaysWork = 0
			continue
		}

		if s.IsWorking() {
			s.ConsDaysWork++
		} else {
			s.ConsDaysWork = 1
		}
		if a.Shift == s.Shift {
			s.ConsShifts++
		} else {
			s.ConsShifts = 1
		}
		s.Shift = a.Shift
		s.ConsDaysOff = 0
		s.TotalAssignments++

		if calendar.IsWeekend(day) {
			workedWeekend = true
		}
	}

	return s, workedWeekend
}
