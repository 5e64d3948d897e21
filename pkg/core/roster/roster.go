package roster

import (
	"sort"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/errs"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// NoSkill is the skill of a day off
const NoSkill = -1

// Assignment is what one nurse does on one day
type Assignment struct {
	Shift int
	Skill int
}

// Off is the assignment of a day off
var Off = Assignment{Shift: model.RestShift, Skill: NoSkill}

// IsOff reports whether the assignment is a day off
func (a Assignment) IsOff() bool {
	return a.Shift == model.RestShift
}

// Entry is one worked (nurse, day) cell of a roster
type Entry struct {
	Nurse int
	Day   int
	Assignment
}

// Roster is the solved schedule of one week: one assignment per nurse per day.
// Every cell starts as a day off.
type Roster struct {
	nbShifts int
	nbSkills int
	cells    [][calendar.DaysPerWeek]Assignment
}

// New returns an empty roster sized for scn
func New(scn *model.Scenario) *Roster {
	cells := make([][calendar.DaysPerWeek]Assignment, scn.NbNurses())
	for n := range cells {
		for d := range cells[n] {
			cells[n][d] = Off
		}
	}
	return &Roster{
		nbShifts: scn.NbShifts(),
		nbSkills: scn.NbSkills(),
		cells:    cells,
	}
}

func (r *Roster) NbNurses() int {
	return len(r.cells)
}

func (r *Roster) checkCell(nurse, day int) error {
	if nurse < 0 || nurse >= len(r.cells) {
		return errs.New(errs.ErrInvalidArgument, "roster", "nurse %d out of range [0,%d)", nurse, len(r.cells))
	}
	if day < 0 || day >= calendar.DaysPerWeek {
		return errs.New(errs.ErrInvalidArgument, "roster", "day %d out of range [0,%d)", day, calendar.DaysPerWeek)
	}
	return nil
}

// Assign puts nurse on shift with skill on day, replacing any previous assignment.
// Assigning model.RestShift is the same as Unassign.
func (r *Roster) Assign(nurse, day, shift, skill int) error {
	if err := r.checkCell(nurse, day); err != nil {
		return err
	}
	if shift == model.RestShift {
		r.cells[nurse][day] = Off
		return nil
	}
	if shift < 0 || shift >= r.nbShifts {
		return errs.New(errs.ErrInvalidArgument, "roster", "shift %d out of range [0,%d)", shift, r.nbShifts)
	}
	if skill < 0 || skill >= r.nbSkills {
		return errs.New(errs.ErrInvalidArgument, "roster", "skill %d out of range [0,%d)", skill, r.nbSkills)
	}
	r.cells[nurse][day] = Assignment{Shift: shift, Skill: skill}
	return nil
}

// Unassign gives nurse the day off
func (r *Roster) Unassign(nurse, day int) error {
	if err := r.checkCell(nurse, day); err != nil {
		return err
	}
	r.cells[nurse][day] = Off
	return nil
}

// AssignmentOf returns what nurse does on day. Out of range cells are days off.
func (r *Roster) AssignmentOf(nurse, day int) Assignment {
	if r.checkCell(nurse, day) != nil {
		return Off
	}
	return r.cells[nurse][day]
}

// Works reports whether nurse works on day
func (r *Roster) Works(nurse, day int) bool {
	return !r.AssignmentOf(nurse, day).IsOff()
}

// Count returns how many nurses work shift on day with skill
func (r *Roster) Count(day, shift, skill int) int {
	count := 0
	for n := range r.cells {
		if r.cells[n][day] == (Assignment{Shift: shift, Skill: skill}) {
			count++
		}
	}
	return count
}

// Entries returns the worked cells ordered by nurse then day
func (r *Roster) Entries() []Entry {
	var entries []Entry
	for n := range r.cells {
		for d, a := range r.cells[n] {
			if !a.IsOff() {
				entries = append(entries, Entry{Nurse: n, Day: d, Assignment: a})
			}
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Nurse != entries[j].Nurse {
			return entries[i].Nurse < entries[j].Nurse
		}
		return entries[i].Day < entries[j].Day
	})
	return entries
}
