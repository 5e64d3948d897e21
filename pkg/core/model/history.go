package model

import (
	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

// State is one nurse's status at a week boundary
type State struct {
	// Shift is the last shift worked, RestShift if the last day was a day off
	Shift int

	// ConsShifts is the length of the current run of Shift (0 when resting)
	ConsShifts int

	// ConsDaysWork is the length of the current run of worked days
	ConsDaysWork int

	// ConsDaysOff is the length of the current run of days off
	ConsDaysOff int

	// TotalAssignments is the number of shifts worked since the start of the horizon
	TotalAssignments int

	// TotalWeekends is the number of weekends worked since the start of the horizon
	TotalWeekends int
}

// IsWorking reports whether the nurse worked on the last day before the boundary
func (s State) IsWorking() bool {
	return s.Shift != RestShift
}

// validate checks the state against the shift catalogue. Contract bounds are
// not checked, exceeding them is a soft violation.
func (s State) validate(shifts *ShiftCatalogue, source string) error {
	if !shifts.IsValid(s.Shift) {
		return errs.InvalidConfiguration(source, "unknown last shift %d", s.Shift)
	}
	if s.ConsShifts < 0 || s.ConsDaysWork < 0 || s.ConsDaysOff < 0 {
		return errs.InvalidConfiguration(source, "negative run length (%d,%d,%d)", s.ConsShifts, s.ConsDaysWork, s.ConsDaysOff)
	}
	if s.TotalAssignments < 0 || s.TotalWeekends < 0 {
		return errs.InvalidConfiguration(source, "negative totals (%d,%d)", s.TotalAssignments, s.TotalWeekends)
	}
	return nil
}
