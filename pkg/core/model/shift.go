package model

import (
	"slices"

	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

// RestShift is the shift index of a day off
const RestShift = -1

// RestShiftName is how a day off is written in instance files
const RestShiftName = "None"

// ShiftType describes one kind of duty
type ShiftType struct {
	Name string

	// MinConsecutive and MaxConsecutive bound how many days in a row this shift
	// should be worked. They are soft bounds.
	MinConsecutive int
	MaxConsecutive int

	// ForbiddenSuccessors are the shift indices that may not be worked on the day
	// immediately after this shift
	ForbiddenSuccessors []int
}

// ShiftCatalogue is the fixed set of shift types of a scenario
type ShiftCatalogue struct {
	names  NameIndex
	shifts []ShiftType
}

// NewShiftCatalogue validates the shift types against the name index.
//
// Returns InvalidConfiguration if:
//   - names and index are not a bijection, or do not match the shift names
//   - a consecutive bound is negative or min > max
//   - a forbidden successor is out of range or repeated
//   - a shift forbids itself while requiring runs longer than one day
func NewShiftCatalogue(shifts []ShiftType, index map[string]int) (*ShiftCatalogue, error) {
	names := make([]string, len(shifts))
	for i, shift := range shifts {
		names[i] = shift.Name
	}

	nameIndex, err := NewNameIndex("shift", names, index)
	if err != nil {
		return nil, err
	}

	owned := make([]ShiftType, len(shifts))
	for i, shift := range shifts {
		if shift.MinConsecutive < 0 || shift.MaxConsecutive < 0 {
			return nil, errs.InvalidConfiguration("shift "+shift.Name, "negative consecutive bound (%d,%d)", shift.MinConsecutive, shift.MaxConsecutive)
		}
		if shift.MinConsecutive > shift.MaxConsecutive {
			return nil, errs.InvalidConfiguration("shift "+shift.Name, "min consecutive %d greater than max %d", shift.MinConsecutive, shift.MaxConsecutive)
		}

		seen := make(map[int]bool, len(shift.ForbiddenSuccessors))
		for _, succ := range shift.ForbiddenSuccessors {
			if succ < 0 || succ >= len(shifts) {
				return nil, errs.InvalidConfiguration("shift "+shift.Name, "forbidden successor %d out of range [0,%d)", succ, len(shifts))
			}
			if seen[succ] {
				return nil, errs.InvalidConfiguration("shift "+shift.Name, "forbidden successor %s listed twice", shifts[succ].Name)
			}
			seen[succ] = true
		}
		if seen[i] && shift.MinConsecutive > 1 {
			return nil, errs.InvalidConfiguration("shift "+shift.Name, "forbids itself but requires at least %d consecutive days", shift.MinConsecutive)
		}

		owned[i] = ShiftType{
			Name:                shift.Name,
			MinConsecutive:      shift.MinConsecutive,
			MaxConsecutive:      shift.MaxConsecutive,
			ForbiddenSuccessors: slices.Clone(shift.ForbiddenSuccessors),
		}
	}

	return &ShiftCatalogue{names: nameIndex, shifts: owned}, nil
}

// Len returns the number of shift types (the rest shift is not counted)
func (c *ShiftCatalogue) Len() int {
	return len(c.shifts)
}

// Names returns the name index of the catalogue
func (c *ShiftCatalogue) Names() NameIndex {
	return c.names
}

// Name returns the name of shift, RestShiftName for RestShift
func (c *ShiftCatalogue) Name(shift int) string {
	if shift == RestShift {
		return RestShiftName
	}
	return c.shifts[shift].Name
}

// Index resolves a shift name, including RestShiftName
func (c *ShiftCatalogue) Index(name string) (int, bool) {
	if name == RestShiftName {
		return RestShift, true
	}
	return c.names.Index(name)
}

// Shift returns a copy of the shift type at index shift
func (c *ShiftCatalogue) Shift(shift int) ShiftType {
	st := c.shifts[shift]
	st.ForbiddenSuccessors = slices.Clone(st.ForbiddenSuccessors)
	return st
}

func (c *ShiftCatalogue) MinConsecutive(shift int) int {
	return c.shifts[shift].MinConsecutive
}

func (c *ShiftCatalogue) MaxConsecutive(shift int) int {
	return c.shifts[shift].MaxConsecutive
}

// ForbiddenSuccessors returns a copy of the forbidden successors of shift
func (c *ShiftCatalogue) ForbiddenSuccessors(shift int) []int {
	return slices.Clone(c.shifts[shift].ForbiddenSuccessors)
}

// IsLegalSuccessor reports whether next may be worked the day after prev.
// It is false if next is a forbidden successor of prev or either index is
// outside the catalogue. Days off are always legal on either side.
func (c *ShiftCatalogue) IsLegalSuccessor(prev, next int) bool {
	if prev == RestShift || next == RestShift {
		return true
	}
	if !c.names.contains(prev) || !c.names.contains(next) {
		return false
	}
	return !slices.Contains(c.shifts[prev].ForbiddenSuccessors, next)
}

// IsValid reports whether shift is a catalogue index or RestShift
func (c *ShiftCatalogue) IsValid(shift int) bool {
	return shift == RestShift || c.names.contains(shift)
}
