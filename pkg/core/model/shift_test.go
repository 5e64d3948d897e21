package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

func TestShiftCatalogue_IsLegalSuccessor(t *testing.T) {
	shifts := testShifts()
	catalogue, err := NewShiftCatalogue(shifts, IndexNames([]string{"Early", "Late", "Night"}))
	require.NoError(t, err)

	for prev := range shifts {
		forbidden := make(map[int]bool)
		for _, succ := range shifts[prev].ForbiddenSuccessors {
			forbidden[succ] = true
		}
		for next := range shifts {
			assert.Equal(t, !forbidden[next], catalogue.IsLegalSuccessor(prev, next), "%s -> %s", shifts[prev].Name, shifts[next].Name)
		}
	}
}

func TestShiftCatalogue_RestIsAlwaysLegal(t *testing.T) {
	catalogue, err := NewShiftCatalogue(testShifts(), IndexNames([]string{"Early", "Late", "Night"}))
	require.NoError(t, err)

	for shift := 0; shift < catalogue.Len(); shift++ {
		assert.True(t, catalogue.IsLegalSuccessor(RestShift, shift))
		assert.True(t, catalogue.IsLegalSuccessor(shift, RestShift))
	}
}

func TestShiftCatalogue_OutOfRangeIsIllegal(t *testing.T) {
	catalogue, err := NewShiftCatalogue(testShifts(), IndexNames([]string{"Early", "Late", "Night"}))
	require.NoError(t, err)

	tests := []struct {
		name       string
		prev, next int
		want       bool
	}{
		{name: "prev past the end", prev: 3, next: 0},
		{name: "prev far out of range", prev: 99, next: 1},
		{name: "negative prev", prev: -5, next: 0},
		{name: "next past the end", prev: 0, next: 3},
		{name: "negative next", prev: 1, next: -2},
		{name: "rest before unknown", prev: RestShift, next: 99, want: true},
		{name: "unknown before rest", prev: 99, next: RestShift, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, catalogue.IsLegalSuccessor(tt.prev, tt.next))
			})
		})
	}
}

func TestShiftCatalogue_SameShiftLegalUnlessForbidden(t *testing.T) {
	shifts := []ShiftType{
		{Name: "Day", MinConsecutive: 1, MaxConsecutive: 3},
		{Name: "Split", MinConsecutive: 1, MaxConsecutive: 1, ForbiddenSuccessors: []int{1}},
	}
	catalogue, err := NewShiftCatalogue(shifts, IndexNames([]string{"Day", "Split"}))
	require.NoError(t, err)

	assert.True(t, catalogue.IsLegalSuccessor(0, 0))
	assert.False(t, catalogue.IsLegalSuccessor(1, 1))
}

func TestShiftCatalogue_Names(t *testing.T) {
	catalogue, err := NewShiftCatalogue(testShifts(), IndexNames([]string{"Early", "Late", "Night"}))
	require.NoError(t, err)

	assert.Equal(t, "Late", catalogue.Name(late))
	assert.Equal(t, RestShiftName, catalogue.Name(RestShift))

	idx, ok := catalogue.Index("None")
	assert.True(t, ok)
	assert.Equal(t, RestShift, idx)

	idx, ok = catalogue.Index("Night")
	assert.True(t, ok)
	assert.Equal(t, night, idx)

	_, ok = catalogue.Index("Afternoon")
	assert.False(t, ok)

	assert.True(t, catalogue.IsValid(RestShift))
	assert.True(t, catalogue.IsValid(night))
	assert.False(t, catalogue.IsValid(3))
	assert.False(t, catalogue.IsValid(-2))
}

func TestShiftCatalogue_AccessorsReturnCopies(t *testing.T) {
	catalogue, err := NewShiftCatalogue(testShifts(), IndexNames([]string{"Early", "Late", "Night"}))
	require.NoError(t, err)

	succ := catalogue.ForbiddenSuccessors(night)
	succ[0] = night
	assert.Equal(t, []int{early, late}, catalogue.ForbiddenSuccessors(night))

	shift := catalogue.Shift(late)
	shift.ForbiddenSuccessors[0] = late
	assert.False(t, catalogue.IsLegalSuccessor(late, early))
	assert.Equal(t, 4, catalogue.MinConsecutive(night))
	assert.Equal(t, 5, catalogue.MaxConsecutive(night))
}

func TestNewShiftCatalogue_Invalid(t *testing.T) {
	names := IndexNames([]string{"Early", "Late"})

	tests := []struct {
		name   string
		shifts []ShiftType
		index  map[string]int
	}{
		{
			name:   "min greater than max",
			shifts: []ShiftType{{Name: "Early", MinConsecutive: 4, MaxConsecutive: 2}, {Name: "Late", MaxConsecutive: 1}},
			index:  names,
		},
		{
			name:   "negative bound",
			shifts: []ShiftType{{Name: "Early", MinConsecutive: -1, MaxConsecutive: 2}, {Name: "Late", MaxConsecutive: 1}},
			index:  names,
		},
		{
			name:   "successor out of range",
			shifts: []ShiftType{{Name: "Early", MaxConsecutive: 2, ForbiddenSuccessors: []int{2}}, {Name: "Late", MaxConsecutive: 1}},
			index:  names,
		},
		{
			name:   "successor repeated",
			shifts: []ShiftType{{Name: "Early", MaxConsecutive: 2, ForbiddenSuccessors: []int{1, 1}}, {Name: "Late", MaxConsecutive: 1}},
			index:  names,
		},
		{
			name:   "self forbidden with minimum run above one",
			shifts: []ShiftType{{Name: "Early", MinConsecutive: 2, MaxConsecutive: 3, ForbiddenSuccessors: []int{0}}, {Name: "Late", MaxConsecutive: 1}},
			index:  names,
		},
		{
			name:   "index not a bijection",
			shifts: []ShiftType{{Name: "Early", MaxConsecutive: 2}, {Name: "Late", MaxConsecutive: 1}},
			index:  map[string]int{"Early": 1, "Late": 0},
		},
		{
			name:   "index size mismatch",
			shifts: []ShiftType{{Name: "Early", MaxConsecutive: 2}, {Name: "Late", MaxConsecutive: 1}},
			index:  map[string]int{"Early": 0},
		},
		{
			name:   "duplicate shift name",
			shifts: []ShiftType{{Name: "Early", MaxConsecutive: 2}, {Name: "Early", MaxConsecutive: 1}},
			index:  map[string]int{"Early": 1, "Late": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShiftCatalogue(tt.shifts, tt.index)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrInvalidConfiguration))
		})
	}
}

func TestCostConstants(t *testing.T) {
	assert.Equal(t, 15, CostConsShifts)
	assert.Equal(t, 30, CostConsDaysWork)
	assert.Equal(t, 30, CostConsDaysOff)
	assert.Equal(t, 10, CostPreferences)
	assert.Equal(t, 30, CostCompleteWeekend)
	assert.Equal(t, 20, CostTotalShifts)
	assert.Equal(t, 30, CostTotalWeekends)
}
