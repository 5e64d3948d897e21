package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
	mt "github.com/jakechorley/nurse-roster/pkg/core/model/modeltest"
)

func TestConsecutiveShiftsCriterion_Name(t *testing.T) {
	criterion := NewConsecutiveShiftsCriterion(15)
	assert.Equal(t, "ConsecutiveShifts", criterion.Name())
	assert.False(t, criterion.IsHard())
	assert.Equal(t, 15, criterion.Weight())
}

func TestConsecutiveShiftsCriterion_ShortRunInsideWeek(t *testing.T) {
	scn, r := newWeek(t, 0, mt.Resting(3, 2))
	work(t, r, mt.Carol, mt.Early)

	violations := NewConsecutiveShiftsCriterion(model.CostConsShifts).Validate(weekState(t, scn, r))

	require.Len(t, violations, 1)
	assert.Equal(t, mt.Carol, violations[0].Nurse)
	assert.Equal(t, 0, violations[0].Day)
	assert.Equal(t, 15, violations[0].Cost)
}

func TestConsecutiveShiftsCriterion_TrailingShortRunNotCharged(t *testing.T) {
	scn, r := newWeek(t, 0, mt.Resting(3, 2))
	work(t, r, mt.Carol, off, off, off, off, off, off, mt.Early)

	assert.Empty(t, NewConsecutiveShiftsCriterion(model.CostConsShifts).Validate(weekState(t, scn, r)))
}

func TestConsecutiveShiftsCriterion_RunContinuedFromHistory(t *testing.T) {
	history := mt.Resting(3, 2)
	history[mt.Carol] = model.State{Shift: mt.Night, ConsShifts: 4, ConsDaysWork: 4}
	scn, r := newWeek(t, 0, history)
	work(t, r, mt.Carol, mt.Night, mt.Night, mt.Night)

	violations := NewConsecutiveShiftsCriterion(model.CostConsShifts).Validate(weekState(t, scn, r))

	// Seven nights in a row with a maximum of five
	assert.Equal(t, 30, costOf(violations, mt.Carol))
}

func TestConsecutiveShiftsCriterion_HistoryRunEndingAtBorder(t *testing.T) {
	history := mt.Resting(3, 2)
	history[mt.Alice] = model.State{Shift: mt.Late, ConsShifts: 1, ConsDaysWork: 1}
	scn, r := newWeek(t, 0, history)

	violations := NewConsecutiveShiftsCriterion(model.CostConsShifts).Validate(weekState(t, scn, r))

	require.Len(t, violations, 1)
	assert.Equal(t, mt.Alice, violations[0].Nurse)
	assert.Equal(t, -1, violations[0].Day)
	assert.Equal(t, 15, violations[0].Cost)
}

func TestConsecutiveWorkDaysCriterion_Validate(t *testing.T) {
	scn, r := newWeek(t, 0, mt.Resting(3, 2))
	// FullTime allows 3 to 5 consecutive working days
	work(t, r, mt.Carol, mt.Early, mt.Early)
	work(t, r, mt.Alice, mt.Early, mt.Early, mt.Early, mt.Early, mt.Early, mt.Early, mt.Early)

	criterion := NewConsecutiveWorkDaysCriterion(model.CostConsDaysWork)
	assert.Equal(t, "ConsecutiveWorkDays", criterion.Name())

	violations := criterion.Validate(weekState(t, scn, r))

	assert.Equal(t, 30, costOf(violations, mt.Carol))
	assert.Equal(t, 60, costOf(violations, mt.Alice))
	assert.Equal(t, 0, costOf(violations, mt.Bob))
}

func TestConsecutiveWorkDaysCriterion_HistoryRunEndingAtBorder(t *testing.T) {
	history := mt.Resting(3, 2)
	history[mt.Bob] = model.State{Shift: mt.Early, ConsShifts: 1, ConsDaysWork: 1}
	scn, r := newWeek(t, 0, history)

	violations := NewConsecutiveWorkDaysCriterion(model.CostConsDaysWork).Validate(weekState(t, scn, r))

	// PartTime requires at least 2 consecutive working days
	assert.Equal(t, 30, costOf(violations, mt.Bob))
}

func TestConsecutiveDaysOffCriterion_Validate(t *testing.T) {
	scn, r := newWeek(t, 0, mt.Resting(3, 2))
	// PartTime allows 3 to 5 days off: 2 before Monday is short, 6 after is long
	work(t, r, mt.Bob, mt.Early)
	// FullTime allows 2 to 4 days off: a single day off on Thursday is short
	work(t, r, mt.Alice, mt.Early, mt.Early, mt.Early, off, mt.Early, mt.Early, mt.Early)
	work(t, r, mt.Carol, mt.Early, mt.Early, mt.Early, mt.Early, mt.Early, mt.Early, mt.Early)

	criterion := NewConsecutiveDaysOffCriterion(model.CostConsDaysOff)
	assert.Equal(t, "ConsecutiveDaysOff", criterion.Name())

	violations := criterion.Validate(weekState(t, scn, r))

	assert.Equal(t, 60, costOf(violations, mt.Bob))
	assert.Equal(t, 30, costOf(violations, mt.Alice))
	assert.Equal(t, 0, costOf(violations, mt.Carol))
}
