package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/nurse-roster/pkg/core/errs"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	mt "github.com/jakechorley/nurse-roster/pkg/core/model/modeltest"
)

func assign(t *testing.T, r *Roster, nurse int, shifts ...int) {
	t.Helper()
	for day, shift := range shifts {
		require.NoError(t, r.Assign(nurse, day, shift, mt.Nurse))
	}
}

func TestAdvanceHistory_ShiftRunAndWorkRun(t *testing.T) {
	scn := mt.Scenario(t)
	r := New(scn)
	assign(t, r, mt.Bob, mt.Early, mt.Early, mt.Late)

	prev := mt.Resting(3, 2)

	// Same shift on two consecutive days
	state, _ := foldDays(prev[mt.Bob], r, mt.Bob, 2)
	assert.Equal(t, mt.Early, state.Shift)
	assert.Equal(t, 2, state.ConsShifts)
	assert.Equal(t, 2, state.ConsDaysWork)

	// A different shift on the third day restarts the shift run only
	state, _ = foldDays(prev[mt.Bob], r, mt.Bob, 3)
	assert.Equal(t, mt.Late, state.Shift)
	assert.Equal(t, 1, state.ConsShifts)
	assert.Equal(t, 3, state.ConsDaysWork)
	assert.Equal(t, 0, state.ConsDaysOff)

	next, err := AdvanceHistory(scn, prev, r)
	require.NoError(t, err)
	assert.Equal(t, model.State{
		Shift:            model.RestShift,
		ConsShifts:       0,
		ConsDaysWork:     0,
		ConsDaysOff:      4,
		TotalAssignments: 3,
		TotalWeekends:    0,
	}, next[mt.Bob])
}

func TestAdvanceHistory_ContinuesRunsFromHistory(t *testing.T) {
	scn := mt.Scenario(t)
	r := New(scn)
	assign(t, r, mt.Alice, mt.Night, mt.Night, mt.Night, mt.Night, mt.Night, mt.Night, mt.Night)

	prev := mt.Resting(3, 3)
	prev[mt.Alice] = model.State{Shift: mt.Night, ConsShifts: 2, ConsDaysWork: 4, TotalAssignments: 11, TotalWeekends: 1}

	next, err := AdvanceHistory(scn, prev, r)
	require.NoError(t, err)
	assert.Equal(t, model.State{
		Shift:            mt.Night,
		ConsShifts:       9,
		ConsDaysWork:     11,
		ConsDaysOff:      0,
		TotalAssignments: 18,
		TotalWeekends:    2,
	}, next[mt.Alice])

	// Nurses who never worked keep extending their off run
	assert.Equal(t, model.State{Shift: model.RestShift, ConsDaysOff: 10}, next[mt.Carol])
}

func TestAdvanceHistory_WorkRunResetsAfterDayOff(t *testing.T) {
	scn := mt.Scenario(t)
	r := New(scn)
	assign(t, r, mt.Carol, mt.Early, mt.Early, model.RestShift, mt.Late, mt.Late, model.RestShift, mt.Late)

	prev := mt.Resting(3, 0)
	prev[mt.Carol] = model.State{Shift: mt.Late, ConsShifts: 5, ConsDaysWork: 5}

	next, err := AdvanceHistory(scn, prev, r)
	require.NoError(t, err)

	got := next[mt.Carol]
	assert.Equal(t, mt.Late, got.Shift)
	assert.Equal(t, 1, got.ConsShifts)
	assert.Equal(t, 1, got.ConsDaysWork)
	assert.Equal(t, 0, got.ConsDaysOff)
	assert.Equal(t, 5, got.TotalAssignments)
	assert.Equal(t, 1, got.TotalWeekends)
}

func TestAdvanceHistory_WeekendCountedOnce(t *testing.T) {
	scn := mt.Scenario(t)
	r := New(scn)
	require.NoError(t, r.Assign(mt.Bob, 5, mt.Early, mt.Nurse))
	require.NoError(t, r.Assign(mt.Bob, 6, mt.Early, mt.Nurse))
	require.NoError(t, r.Assign(mt.Carol, 6, mt.Late, mt.Nurse))

	next, err := AdvanceHistory(scn, mt.Resting(3, 2), r)
	require.NoError(t, err)

	assert.Equal(t, 1, next[mt.Bob].TotalWeekends)
	assert.Equal(t, 1, next[mt.Carol].TotalWeekends)
	assert.Equal(t, 0, next[mt.Alice].TotalWeekends)
}

func TestAdvanceHistory_DoesNotModifyInput(t *testing.T) {
	scn := mt.Scenario(t)
	r := New(scn)
	assign(t, r, mt.Alice, mt.Early)

	prev := mt.Resting(3, 2)
	_, err := AdvanceHistory(scn, prev, r)
	require.NoError(t, err)
	assert.Equal(t, mt.Resting(3, 2), prev)
}

func TestAdvanceHistory_SizeMismatch(t *testing.T) {
	scn := mt.Scenario(t)

	_, err := AdvanceHistory(scn, mt.Resting(2, 0), New(scn))
	assert.True(t, errors.Is(err, errs.ErrInvalidConfiguration))
}
