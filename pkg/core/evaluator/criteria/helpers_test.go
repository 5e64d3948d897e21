package criteria

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	mt "github.com/jakechorley/nurse-roster/pkg/core/model/modeltest"
	"github.com/jakechorley/nurse-roster/pkg/core/roster"
)

// newWeek loads week of the test scenario with history and returns an empty roster for it
func newWeek(t *testing.T, week int, history []model.State) (*model.Scenario, *roster.Roster) {
	t.Helper()
	scn := mt.Scenario(t)
	mt.Week(t, scn, week, history)
	return scn, roster.New(scn)
}

// work assigns nurse with the Nurse skill; model.RestShift leaves the day off
func work(t *testing.T, r *roster.Roster, nurse int, shifts ...int) {
	t.Helper()
	for day, shift := range shifts {
		require.NoError(t, r.Assign(nurse, day, shift, mt.Nurse))
	}
}

func weekState(t *testing.T, scn *model.Scenario, r *roster.Roster) *evaluator.WeekState {
	t.Helper()
	ws, err := evaluator.NewWeekState(scn, r)
	require.NoError(t, err)
	return ws
}

// costOf sums the cost of the violations concerning nurse
func costOf(violations []evaluator.Violation, nurse int) int {
	cost := 0
	for _, v := range violations {
		if v.Nurse == nurse {
			cost += v.Cost
		}
	}
	return cost
}

const off = model.RestShift
