// Package modeltest builds small scenarios for tests of packages that consume the model.
package modeltest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// Shift and skill indices of the scenario returned by Scenario
const (
	Early = 0
	Late  = 1
	Night = 2

	HeadNurse = 0
	Nurse     = 1
)

// Nurse indices of the scenario returned by Scenario
const (
	Alice = 0 // FullTime, HeadNurse + Nurse
	Bob   = 1 // PartTime, Nurse
	Carol = 2 // FullTime, Nurse
)

// Config returns the static configuration of a four-week, three-nurse scenario.
//
// Shifts: Early (2-5), Late (2-5, no Early after), Night (4-5, no Early or Late after).
// FullTime: 10-18 shifts, 3-5 work days, 2-4 days off, 2 weekends, complete weekends.
// PartTime: 4-8 shifts, 2-4 work days, 3-5 days off, 1 weekend.
func Config(t testing.TB) model.ScenarioConfig {
	t.Helper()

	fullTime, err := model.NewContract("FullTime", model.Bounds{Min: 10, Max: 18}, model.Bounds{Min: 3, Max: 5}, model.Bounds{Min: 2, Max: 4}, 2, true)
	require.NoError(t, err)
	partTime, err := model.NewContract("PartTime", model.Bounds{Min: 4, Max: 8}, model.Bounds{Min: 2, Max: 4}, model.Bounds{Min: 3, Max: 5}, 1, false)
	require.NoError(t, err)

	skills := []string{"HeadNurse", "Nurse"}
	shiftNames := []string{"Early", "Late", "Night"}
	nurseNames := []string{"Alice", "Bob", "Carol"}

	return model.ScenarioConfig{
		Name:       "n003w4",
		NbWeeks:    4,
		Skills:     skills,
		SkillIndex: model.IndexNames(skills),
		Shifts: []model.ShiftType{
			{Name: "Early", MinConsecutive: 2, MaxConsecutive: 5},
			{Name: "Late", MinConsecutive: 2, MaxConsecutive: 5, ForbiddenSuccessors: []int{Early}},
			{Name: "Night", MinConsecutive: 4, MaxConsecutive: 5, ForbiddenSuccessors: []int{Early, Late}},
		},
		ShiftIndex: model.IndexNames(shiftNames),
		Contracts:  []model.Contract{fullTime, partTime},
		Nurses: []model.Nurse{
			{Name: "Alice", ContractIndex: 0, Skills: []int{HeadNurse, Nurse}},
			{Name: "Bob", ContractIndex: 1, Skills: []int{Nurse}},
			{Name: "Carol", ContractIndex: 0, Skills: []int{Nurse}},
		},
		NurseIndex: model.IndexNames(nurseNames),
	}
}

// Scenario returns the scenario of Config with no week loaded
func Scenario(t testing.TB) *model.Scenario {
	t.Helper()
	scn, err := model.NewScenario(Config(t))
	require.NoError(t, err)
	return scn
}

// Resting returns n states of nurses who had rest days before the week starts
func Resting(n, daysOff int) []model.State {
	states := make([]model.State, n)
	for i := range states {
		states[i] = model.State{Shift: model.RestShift, ConsDaysOff: daysOff}
	}
	return states
}

// Uniform returns a 7 x nbShifts x nbSkills demand tensor filled with value
func Uniform(nbShifts, nbSkills, value int) [][][]int {
	tensor := make([][][]int, 7)
	for day := range tensor {
		tensor[day] = make([][]int, nbShifts)
		for shift := range tensor[day] {
			tensor[day][shift] = make([]int, nbSkills)
			for skill := range tensor[day][shift] {
				tensor[day][shift][skill] = value
			}
		}
	}
	return tensor
}

// Week loads week index with the given history, zero demand and no preferences
func Week(t testing.TB, scn *model.Scenario, week int, history []model.State) {
	t.Helper()
	require.NoError(t, scn.SetHistoryState(history))
	require.NoError(t, scn.SetWeekIndex(week))
	zero := Uniform(scn.NbShifts(), scn.NbSkills(), 0)
	require.NoError(t, scn.SetDemand(zero, zero))
	require.NoError(t, scn.SetPreferences(model.NewPreferences()))
}
