package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	early = 0
	late  = 1
	night = 2

	headNurse = 0
	nurse     = 1
)

func testShifts() []ShiftType {
	return []ShiftType{
		{Name: "Early", MinConsecutive: 2, MaxConsecutive: 5},
		{Name: "Late", MinConsecutive: 2, MaxConsecutive: 5, ForbiddenSuccessors: []int{early}},
		{Name: "Night", MinConsecutive: 4, MaxConsecutive: 5, ForbiddenSuccessors: []int{early, late}},
	}
}

func testContract(t *testing.T, name string) Contract {
	t.Helper()
	contract, err := NewContract(name, Bounds{Min: 10, Max: 18}, Bounds{Min: 3, Max: 5}, Bounds{Min: 2, Max: 4}, 2, true)
	require.NoError(t, err)
	return contract
}

func testConfig(t *testing.T) ScenarioConfig {
	t.Helper()

	skills := []string{"HeadNurse", "Nurse"}
	shifts := testShifts()
	shiftNames := []string{"Early", "Late", "Night"}

	fullTime := testContract(t, "FullTime")
	partTime, err := NewContract("PartTime", Bounds{Min: 4, Max: 8}, Bounds{Min: 2, Max: 4}, Bounds{Min: 3, Max: 5}, 1, false)
	require.NoError(t, err)

	nurses := []Nurse{
		{Name: "Alice", ContractIndex: 0, Skills: []int{headNurse, nurse}},
		{Name: "Bob", ContractIndex: 1, Skills: []int{nurse}},
		{Name: "Carol", ContractIndex: 0, Skills: []int{nurse}},
	}

	return ScenarioConfig{
		Name:       "n003w4",
		NbWeeks:    4,
		Skills:     skills,
		SkillIndex: IndexNames(skills),
		Shifts:     shifts,
		ShiftIndex: IndexNames(shiftNames),
		Contracts:  []Contract{fullTime, partTime},
		Nurses:     nurses,
		NurseIndex: IndexNames([]string{"Alice", "Bob", "Carol"}),
	}
}

func testScenario(t *testing.T) *Scenario {
	t.Helper()
	scn, err := NewScenario(testConfig(t))
	require.NoError(t, err)
	return scn
}

func restingHistory(n int) []State {
	states := make([]State, n)
	for i := range states {
		states[i] = State{Shift: RestShift, ConsDaysOff: 2}
	}
	return states
}

// uniformDemand builds a 7 x shifts x skills tensor filled with value
func uniformDemand(nbShifts, nbSkills, value int) [][][]int {
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
