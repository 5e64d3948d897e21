package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
	mt "github.com/jakechorley/nurse-roster/pkg/core/model/modeltest"
)

func TestSortedCosts(t *testing.T) {
	report := evaluator.Report{
		Soft: []evaluator.Violation{
			{CriterionName: "Preferences", Cost: 10},
			{CriterionName: "OptimalCoverage", Cost: 30},
			{CriterionName: "Preferences", Cost: 10},
			{CriterionName: "ConsecutiveShifts", Cost: 15},
			{CriterionName: "CompleteWeekend", Cost: 20},
		},
	}

	costs := sortedCosts(report)

	assert.Equal(t, []criterionCost{
		{name: "OptimalCoverage", cost: 30},
		{name: "CompleteWeekend", cost: 20},
		{name: "Preferences", cost: 20},
		{name: "ConsecutiveShifts", cost: 15},
	}, costs)
}

func TestViolationLocation(t *testing.T) {
	scn := mt.Scenario(t)

	assert.Equal(t, "Bob Tue", violationLocation(scn, evaluator.Violation{Nurse: mt.Bob, Day: 1}))
	assert.Equal(t, "Carol", violationLocation(scn, evaluator.Violation{Nurse: mt.Carol, Day: -1}))
	assert.Equal(t, "coverage Sun", violationLocation(scn, evaluator.Violation{Nurse: -1, Day: 6}))
}
