package criteria

import (
	"fmt"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
)

// MinimumCoverageCriterion rejects a week where a (day, shift, skill) cell has
// fewer nurses than its minimum demand
type MinimumCoverageCriterion struct{}

// NewMinimumCoverageCriterion creates a new MinimumCoverageCriterion
func NewMinimumCoverageCriterion() *MinimumCoverageCriterion {
	return &MinimumCoverageCriterion{}
}

func (c *MinimumCoverageCriterion) Name() string {
	return "MinimumCoverage"
}

func (c *MinimumCoverageCriterion) IsHard() bool {
	return true
}

func (c *MinimumCoverageCriterion) Weight() int {
	return 0
}

func (c *MinimumCoverageCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	return coverageViolations(week, c.Name(), 0, week.Demand.Min)
}

// OptimalCoverageCriterion charges weight per nurse missing below the optimum
// demand of each (day, shift, skill) cell. Staffing above the optimum is free.
type OptimalCoverageCriterion struct {
	weight int
}

// NewOptimalCoverageCriterion creates a new OptimalCoverageCriterion with the given weight
func NewOptimalCoverageCriterion(weight int) *OptimalCoverageCriterion {
	return &OptimalCoverageCriterion{weight: weight}
}

func (c *OptimalCoverageCriterion) Name() string {
	return "OptimalCoverage"
}

func (c *OptimalCoverageCriterion) IsHard() bool {
	return false
}

func (c *OptimalCoverageCriterion) Weight() int {
	return c.weight
}

func (c *OptimalCoverageCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	return coverageViolations(week, c.Name(), c.weight, week.Demand.Opt)
}

func coverageViolations(week *evaluator.WeekState, name string, weight int, target func(day, shift, skill int) int) []evaluator.Violation {
	var violations []evaluator.Violation
	shifts := week.Scenario.Shifts()
	skills := week.Scenario.Skills()

	for day := 0; day < calendar.DaysPerWeek; day++ {
		for shift := 0; shift < week.Scenario.NbShifts(); shift++ {
			for skill := 0; skill < week.Scenario.NbSkills(); skill++ {
				want := target(day, shift, skill)
				got := week.Roster.Count(day, shift, skill)
				if got >= want {
					continue
				}
				violations = append(violations, evaluator.Violation{
					CriterionName: name,
					Nurse:         -1,
					Day:           day,
					Cost:          weight * (want - got),
					Description: fmt.Sprintf("%s %s needs %d %s, has %d",
						calendar.DayName(day), shifts.Name(shift), want, skills.Name(skill), got),
				})
			}
		}
	}

	return violations
}
