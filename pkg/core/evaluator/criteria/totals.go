package criteria

import (
	"fmt"

	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
)

// TotalAssignmentsCriterion charges weight per assignment below or above the
// contract's total bounds over the whole horizon. It only reports on the last week.
type TotalAssignmentsCriterion struct {
	weight int
}

// NewTotalAssignmentsCriterion creates a new TotalAssignmentsCriterion with the given weight
func NewTotalAssignmentsCriterion(weight int) *TotalAssignmentsCriterion {
	return &TotalAssignmentsCriterion{weight: weight}
}

func (c *TotalAssignmentsCriterion) Name() string {
	return "TotalAssignments"
}

func (c *TotalAssignmentsCriterion) IsHard() bool {
	return false
}

func (c *TotalAssignmentsCriterion) Weight() int {
	return c.weight
}

func (c *TotalAssignmentsCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	if !week.LastWeek {
		return nil
	}

	var violations []evaluator.Violation
	for nurse := 0; nurse < week.Scenario.NbNurses(); nurse++ {
		total := historyOf(week, nurse).TotalAssignments + week.WorkedDays(nurse)
		min := week.Scenario.MinTotalShiftsOf(nurse)
		max := week.Scenario.MaxTotalShiftsOf(nurse)

		var units int
		switch {
		case total < min:
			units = min - total
		case total > max:
			units = total - max
		default:
			continue
		}

		violations = append(violations, evaluator.Violation{
			CriterionName: c.Name(),
			Nurse:         nurse,
			Day:           -1,
			Cost:          c.weight * units,
			Description:   fmt.Sprintf("%s worked %d shifts, bounds (%d,%d)", week.NurseName(nurse), total, min, max),
		})
	}

	return violations
}
