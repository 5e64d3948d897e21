package criteria

import (
	"fmt"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// ForbiddenSuccessionCriterion rejects a shift worked the day after a shift that forbids it.
//
// Validity:
//   - The last shift of the history counts as the day before day 0
//   - Days off never break a succession
type ForbiddenSuccessionCriterion struct{}

// NewForbiddenSuccessionCriterion creates a new ForbiddenSuccessionCriterion
func NewForbiddenSuccessionCriterion() *ForbiddenSuccessionCriterion {
	return &ForbiddenSuccessionCriterion{}
}

func (c *ForbiddenSuccessionCriterion) Name() string {
	return "ForbiddenSuccession"
}

func (c *ForbiddenSuccessionCriterion) IsHard() bool {
	return true
}

func (c *ForbiddenSuccessionCriterion) Weight() int {
	return 0
}

func (c *ForbiddenSuccessionCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	var violations []evaluator.Violation
	shifts := week.Scenario.Shifts()

	for nurse := 0; nurse < week.Scenario.NbNurses(); nurse++ {
		prev := model.RestShift
		if nurse < len(week.History) {
			prev = week.History[nurse].Shift
		}

		for day, next := range week.ShiftsOf(nurse) {
			if !shifts.IsLegalSuccessor(prev, next) {
				previousDay := "last week"
				if day > 0 {
					previousDay = calendar.DayName(day - 1)
				}
				violations = append(violations, evaluator.Violation{
					CriterionName: c.Name(),
					Nurse:         nurse,
					Day:           day,
					Description: fmt.Sprintf("%s works %s on %s after %s on %s",
						week.NurseName(nurse), shifts.Name(next), calendar.DayName(day), shifts.Name(prev), previousDay),
				})
			}
			prev = next
		}
	}

	return violations
}
