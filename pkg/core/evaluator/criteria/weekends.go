package criteria

import (
	"fmt"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
)

// CompleteWeekendCriterion charges weight when a nurse whose contract asks for
// complete weekends works exactly one of Saturday and Sunday
type CompleteWeekendCriterion struct {
	weight int
}

// NewCompleteWeekendCriterion creates a new CompleteWeekendCriterion with the given weight
func NewCompleteWeekendCriterion(weight int) *CompleteWeekendCriterion {
	return &CompleteWeekendCriterion{weight: weight}
}

func (c *CompleteWeekendCriterion) Name() string {
	return "CompleteWeekend"
}

func (c *CompleteWeekendCriterion) IsHard() bool {
	return false
}

func (c *CompleteWeekendCriterion) Weight() int {
	return c.weight
}

func (c *CompleteWeekendCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	var violations []evaluator.Violation

	for nurse := 0; nurse < week.Scenario.NbNurses(); nurse++ {
		if !week.Scenario.IsCompleteWeekendsOf(nurse) {
			continue
		}
		saturday := week.Roster.Works(nurse, calendar.Saturday)
		sunday := week.Roster.Works(nurse, calendar.Sunday)
		if saturday == sunday {
			continue
		}

		day := calendar.Saturday
		if sunday {
			day = calendar.Sunday
		}
		violations = append(violations, evaluator.Violation{
			CriterionName: c.Name(),
			Nurse:         nurse,
			Day:           day,
			Cost:          c.weight,
			Description:   fmt.Sprintf("%s works only %s of the weekend", week.NurseName(nurse), calendar.DayName(day)),
		})
	}

	return violations
}

// TotalWeekendsCriterion charges weight per worked weekend above the contract
// maximum over the whole horizon. It only reports on the last week.
type TotalWeekendsCriterion struct {
	weight int
}

// NewTotalWeekendsCriterion creates a new TotalWeekendsCriterion with the given weight
func NewTotalWeekendsCriterion(weight int) *TotalWeekendsCriterion {
	return &TotalWeekendsCriterion{weight: weight}
}

func (c *TotalWeekendsCriterion) Name() string {
	return "TotalWeekends"
}

func (c *TotalWeekendsCriterion) IsHard() bool {
	return false
}

func (c *TotalWeekendsCriterion) Weight() int {
	return c.weight
}

func (c *TotalWeekendsCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	if !week.LastWeek {
		return nil
	}

	var violations []evaluator.Violation
	for nurse := 0; nurse < week.Scenario.NbNurses(); nurse++ {
		total := historyOf(week, nurse).TotalWeekends
		if week.WorksWeekend(nurse) {
			total++
		}
		max := week.Scenario.MaxTotalWeekendsOf(nurse)
		if total <= max {
			continue
		}
		violations = append(violations, evaluator.Violation{
			CriterionName: c.Name(),
			Nurse:         nurse,
			Day:           -1,
			Cost:          c.weight * (total - max),
			Description:   fmt.Sprintf("%s worked %d weekends, maximum %d", week.NurseName(nurse), total, max),
		})
	}

	return violations
}
