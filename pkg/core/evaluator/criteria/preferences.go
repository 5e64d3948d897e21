package criteria

import (
	"fmt"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
)

// PreferencesCriterion charges weight per shift-off request that the roster ignores
type PreferencesCriterion struct {
	weight int
}

// NewPreferencesCriterion creates a new PreferencesCriterion with the given weight
func NewPreferencesCriterion(weight int) *PreferencesCriterion {
	return &PreferencesCriterion{weight: weight}
}

func (c *PreferencesCriterion) Name() string {
	return "Preferences"
}

func (c *PreferencesCriterion) IsHard() bool {
	return false
}

func (c *PreferencesCriterion) Weight() int {
	return c.weight
}

func (c *PreferencesCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	var violations []evaluator.Violation
	shifts := week.Scenario.Shifts()

	for _, nurse := range week.Preferences.Nurses() {
		for _, req := range week.Preferences.RequestsOf(nurse) {
			if week.Roster.AssignmentOf(nurse, req.Day).Shift != req.Shift {
				continue
			}
			violations = append(violations, evaluator.Violation{
				CriterionName: c.Name(),
				Nurse:         nurse,
				Day:           req.Day,
				Cost:          c.weight,
				Description: fmt.Sprintf("%s asked not to work %s on %s",
					week.NurseName(nurse), shifts.Name(req.Shift), calendar.DayName(req.Day)),
			})
		}
	}

	return violations
}
