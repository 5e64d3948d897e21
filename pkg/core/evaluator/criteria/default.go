package criteria

import (
	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// Default returns the hard constraints followed by the soft constraints of the
// problem, weighted with the model's cost constants
func Default() []evaluator.Criterion {
	return []evaluator.Criterion{
		NewForbiddenSuccessionCriterion(),
		NewMissingSkillCriterion(),
		NewMinimumCoverageCriterion(),
		NewOptimalCoverageCriterion(model.CostOptimalCoverage),
		NewConsecutiveShiftsCriterion(model.CostConsShifts),
		NewConsecutiveWorkDaysCriterion(model.CostConsDaysWork),
		NewConsecutiveDaysOffCriterion(model.CostConsDaysOff),
		NewPreferencesCriterion(model.CostPreferences),
		NewCompleteWeekendCriterion(model.CostCompleteWeekend),
		NewTotalAssignmentsCriterion(model.CostTotalShifts),
		NewTotalWeekendsCriterion(model.CostTotalWeekends),
	}
}
