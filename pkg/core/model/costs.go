package model

// Penalty weights for violating the soft constraints on a nurse's schedule.
// They are fixed by the problem definition and shared with every solver built
// against this model, so their values must not change.
const (
	// CostConsShifts is charged per day a run of one shift type is shorter than its
	// minimum or longer than its maximum
	CostConsShifts = 15

	// CostConsDaysWork is charged per day a run of worked days is outside the contract bounds
	CostConsDaysWork = 30

	// CostConsDaysOff is charged per day a run of days off is outside the contract bounds
	CostConsDaysOff = 30

	// CostPreferences is charged per shift-off request that is not honoured
	CostPreferences = 10

	// CostCompleteWeekend is charged per weekend worked on one day only, for contracts
	// requiring complete weekends
	CostCompleteWeekend = 30

	// CostTotalShifts is charged per assignment below or above the contract's total bounds
	// over the whole horizon
	CostTotalShifts = 20

	// CostTotalWeekends is charged per worked weekend above the contract's maximum
	// over the whole horizon
	CostTotalWeekends = 30

	// CostOptimalCoverage is charged per nurse missing below the optimum demand of a
	// (day, shift, skill) cell
	CostOptimalCoverage = 30
)
