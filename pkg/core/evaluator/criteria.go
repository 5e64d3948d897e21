package evaluator

// Violation is one broken constraint found in a roster
type Violation struct {
	CriterionName string

	// Nurse is the nurse concerned, -1 for coverage violations
	Nurse int

	// Day is the day of the week concerned, -1 for week-level violations
	Day int

	// Cost is the weighted penalty, 0 for hard violations
	Cost int

	Description string
}

// Criterion defines one constraint a roster is checked against
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// IsHard reports whether a violation makes the roster infeasible.
	// Hard criteria act as a veto and carry no cost.
	IsHard() bool

	// Weight returns the cost charged per unit of violation (0 for hard criteria)
	Weight() int

	// Validate checks the week against this criterion.
	// Returns a slice of violations (empty if all valid).
	Validate(week *WeekState) []Violation
}
