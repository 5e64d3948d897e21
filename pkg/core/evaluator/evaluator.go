package evaluator

// Report is the outcome of validating a roster against a set of criteria
type Report struct {
	// Hard contains violations that make the roster infeasible
	Hard []Violation

	// Soft contains penalised violations
	Soft []Violation

	// Cost is the sum of the soft violation costs
	Cost int
}

// Feasible reports whether no hard constraint is broken
func (r Report) Feasible() bool {
	return len(r.Hard) == 0
}

// CostByCriterion sums the soft costs per criterion name
func (r Report) CostByCriterion() map[string]int {
	costs := make(map[string]int)
	for _, v := range r.Soft {
		costs[v.CriterionName] += v.Cost
	}
	return costs
}

// Evaluate validates the week against every criterion, in order
func Evaluate(week *WeekState, criteria []Criterion) Report {
	var report Report

	for _, criterion := range criteria {
		violations := criterion.Validate(week)
		if criterion.IsHard() {
			report.Hard = append(report.Hard, violations...)
			continue
		}
		for _, v := range violations {
			report.Cost += v.Cost
		}
		report.Soft = append(report.Soft, violations...)
	}

	return report
}
