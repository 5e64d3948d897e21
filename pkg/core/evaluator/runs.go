package evaluator

import (
	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
)

// Run is a maximal sequence of days sharing one label (a shift, or worked/off)
type Run struct {
	Label int

	// Start and End are the first and last day of the run inside the week.
	// Both are -1 for a history run that ended at the week border.
	Start int
	End   int

	// Length counts the days of the run including those carried over from history
	Length int

	// InWeek counts the days of the run inside the week
	InWeek int

	// Trailing is true when the run reaches the last day of the week and may
	// continue into the next one
	Trailing bool
}

// Runs splits a week of labels into runs. histLabel and histLength describe the
// run in progress when the week starts: it either continues into day 0 or is
// returned as a run that ended at the border (only if histLength > 0).
func Runs(labels [calendar.DaysPerWeek]int, histLabel, histLength int) []Run {
	var runs []Run

	current := Run{Label: labels[0], Start: 0, End: 0, Length: 1, InWeek: 1}
	if histLength > 0 {
		if histLabel == labels[0] {
			current.Length += histLength
		} else {
			runs = append(runs, Run{Label: histLabel, Start: -1, End: -1, Length: histLength})
		}
	}

	for day := 1; day < calendar.DaysPerWeek; day++ {
		if labels[day] == current.Label {
			current.End = day
			current.Length++
			current.InWeek++
			continue
		}
		runs = append(runs, current)
		current = Run{Label: labels[day], Start: day, End: day, Length: 1, InWeek: 1}
	}

	current.Trailing = true
	return append(runs, current)
}

// Penalty returns the number of days by which run breaks [min, max].
// Days above max are only counted inside the week, so a run spanning several
// weeks is charged once per day. A trailing run is not checked against min.
func (r Run) Penalty(min, max int) int {
	if r.Length > max {
		excess := r.Length - max
		if excess > r.InWeek {
			excess = r.InWeek
		}
		return excess
	}
	if !r.Trailing && r.Length < min {
		return min - r.Length
	}
	return 0
}
