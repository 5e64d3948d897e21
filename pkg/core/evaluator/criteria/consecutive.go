package criteria

import (
	"fmt"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

const (
	labelOff    = 0
	labelWorked = 1
)

// ConsecutiveShiftsCriterion charges weight per day a run of one shift type is
// outside that shift's consecutive bounds.
//
// Border handling:
//   - a run carried over from history continues into day 0
//   - a history run that stops at day 0 is checked against the minimum only
//   - the run reaching Sunday is checked against the maximum only
type ConsecutiveShiftsCriterion struct {
	weight int
}

// NewConsecutiveShiftsCriterion creates a new ConsecutiveShiftsCriterion with the given weight
func NewConsecutiveShiftsCriterion(weight int) *ConsecutiveShiftsCriterion {
	return &ConsecutiveShiftsCriterion{weight: weight}
}

func (c *ConsecutiveShiftsCriterion) Name() string {
	return "ConsecutiveShifts"
}

func (c *ConsecutiveShiftsCriterion) IsHard() bool {
	return false
}

func (c *ConsecutiveShiftsCriterion) Weight() int {
	return c.weight
}

func (c *ConsecutiveShiftsCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	var violations []evaluator.Violation
	shifts := week.Scenario.Shifts()

	for nurse := 0; nurse < week.Scenario.NbNurses(); nurse++ {
		hist := historyOf(week, nurse)
		for _, run := range evaluator.Runs(week.ShiftsOf(nurse), hist.Shift, hist.ConsShifts) {
			if run.Label == model.RestShift {
				continue
			}
			days := run.Penalty(shifts.MinConsecutive(run.Label), shifts.MaxConsecutive(run.Label))
			if days == 0 {
				continue
			}
			violations = append(violations, runViolation(week, c.Name(), c.weight, nurse, run, days,
				fmt.Sprintf("%d consecutive %s shifts, bounds (%d,%d)",
					run.Length, shifts.Name(run.Label), shifts.MinConsecutive(run.Label), shifts.MaxConsecutive(run.Label))))
		}
	}

	return violations
}

// ConsecutiveWorkDaysCriterion charges weight per day a run of worked days is
// outside the nurse's contract bounds. Border handling follows ConsecutiveShiftsCriterion.
type ConsecutiveWorkDaysCriterion struct {
	weight int
}

// NewConsecutiveWorkDaysCriterion creates a new ConsecutiveWorkDaysCriterion with the given weight
func NewConsecutiveWorkDaysCriterion(weight int) *ConsecutiveWorkDaysCriterion {
	return &ConsecutiveWorkDaysCriterion{weight: weight}
}

func (c *ConsecutiveWorkDaysCriterion) Name() string {
	return "ConsecutiveWorkDays"
}

func (c *ConsecutiveWorkDaysCriterion) IsHard() bool {
	return false
}

func (c *ConsecutiveWorkDaysCriterion) Weight() int {
	return c.weight
}

func (c *ConsecutiveWorkDaysCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	return workOffViolations(week, c.Name(), c.weight, labelWorked, func(nurse int) (int, int) {
		return week.Scenario.MinConsDaysWorkOf(nurse), week.Scenario.MaxConsDaysWorkOf(nurse)
	})
}

// ConsecutiveDaysOffCriterion charges weight per day a run of days off is
// outside the nurse's contract bounds. Border handling follows ConsecutiveShiftsCriterion.
type ConsecutiveDaysOffCriterion struct {
	weight int
}

// NewConsecutiveDaysOffCriterion creates a new ConsecutiveDaysOffCriterion with the given weight
func NewConsecutiveDaysOffCriterion(weight int) *ConsecutiveDaysOffCriterion {
	return &ConsecutiveDaysOffCriterion{weight: weight}
}

func (c *ConsecutiveDaysOffCriterion) Name() string {
	return "ConsecutiveDaysOff"
}

func (c *ConsecutiveDaysOffCriterion) IsHard() bool {
	return false
}

func (c *ConsecutiveDaysOffCriterion) Weight() int {
	return c.weight
}

func (c *ConsecutiveDaysOffCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	return workOffViolations(week, c.Name(), c.weight, labelOff, func(nurse int) (int, int) {
		return week.Scenario.MinConsDaysOffOf(nurse), week.Scenario.MaxConsDaysOffOf(nurse)
	})
}

func workOffViolations(week *evaluator.WeekState, name string, weight, label int, bounds func(nurse int) (int, int)) []evaluator.Violation {
	var violations []evaluator.Violation

	for nurse := 0; nurse < week.Scenario.NbNurses(); nurse++ {
		var labels [calendar.DaysPerWeek]int
		for day := range labels {
			if week.Roster.Works(nurse, day) {
				labels[day] = labelWorked
			}
		}

		hist := historyOf(week, nurse)
		histLabel, histLength := labelOff, hist.ConsDaysOff
		if hist.IsWorking() {
			histLabel, histLength = labelWorked, hist.ConsDaysWork
		}

		min, max := bounds(nurse)
		for _, run := range evaluator.Runs(labels, histLabel, histLength) {
			if run.Label != label {
				continue
			}
			days := run.Penalty(min, max)
			if days == 0 {
				continue
			}
			kind := "days off"
			if label == labelWorked {
				kind = "worked days"
			}
			violations = append(violations, runViolation(week, name, weight, nurse, run, days,
				fmt.Sprintf("%d consecutive %s, bounds (%d,%d)", run.Length, kind, min, max)))
		}
	}

	return violations
}

func runViolation(week *evaluator.WeekState, name string, weight, nurse int, run evaluator.Run, days int, detail string) evaluator.Violation {
	return evaluator.Violation{
		CriterionName: name,
		Nurse:         nurse,
		Day:           run.Start,
		Cost:          weight * days,
		Description:   fmt.Sprintf("%s: %s", week.NurseName(nurse), detail),
	}
}

// historyOf returns the state of nurse entering the week, a fresh day off if unknown
func historyOf(week *evaluator.WeekState, nurse int) model.State {
	if nurse < len(week.History) {
		return week.History[nurse]
	}
	return model.State{Shift: model.RestShift}
}
