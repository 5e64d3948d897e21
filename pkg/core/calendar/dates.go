package calendar

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

// HorizonDates returns the calendar date of every day of a horizon of nbWeeks weeks
// starting on start. Day index i of the horizon maps to the i-th returned date.
//
// Returns an error if start is not a Monday or nbWeeks is not positive.
func HorizonDates(start time.Time, nbWeeks int) ([]time.Time, error) {
	if nbWeeks <= 0 {
		return nil, errs.New(errs.ErrInvalidArgument, "calendar", "horizon must span at least one week, got %d", nbWeeks)
	}
	if start.Weekday() != time.Monday {
		return nil, errs.New(errs.ErrInvalidArgument, "calendar", "horizon must start on a Monday, got %s", start.Format("Mon 2006-01-02"))
	}

	normalized := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: normalized,
		Count:   nbWeeks * DaysPerWeek,
	})
	if err != nil {
		return nil, errs.New(errs.ErrInvalidArgument, "calendar", "failed to build horizon rule: %v", err)
	}

	return rule.All(), nil
}

// WeekDates returns the seven dates of week weekIndex of a horizon starting on start
func WeekDates(start time.Time, weekIndex int) ([]time.Time, error) {
	if weekIndex < 0 {
		return nil, errs.New(errs.ErrInvalidArgument, "calendar", "negative week index %d", weekIndex)
	}

	dates, err := HorizonDates(start, weekIndex+1)
	if err != nil {
		return nil, err
	}

	return dates[weekIndex*DaysPerWeek:], nil
}

// WeekendDates returns the Saturdays and Sundays of a horizon of nbWeeks weeks starting on start
func WeekendDates(start time.Time, nbWeeks int) ([]time.Time, error) {
	horizon, err := HorizonDates(start, nbWeeks)
	if err != nil {
		return nil, err
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   horizon[0],
		Until:     horizon[len(horizon)-1],
		Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
	})
	if err != nil {
		return nil, errs.New(errs.ErrInvalidArgument, "calendar", "failed to build weekend rule: %v", err)
	}

	return rule.All(), nil
}
