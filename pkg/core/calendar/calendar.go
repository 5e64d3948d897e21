package calendar

import (
	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

// DaysPerWeek is the number of days in a scheduling week
const DaysPerWeek = 7

const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// dayNames is indexed by day-of-week, the horizon always starts on a Monday
var dayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// dayOfWeek normalises any day index (including negative ones) to [0, 7)
func dayOfWeek(dayIndex int) int {
	return ((dayIndex % DaysPerWeek) + DaysPerWeek) % DaysPerWeek
}

// DayName returns the three-letter name of the day at dayIndex
func DayName(dayIndex int) string {
	return dayNames[dayOfWeek(dayIndex)]
}

// DayIndex returns the day-of-week index in [0, 6] for a three-letter day name.
// Fails with ErrInvalidArgument if the name is not one of Mon..Sun.
func DayIndex(name string) (int, error) {
	for i, dayName := range dayNames {
		if dayName == name {
			return i, nil
		}
	}
	return -1, errs.New(errs.ErrInvalidArgument, "calendar", "unknown day name %q", name)
}

// DayNames returns the seven day names, Monday first
func DayNames() []string {
	names := make([]string, DaysPerWeek)
	copy(names, dayNames[:])
	return names
}

func IsSaturday(dayIndex int) bool {
	return dayOfWeek(dayIndex) == Saturday
}

func IsSunday(dayIndex int) bool {
	return dayOfWeek(dayIndex) == Sunday
}

// IsWeekend returns true for Saturdays and Sundays
func IsWeekend(dayIndex int) bool {
	return IsSaturday(dayIndex) || IsSunday(dayIndex)
}

// WeekendDaysInRange counts the weekend days in the inclusive range [start, end].
// The count does not depend on the order of the bounds.
// Fails with ErrInvalidArgument on negative day indices.
func WeekendDaysInRange(start, end int) (int, error) {
	if start < 0 || end < 0 {
		return 0, errs.New(errs.ErrInvalidArgument, "calendar", "negative day range [%d, %d]", start, end)
	}
	if start > end {
		start, end = end, start
	}
	return weekendDaysBefore(end+1) - weekendDaysBefore(start), nil
}

// weekendDaysBefore counts the weekend days in [0, n)
func weekendDaysBefore(n int) int {
	fullWeeks, rest := n/DaysPerWeek, n%DaysPerWeek
	return 2*fullWeeks + max(0, rest-Saturday)
}
