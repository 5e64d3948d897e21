package model

import (
	"slices"
)

// UndefinedWeek is the week index of a scenario whose history has not been loaded
const UndefinedWeek = -1

// Week is the per-week snapshot of a scenario. It is replaced wholesale when
// moving to the next week, never merged.
type Week struct {
	Index       int
	Name        string
	Demand      Demand
	Preferences Preferences
	History     []State
}

// NewWeek returns an empty snapshot with an undefined index
func NewWeek() Week {
	return Week{
		Index:       UndefinedWeek,
		Preferences: NewPreferences(),
	}
}

// Clone returns a copy of w that shares no mutable state with it
func (w Week) Clone() Week {
	w.Preferences = w.Preferences.Clone()
	w.History = slices.Clone(w.History)
	return w
}
