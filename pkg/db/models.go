package db

import "time"

// HistoryRecord is the persisted history entering one week of a scenario
type HistoryRecord struct {
	ID        string         `json:"id"`
	Scenario  string         `json:"scenario"`
	Week      int            `json:"week"`
	WeekName  string         `json:"weekName,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	Nurses    []NurseHistory `json:"nurses"`
}

// NurseHistory is one nurse's border state. Shifts are stored by name so that
// records stay readable without the scenario file.
type NurseHistory struct {
	Nurse            string `json:"nurse"`
	LastShift        string `json:"lastShift"`
	ConsShifts       int    `json:"consShifts"`
	ConsDaysWork     int    `json:"consDaysWork"`
	ConsDaysOff      int    `json:"consDaysOff"`
	TotalAssignments int    `json:"totalAssignments"`
	TotalWeekends    int    `json:"totalWeekends"`
}
