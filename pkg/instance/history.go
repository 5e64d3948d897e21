package instance

import (
	"fmt"
	"io"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// History file keywords
const (
	keyHistory      = "HISTORY"
	keyNurseHistory = "NURSE_HISTORY"
)

// HistoryData is the content of one history file: the states entering Week
type HistoryData struct {
	Week   int
	States []model.State
}

// Apply sets the scenario's history and week index from h
func (h *HistoryData) Apply(scn *model.Scenario) error {
	if err := scn.SetHistoryState(h.States); err != nil {
		return err
	}
	return scn.SetWeekIndex(h.Week)
}

// ReadHistory parses a history file for scn. Every nurse must appear exactly once.
//
// Row format: <nurse> <totalAssignments> <totalWeekends> <lastShift|None>
// <consShifts> <consDaysWork> <consDaysOff>
func ReadHistory(r io.Reader, source string, scn *model.Scenario) (*HistoryData, error) {
	lr := newLineReader(r, source)

	if err := lr.keyword(keyHistory); err != nil {
		return nil, err
	}
	week, err := lr.header(scn)
	if err != nil {
		return nil, err
	}
	if err := lr.keyword(keyNurseHistory); err != nil {
		return nil, err
	}

	states := make([]model.State, scn.NbNurses())
	seen := make([]bool, scn.NbNurses())

	for i := 0; i < scn.NbNurses(); i++ {
		fields, err := lr.next("nurse history")
		if err != nil {
			return nil, err
		}
		if len(fields) != 7 {
			return nil, lr.errorf("expected 7 fields in nurse history, got %d", len(fields))
		}

		nurse, ok := scn.NurseIndex(fields[0])
		if !ok {
			return nil, lr.errorf("unknown nurse %q", fields[0])
		}
		if seen[nurse] {
			return nil, lr.errorf("history of %s listed twice", fields[0])
		}
		seen[nurse] = true

		shift, ok := scn.Shifts().Index(fields[3])
		if !ok {
			return nil, lr.errorf("unknown last shift %q", fields[3])
		}

		var counters [5]int
		for j, idx := range []int{1, 2, 4, 5, 6} {
			n, err := lr.atoi(fields[idx], "history counter")
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, lr.errorf("negative history counter %d", n)
			}
			counters[j] = n
		}

		states[nurse] = model.State{
			Shift:            shift,
			TotalAssignments: counters[0],
			TotalWeekends:    counters[1],
			ConsShifts:       counters[2],
			ConsDaysWork:     counters[3],
			ConsDaysOff:      counters[4],
		}
	}

	if err := lr.expectEnd(); err != nil {
		return nil, err
	}

	return &HistoryData{Week: week, States: states}, nil
}

// WriteHistory writes the states entering week in the history file format
func WriteHistory(w io.Writer, scn *model.Scenario, week int, states []model.State) error {
	if len(states) != scn.NbNurses() {
		return fmt.Errorf("expected %d nurse states, got %d", scn.NbNurses(), len(states))
	}

	out := NewWriter(w)
	out.WriteLine(keyHistory)
	out.WriteLine(week, scn.Name())
	out.WriteLine()
	out.WriteLine(keyNurseHistory)
	for n, s := range states {
		out.WriteLine(scn.Nurse(n).Name, s.TotalAssignments, s.TotalWeekends,
			scn.Shifts().Name(s.Shift), s.ConsShifts, s.ConsDaysWork, s.ConsDaysOff)
	}
	return out.Err()
}
