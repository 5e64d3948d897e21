package instance

import (
	"io"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/roster"
)

// Solution file keywords
const (
	keySolution    = "SOLUTION"
	keyAssignments = "ASSIGNMENTS"
)

// SolutionData is the content of one solution file
type SolutionData struct {
	Week   int
	Roster *roster.Roster
}

// ReadSolution parses a solution file for scn.
// A nurse may be assigned at most once per day.
func ReadSolution(r io.Reader, source string, scn *model.Scenario) (*SolutionData, error) {
	lr := newLineReader(r, source)

	if err := lr.keyword(keySolution); err != nil {
		return nil, err
	}
	week, err := lr.header(scn)
	if err != nil {
		return nil, err
	}
	n, err := lr.count(keyAssignments)
	if err != nil {
		return nil, err
	}

	ro := roster.New(scn)
	for i := 0; i < n; i++ {
		fields, err := lr.next("assignment")
		if err != nil {
			return nil, err
		}
		if len(fields) != 4 {
			return nil, lr.errorf("expected <nurse> <day> <shift> <skill>, got %d fields", len(fields))
		}

		nurse, ok := scn.NurseIndex(fields[0])
		if !ok {
			return nil, lr.errorf("unknown nurse %q", fields[0])
		}
		day, err := calendar.DayIndex(fields[1])
		if err != nil {
			return nil, lr.errorf("unknown day %q", fields[1])
		}
		shift, ok := scn.Shifts().Names().Index(fields[2])
		if !ok {
			return nil, lr.errorf("unknown shift %q", fields[2])
		}
		skill, ok := scn.Skills().Index(fields[3])
		if !ok {
			return nil, lr.errorf("unknown skill %q", fields[3])
		}
		if ro.Works(nurse, day) {
			return nil, lr.errorf("%s is assigned twice on %s", fields[0], fields[1])
		}
		if err := ro.Assign(nurse, day, shift, skill); err != nil {
			return nil, lr.errorf("%v", err)
		}
	}

	if err := lr.expectEnd(); err != nil {
		return nil, err
	}

	return &SolutionData{Week: week, Roster: ro}, nil
}

// WriteSolution writes r in the solution file format
func WriteSolution(w io.Writer, scn *model.Scenario, week int, r *roster.Roster) error {
	entries := r.Entries()

	out := NewWriter(w)
	out.WriteLine(keySolution)
	out.WriteLine(week, scn.Name())
	out.WriteLine()
	out.WriteLine(keyAssignments, "=", len(entries))
	for _, e := range entries {
		out.WriteLine(scn.Nurse(e.Nurse).Name, calendar.DayName(e.Day),
			scn.Shifts().Name(e.Shift), scn.Skills().Name(e.Skill))
	}
	return out.Err()
}
