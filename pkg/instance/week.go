package instance

import (
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// Week file keywords
const (
	keyWeekData     = "WEEK_DATA"
	keyRequirements = "REQUIREMENTS"
	keyShiftOff     = "SHIFT_OFF_REQUESTS"
	anyShift        = "Any"
)

// Options control how leniently week files are read
type Options struct {
	// Strict turns malformed requests and requests naming an unknown nurse, shift or day into errors
	// instead of skipping them
	Strict bool

	// Logger receives skipped requests and demand warnings; nil discards them
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// WeekData is the content of one week file
type WeekData struct {
	Name        string
	Min         [][][]int
	Opt         [][][]int
	Preferences model.Preferences

	// Skipped counts the shift-off requests ignored in lenient mode
	Skipped int
}

// Apply replaces the scenario's week name, demand and preferences with d.
// The scenario is left unchanged when either the demand or the preferences are rejected.
func (d *WeekData) Apply(scn *model.Scenario) error {
	if _, err := model.NewDemand(d.Min, d.Opt, scn.NbShifts(), scn.NbSkills()); err != nil {
		return err
	}
	if err := scn.SetPreferences(d.Preferences); err != nil {
		return err
	}
	if err := scn.SetDemand(d.Min, d.Opt); err != nil {
		return err
	}
	scn.SetWeekName(d.Name)
	return nil
}

// WeekName derives a week name from a file path ("data/WD-n005w4-1.txt" → "WD-n005w4-1")
func WeekName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadWeek parses a week file for scn.
//
// Every (shift, skill) pair must have exactly one requirement line, otherwise
// the demand tensor would be incomplete and MalformedInput is returned.
// Malformed requests and requests naming an unknown nurse, shift or day are skipped unless opts.Strict.
func ReadWeek(r io.Reader, source string, scn *model.Scenario, opts Options) (*WeekData, error) {
	lr := newLineReader(r, source)
	logger := opts.logger()

	if err := lr.keyword(keyWeekData); err != nil {
		return nil, err
	}
	fields, err := lr.next("scenario name")
	if err != nil {
		return nil, err
	}
	if len(fields) != 1 || fields[0] != scn.Name() {
		return nil, lr.errorf("week data is for scenario %q, not %s", strings.Join(fields, " "), scn.Name())
	}

	data := &WeekData{
		Name:        WeekName(source),
		Min:         emptyTensor(scn.NbShifts(), scn.NbSkills()),
		Opt:         emptyTensor(scn.NbShifts(), scn.NbSkills()),
		Preferences: model.NewPreferences(),
	}

	if err := readRequirements(lr, scn, data); err != nil {
		return nil, err
	}
	if err := readShiftOffRequests(lr, scn, data, opts.Strict, logger); err != nil {
		return nil, err
	}
	if err := lr.expectEnd(); err != nil {
		return nil, err
	}

	logger.Debug("Read week data",
		zap.String("week", data.Name),
		zap.Int("requests", data.Preferences.Count()),
		zap.Int("skipped", data.Skipped))

	return data, nil
}

func emptyTensor(nbShifts, nbSkills int) [][][]int {
	tensor := make([][][]int, calendar.DaysPerWeek)
	for day := range tensor {
		tensor[day] = make([][]int, nbShifts)
		for shift := range tensor[day] {
			tensor[day][shift] = make([]int, nbSkills)
		}
	}
	return tensor
}

func readRequirements(lr *lineReader, scn *model.Scenario, data *WeekData) error {
	if err := lr.keyword(keyRequirements); err != nil {
		return err
	}

	shifts := scn.Shifts()
	skills := scn.Skills()
	seen := make(map[[2]int]bool)

	for {
		fields, ok, err := lr.peek()
		if err != nil {
			return err
		}
		if !ok || strings.HasPrefix(fields[0], keyShiftOff) {
			break
		}
		if _, _, err := lr.tryNext(); err != nil {
			return err
		}

		if len(fields) != 2+calendar.DaysPerWeek {
			return lr.errorf("expected <shift> <skill> and %d (min,opt) pairs, got %d fields", calendar.DaysPerWeek, len(fields))
		}
		shift, ok := shifts.Names().Index(fields[0])
		if !ok {
			return lr.errorf("unknown shift %q in requirements", fields[0])
		}
		skill, ok := skills.Index(fields[1])
		if !ok {
			return lr.errorf("unknown skill %q in requirements", fields[1])
		}
		key := [2]int{shift, skill}
		if seen[key] {
			return lr.errorf("requirements for %s %s listed twice", fields[0], fields[1])
		}
		seen[key] = true

		for day := 0; day < calendar.DaysPerWeek; day++ {
			min, opt, err := lr.pair(fields[2+day], calendar.DayName(day)+" demand")
			if err != nil {
				return err
			}
			if min < 0 || opt < 0 {
				return lr.errorf("negative demand (%d,%d) on %s", min, opt, calendar.DayName(day))
			}
			data.Min[day][shift][skill] = min
			data.Opt[day][shift][skill] = opt
		}
	}

	if want := scn.NbShifts() * scn.NbSkills(); len(seen) != want {
		return lr.errorf("requirements cover %d (shift, skill) pairs, expected %d", len(seen), want)
	}
	return nil
}

func readShiftOffRequests(lr *lineReader, scn *model.Scenario, data *WeekData, strict bool, logger *zap.Logger) error {
	n, err := lr.count(keyShiftOff)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		fields, err := lr.next("shift-off request")
		if err != nil {
			return err
		}
		if len(fields) != 3 {
			if strict {
				return lr.errorf("expected <nurse> <shift|Any> <day>, got %d fields", len(fields))
			}
			logger.Warn("Skipping shift-off request",
				zap.String("location", lr.location()),
				zap.String("reason", "malformed request"),
				zap.String("request", strings.Join(fields, " ")))
			data.Skipped++
			continue
		}

		reason := ""
		nurse, ok := scn.NurseIndex(fields[0])
		if !ok {
			reason = "unknown nurse"
		}
		day, dayErr := calendar.DayIndex(fields[2])
		if reason == "" && dayErr != nil {
			reason = "unknown day"
		}
		var requested []int
		if reason == "" {
			if fields[1] == anyShift {
				for shift := 0; shift < scn.NbShifts(); shift++ {
					requested = append(requested, shift)
				}
			} else if shift, ok := scn.Shifts().Names().Index(fields[1]); ok {
				requested = []int{shift}
			} else {
				reason = "unknown shift"
			}
		}

		if reason != "" {
			if strict {
				return lr.errorf("%s in request %q", reason, strings.Join(fields, " "))
			}
			logger.Warn("Skipping shift-off request",
				zap.String("location", lr.location()),
				zap.String("reason", reason),
				zap.String("nurse", fields[0]),
				zap.String("shift", fields[1]),
				zap.String("day", fields[2]))
			data.Skipped++
			continue
		}

		for _, shift := range requested {
			data.Preferences.Add(nurse, day, shift)
		}
	}
	return nil
}
