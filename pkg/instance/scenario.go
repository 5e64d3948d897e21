package instance

import (
	"fmt"
	"io"

	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// Scenario file keywords
const (
	keyScenario     = "SCENARIO"
	keyWeeks        = "WEEKS"
	keySkills       = "SKILLS"
	keyShiftTypes   = "SHIFT_TYPES"
	keyForbidden    = "FORBIDDEN_SHIFT_TYPES_SUCCESSIONS"
	keyContracts    = "CONTRACTS"
	keyNurses       = "NURSES"
	completeWeekend = "1"
	partialWeekend  = "0"
)

// ReadScenario parses a scenario file and builds the scenario it describes.
// Parse errors are MalformedInput; an inconsistent scenario is InvalidConfiguration.
func ReadScenario(r io.Reader, source string) (*model.Scenario, error) {
	lr := newLineReader(r, source)
	var cfg model.ScenarioConfig

	name, err := lr.assignment(keyScenario)
	if err != nil {
		return nil, err
	}
	cfg.Name = name

	if cfg.NbWeeks, err = lr.count(keyWeeks); err != nil {
		return nil, err
	}

	if err := readSkills(lr, &cfg); err != nil {
		return nil, err
	}
	if err := readShiftTypes(lr, &cfg); err != nil {
		return nil, err
	}
	if err := readForbiddenSuccessions(lr, &cfg); err != nil {
		return nil, err
	}
	if err := readContracts(lr, &cfg); err != nil {
		return nil, err
	}
	if err := readNurses(lr, &cfg); err != nil {
		return nil, err
	}
	if err := lr.expectEnd(); err != nil {
		return nil, err
	}

	scn, err := model.NewScenario(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build scenario from %s: %w", source, err)
	}
	return scn, nil
}

func readSkills(lr *lineReader, cfg *model.ScenarioConfig) error {
	n, err := lr.count(keySkills)
	if err != nil {
		return err
	}
	cfg.Skills = make([]string, 0, n)
	for i := 0; i < n; i++ {
		fields, err := lr.next("skill name")
		if err != nil {
			return err
		}
		if len(fields) != 1 {
			return lr.errorf("expected a single skill name, got %d fields", len(fields))
		}
		cfg.Skills = append(cfg.Skills, fields[0])
	}
	cfg.SkillIndex = model.IndexNames(cfg.Skills)
	if len(cfg.SkillIndex) != len(cfg.Skills) {
		return lr.errorf("duplicate skill name")
	}
	return nil
}

func readShiftTypes(lr *lineReader, cfg *model.ScenarioConfig) error {
	n, err := lr.count(keyShiftTypes)
	if err != nil {
		return err
	}
	cfg.Shifts = make([]model.ShiftType, 0, n)
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		fields, err := lr.next("shift type")
		if err != nil {
			return err
		}
		if len(fields) != 2 {
			return lr.errorf("expected <name> (min,max), got %d fields", len(fields))
		}
		if fields[0] == model.RestShiftName {
			return lr.errorf("shift name %s is reserved for days off", model.RestShiftName)
		}
		bounds, err := lr.bounds(fields[1], "consecutive "+fields[0])
		if err != nil {
			return err
		}
		cfg.Shifts = append(cfg.Shifts, model.ShiftType{
			Name:           fields[0],
			MinConsecutive: bounds.Min,
			MaxConsecutive: bounds.Max,
		})
		names = append(names, fields[0])
	}
	cfg.ShiftIndex = model.IndexNames(names)
	if len(cfg.ShiftIndex) != len(names) {
		return lr.errorf("duplicate shift name")
	}
	return nil
}

func readForbiddenSuccessions(lr *lineReader, cfg *model.ScenarioConfig) error {
	if err := lr.keyword(keyForbidden); err != nil {
		return err
	}
	seen := make(map[int]bool, len(cfg.Shifts))
	for range cfg.Shifts {
		fields, err := lr.next("forbidden successions")
		if err != nil {
			return err
		}
		if len(fields) < 2 {
			return lr.errorf("expected <shift> <count> <successors...>")
		}
		shift, ok := cfg.ShiftIndex[fields[0]]
		if !ok {
			return lr.errorf("unknown shift %q", fields[0])
		}
		if seen[shift] {
			return lr.errorf("forbidden successions of %s listed twice", fields[0])
		}
		seen[shift] = true

		count, err := lr.atoi(fields[1], "successor count")
		if err != nil {
			return err
		}
		if count != len(fields)-2 {
			return lr.errorf("%s lists %d successors, expected %d", fields[0], len(fields)-2, count)
		}
		for _, name := range fields[2:] {
			succ, ok := cfg.ShiftIndex[name]
			if !ok {
				return lr.errorf("unknown successor shift %q", name)
			}
			cfg.Shifts[shift].ForbiddenSuccessors = append(cfg.Shifts[shift].ForbiddenSuccessors, succ)
		}
	}
	return nil
}

func readContracts(lr *lineReader, cfg *model.ScenarioConfig) error {
	n, err := lr.count(keyContracts)
	if err != nil {
		return err
	}
	cfg.Contracts = make([]model.Contract, 0, n)
	for i := 0; i < n; i++ {
		fields, err := lr.next("contract")
		if err != nil {
			return err
		}
		if len(fields) != 6 {
			return lr.errorf("expected <name> (tot) (work) (off) <maxWeekends> <complete>, got %d fields", len(fields))
		}
		total, err := lr.bounds(fields[1], "total assignments")
		if err != nil {
			return err
		}
		work, err := lr.bounds(fields[2], "consecutive working days")
		if err != nil {
			return err
		}
		off, err := lr.bounds(fields[3], "consecutive days off")
		if err != nil {
			return err
		}
		weekends, err := lr.atoi(fields[4], "maximum working weekends")
		if err != nil {
			return err
		}
		if fields[5] != completeWeekend && fields[5] != partialWeekend {
			return lr.errorf("complete weekends must be 0 or 1, got %q", fields[5])
		}

		contract, err := model.NewContract(fields[0], total, work, off, weekends, fields[5] == completeWeekend)
		if err != nil {
			return fmt.Errorf("%s: %w", lr.location(), err)
		}
		cfg.Contracts = append(cfg.Contracts, contract)
	}
	return nil
}

func readNurses(lr *lineReader, cfg *model.ScenarioConfig) error {
	n, err := lr.count(keyNurses)
	if err != nil {
		return err
	}
	contractIndex := make(map[string]int, len(cfg.Contracts))
	for i, contract := range cfg.Contracts {
		contractIndex[contract.Name()] = i
	}

	cfg.Nurses = make([]model.Nurse, 0, n)
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		fields, err := lr.next("nurse")
		if err != nil {
			return err
		}
		if len(fields) < 3 {
			return lr.errorf("expected <name> <contract> <count> <skills...>")
		}
		contract, ok := contractIndex[fields[1]]
		if !ok {
			return lr.errorf("nurse %s: unknown contract %q", fields[0], fields[1])
		}
		count, err := lr.atoi(fields[2], "skill count")
		if err != nil {
			return err
		}
		if count != len(fields)-3 {
			return lr.errorf("nurse %s lists %d skills, expected %d", fields[0], len(fields)-3, count)
		}
		skills := make([]int, 0, count)
		for _, name := range fields[3:] {
			skill, ok := cfg.SkillIndex[name]
			if !ok {
				return lr.errorf("nurse %s: unknown skill %q", fields[0], name)
			}
			skills = append(skills, skill)
		}
		cfg.Nurses = append(cfg.Nurses, model.Nurse{Name: fields[0], ContractIndex: contract, Skills: skills})
		names = append(names, fields[0])
	}
	cfg.NurseIndex = model.IndexNames(names)
	if len(cfg.NurseIndex) != len(names) {
		return lr.errorf("duplicate nurse name")
	}
	return nil
}
