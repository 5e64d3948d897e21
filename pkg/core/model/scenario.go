package model

import (
	"fmt"
	"slices"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

// ScenarioConfig is the static description of a rostering problem
type ScenarioConfig struct {
	Name    string
	NbWeeks int

	Skills     []string
	SkillIndex map[string]int

	Shifts     []ShiftType
	ShiftIndex map[string]int

	Contracts []Contract

	Nurses     []Nurse
	NurseIndex map[string]int
}

// Scenario is one problem instance over a horizon of NbWeeks weeks.
//
// The static part (skills, shifts, contracts, nurses) is fixed by NewScenario.
// The current week is the only mutable part and is replaced field by field
// through the Set* methods, or wholesale with SetWeek and AdvanceWeek.
//
// A Scenario is not safe for concurrent use while a mutator runs.
type Scenario struct {
	name    string
	nbWeeks int

	skills NameIndex
	shifts *ShiftCatalogue

	contracts     []Contract
	contractIndex map[string]int

	nurses     []Nurse
	nurseNames NameIndex

	week Week
}

// NewScenario validates cfg and builds a scenario that owns copies of its data.
// Fails with InvalidConfiguration if a name map is not a bijection, if a nurse
// references an unknown contract or skill, or if two contracts share a name.
func NewScenario(cfg ScenarioConfig) (*Scenario, error) {
	if cfg.Name == "" {
		return nil, errs.InvalidConfiguration("scenario", "empty scenario name")
	}
	if cfg.NbWeeks <= 0 {
		return nil, errs.InvalidConfiguration("scenario "+cfg.Name, "number of weeks must be positive, got %d", cfg.NbWeeks)
	}

	skills, err := NewNameIndex("skill", cfg.Skills, cfg.SkillIndex)
	if err != nil {
		return nil, err
	}

	shifts, err := NewShiftCatalogue(cfg.Shifts, cfg.ShiftIndex)
	if err != nil {
		return nil, err
	}

	contracts := slices.Clone(cfg.Contracts)
	contractIndex := make(map[string]int, len(contracts))
	for i, contract := range contracts {
		if contract.Name() == "" {
			return nil, errs.InvalidConfiguration("contract", "contract %d was not built with NewContract", i)
		}
		if _, dup := contractIndex[contract.Name()]; dup {
			return nil, errs.InvalidConfiguration("contract "+contract.Name(), "duplicate contract name")
		}
		contractIndex[contract.Name()] = i
	}

	nurseNamesList := make([]string, len(cfg.Nurses))
	for i, nurse := range cfg.Nurses {
		nurseNamesList[i] = nurse.Name
	}
	nurseNames, err := NewNameIndex("nurse", nurseNamesList, cfg.NurseIndex)
	if err != nil {
		return nil, err
	}

	nurses := make([]Nurse, len(cfg.Nurses))
	for i, nurse := range cfg.Nurses {
		if nurse.ContractIndex < 0 || nurse.ContractIndex >= len(contracts) {
			return nil, errs.InvalidConfiguration("nurse "+nurse.Name, "contract index %d out of range [0,%d)", nurse.ContractIndex, len(contracts))
		}
		for _, skill := range nurse.Skills {
			if !skills.contains(skill) {
				return nil, errs.InvalidConfiguration("nurse "+nurse.Name, "skill index %d out of range [0,%d)", skill, skills.Len())
			}
		}
		owned := nurse.clone()
		owned.contract = &contracts[nurse.ContractIndex]
		nurses[i] = owned
	}

	return &Scenario{
		name:          cfg.Name,
		nbWeeks:       cfg.NbWeeks,
		skills:        skills,
		shifts:        shifts,
		contracts:     contracts,
		contractIndex: contractIndex,
		nurses:        nurses,
		nurseNames:    nurseNames,
		week:          NewWeek(),
	}, nil
}

func (s *Scenario) Name() string { return s.name }
func (s *Scenario) NbWeeks() int { return s.nbWeeks }
func (s *Scenario) NbSkills() int { return s.skills.Len() }
func (s *Scenario) NbShifts() int { return s.shifts.Len() }
func (s *Scenario) NbContracts() int { return len(s.contracts) }
func (s *Scenario) NbNurses() int { return len(s.nurses) }

// Skills returns the skill name index
func (s *Scenario) Skills() NameIndex {
	return s.skills
}

// Shifts returns the shift catalogue
func (s *Scenario) Shifts() *ShiftCatalogue {
	return s.shifts
}

// IsLegalSuccessor reports whether next may be worked the day after prev
func (s *Scenario) IsLegalSuccessor(prev, next int) bool {
	return s.shifts.IsLegalSuccessor(prev, next)
}

// Contract returns the contract at index i
func (s *Scenario) Contract(i int) Contract {
	return s.contracts[i]
}

// ContractIndex resolves a contract name
func (s *Scenario) ContractIndex(name string) (int, bool) {
	i, ok := s.contractIndex[name]
	return i, ok
}

// Contracts returns a copy of the contract table
func (s *Scenario) Contracts() []Contract {
	return slices.Clone(s.contracts)
}

// Nurse returns a copy of the nurse at index i
func (s *Scenario) Nurse(i int) Nurse {
	return s.nurses[i].clone()
}

// Nurses returns copies of all nurses in index order
func (s *Scenario) Nurses() []Nurse {
	nurses := make([]Nurse, len(s.nurses))
	for i, nurse := range s.nurses {
		nurses[i] = nurse.clone()
	}
	return nurses
}

// NurseIndex resolves a nurse name
func (s *Scenario) NurseIndex(name string) (int, bool) {
	return s.nurseNames.Index(name)
}

func (s *Scenario) MinTotalShiftsOf(nurse int) int { return s.nurses[nurse].MinTotalShifts() }
func (s *Scenario) MaxTotalShiftsOf(nurse int) int { return s.nurses[nurse].MaxTotalShifts() }
func (s *Scenario) MinConsDaysWorkOf(nurse int) int { return s.nurses[nurse].MinConsDaysWork() }
func (s *Scenario) MaxConsDaysWorkOf(nurse int) int { return s.nurses[nurse].MaxConsDaysWork() }
func (s *Scenario) MinConsDaysOffOf(nurse int) int { return s.nurses[nurse].MinConsDaysOff() }
func (s *Scenario) MaxConsDaysOffOf(nurse int) int { return s.nurses[nurse].MaxConsDaysOff() }
func (s *Scenario) MaxTotalWeekendsOf(nurse int) int { return s.nurses[nurse].MaxTotalWeekends() }
func (s *Scenario) IsCompleteWeekendsOf(nurse int) bool { return s.nurses[nurse].CompleteWeekends() }

// SetWeekName replaces the current week name
func (s *Scenario) SetWeekName(name string) {
	s.week.Name = name
}

// SetDemand replaces the current demand with the given minimum and optimum tensors
func (s *Scenario) SetDemand(min, opt [][][]int) error {
	demand, err := NewDemand(min, opt, s.NbShifts(), s.NbSkills())
	if err != nil {
		return err
	}
	s.week.Demand = demand
	return nil
}

// SetPreferences replaces the current preferences with a copy of prefs
func (s *Scenario) SetPreferences(prefs Preferences) error {
	if err := s.validatePreferences(prefs); err != nil {
		return err
	}
	s.week.Preferences = prefs.Clone()
	return nil
}

// SetHistoryState replaces the current history with a copy of states, one per nurse
func (s *Scenario) SetHistoryState(states []State) error {
	if err := s.validateHistory(states); err != nil {
		return err
	}
	s.week.History = slices.Clone(states)
	return nil
}

// SetWeekIndex sets the current week. Fails with OutOfRange outside [0, NbWeeks).
func (s *Scenario) SetWeekIndex(week int) error {
	if week < 0 || week >= s.nbWeeks {
		return errs.New(errs.ErrOutOfRange, "scenario "+s.name, "week %d outside horizon [0,%d)", week, s.nbWeeks)
	}
	s.week.Index = week
	return nil
}

// SetWeek replaces the whole week snapshot after validating every field of w
func (s *Scenario) SetWeek(w Week) error {
	if w.Index < 0 || w.Index >= s.nbWeeks {
		return errs.New(errs.ErrOutOfRange, "scenario "+s.name, "week %d outside horizon [0,%d)", w.Index, s.nbWeeks)
	}
	if !w.Demand.IsZero() {
		_, nbShifts, nbSkills := w.Demand.Shape()
		if nbShifts != s.NbShifts() || nbSkills != s.NbSkills() {
			return errs.InvalidConfiguration("demand", "shape 7x%dx%d does not match scenario 7x%dx%d", nbShifts, nbSkills, s.NbShifts(), s.NbSkills())
		}
	}
	if err := s.validatePreferences(w.Preferences); err != nil {
		return err
	}
	if err := s.validateHistory(w.History); err != nil {
		return err
	}
	s.week = w.Clone()
	return nil
}

// AdvanceWeek moves to the next week with next as its incoming history.
// Demand, preferences and week name are cleared until the next week is loaded.
// Fails with OutOfRange when the current week is the last of the horizon.
func (s *Scenario) AdvanceWeek(next []State) error {
	current, err := s.ThisWeek()
	if err != nil {
		return err
	}
	if current >= s.nbWeeks-1 {
		return errs.New(errs.ErrOutOfRange, "scenario "+s.name, "cannot advance past week %d of %d", current, s.nbWeeks)
	}
	if err := s.validateHistory(next); err != nil {
		return err
	}

	week := NewWeek()
	week.Index = current + 1
	week.History = slices.Clone(next)
	s.week = week
	return nil
}

func (s *Scenario) requireWeek(what string) error {
	if s.week.Index == UndefinedWeek {
		return errs.New(errs.ErrUninitializedState, "scenario "+s.name, "%s read before the week index was set", what)
	}
	return nil
}

// ThisWeek returns the current week index
func (s *Scenario) ThisWeek() (int, error) {
	if err := s.requireWeek("week index"); err != nil {
		return UndefinedWeek, err
	}
	return s.week.Index, nil
}

// IsLastWeek reports whether the current week is the last of the horizon
func (s *Scenario) IsLastWeek() (bool, error) {
	week, err := s.ThisWeek()
	if err != nil {
		return false, err
	}
	return week == s.nbWeeks-1, nil
}

func (s *Scenario) WeekName() (string, error) {
	if err := s.requireWeek("week name"); err != nil {
		return "", err
	}
	return s.week.Name, nil
}

// Demand returns the current demand. It is the zero Demand if none was set.
func (s *Scenario) Demand() (Demand, error) {
	if err := s.requireWeek("demand"); err != nil {
		return Demand{}, err
	}
	return s.week.Demand, nil
}

// Preferences returns a copy of the current preferences
func (s *Scenario) Preferences() (Preferences, error) {
	if err := s.requireWeek("preferences"); err != nil {
		return Preferences{}, err
	}
	return s.week.Preferences.Clone(), nil
}

// HistoryState returns a copy of the history entering the current week
func (s *Scenario) HistoryState() ([]State, error) {
	if err := s.requireWeek("history"); err != nil {
		return nil, err
	}
	return slices.Clone(s.week.History), nil
}

// InitialStateOf returns the history of nurse entering the current week
func (s *Scenario) InitialStateOf(nurse int) (State, error) {
	if err := s.requireWeek("history"); err != nil {
		return State{}, err
	}
	if nurse < 0 || nurse >= len(s.week.History) {
		return State{}, errs.New(errs.ErrInvalidArgument, "history", "no state for nurse %d", nurse)
	}
	return s.week.History[nurse], nil
}

// Week returns a copy of the current week snapshot
func (s *Scenario) Week() (Week, error) {
	if err := s.requireWeek("week"); err != nil {
		return Week{}, err
	}
	return s.week.Clone(), nil
}

func (s *Scenario) String() string {
	week := "undefined"
	if s.week.Index != UndefinedWeek {
		week = fmt.Sprintf("%d/%d", s.week.Index, s.nbWeeks)
	}
	return fmt.Sprintf("scenario %s: week %s, %d skills, %d shifts, %d contracts, %d nurses",
		s.name, week, s.NbSkills(), s.NbShifts(), len(s.contracts), len(s.nurses))
}

func (s *Scenario) validatePreferences(prefs Preferences) error {
	for _, nurse := range prefs.Nurses() {
		if !s.nurseNames.contains(nurse) {
			return errs.InvalidConfiguration("preferences", "nurse index %d out of range [0,%d)", nurse, len(s.nurses))
		}
		for _, req := range prefs.RequestsOf(nurse) {
			if req.Day < 0 || req.Day >= calendar.DaysPerWeek {
				return errs.InvalidConfiguration("preferences", "nurse %s: day %d out of range", s.nurses[nurse].Name, req.Day)
			}
			if !s.shifts.names.contains(req.Shift) {
				return errs.InvalidConfiguration("preferences", "nurse %s: shift %d out of range", s.nurses[nurse].Name, req.Shift)
			}
		}
	}
	return nil
}

func (s *Scenario) validateHistory(states []State) error {
	if len(states) != len(s.nurses) {
		return errs.InvalidConfiguration("history", "expected %d nurse states, got %d", len(s.nurses), len(states))
	}
	for i, state := range states {
		if err := state.validate(s.shifts, "history of "+s.nurses[i].Name); err != nil {
			return err
		}
	}
	return nil
}
