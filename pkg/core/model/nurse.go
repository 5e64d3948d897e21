package model

import "slices"

// Nurse is one staff member
type Nurse struct {
	Name string

	// ContractIndex references the scenario's contract table
	ContractIndex int

	// Skills are indices into the scenario's skill catalogue
	Skills []int

	// contract is bound by NewScenario to the scenario-owned contract
	contract *Contract
}

// HasSkill reports whether the nurse holds skill
func (n Nurse) HasSkill(skill int) bool {
	return slices.Contains(n.Skills, skill)
}

// Contract returns the nurse's contract. The zero Contract is returned for a
// nurse that was not obtained from a Scenario.
func (n Nurse) Contract() Contract {
	if n.contract == nil {
		return Contract{}
	}
	return *n.contract
}

func (n Nurse) MinTotalShifts() int { return n.Contract().MinTotalShifts() }
func (n Nurse) MaxTotalShifts() int { return n.Contract().MaxTotalShifts() }
func (n Nurse) MinConsDaysWork() int { return n.Contract().MinConsDaysWork() }
func (n Nurse) MaxConsDaysWork() int { return n.Contract().MaxConsDaysWork() }
func (n Nurse) MinConsDaysOff() int { return n.Contract().MinConsDaysOff() }
func (n Nurse) MaxConsDaysOff() int { return n.Contract().MaxConsDaysOff() }
func (n Nurse) MaxTotalWeekends() int { return n.Contract().MaxTotalWeekends() }
func (n Nurse) CompleteWeekends() bool { return n.Contract().CompleteWeekends() }

func (n Nurse) clone() Nurse {
	n.Skills = slices.Clone(n.Skills)
	return n
}
