package model

import (
	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

// DemandCell addresses one (day, shift, skill) entry of a demand tensor
type DemandCell struct {
	Day   int
	Shift int
	Skill int
}

// Demand holds the minimum and optimum staffing of one week, indexed by
// (day, shift, skill). Both tensors have shape 7 x shifts x skills.
type Demand struct {
	nbShifts int
	nbSkills int
	min      []int
	opt      []int
}

// NewDemand validates the shape of both tensors and copies them.
// Fails with InvalidConfiguration if a tensor is not 7 x nbShifts x nbSkills or
// holds a negative count. An optimum below the minimum is accepted.
func NewDemand(min, opt [][][]int, nbShifts, nbSkills int) (Demand, error) {
	flatMin, err := flattenDemand("minimum demand", min, nbShifts, nbSkills)
	if err != nil {
		return Demand{}, err
	}
	flatOpt, err := flattenDemand("optimum demand", opt, nbShifts, nbSkills)
	if err != nil {
		return Demand{}, err
	}

	return Demand{
		nbShifts: nbShifts,
		nbSkills: nbSkills,
		min:      flatMin,
		opt:      flatOpt,
	}, nil
}

// NewEmptyDemand returns a demand of the right shape with every count at zero
func NewEmptyDemand(nbShifts, nbSkills int) Demand {
	size := calendar.DaysPerWeek * nbShifts * nbSkills
	return Demand{
		nbShifts: nbShifts,
		nbSkills: nbSkills,
		min:      make([]int, size),
		opt:      make([]int, size),
	}
}

func flattenDemand(source string, tensor [][][]int, nbShifts, nbSkills int) ([]int, error) {
	if len(tensor) != calendar.DaysPerWeek {
		return nil, errs.InvalidConfiguration(source, "expected %d days, got %d", calendar.DaysPerWeek, len(tensor))
	}

	flat := make([]int, 0, calendar.DaysPerWeek*nbShifts*nbSkills)
	for day, perShift := range tensor {
		if len(perShift) != nbShifts {
			return nil, errs.InvalidConfiguration(source, "day %d: expected %d shifts, got %d", day, nbShifts, len(perShift))
		}
		for shift, perSkill := range perShift {
			if len(perSkill) != nbSkills {
				return nil, errs.InvalidConfiguration(source, "day %d shift %d: expected %d skills, got %d", day, shift, nbSkills, len(perSkill))
			}
			for skill, count := range perSkill {
				if count < 0 {
					return nil, errs.InvalidConfiguration(source, "day %d shift %d skill %d: negative count %d", day, shift, skill, count)
				}
				flat = append(flat, count)
			}
		}
	}

	return flat, nil
}

func (d Demand) offset(day, shift, skill int) int {
	return (day*d.nbShifts+shift)*d.nbSkills + skill
}

// Min returns the minimum number of nurses with skill required on (day, shift).
// A zero Demand requires nobody.
func (d Demand) Min(day, shift, skill int) int {
	if d.IsZero() {
		return 0
	}
	return d.min[d.offset(day, shift, skill)]
}

// Opt returns the optimum number of nurses with skill on (day, shift)
func (d Demand) Opt(day, shift, skill int) int {
	if d.IsZero() {
		return 0
	}
	return d.opt[d.offset(day, shift, skill)]
}

// Shape returns the tensor dimensions (days, shifts, skills)
func (d Demand) Shape() (int, int, int) {
	return calendar.DaysPerWeek, d.nbShifts, d.nbSkills
}

// IsZero reports whether the demand was never set
func (d Demand) IsZero() bool {
	return d.min == nil
}

// MinTensor returns a copy of the minimum demand as a nested slice
func (d Demand) MinTensor() [][][]int {
	return d.unflatten(d.min)
}

// OptTensor returns a copy of the optimum demand as a nested slice
func (d Demand) OptTensor() [][][]int {
	return d.unflatten(d.opt)
}

func (d Demand) unflatten(flat []int) [][][]int {
	if flat == nil {
		return nil
	}
	tensor := make([][][]int, calendar.DaysPerWeek)
	for day := range tensor {
		tensor[day] = make([][]int, d.nbShifts)
		for shift := range tensor[day] {
			start := d.offset(day, shift, 0)
			tensor[day][shift] = append([]int(nil), flat[start:start+d.nbSkills]...)
		}
	}
	return tensor
}

// Inconsistencies returns the cells where the optimum is below the minimum.
// Such input is tolerated; callers decide whether to report it.
func (d Demand) Inconsistencies() []DemandCell {
	var cells []DemandCell
	for day := 0; day < calendar.DaysPerWeek; day++ {
		for shift := 0; shift < d.nbShifts; shift++ {
			for skill := 0; skill < d.nbSkills; skill++ {
				if d.Opt(day, shift, skill) < d.Min(day, shift, skill) {
					cells = append(cells, DemandCell{Day: day, Shift: shift, Skill: skill})
				}
			}
		}
	}
	return cells
}
