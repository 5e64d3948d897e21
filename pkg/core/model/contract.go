package model

import (
	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

// Bounds is an inclusive [Min, Max] pair
type Bounds struct {
	Min int
	Max int
}

func (b Bounds) validate(contract, what string) error {
	if b.Min < 0 || b.Max < 0 {
		return errs.InvalidConfiguration("contract "+contract, "negative %s bound (%d,%d)", what, b.Min, b.Max)
	}
	if b.Min > b.Max {
		return errs.InvalidConfiguration("contract "+contract, "min %s %d greater than max %d", what, b.Min, b.Max)
	}
	return nil
}

// Contract is a class of employment rules shared by one or more nurses
type Contract struct {
	name             string
	totalShifts      Bounds
	consDaysWork     Bounds
	consDaysOff      Bounds
	maxTotalWeekends int
	completeWeekends bool
}

// NewContract validates and builds a contract.
// Fails with InvalidConfiguration if a bound is negative or any min exceeds its max.
func NewContract(name string, totalShifts, consDaysWork, consDaysOff Bounds, maxTotalWeekends int, completeWeekends bool) (Contract, error) {
	if name == "" {
		return Contract{}, errs.InvalidConfiguration("contract", "empty contract name")
	}
	if err := totalShifts.validate(name, "total shifts"); err != nil {
		return Contract{}, err
	}
	if err := consDaysWork.validate(name, "consecutive work days"); err != nil {
		return Contract{}, err
	}
	if err := consDaysOff.validate(name, "consecutive days off"); err != nil {
		return Contract{}, err
	}
	if maxTotalWeekends < 0 {
		return Contract{}, errs.InvalidConfiguration("contract "+name, "negative max total weekends %d", maxTotalWeekends)
	}

	return Contract{
		name:             name,
		totalShifts:      totalShifts,
		consDaysWork:     consDaysWork,
		consDaysOff:      consDaysOff,
		maxTotalWeekends: maxTotalWeekends,
		completeWeekends: completeWeekends,
	}, nil
}

func (c Contract) Name() string { return c.name }
func (c Contract) MinTotalShifts() int { return c.totalShifts.Min }
func (c Contract) MaxTotalShifts() int { return c.totalShifts.Max }
func (c Contract) MinConsDaysWork() int { return c.consDaysWork.Min }
func (c Contract) MaxConsDaysWork() int { return c.consDaysWork.Max }
func (c Contract) MinConsDaysOff() int { return c.consDaysOff.Min }
func (c Contract) MaxConsDaysOff() int { return c.consDaysOff.Max }
func (c Contract) MaxTotalWeekends() int { return c.maxTotalWeekends }
func (c Contract) CompleteWeekends() bool { return c.completeWeekends }
func (c Contract) TotalShifts() Bounds { return c.totalShifts }
func (c Contract) ConsDaysWork() Bounds { return c.consDaysWork }
func (c Contract) ConsDaysOff() Bounds { return c.consDaysOff }

// Equal compares two contracts field by field
func (c Contract) Equal(other Contract) bool {
	return c == other
}
