package criteria

import (
	"fmt"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/evaluator"
)

// MissingSkillCriterion rejects assignments to a skill the nurse does not hold
type MissingSkillCriterion struct{}

// NewMissingSkillCriterion creates a new MissingSkillCriterion
func NewMissingSkillCriterion() *MissingSkillCriterion {
	return &MissingSkillCriterion{}
}

func (c *MissingSkillCriterion) Name() string {
	return "MissingSkill"
}

func (c *MissingSkillCriterion) IsHard() bool {
	return true
}

func (c *MissingSkillCriterion) Weight() int {
	return 0
}

func (c *MissingSkillCriterion) Validate(week *evaluator.WeekState) []evaluator.Violation {
	var violations []evaluator.Violation
	skills := week.Scenario.Skills()

	for _, entry := range week.Roster.Entries() {
		nurse := week.Scenario.Nurse(entry.Nurse)
		if nurse.HasSkill(entry.Skill) {
			continue
		}
		violations = append(violations, evaluator.Violation{
			CriterionName: c.Name(),
			Nurse:         entry.Nurse,
			Day:           entry.Day,
			Description:   fmt.Sprintf("%s is assigned as %s on %s without that skill", nurse.Name, skills.Name(entry.Skill), calendar.DayName(entry.Day)),
		})
	}

	return violations
}
