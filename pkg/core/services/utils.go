package services

import (
	"fmt"

	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/roster"
)

func dayName(day int) string {
	return calendar.DayName(day)
}

// assignmentLabel renders a worked cell as "Early (HeadNurse)", a day off as ""
func assignmentLabel(scn *model.Scenario, a roster.Assignment) string {
	if a.IsOff() {
		return ""
	}
	return fmt.Sprintf("%s (%s)", scn.Shifts().Name(a.Shift), scn.Skills().Name(a.Skill))
}
