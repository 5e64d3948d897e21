package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/nurse-roster/pkg/core/calendar"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/roster"
)

// RosterSheets writes roster grids to a spreadsheet
type RosterSheets interface {
	PublishRoster(ctx context.Context, spreadsheetID string, roster *sheetsclient.PublishedRoster) error
}

// PublishRoster writes the roster of the scenario's current week to its own tab
// of the spreadsheet. With a zero start the columns are day names, otherwise
// dates of the horizon starting on start.
func PublishRoster(
	ctx context.Context,
	scn *model.Scenario,
	r *roster.Roster,
	sheets RosterSheets,
	spreadsheetID string,
	start time.Time,
	logger *zap.Logger,
) (*sheetsclient.PublishedRoster, error) {
	week, err := scn.ThisWeek()
	if err != nil {
		return nil, err
	}
	if r.NbNurses() != scn.NbNurses() {
		return nil, fmt.Errorf("roster has %d nurses, scenario has %d", r.NbNurses(), scn.NbNurses())
	}

	published, err := buildPublishedRoster(scn, r, week, start)
	if err != nil {
		return nil, err
	}

	logger.Debug("Publishing roster",
		zap.String("spreadsheetID", spreadsheetID),
		zap.String("tab", published.Title))

	if err := sheets.PublishRoster(ctx, spreadsheetID, published); err != nil {
		return nil, fmt.Errorf("failed to publish roster: %w", err)
	}

	logger.Info("Roster published", zap.String("tab", published.Title), zap.Int("nurses", len(published.Rows)))
	return published, nil
}

func buildPublishedRoster(scn *model.Scenario, r *roster.Roster, week int, start time.Time) (*sheetsclient.PublishedRoster, error) {
	var dates []time.Time
	days := calendar.DayNames()
	if !start.IsZero() {
		var err error
		dates, err = calendar.WeekDates(start, week)
		if err != nil {
			return nil, fmt.Errorf("failed to compute week dates: %w", err)
		}
		for i, date := range dates {
			days[i] = date.Format("Mon 02 Jan")
		}
	}

	published := &sheetsclient.PublishedRoster{
		Title: sheetsclient.TabTitle(scn.Name(), week, dates),
		Days:  days,
	}
	for n, nurse := range scn.Nurses() {
		row := sheetsclient.PublishedRosterRow{Nurse: nurse.Name, Cells: make([]string, calendar.DaysPerWeek)}
		for day := range row.Cells {
			row.Cells[day] = assignmentLabel(scn, r.AssignmentOf(n, day))
		}
		published.Rows = append(published.Rows, row)
	}
	return published, nil
}
