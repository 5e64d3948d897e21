package sheetsclient

import (
	"context"
	"fmt"
	"time"
)

// Column headers of a published roster tab
const (
	NurseColumn = "Nurse"
	NotesColumn = "Notes"
)

// PublishedRosterRow is one nurse's week
type PublishedRosterRow struct {
	Nurse string
	Cells []string // one per day, "" for a day off
}

// PublishedRoster is the grid written to a roster tab
type PublishedRoster struct {
	Title string
	Days  []string // column headers, one per day
	Rows  []PublishedRosterRow
}

// TabTitle names the tab of week of scenario, with the week's dates when known
func TabTitle(scenario string, week int, dates []time.Time) string {
	if len(dates) == 0 {
		return fmt.Sprintf("%s week %d", scenario, week)
	}
	return fmt.Sprintf("%s %s - %s", scenario,
		dates[0].Format("Mon Jan 02 2006"),
		dates[len(dates)-1].Format("Mon Jan 02 2006"))
}

// PublishRoster writes roster to its tab, creating the tab if needed. When the
// tab exists, the Notes column is kept for every nurse still on the roster.
func (c *Client) PublishRoster(ctx context.Context, spreadsheetID string, roster *PublishedRoster) error {
	exists, err := c.HasSheet(ctx, spreadsheetID, roster.Title)
	if err != nil {
		return err
	}

	var existing [][]interface{}
	if exists {
		existing, err = c.GetValues(ctx, spreadsheetID, fmt.Sprintf("%s!A1:ZZ", roster.Title))
		if err != nil {
			return fmt.Errorf("failed to read existing tab data: %w", err)
		}
	} else if _, err := c.CreateSheet(ctx, spreadsheetID, roster.Title); err != nil {
		return fmt.Errorf("failed to create tab: %w", err)
	}

	values := buildValues(roster, existingNotes(existing))
	if err := c.UpdateValues(ctx, spreadsheetID, fmt.Sprintf("%s!A1", roster.Title), values); err != nil {
		return fmt.Errorf("failed to write roster tab: %w", err)
	}

	return nil
}

// buildValues lays out the header row and one row per nurse, ending with the notes column
func buildValues(roster *PublishedRoster, notes map[string]interface{}) [][]interface{} {
	header := []interface{}{NurseColumn}
	for _, day := range roster.Days {
		header = append(header, day)
	}
	header = append(header, NotesColumn)

	values := [][]interface{}{header}
	for _, row := range roster.Rows {
		sheetRow := []interface{}{row.Nurse}
		for i := range roster.Days {
			cell := ""
			if i < len(row.Cells) {
				cell = row.Cells[i]
			}
			sheetRow = append(sheetRow, cell)
		}

		note, ok := notes[row.Nurse]
		if !ok {
			note = ""
		}
		sheetRow = append(sheetRow, note)
		values = append(values, sheetRow)
	}

	return values
}

// existingNotes maps nurse names to their Notes cell in a previously written tab
func existingNotes(existing [][]interface{}) map[string]interface{} {
	notes := make(map[string]interface{})
	if len(existing) == 0 {
		return notes
	}

	nurseCol := findColumnIndex(existing[0], NurseColumn)
	notesCol := findColumnIndex(existing[0], NotesColumn)
	if nurseCol == -1 || notesCol == -1 {
		return notes
	}

	for _, row := range existing[1:] {
		if nurseCol >= len(row) || notesCol >= len(row) {
			continue
		}
		if nurse, ok := row[nurseCol].(string); ok && nurse != "" {
			notes[nurse] = row[notesCol]
		}
	}
	return notes
}

// findColumnIndex finds the index of a column by its header name
func findColumnIndex(header []interface{}, columnName string) int {
	for i, cell := range header {
		if str, ok := cell.(string); ok && str == columnName {
			return i
		}
	}
	return -1
}
