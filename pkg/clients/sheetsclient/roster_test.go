package sheetsclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTabTitle(t *testing.T) {
	assert.Equal(t, "n005w4 week 2", TabTitle("n005w4", 2, nil))

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{monday, monday.AddDate(0, 0, 6)}
	assert.Equal(t, "n005w4 Mon Mar 10 2025 - Sun Mar 16 2025", TabTitle("n005w4", 1, dates))
}

func TestBuildValues_NewTab(t *testing.T) {
	roster := &PublishedRoster{
		Title: "n003w4 week 0",
		Days:  []string{"Mon", "Tue"},
		Rows: []PublishedRosterRow{
			{Nurse: "Alice", Cells: []string{"Early (HeadNurse)", ""}},
			{Nurse: "Bob", Cells: []string{"Late (Nurse)"}},
		},
	}

	values := buildValues(roster, existingNotes(nil))

	assert.Equal(t, [][]interface{}{
		{"Nurse", "Mon", "Tue", "Notes"},
		{"Alice", "Early (HeadNurse)", "", ""},
		{"Bob", "Late (Nurse)", "", ""},
	}, values)
}

func TestBuildValues_KeepsNotesOfExistingTab(t *testing.T) {
	existing := [][]interface{}{
		{"Nurse", "Mon", "Tue", "Notes"},
		{"Alice", "Night (Nurse)", "", "swapped with Carol"},
		{"Zed", "", "", "left the ward"},
		{"Bob"},
	}
	roster := &PublishedRoster{
		Days: []string{"Mon", "Tue"},
		Rows: []PublishedRosterRow{
			{Nurse: "Alice", Cells: []string{"Early (HeadNurse)", "Early (HeadNurse)"}},
			{Nurse: "Bob", Cells: []string{"", ""}},
		},
	}

	values := buildValues(roster, existingNotes(existing))

	assert.Equal(t, []interface{}{"Alice", "Early (HeadNurse)", "Early (HeadNurse)", "swapped with Carol"}, values[1])
	assert.Equal(t, []interface{}{"Bob", "", "", ""}, values[2])
	assert.Len(t, values, 3)
}

func TestExistingNotes_WithoutNotesColumn(t *testing.T) {
	existing := [][]interface{}{
		{"Nurse", "Mon"},
		{"Alice", "Early"},
	}
	assert.Empty(t, existingNotes(existing))
}
