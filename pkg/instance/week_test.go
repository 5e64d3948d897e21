package instance

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jakechorley/nurse-roster/pkg/core/errs"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	mt "github.com/jakechorley/nurse-roster/pkg/core/model/modeltest"
)

const weekFile = "testdata/WD-n003w4-0.txt"

func TestLoadWeek_Lenient(t *testing.T) {
	scn := loadTestScenario(t)
	core, logs := observer.New(zap.WarnLevel)

	data, err := LoadWeek(weekFile, scn, Options{Logger: zap.New(core)})
	require.NoError(t, err)

	assert.Equal(t, "WD-n003w4-0", data.Name)
	assert.Equal(t, 1, data.Min[0][mt.Early][mt.HeadNurse])
	assert.Equal(t, 2, data.Opt[0][mt.Early][mt.Nurse])
	assert.Equal(t, 0, data.Min[5][mt.Late][mt.Nurse])
	assert.Equal(t, 2, data.Min[6][mt.Night][mt.Nurse])
	assert.Equal(t, 1, data.Opt[6][mt.Night][mt.Nurse])

	// "Any" expands to every shift, the unknown nurse is skipped
	assert.Equal(t, 4, data.Preferences.Count())
	for shift := 0; shift < scn.NbShifts(); shift++ {
		assert.True(t, data.Preferences.RequestsOff(mt.Bob, 5, shift))
	}
	assert.True(t, data.Preferences.RequestsOff(mt.Alice, 4, mt.Late))
	assert.Equal(t, 1, data.Skipped)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Skipping shift-off request", entry.Message)
	assert.Equal(t, "unknown nurse", entry.ContextMap()["reason"])
	assert.Equal(t, "Zed", entry.ContextMap()["nurse"])
}

func TestWeekData_Apply(t *testing.T) {
	scn := loadTestScenario(t)
	data, err := LoadWeek(weekFile, scn, Options{})
	require.NoError(t, err)

	require.NoError(t, data.Apply(scn))
	require.NoError(t, scn.SetWeekIndex(0))

	name, err := scn.WeekName()
	require.NoError(t, err)
	assert.Equal(t, "WD-n003w4-0", name)

	demand, err := scn.Demand()
	require.NoError(t, err)
	assert.Equal(t, []model.DemandCell{{Day: 6, Shift: mt.Night, Skill: mt.Nurse}}, demand.Inconsistencies())

	prefs, err := scn.Preferences()
	require.NoError(t, err)
	assert.Equal(t, 4, prefs.Count())
}

func TestWeekData_ApplyRejectedLeavesWeekUnchanged(t *testing.T) {
	scn := loadTestScenario(t)
	data, err := LoadWeek(weekFile, scn, Options{})
	require.NoError(t, err)
	require.NoError(t, data.Apply(scn))
	require.NoError(t, scn.SetWeekIndex(0))
	before, err := scn.Demand()
	require.NoError(t, err)
	beforeMin := before.MinTensor()

	next, err := LoadWeek(weekFile, scn, Options{})
	require.NoError(t, err)
	next.Name = "WD-n003w4-1"
	next.Min[0][0][0] = 7
	next.Preferences.Add(99, 0, mt.Early)

	err = next.Apply(scn)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidConfiguration))

	name, err := scn.WeekName()
	require.NoError(t, err)
	assert.Equal(t, "WD-n003w4-0", name)

	demand, err := scn.Demand()
	require.NoError(t, err)
	assert.Equal(t, beforeMin, demand.MinTensor())

	prefs, err := scn.Preferences()
	require.NoError(t, err)
	assert.Equal(t, 4, prefs.Count())
}

func TestLoadWeek_Strict(t *testing.T) {
	scn := loadTestScenario(t)

	_, err := LoadWeek(weekFile, scn, Options{Strict: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMalformedInput))
	assert.Contains(t, err.Error(), "WD-n003w4-0.txt:15")
	assert.Contains(t, err.Error(), "unknown nurse")
}

func readWeekString(t *testing.T, input string, opts Options) (*WeekData, error) {
	t.Helper()
	return ReadWeek(strings.NewReader(input), "WD-n003w4-9.txt", loadTestScenario(t), opts)
}

func weekFixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(weekFile)
	require.NoError(t, err)
	return string(b)
}

func TestReadWeek_LenientSkipsUnknownDayAndShift(t *testing.T) {
	input := strings.Replace(weekFixture(t), "Zed Early Mon", "Bob Early Funday", 1)
	input = strings.Replace(input, "Alice Late Fri", "Alice Evening Fri", 1)

	data, err := readWeekString(t, input, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, data.Skipped)
	assert.Equal(t, 3, data.Preferences.Count())
}

func TestReadWeek_RequestFieldCount(t *testing.T) {
	input := strings.Replace(weekFixture(t), "Alice Late Fri", "Alice Late", 1)

	tests := []struct {
		name    string
		strict  bool
		wantErr bool
	}{
		{name: "lenient skips the request", strict: false},
		{name: "strict rejects the file", strict: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			data, err := readWeekString(t, input, Options{Strict: tt.strict, Logger: zap.New(core)})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errs.ErrMalformedInput))
				assert.Contains(t, err.Error(), "got 2 fields")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 2, data.Skipped)
			assert.Equal(t, 3, data.Preferences.Count())
			assert.False(t, data.Preferences.RequestsOff(mt.Alice, 4, mt.Late))

			require.Equal(t, 2, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, "malformed request", entry.ContextMap()["reason"])
			assert.Equal(t, "Alice Late", entry.ContextMap()["request"])
		})
	}
}

func TestReadWeek_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{name: "wrong scenario", replace: [2]string{"n003w4\n", "other\n"}},
		{name: "missing requirements keyword", replace: [2]string{"REQUIREMENTS\n", ""}},
		{name: "missing requirement row", replace: [2]string{"Late HeadNurse (0,0) (0,0) (0,0) (0,0) (0,0) (0,0) (0,0)\n", ""}},
		{name: "duplicate requirement row", replace: [2]string{"Late HeadNurse", "Early HeadNurse"}},
		{name: "unknown requirement shift", replace: [2]string{"Late HeadNurse", "Evening HeadNurse"}},
		{name: "six days of demand", replace: [2]string{"Late Nurse (1,1) (1,1) (1,1) (1,1) (1,1) (0,1) (0,1)", "Late Nurse (1,1) (1,1) (1,1) (1,1) (1,1) (0,1)"}},
		{name: "demand not a pair", replace: [2]string{"Late Nurse (1,1)", "Late Nurse (1-1)"}},
		{name: "negative demand", replace: [2]string{"Late Nurse (1,1)", "Late Nurse (-1,1)"}},
		{name: "request count too high", replace: [2]string{"SHIFT_OFF_REQUESTS = 3", "SHIFT_OFF_REQUESTS = 4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := weekFixture(t)
			input := strings.Replace(fixture, tt.replace[0], tt.replace[1], 1)
			require.NotEqual(t, fixture, input)

			_, err := readWeekString(t, input, Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrMalformedInput), err.Error())
		})
	}
}

func TestWeekName(t *testing.T) {
	assert.Equal(t, "WD-n005w4-1", WeekName("data/n005w4/WD-n005w4-1.txt"))
	assert.Equal(t, "week", WeekName("week"))
}
