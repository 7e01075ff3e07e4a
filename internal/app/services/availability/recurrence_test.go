package availability

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklyStaffSchedule() models.StaffSchedule {
	return models.StaffSchedule{
		ID:         "staff-sched-1",
		ScheduleID: "sched-1",
		StartDate:  time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  models.TimeOfDay{Hour: 10},
		EndTime:    models.TimeOfDay{Hour: 18},
		TimeZoneID: "America/Los_Angeles",
		Recurrence: models.RecurrenceRule{Frequency: constvars.RecurrenceFrequencyWeekly, Interval: 1},
	}
}

func TestExpandOccurrences_WeeklyIncludesAnchor(t *testing.T) {
	occurrences, err := ExpandOccurrences(weeklyStaffSchedule(), 2024, time.December)
	require.NoError(t, err)
	require.Len(t, occurrences, 5)

	days := make([]int, 0, len(occurrences))
	for _, occ := range occurrences {
		days = append(days, occ.LocalStart.Day())
	}
	assert.Equal(t, []int{2, 9, 16, 23, 30}, days, "the anchor date itself must be the first occurrence")

	// Pacific standard time is eight hours behind UTC in December.
	first := occurrences[0]
	assert.Equal(t, "staff-sched-1", first.StaffScheduleID)
	assert.Equal(t, time.Date(2024, time.December, 2, 18, 0, 0, 0, time.UTC).Unix(), first.UTCStart.Unix())
	assert.Equal(t, time.Date(2024, time.December, 3, 2, 0, 0, 0, time.UTC).Unix(), first.UTCEnd.Unix())
	assert.Equal(t, 2, first.LocalStart.Day())
	assert.Equal(t, 10, first.LocalStart.Hour(), "the local edge carries the schedule's own reading")
	assert.True(t, first.LocalStart.Equal(first.UTCStart), "both edges name the same instant")
}

func TestExpandOccurrences_ConvertsToRealUTC(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	staffSchedule.StartTime = models.TimeOfDay{Hour: 16}
	staffSchedule.EndTime = models.TimeOfDay{Hour: 20}

	occurrences, err := ExpandOccurrences(staffSchedule, 2024, time.December)
	require.NoError(t, err)
	require.Len(t, occurrences, 5)

	// A 16:00 Los Angeles start is already past midnight in UTC.
	first := occurrences[0]
	assert.Equal(t, 2, first.LocalStart.Day())
	assert.Equal(t, 16, first.LocalStart.Hour())
	assert.Equal(t, 3, first.UTCStart.Day())
	assert.Equal(t, 0, first.UTCStart.Hour())
	assert.Equal(t, time.UTC, first.UTCStart.Location())
}

func TestExpandOccurrences_WeeklyLaterMonth(t *testing.T) {
	occurrences, err := ExpandOccurrences(weeklyStaffSchedule(), 2025, time.January)
	require.NoError(t, err)
	require.Len(t, occurrences, 4)

	days := make([]int, 0, len(occurrences))
	for _, occ := range occurrences {
		days = append(days, occ.LocalStart.Day())
	}
	assert.Equal(t, []int{6, 13, 20, 27}, days)
}

func TestExpandOccurrences_DailyCapsAtFive(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	staffSchedule.Recurrence.Frequency = constvars.RecurrenceFrequencyDaily

	occurrences, err := ExpandOccurrences(staffSchedule, 2024, time.December)
	require.NoError(t, err)
	require.Len(t, occurrences, 5, "a month never lists more than five occurrences")
	assert.Equal(t, 2, occurrences[0].LocalStart.Day())
	assert.Equal(t, 6, occurrences[4].LocalStart.Day())
}

func TestExpandOccurrences_MonthBeforeAnchorIsEmpty(t *testing.T) {
	occurrences, err := ExpandOccurrences(weeklyStaffSchedule(), 2024, time.November)
	require.NoError(t, err)
	assert.Empty(t, occurrences)
}

func TestExpandOccurrences_MonthlyPreservesWeekday(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	staffSchedule.Recurrence.Frequency = constvars.RecurrenceFrequencyMonthly

	occurrences, err := ExpandOccurrences(staffSchedule, 2025, time.March)
	require.NoError(t, err)
	require.NotEmpty(t, occurrences)
	for _, occ := range occurrences {
		assert.Equal(t, time.Monday, occ.LocalStart.Weekday())
		assert.Equal(t, time.March, occ.LocalStart.Month())
	}
}

func TestExpandOccurrences_YearlyTerminates(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	staffSchedule.Recurrence.Frequency = constvars.RecurrenceFrequencyYearly

	// A month the 364-day step jumps clean over must come back empty rather
	// than loop forever.
	occurrences, err := ExpandOccurrences(staffSchedule, 2026, time.June)
	require.NoError(t, err)
	assert.Empty(t, occurrences)
}

func TestExpandOccurrences_UnknownFrequency(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	staffSchedule.Recurrence.Frequency = "FORTNIGHTLY"

	_, err := ExpandOccurrences(staffSchedule, 2024, time.December)
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Contains(t, customErr.DevMessage, "FORTNIGHTLY")
}

func TestExpandOccurrences_UnknownTimeZone(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	staffSchedule.TimeZoneID = "Mars/Olympus_Mons"

	_, err := ExpandOccurrences(staffSchedule, 2024, time.December)
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestExpandOccurrences_SortableIDs(t *testing.T) {
	occurrences, err := ExpandOccurrences(weeklyStaffSchedule(), 2024, time.December)
	require.NoError(t, err)
	require.Len(t, occurrences, 5)

	for i := 1; i < len(occurrences); i++ {
		assert.Less(t, occurrences[i-1].ID, occurrences[i].ID,
			"ids of later occurrences must sort after earlier ones")
	}
}
