package availability

import (
	"booking-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayOccurrence(startHour, endHour int) models.Occurrence {
	la, _ := time.LoadLocation("America/Los_Angeles")
	localStart := time.Date(2024, time.December, 2, startHour, 0, 0, 0, la)
	localEnd := time.Date(2024, time.December, 2, endHour, 0, 0, 0, la)
	return models.Occurrence{
		ID:              "occ-1",
		StaffScheduleID: "staff-sched-1",
		TimeZoneID:      "America/Los_Angeles",
		UTCStart:        localStart.UTC(),
		UTCEnd:          localEnd.UTC(),
		LocalStart:      localStart,
		LocalEnd:        localEnd,
	}
}

func TestBuildSlots_CursorWalk(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	schedule := models.Schedule{ID: "sched-1", ServiceID: "svc-1", DurationMinutes: 45, BreakMinutes: 15}

	slots := BuildSlots(dayOccurrence(10, 18), staffSchedule, schedule, nil)
	require.Len(t, slots, 8, "an 8 hour window with a 60 minute stride yields 8 slots")

	first := slots[0]
	assert.Equal(t, "staff-sched-1", first.StaffScheduleID)
	assert.Equal(t, "sched-1", first.ScheduleID)
	assert.Equal(t, "svc-1", first.ServiceID)
	assert.Equal(t, 10, first.UTCStart.Hour())
	assert.Equal(t, 45, first.UTCEnd.Minute())
	assert.False(t, first.Booked)

	last := slots[len(slots)-1]
	assert.Equal(t, 17, last.UTCStart.Hour())
}

func TestBuildSlots_ZeroBreakFillsWindow(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	schedule := models.Schedule{ID: "sched-1", ServiceID: "svc-1", DurationMinutes: 60, BreakMinutes: 0}

	slots := BuildSlots(dayOccurrence(10, 18), staffSchedule, schedule, nil)
	require.Len(t, slots, 8)
	assert.Equal(t, time.Date(2024, time.December, 2, 18, 0, 0, 0, time.UTC), slots[len(slots)-1].UTCEnd,
		"with no break the last slot ends exactly at the window's end")
}

func TestBuildSlots_PartialStrideDropped(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	schedule := models.Schedule{ID: "sched-1", ServiceID: "svc-1", DurationMinutes: 50, BreakMinutes: 20}

	// 480 minutes / 70 minute stride: the seventh slot would need 70 more
	// minutes at 07:00 into the window, which no longer fits.
	slots := BuildSlots(dayOccurrence(10, 18), staffSchedule, schedule, nil)
	assert.Len(t, slots, 6)
}

func TestBuildSlots_BookedInstantFlagsOneSlot(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	schedule := models.Schedule{ID: "sched-1", ServiceID: "svc-1", DurationMinutes: 45, BreakMinutes: 15}

	booked := []time.Time{time.Date(2024, time.December, 2, 11, 0, 0, 0, time.UTC)}
	slots := BuildSlots(dayOccurrence(10, 18), staffSchedule, schedule, booked)
	require.Len(t, slots, 8)

	for i, slot := range slots {
		if i == 1 {
			assert.True(t, slot.Booked, "the 11:00 slot holds the booked instant")
			continue
		}
		assert.False(t, slot.Booked, "slot %d must stay free", i)
	}
}

func TestBuildSlots_BoundaryInstantFlagsBothNeighbours(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	schedule := models.Schedule{ID: "sched-1", ServiceID: "svc-1", DurationMinutes: 60, BreakMinutes: 0}

	// 11:00 is both the end of the 10:00 slot and the start of the 11:00 one;
	// the overlap check includes both boundaries.
	booked := []time.Time{time.Date(2024, time.December, 2, 11, 0, 0, 0, time.UTC)}
	slots := BuildSlots(dayOccurrence(10, 18), staffSchedule, schedule, booked)
	require.Len(t, slots, 8)

	assert.True(t, slots[0].Booked)
	assert.True(t, slots[1].Booked)
	assert.False(t, slots[2].Booked)
}

func TestBuildSlots_WindowTooSmall(t *testing.T) {
	staffSchedule := weeklyStaffSchedule()
	schedule := models.Schedule{ID: "sched-1", ServiceID: "svc-1", DurationMinutes: 90, BreakMinutes: 0}

	slots := BuildSlots(dayOccurrence(10, 11), staffSchedule, schedule, nil)
	assert.Empty(t, slots)
}
