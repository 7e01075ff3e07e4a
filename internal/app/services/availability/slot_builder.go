package availability

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/utils"
	"time"
)

// BuildSlots cuts one occurrence's working window into bookable slots. The
// cursor advances by duration plus break, and a slot is emitted only while the
// full stride still fits before the window's end. A slot is booked when any
// booked instant falls inside its service interval, boundaries included.
//
// Slot instants carry the schedule's wall-clock reading under a zero offset,
// the same convention the stored bookDate text uses.
func BuildSlots(occurrence models.Occurrence, staffSchedule models.StaffSchedule, schedule models.Schedule, bookedStarts []time.Time) []models.Slot {
	duration := schedule.SlotDuration()
	stride := schedule.SlotStride()

	windowEnd := utils.AsUTCWallClock(occurrence.LocalEnd)

	var slots []models.Slot
	for cursor := utils.AsUTCWallClock(occurrence.LocalStart); !cursor.Add(stride).After(windowEnd); cursor = cursor.Add(stride) {
		slotEnd := cursor.Add(duration)

		booked := false
		for _, b := range bookedStarts {
			if !b.Before(cursor) && !b.After(slotEnd) {
				booked = true
				break
			}
		}

		slots = append(slots, models.Slot{
			StaffScheduleID: staffSchedule.ID,
			ScheduleID:      schedule.ID,
			ServiceID:       schedule.ServiceID,
			UTCStart:        cursor,
			UTCEnd:          slotEnd,
			Booked:          booked,
		})
	}
	return slots
}
