package models

import "time"

// Occurrence is one concrete calendar instance of a recurring staff schedule.
// Occurrences are computed on demand and never persisted. UTCStart and UTCEnd
// are the real UTC conversions of LocalStart and LocalEnd.
type Occurrence struct {
	ID              string
	StaffScheduleID string
	TimeZoneID      string

	UTCStart   time.Time
	UTCEnd     time.Time
	LocalStart time.Time
	LocalEnd   time.Time
}

// Slot is a bookable sub-interval of an occurrence's working window, computed
// per request and re-derivable from the same inputs. Slot instants keep the
// schedule's wall-clock reading under a zero offset, matching the stored
// bookDate convention.
type Slot struct {
	StaffScheduleID string
	ScheduleID      string
	ServiceID       string

	UTCStart time.Time
	UTCEnd   time.Time
	Booked   bool
}

// StartTimeOfDay is the slot's wall-clock start, used to match a client's
// requested reservation time against the generated list.
func (s Slot) StartTimeOfDay() TimeOfDay {
	return TimeOfDayFrom(s.UTCStart)
}
