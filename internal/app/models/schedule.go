package models

import "time"

// RecurrenceRule describes how a staff schedule repeats. Interval is stored by
// the CMS but every supported frequency currently treats it as 1; Days is
// informational only.
type RecurrenceRule struct {
	Frequency string
	Interval  int
	Days      []string
}

// StaffSchedule is the typed shape of a @booking/staffSchedule row: the
// recurring working window of one staff member, anchored to a start date and
// expressed in the staff member's own time zone. EndTime is always strictly
// after StartTime on the same day; overnight windows are not supported.
type StaffSchedule struct {
	ID         string
	ScheduleID string

	StartDate  time.Time // calendar date only, midnight local
	StartTime  TimeOfDay
	EndTime    TimeOfDay
	TimeZoneID string

	Recurrence RecurrenceRule
}

// WindowDuration is the length of one working window.
func (s StaffSchedule) WindowDuration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Schedule is the typed shape of a @booking/schedule row: the bookable service
// definition, slot duration plus the break between consecutive slots.
// Duration is always positive, Break never negative.
type Schedule struct {
	ID        string
	ServiceID string

	DurationMinutes int
	BreakMinutes    int
}

func (s Schedule) SlotDuration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

func (s Schedule) SlotStride() time.Duration {
	return time.Duration(s.DurationMinutes+s.BreakMinutes) * time.Minute
}

// Service is the typed shape of a @booking/services row. Only descriptive
// fields live here; the slot math comes from Schedule.
type Service struct {
	ID   string
	Name string
	Type string
}
