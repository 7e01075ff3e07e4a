package models

import "time"

// Booking is a persisted @booking/bookings row. The core only ever appends
// bookings; it never mutates or deletes them.
type Booking struct {
	ID string

	// BookDate carries the slot's wall-clock reading under the store's zero
	// offset convention; its calendar date is what the day-window filter
	// matches against.
	BookDate time.Time

	BookingKey      string
	DurationMinutes int

	ServiceID       string
	StaffScheduleID string
	ContactID       string
	SubmissionID    string
}
