package requests

// BeginReservation claims a slot before the booking is persisted. The
// ReservationToken is an opaque client-chosen value that the matching commit
// must present again.
type BeginReservation struct {
	StaffScheduleID  string `json:"staffScheduleId" validate:"required"`
	ScheduleID       string `json:"scheduleId" validate:"required"`
	ServiceID        string `json:"serviceId" validate:"required"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string `json:"time" validate:"required,datetime=15:04:05"`
	ReservationToken string `json:"reservationToken" validate:"required"`
}

type CommitReservation struct {
	StaffScheduleID  string `json:"staffScheduleId" validate:"required"`
	ScheduleID       string `json:"scheduleId" validate:"required"`
	ServiceID        string `json:"serviceId" validate:"required"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string `json:"time" validate:"required,datetime=15:04:05"`
	ReservationToken string `json:"reservationToken" validate:"required"`

	ContactID    string `json:"contactId" validate:"required"`
	SubmissionID string `json:"submissionId"`
}

// AbortReservation releases a pending claim. Only the lock identity is needed;
// aborting an absent reservation is a no-op.
type AbortReservation struct {
	ScheduleID string `json:"scheduleId" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
}
