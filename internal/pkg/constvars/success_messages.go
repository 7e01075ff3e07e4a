package constvars

const (
	ResponseUnknown = "unknown"

	AvailableDaysGetSuccess  = "available days fetched successfully"
	AvailableHoursGetSuccess = "available hours fetched successfully"

	ReservationBeginSuccess  = "reservation started successfully"
	ReservationCommitSuccess = "reservation committed successfully"
	ReservationAbortSuccess  = "reservation aborted successfully"
)
