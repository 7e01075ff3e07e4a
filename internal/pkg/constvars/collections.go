package constvars

// Collection names owned by the external CMS row store. The store namespaces
// every addon collection under "@booking".
const (
	CollectionNamespace = "@booking"

	CollectionStaffSchedule = "staffSchedule"
	CollectionSchedule      = "schedule"
	CollectionServices      = "services"
	CollectionBookings      = "bookings"
)

// Field names of the staffSchedule collection.
const (
	FieldStartDay       = "startDay"
	FieldStart          = "start"
	FieldEnd            = "end"
	FieldTimeZone       = "timeZone"
	FieldRecurrenceRule = "recurrenceRule"
	FieldSchedule       = "schedule"
)

// Field names of the schedule collection.
const (
	FieldService  = "service"
	FieldDuration = "duration"
	FieldBreak    = "break"
)

// Field names of the services collection.
const (
	FieldName = "name"
	FieldType = "type"
)

// Field names of the bookings collection.
const (
	FieldBookDate      = "bookDate"
	FieldBookKey       = "bookID"
	FieldBookDuration  = "duration"
	FieldStaffSchedule = "staffSchedule"
	FieldContact       = "contact"
	FieldSubmission    = "submission"
)

const (
	RecurrenceFrequencyDaily   = "DAILY"
	RecurrenceFrequencyWeekly  = "WEEKLY"
	RecurrenceFrequencyMonthly = "MONTHLY"
	RecurrenceFrequencyYearly  = "YEARLY"
)

const (
	FilterCondGreaterOrEqual = "gte"
	FilterCondLessOrEqual    = "lte"
)
