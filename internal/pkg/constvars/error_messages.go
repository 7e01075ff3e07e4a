package constvars

// Client-facing messages. Kept deliberately vague for anything the caller
// cannot act on; the DevMessage carries the detail.
const (
	ErrClientCannotProcessRequest          = "Cannot process your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientUpstreamStore                 = "The booking data store is currently unavailable, please try again later"

	ErrClientSlotNotAvailable       = "The requested time slot is not part of this schedule"
	ErrClientSlotAlreadyBooked      = "The requested time slot has already been booked"
	ErrClientReservationInFlight    = "Another reservation for this time slot is already in progress"
	ErrClientReservationNotFound    = "There is no pending reservation for this time slot"
	ErrClientReservationNotOwned    = "The pending reservation belongs to another client"
	ErrClientScheduleMismatch       = "The supplied schedule, service and staff schedule do not belong together"
)

// Developer-facing message fragments.
const (
	ErrDevValidationFailed      = "Request validation failed"
	ErrDevCannotParseJSON       = "Cannot parse JSON request body"
	ErrDevInvalidQueryParam     = "Invalid or missing query parameter: %s"
	ErrDevCreateHTTPRequest     = "Failed to build HTTP request for the CMS store"
	ErrDevSendHTTPRequest       = "Failed to send HTTP request to the CMS store"
	ErrDevDecodeResponse        = "Failed to decode CMS store response for collection: %s"
	ErrDevCmsQueryRows          = "CMS store rejected row query for collection: %s"
	ErrDevCmsGetRow             = "CMS store rejected row fetch for collection: %s"
	ErrDevCmsImportRow          = "CMS store rejected row import for collection: %s"
	ErrDevCmsRowNotFound        = "CMS store has no row %s in collection %s"
	ErrDevRowFieldMissing       = "Row is missing required field: %s"
	ErrDevRowFieldType          = "Row field has unexpected type: %s"
	ErrDevMalformedRow          = "Row in collection %s violates schema invariants"
	ErrDevInvalidFrequency      = "Unknown recurrence frequency: %s"
	ErrDevInvalidTimeZone       = "Unresolvable time zone identifier: %s"
	ErrDevReferentialMismatch   = "Referential mismatch between staff schedule, schedule and service"
	ErrDevSlotNotGenerated      = "Requested time does not match any generated slot"
	ErrDevSlotBooked            = "Requested slot is already booked"
	ErrDevReservationInFlight   = "Reservation lock already held for key"
	ErrDevReservationNotFound   = "No reservation lock held for key"
	ErrDevReservationTokenDiff  = "Reservation lock token does not match supplied token"
	ErrDevServerProcess         = "Server cannot process the request"
	ErrDevRedisLockSet          = "Failed to set reservation lock in redis"
	ErrDevRedisLockGet          = "Failed to read reservation lock from redis"
	ErrDevRedisLockDelete       = "Failed to delete reservation lock from redis"
)
