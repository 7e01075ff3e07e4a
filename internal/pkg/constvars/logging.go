package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingInstanceIDKey      = "instance_id"
	LoggingStaffScheduleIDKey = "staff_schedule_id"
	LoggingScheduleIDKey      = "schedule_id"
	LoggingServiceIDKey       = "service_id"
	LoggingLockKey            = "lock_key"
	LoggingLockTokenKey       = "lock_token"
	LoggingCollectionKey      = "collection"
	LoggingSlotCountKey       = "slot_count"
	LoggingOccurrenceCountKey = "occurrence_count"
)

type ContextKey string

const (
	ContextRequestIDKey ContextKey = "request_id"
)
