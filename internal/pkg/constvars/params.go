package constvars

const (
	URLParamInstanceID = "instance_id"
)

const (
	URLQueryYear        = "year"
	URLQueryMonth       = "month"
	URLQueryDay         = "day"
	URLQueryScheduleIDs = "scheduleIds"
)
