package responses

// DayEdge carries both readings of an occurrence boundary: the UTC one for
// machine consumption and the local one for display.
type DayEdge struct {
	DateUTC   string `json:"dateUtc"`
	TimeUTC   string `json:"timeUtc"`
	DateLocal string `json:"dateLocal"`
	TimeLocal string `json:"timeLocal"`
}

type AvailableDay struct {
	ID              string `json:"id"`
	StaffScheduleID string `json:"staffScheduleId"`
	TimeZone        string `json:"timeZone"`

	Start DayEdge `json:"start"`
	End   DayEdge `json:"end"`

	MonthUTC int `json:"monthUtc"`
	DayUTC   int `json:"dayUtc"`

	MonthLocal int `json:"monthLocal"`
	DayLocal   int `json:"dayLocal"`
}

type AvailableDays struct {
	Available []AvailableDay `json:"available"`
}

type AvailableHour struct {
	StaffScheduleID string `json:"staffScheduleId"`
	Start           string `json:"start"`
	End             string `json:"end"`
	IsBooked        bool   `json:"isBooked"`
}

type AvailableHours struct {
	TimeZone  string          `json:"timeZone"`
	Available []AvailableHour `json:"available"`
}
