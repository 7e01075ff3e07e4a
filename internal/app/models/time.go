package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a local wall-clock reading with whole-second precision. Store
// rows serialize these as "HH:MM:SS" with an optional ".0" fraction suffix.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	trimmed := value
	if dot := strings.IndexByte(trimmed, '.'); dot >= 0 {
		trimmed = trimmed[:dot]
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("time of day %q: want HH:MM:SS", value)
	}

	var hms [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("time of day %q: %w", value, err)
		}
		hms[i] = v
	}

	t := TimeOfDay{Hour: hms[0], Minute: hms[1], Second: hms[2]}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", value)
	}
	return t, nil
}

func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// On anchors the reading to a calendar day in loc.
func (t TimeOfDay) On(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, t.Hour, t.Minute, t.Second, 0, loc)
}

func (t TimeOfDay) SecondsFromMidnight() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.SecondsFromMidnight() < other.SecondsFromMidnight()
}

// Sub returns the duration between two readings on the same day.
func (t TimeOfDay) Sub(other TimeOfDay) time.Duration {
	return time.Duration(t.SecondsFromMidnight()-other.SecondsFromMidnight()) * time.Second
}
