package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Serialization profile of the CMS store: dates are YYYY-MM-DD, times are
// HH:MM:SS with an optional fraction, offsets are explicit signed ±HH:MM:SS.
// A bookDate row value looks like "2024-12-02 11:00:00.0 +00:00:00".
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	bookDateLayout = "2006-01-02 15:04:05.0"
)

// FormatBookDate renders t in the store's bookDate profile, including the
// offset of t's own location with seconds precision.
func FormatBookDate(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s %s%02d:%02d:%02d",
		t.Format(bookDateLayout), sign, offset/3600, offset%3600/60, offset%60)
}

// ParseBookDate parses the store's bookDate profile. Go's reference layouts
// cannot express an offset with a seconds component, so the offset token is
// decoded by hand and attached as a fixed zone.
func ParseBookDate(value string) (time.Time, error) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return time.Time{}, fmt.Errorf("bookDate %q: want \"date time offset\"", value)
	}

	clock := fields[1]
	fraction := 0
	if dot := strings.IndexByte(clock, '.'); dot >= 0 {
		frac, err := strconv.Atoi(clock[dot+1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("bookDate %q: bad fraction", value)
		}
		fraction = frac
		clock = clock[:dot]
	}

	base, err := time.Parse(DateLayout+" "+TimeLayout, fields[0]+" "+clock)
	if err != nil {
		return time.Time{}, err
	}

	offset, err := parseOffset(fields[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("bookDate %q: %w", value, err)
	}

	_ = fraction // sub-second precision is not kept; the profile is whole seconds
	return time.Date(base.Year(), base.Month(), base.Day(),
		base.Hour(), base.Minute(), base.Second(), 0,
		time.FixedZone("", offset)), nil
}

func parseOffset(token string) (int, error) {
	if len(token) != 9 || (token[0] != '+' && token[0] != '-') {
		return 0, fmt.Errorf("bad offset %q", token)
	}
	parts := strings.Split(token[1:], ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("bad offset %q", token)
	}
	var hms [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("bad offset %q", token)
		}
		hms[i] = v
	}
	seconds := hms[0]*3600 + hms[1]*60 + hms[2]
	if token[0] == '-' {
		seconds = -seconds
	}
	return seconds, nil
}

// DayWindow returns the textual bookDate bounds of one UTC day, used as the
// gte/lte filter values when querying bookings.
func DayWindow(year int, month time.Month, day int) (string, string) {
	from := fmt.Sprintf("%04d-%02d-%02d 00:00:00.0 +00:00:00", year, month, day)
	to := fmt.Sprintf("%04d-%02d-%02d 23:59:59.0 +00:00:00", year, month, day)
	return from, to
}

// RebuildInLocation re-expresses t's wall-clock reading in loc. This is a
// reinterpretation, not a conversion: the instant changes, the reading stays.
// Booking rows store the schedule-local reading under a zero offset, so
// comparing them against schedule-local slot cursors requires exactly this.
func RebuildInLocation(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}

// AsUTCWallClock relabels t's wall-clock reading as UTC. Slot instants and
// booking rows share this convention so the store's textual UTC day-window
// filter lines up with what clients see.
func AsUTCWallClock(t time.Time) time.Time {
	return RebuildInLocation(t, time.UTC)
}
