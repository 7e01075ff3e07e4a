package availability

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"fmt"
	"time"
)

// Each month shows at most this many occurrences of one staff schedule.
const maxOccurrencesPerMonth = 5

// Fixed step per frequency. MONTHLY and YEARLY deliberately step in whole
// weeks (28 and 364 days) so the weekday of the anchor is preserved.
var frequencySteps = map[string]time.Duration{
	constvars.RecurrenceFrequencyDaily:   24 * time.Hour,
	constvars.RecurrenceFrequencyWeekly:  7 * 24 * time.Hour,
	constvars.RecurrenceFrequencyMonthly: 28 * 24 * time.Hour,
	constvars.RecurrenceFrequencyYearly:  364 * 24 * time.Hour,
}

type monthPosition int

const (
	beforeMonth monthPosition = iota
	inMonth
	afterMonth
)

func classifyMonth(t time.Time, year int, month time.Month) monthPosition {
	got := t.Year()*12 + int(t.Month())
	want := year*12 + int(month)
	switch {
	case got < want:
		return beforeMonth
	case got > want:
		return afterMonth
	default:
		return inMonth
	}
}

// ExpandOccurrences walks the recurrence forward from the schedule's anchor
// and collects every instance falling in the requested month, anchor included.
// The walk itself runs on the schedule's wall-clock so the month filter
// follows the local calendar; each emitted occurrence then carries the true
// instant both as a UTC conversion and as the local reading.
func ExpandOccurrences(staffSchedule models.StaffSchedule, year int, month time.Month) ([]models.Occurrence, error) {
	step, ok := frequencySteps[staffSchedule.Recurrence.Frequency]
	if !ok {
		return nil, exceptions.ErrInvalidFrequency(
			fmt.Errorf("staff schedule %s", staffSchedule.ID), staffSchedule.Recurrence.Frequency)
	}

	loc, err := time.LoadLocation(staffSchedule.TimeZoneID)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeZone(err, staffSchedule.TimeZoneID)
	}

	anchor := staffSchedule.StartTime.On(
		staffSchedule.StartDate.Year(), staffSchedule.StartDate.Month(), staffSchedule.StartDate.Day(),
		time.UTC)
	window := staffSchedule.WindowDuration()

	var occurrences []models.Occurrence
	for pos := anchor; ; pos = pos.Add(step) {
		switch classifyMonth(pos, year, month) {
		case beforeMonth:
			continue
		case afterMonth:
			return occurrences, nil
		}

		localStart := utils.RebuildInLocation(pos, loc)
		localEnd := utils.RebuildInLocation(pos.Add(window), loc)
		occurrences = append(occurrences, models.Occurrence{
			ID:              utils.GenerateOccurrenceID(localStart),
			StaffScheduleID: staffSchedule.ID,
			TimeZoneID:      staffSchedule.TimeZoneID,
			UTCStart:        localStart.UTC(),
			UTCEnd:          localEnd.UTC(),
			LocalStart:      localStart,
			LocalEnd:        localEnd,
		})
		if len(occurrences) == maxOccurrencesPerMonth {
			return occurrences, nil
		}
	}
}
