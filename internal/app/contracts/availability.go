package contracts

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type FindAvailableDaysInput struct {
	Year  int
	Month time.Month
}

type FindAvailableHoursInput struct {
	Year  int
	Month time.Month
	Day   int

	StaffScheduleIDs []string
}

// DaySlots is one staff schedule's derived slot list for a single day,
// together with the rows the derivation was based on.
type DaySlots struct {
	StaffSchedule models.StaffSchedule
	Schedule      models.Schedule
	Slots         []models.Slot
}

type AvailabilityUsecase interface {
	SlotDeriver

	FindAvailableDays(ctx context.Context, instanceID string, input FindAvailableDaysInput) (*responses.AvailableDays, error)
	FindAvailableHours(ctx context.Context, instanceID string, input FindAvailableHoursInput) (*responses.AvailableHours, error)
}

// SlotDeriver re-derives the authoritative slot list for one schedule and day.
// The reservation coordinator uses it to validate a begin request instead of
// trusting the client's view of availability.
type SlotDeriver interface {
	DeriveDaySlots(ctx context.Context, instanceID, staffScheduleID string, year int, month time.Month, day int) (*DaySlots, error)
}
