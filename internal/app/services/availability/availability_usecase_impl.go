package availability

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/utils"
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type availabilityUsecase struct {
	staffScheduleClient contracts.StaffScheduleCmsClient
	scheduleClient      contracts.ScheduleCmsClient
	bookingClient       contracts.BookingCmsClient
	log                 *zap.Logger
}

func NewAvailabilityUsecase(
	staffScheduleClient contracts.StaffScheduleCmsClient,
	scheduleClient contracts.ScheduleCmsClient,
	bookingClient contracts.BookingCmsClient,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		staffScheduleClient: staffScheduleClient,
		scheduleClient:      scheduleClient,
		bookingClient:       bookingClient,
		log:                 logger,
	}
}

func (uc *availabilityUsecase) FindAvailableDays(ctx context.Context, instanceID string, input contracts.FindAvailableDaysInput) (*responses.AvailableDays, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)

	staffSchedules, err := uc.staffScheduleClient.FindAllStaffSchedules(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	var occurrences []models.Occurrence
	for _, staffSchedule := range staffSchedules {
		expanded, err := ExpandOccurrences(staffSchedule, input.Year, input.Month)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, expanded...)
	}
	sort.Slice(occurrences, func(i, j int) bool {
		return occurrences[i].UTCStart.Before(occurrences[j].UTCStart)
	})

	uc.log.Info("availabilityUsecase.FindAvailableDays expanded occurrences",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstanceIDKey, instanceID),
		zap.Int(constvars.LoggingOccurrenceCountKey, len(occurrences)),
	)

	result := &responses.AvailableDays{Available: make([]responses.AvailableDay, 0, len(occurrences))}
	for _, occ := range occurrences {
		result.Available = append(result.Available, responses.AvailableDay{
			ID:              occ.ID,
			StaffScheduleID: occ.StaffScheduleID,
			TimeZone:        occ.TimeZoneID,
			Start:           buildDayEdge(occ.UTCStart, occ.LocalStart),
			End:             buildDayEdge(occ.UTCEnd, occ.LocalEnd),
			MonthUTC:        int(occ.UTCStart.Month()),
			DayUTC:          occ.UTCStart.Day(),
			MonthLocal:      int(occ.LocalStart.Month()),
			DayLocal:        occ.LocalStart.Day(),
		})
	}
	return result, nil
}

func (uc *availabilityUsecase) FindAvailableHours(ctx context.Context, instanceID string, input contracts.FindAvailableHoursInput) (*responses.AvailableHours, error) {
	result := &responses.AvailableHours{Available: make([]responses.AvailableHour, 0)}

	for _, staffScheduleID := range input.StaffScheduleIDs {
		daySlots, err := uc.DeriveDaySlots(ctx, instanceID, staffScheduleID, input.Year, input.Month, input.Day)
		if err != nil {
			return nil, err
		}

		// All schedules listed in one request share a display zone; the last
		// one wins, matching how clients group their queries.
		result.TimeZone = daySlots.StaffSchedule.TimeZoneID

		for _, slot := range daySlots.Slots {
			result.Available = append(result.Available, responses.AvailableHour{
				StaffScheduleID: slot.StaffScheduleID,
				Start:           utils.FormatBookDate(slot.UTCStart),
				End:             utils.FormatBookDate(slot.UTCEnd),
				IsBooked:        slot.Booked,
			})
		}
	}
	return result, nil
}

// DeriveDaySlots recomputes the slot list for one staff schedule and day from
// the store's rows. The row chain and the day's bookings are fetched
// concurrently.
func (uc *availabilityUsecase) DeriveDaySlots(ctx context.Context, instanceID, staffScheduleID string, year int, month time.Month, day int) (*contracts.DaySlots, error) {
	var (
		staffSchedule *models.StaffSchedule
		schedule      *models.Schedule
		bookings      []models.Booking
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		staffSchedule, err = uc.staffScheduleClient.FindStaffScheduleByID(groupCtx, instanceID, staffScheduleID)
		if err != nil {
			return err
		}
		schedule, err = uc.scheduleClient.FindScheduleByID(groupCtx, instanceID, staffSchedule.ScheduleID)
		return err
	})
	group.Go(func() error {
		var err error
		bookings, err = uc.bookingClient.FindBookingsByDay(groupCtx, instanceID, year, month, day)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	occurrences, err := ExpandOccurrences(*staffSchedule, year, month)
	if err != nil {
		return nil, err
	}

	bookedStarts := make([]time.Time, 0, len(bookings))
	for _, booking := range bookings {
		bookedStarts = append(bookedStarts, utils.AsUTCWallClock(booking.BookDate))
	}

	daySlots := &contracts.DaySlots{
		StaffSchedule: *staffSchedule,
		Schedule:      *schedule,
		Slots:         []models.Slot{},
	}
	// The requested day is a schedule-local calendar day.
	for _, occ := range occurrences {
		if occ.LocalStart.Day() != day {
			continue
		}
		daySlots.Slots = BuildSlots(occ, *staffSchedule, *schedule, bookedStarts)
		break
	}
	return daySlots, nil
}

func buildDayEdge(utc, local time.Time) responses.DayEdge {
	return responses.DayEdge{
		DateUTC:   utc.Format(utils.DateLayout),
		TimeUTC:   utc.Format(utils.TimeLayout),
		DateLocal: local.Format(utils.DateLayout),
		TimeLocal: local.Format(utils.TimeLayout),
	}
}
