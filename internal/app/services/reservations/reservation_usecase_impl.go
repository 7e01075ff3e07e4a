package reservations

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type reservationUsecase struct {
	slotDeriver    contracts.SlotDeriver
	scheduleClient contracts.ScheduleCmsClient
	serviceClient  contracts.ServiceCmsClient
	bookingClient  contracts.BookingCmsClient
	locker         contracts.LockerService
	lockTTL        time.Duration
	log            *zap.Logger
}

// NewReservationUsecase wires the coordinator. lockTTL bounds how long an
// uncommitted claim may linger; zero disables the lease and claims then live
// until commit or abort.
func NewReservationUsecase(
	slotDeriver contracts.SlotDeriver,
	scheduleClient contracts.ScheduleCmsClient,
	serviceClient contracts.ServiceCmsClient,
	bookingClient contracts.BookingCmsClient,
	lockerService contracts.LockerService,
	lockTTL time.Duration,
	logger *zap.Logger,
) contracts.ReservationUsecase {
	return &reservationUsecase{
		slotDeriver:    slotDeriver,
		scheduleClient: scheduleClient,
		serviceClient:  serviceClient,
		bookingClient:  bookingClient,
		locker:         lockerService,
		lockTTL:        lockTTL,
		log:            logger,
	}
}

// The lock identity is the schedule and calendar date, not the staff schedule,
// so two staff windows sharing one schedule cannot be claimed independently.
func buildLockKey(scheduleID, date string) string {
	return fmt.Sprintf("reservation:%s:%s", scheduleID, date)
}

func (uc *reservationUsecase) BeginReservation(ctx context.Context, instanceID string, input requests.BeginReservation) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.log.Info("reservationUsecase.BeginReservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstanceIDKey, instanceID),
		zap.String(constvars.LoggingStaffScheduleIDKey, input.StaffScheduleID),
		zap.String(constvars.LoggingScheduleIDKey, input.ScheduleID),
	)

	date, err := time.Parse(utils.DateLayout, input.Date)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	requestedTime, err := models.ParseTimeOfDay(input.Time)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	var (
		daySlots *contracts.DaySlots
		service  *models.Service
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		daySlots, err = uc.slotDeriver.DeriveDaySlots(groupCtx, instanceID, input.StaffScheduleID, date.Year(), date.Month(), date.Day())
		return err
	})
	group.Go(func() error {
		var err error
		service, err = uc.serviceClient.FindServiceByID(groupCtx, instanceID, input.ServiceID)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	// The client's three ids must form the stored chain; a request mixing rows
	// from different chains is rejected before any lock is taken.
	if daySlots.StaffSchedule.ScheduleID != input.ScheduleID || daySlots.Schedule.ServiceID != service.ID {
		return exceptions.ErrReferentialMismatch(fmt.Errorf(
			"staff schedule %s references schedule %s and service %s",
			input.StaffScheduleID, daySlots.StaffSchedule.ScheduleID, daySlots.Schedule.ServiceID))
	}

	slot, found := matchSlot(daySlots.Slots, requestedTime)
	if !found {
		return exceptions.ErrSlotNotGenerated(fmt.Errorf("no slot starts at %s on %s", requestedTime, input.Date))
	}
	if slot.Booked {
		return exceptions.ErrSlotAlreadyBooked(fmt.Errorf("slot at %s on %s", requestedTime, input.Date))
	}

	acquired, err := uc.locker.TryLock(ctx, buildLockKey(input.ScheduleID, input.Date), input.ReservationToken, uc.lockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrReservationInFlight(fmt.Errorf("schedule %s on %s", input.ScheduleID, input.Date))
	}
	return nil
}

func (uc *reservationUsecase) CommitReservation(ctx context.Context, instanceID string, input requests.CommitReservation) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.log.Info("reservationUsecase.CommitReservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstanceIDKey, instanceID),
		zap.String(constvars.LoggingScheduleIDKey, input.ScheduleID),
	)

	date, err := time.Parse(utils.DateLayout, input.Date)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	requestedTime, err := models.ParseTimeOfDay(input.Time)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	err = uc.locker.Unlock(ctx, buildLockKey(input.ScheduleID, input.Date), input.ReservationToken)
	switch {
	case errors.Is(err, contracts.ErrLockNotHeld):
		return exceptions.ErrReservationNotFound(err)
	case errors.Is(err, contracts.ErrLockTokenMismatch):
		// The claim stays in place for its real owner; nothing is written.
		return exceptions.ErrReservationTokenMismatch(err)
	case err != nil:
		return err
	}

	schedule, err := uc.scheduleClient.FindScheduleByID(ctx, instanceID, input.ScheduleID)
	if err != nil {
		return err
	}

	bookDate := requestedTime.On(date.Year(), date.Month(), date.Day(), time.UTC)
	booking := &models.Booking{
		BookDate:        bookDate,
		BookingKey:      utils.GenerateBookingKey(bookDate),
		DurationMinutes: schedule.DurationMinutes,
		ServiceID:       input.ServiceID,
		StaffScheduleID: input.StaffScheduleID,
		ContactID:       input.ContactID,
		SubmissionID:    input.SubmissionID,
	}
	if err := uc.bookingClient.CreateBooking(ctx, instanceID, booking); err != nil {
		return err
	}

	uc.log.Info("reservationUsecase.CommitReservation booking persisted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, input.ScheduleID),
	)
	return nil
}

func (uc *reservationUsecase) AbortReservation(ctx context.Context, instanceID string, input requests.AbortReservation) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.log.Info("reservationUsecase.AbortReservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstanceIDKey, instanceID),
		zap.String(constvars.LoggingScheduleIDKey, input.ScheduleID),
	)

	// Abort is idempotent: releasing an absent claim succeeds.
	return uc.locker.ForceUnlock(ctx, buildLockKey(input.ScheduleID, input.Date))
}

func matchSlot(slots []models.Slot, requested models.TimeOfDay) (models.Slot, bool) {
	for _, slot := range slots {
		if slot.StartTimeOfDay() == requested {
			return slot, true
		}
	}
	return models.Slot{}, false
}
