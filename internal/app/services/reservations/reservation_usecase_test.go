package reservations

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/shared/locker"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSlotDeriver struct {
	mock.Mock
}

func (m *MockSlotDeriver) DeriveDaySlots(ctx context.Context, instanceID, staffScheduleID string, year int, month time.Month, day int) (*contracts.DaySlots, error) {
	args := m.Called(ctx, instanceID, staffScheduleID, year, month, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.DaySlots), args.Error(1)
}

type MockScheduleCmsClient struct {
	mock.Mock
}

func (m *MockScheduleCmsClient) FindScheduleByID(ctx context.Context, instanceID, scheduleID string) (*models.Schedule, error) {
	args := m.Called(ctx, instanceID, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Schedule), args.Error(1)
}

type MockServiceCmsClient struct {
	mock.Mock
}

func (m *MockServiceCmsClient) FindServiceByID(ctx context.Context, instanceID, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, instanceID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

type MockBookingCmsClient struct {
	mock.Mock
}

func (m *MockBookingCmsClient) FindBookingsByDay(ctx context.Context, instanceID string, year int, month time.Month, day int) ([]models.Booking, error) {
	args := m.Called(ctx, instanceID, year, month, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingCmsClient) CreateBooking(ctx context.Context, instanceID string, booking *models.Booking) error {
	args := m.Called(ctx, instanceID, booking)
	return args.Error(0)
}

func testDaySlots(booked bool) *contracts.DaySlots {
	return &contracts.DaySlots{
		StaffSchedule: models.StaffSchedule{
			ID:         "staff-sched-1",
			ScheduleID: "sched-1",
			TimeZoneID: "America/Los_Angeles",
		},
		Schedule: models.Schedule{ID: "sched-1", ServiceID: "svc-1", DurationMinutes: 45, BreakMinutes: 15},
		Slots: []models.Slot{
			{
				StaffScheduleID: "staff-sched-1",
				ScheduleID:      "sched-1",
				ServiceID:       "svc-1",
				UTCStart:        time.Date(2024, time.December, 2, 11, 0, 0, 0, time.UTC),
				UTCEnd:          time.Date(2024, time.December, 2, 11, 45, 0, 0, time.UTC),
				Booked:          booked,
			},
		},
	}
}

func beginRequest(token string) requests.BeginReservation {
	return requests.BeginReservation{
		StaffScheduleID:  "staff-sched-1",
		ScheduleID:       "sched-1",
		ServiceID:        "svc-1",
		Date:             "2024-12-02",
		Time:             "11:00:00",
		ReservationToken: token,
	}
}

type fixture struct {
	slotDeriver    *MockSlotDeriver
	scheduleClient *MockScheduleCmsClient
	serviceClient  *MockServiceCmsClient
	bookingClient  *MockBookingCmsClient
	locker         contracts.LockerService
	usecase        contracts.ReservationUsecase
}

func newFixture() *fixture {
	f := &fixture{
		slotDeriver:    new(MockSlotDeriver),
		scheduleClient: new(MockScheduleCmsClient),
		serviceClient:  new(MockServiceCmsClient),
		bookingClient:  new(MockBookingCmsClient),
		locker:         locker.NewMemoryLocker(zap.NewNop()),
	}
	f.usecase = NewReservationUsecase(
		f.slotDeriver, f.scheduleClient, f.serviceClient, f.bookingClient, f.locker, 0, zap.NewNop())
	return f
}

func TestBeginReservation_ClaimsSlot(t *testing.T) {
	f := newFixture()
	f.slotDeriver.On("DeriveDaySlots", mock.Anything, "inst-1", "staff-sched-1", 2024, time.December, 2).
		Return(testDaySlots(false), nil)
	f.serviceClient.On("FindServiceByID", mock.Anything, "inst-1", "svc-1").
		Return(&models.Service{ID: "svc-1"}, nil)

	err := f.usecase.BeginReservation(context.Background(), "inst-1", beginRequest("token-a"))
	require.NoError(t, err)

	// The claim is visible through the lock table.
	acquired, err := f.locker.TryLock(context.Background(), "reservation:sched-1:2024-12-02", "other", 0)
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestBeginReservation_SecondClaimConflicts(t *testing.T) {
	f := newFixture()
	f.slotDeriver.On("DeriveDaySlots", mock.Anything, "inst-1", "staff-sched-1", 2024, time.December, 2).
		Return(testDaySlots(false), nil)
	f.serviceClient.On("FindServiceByID", mock.Anything, "inst-1", "svc-1").
		Return(&models.Service{ID: "svc-1"}, nil)

	require.NoError(t, f.usecase.BeginReservation(context.Background(), "inst-1", beginRequest("token-a")))

	err := f.usecase.BeginReservation(context.Background(), "inst-1", beginRequest("token-b"))
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
}

func TestBeginReservation_MutualExclusion(t *testing.T) {
	f := newFixture()
	f.slotDeriver.On("DeriveDaySlots", mock.Anything, "inst-1", "staff-sched-1", 2024, time.December, 2).
		Return(testDaySlots(false), nil)
	f.serviceClient.On("FindServiceByID", mock.Anything, "inst-1", "svc-1").
		Return(&models.Service{ID: "svc-1"}, nil)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = f.usecase.BeginReservation(context.Background(), "inst-1", beginRequest("token"))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent begin may claim the slot")
}

func TestBeginReservation_BookedSlot(t *testing.T) {
	f := newFixture()
	f.slotDeriver.On("DeriveDaySlots", mock.Anything, "inst-1", "staff-sched-1", 2024, time.December, 2).
		Return(testDaySlots(true), nil)
	f.serviceClient.On("FindServiceByID", mock.Anything, "inst-1", "svc-1").
		Return(&models.Service{ID: "svc-1"}, nil)

	err := f.usecase.BeginReservation(context.Background(), "inst-1", beginRequest("token-a"))
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

	// A rejected begin must not leave a claim behind.
	acquired, err := f.locker.TryLock(context.Background(), "reservation:sched-1:2024-12-02", "probe", 0)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestBeginReservation_NoMatchingSlot(t *testing.T) {
	f := newFixture()
	f.slotDeriver.On("DeriveDaySlots", mock.Anything, "inst-1", "staff-sched-1", 2024, time.December, 2).
		Return(testDaySlots(false), nil)
	f.serviceClient.On("FindServiceByID", mock.Anything, "inst-1", "svc-1").
		Return(&models.Service{ID: "svc-1"}, nil)

	request := beginRequest("token-a")
	request.Time = "11:30:00"

	err := f.usecase.BeginReservation(context.Background(), "inst-1", request)
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestBeginReservation_ReferentialMismatch(t *testing.T) {
	f := newFixture()
	f.slotDeriver.On("DeriveDaySlots", mock.Anything, "inst-1", "staff-sched-1", 2024, time.December, 2).
		Return(testDaySlots(false), nil)
	f.serviceClient.On("FindServiceByID", mock.Anything, "inst-1", "svc-other").
		Return(&models.Service{ID: "svc-other"}, nil)

	request := beginRequest("token-a")
	request.ServiceID = "svc-other"

	err := f.usecase.BeginReservation(context.Background(), "inst-1", request)
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestCommitReservation_RoundTrip(t *testing.T) {
	f := newFixture()
	f.slotDeriver.On("DeriveDaySlots", mock.Anything, "inst-1", "staff-sched-1", 2024, time.December, 2).
		Return(testDaySlots(false), nil)
	f.serviceClient.On("FindServiceByID", mock.Anything, "inst-1", "svc-1").
		Return(&models.Service{ID: "svc-1"}, nil)
	f.scheduleClient.On("FindScheduleByID", mock.Anything, "inst-1", "sched-1").
		Return(&models.Schedule{ID: "sched-1", ServiceID: "svc-1", DurationMinutes: 45, BreakMinutes: 15}, nil)

	var persisted *models.Booking
	f.bookingClient.On("CreateBooking", mock.Anything, "inst-1", mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(2).(*models.Booking)
		}).
		Return(nil)

	require.NoError(t, f.usecase.BeginReservation(context.Background(), "inst-1", beginRequest("token-a")))

	err := f.usecase.CommitReservation(context.Background(), "inst-1", requests.CommitReservation{
		StaffScheduleID:  "staff-sched-1",
		ScheduleID:       "sched-1",
		ServiceID:        "svc-1",
		Date:             "2024-12-02",
		Time:             "11:00:00",
		ReservationToken: "token-a",
		ContactID:        "contact-1",
	})
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, time.Date(2024, time.December, 2, 11, 0, 0, 0, time.UTC), persisted.BookDate)
	assert.Equal(t, 45, persisted.DurationMinutes)
	assert.Equal(t, "contact-1", persisted.ContactID)
	assert.NotEmpty(t, persisted.BookingKey)

	// The claim is gone once committed.
	acquired, err := f.locker.TryLock(context.Background(), "reservation:sched-1:2024-12-02", "probe", 0)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestCommitReservation_TokenMismatchKeepsClaim(t *testing.T) {
	f := newFixture()
	f.slotDeriver.On("DeriveDaySlots", mock.Anything, "inst-1", "staff-sched-1", 2024, time.December, 2).
		Return(testDaySlots(false), nil)
	f.serviceClient.On("FindServiceByID", mock.Anything, "inst-1", "svc-1").
		Return(&models.Service{ID: "svc-1"}, nil)

	require.NoError(t, f.usecase.BeginReservation(context.Background(), "inst-1", beginRequest("token-a")))

	err := f.usecase.CommitReservation(context.Background(), "inst-1", requests.CommitReservation{
		StaffScheduleID:  "staff-sched-1",
		ScheduleID:       "sched-1",
		ServiceID:        "svc-1",
		Date:             "2024-12-02",
		Time:             "11:00:00",
		ReservationToken: "token-intruder",
		ContactID:        "contact-1",
	})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

	f.bookingClient.AssertNotCalled(t, "CreateBooking")

	// The rightful owner can still commit afterwards.
	acquired, err := f.locker.TryLock(context.Background(), "reservation:sched-1:2024-12-02", "probe", 0)
	require.NoError(t, err)
	assert.False(t, acquired, "the original claim must survive a mismatched commit")
}

func TestCommitReservation_WithoutBegin(t *testing.T) {
	f := newFixture()

	err := f.usecase.CommitReservation(context.Background(), "inst-1", requests.CommitReservation{
		StaffScheduleID:  "staff-sched-1",
		ScheduleID:       "sched-1",
		ServiceID:        "svc-1",
		Date:             "2024-12-02",
		Time:             "11:00:00",
		ReservationToken: "token-a",
		ContactID:        "contact-1",
	})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	f.bookingClient.AssertNotCalled(t, "CreateBooking")
}

func TestAbortReservation_Idempotent(t *testing.T) {
	f := newFixture()
	f.slotDeriver.On("DeriveDaySlots", mock.Anything, "inst-1", "staff-sched-1", 2024, time.December, 2).
		Return(testDaySlots(false), nil)
	f.serviceClient.On("FindServiceByID", mock.Anything, "inst-1", "svc-1").
		Return(&models.Service{ID: "svc-1"}, nil)

	abort := requests.AbortReservation{ScheduleID: "sched-1", Date: "2024-12-02"}

	// Aborting before any begin succeeds.
	require.NoError(t, f.usecase.AbortReservation(context.Background(), "inst-1", abort))

	require.NoError(t, f.usecase.BeginReservation(context.Background(), "inst-1", beginRequest("token-a")))
	require.NoError(t, f.usecase.AbortReservation(context.Background(), "inst-1", abort))
	require.NoError(t, f.usecase.AbortReservation(context.Background(), "inst-1", abort))

	// The slot can be claimed again after the abort.
	require.NoError(t, f.usecase.BeginReservation(context.Background(), "inst-1", beginRequest("token-b")))
}
