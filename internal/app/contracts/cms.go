package contracts

import (
	"booking-service/internal/app/models"
	"context"
	"time"
)

// The CMS row store is an external collaborator: every client below talks to
// one collection over HTTP and hands back typed models, validated once at
// this boundary.

type StaffScheduleCmsClient interface {
	FindAllStaffSchedules(ctx context.Context, instanceID string) ([]models.StaffSchedule, error)
	FindStaffScheduleByID(ctx context.Context, instanceID, staffScheduleID string) (*models.StaffSchedule, error)
}

type ScheduleCmsClient interface {
	FindScheduleByID(ctx context.Context, instanceID, scheduleID string) (*models.Schedule, error)
}

type ServiceCmsClient interface {
	FindServiceByID(ctx context.Context, instanceID, serviceID string) (*models.Service, error)
}

type BookingCmsClient interface {
	// FindBookingsByDay fetches bookings whose bookDate falls inside the given
	// UTC day window.
	FindBookingsByDay(ctx context.Context, instanceID string, year int, month time.Month, day int) ([]models.Booking, error)
	// CreateBooking appends one bookings row; existing rows are never touched.
	CreateBooking(ctx context.Context, instanceID string, booking *models.Booking) error
}
