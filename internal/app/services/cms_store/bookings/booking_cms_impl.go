package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/cms_store"
	"booking-service/internal/pkg/cms_dto"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"time"
)

type bookingCmsClient struct {
	requester *cms_store.Requester
}

func NewBookingCmsClient(requester *cms_store.Requester) contracts.BookingCmsClient {
	return &bookingCmsClient{requester: requester}
}

func (c *bookingCmsClient) FindBookingsByDay(ctx context.Context, instanceID string, year int, month time.Month, day int) ([]models.Booking, error) {
	from, to := utils.DayWindow(year, month, day)

	rows, err := c.requester.QueryRows(ctx, instanceID, constvars.CollectionBookings, cms_dto.Query{
		Filters: []cms_dto.Filter{
			{Name: constvars.FieldBookDate, Cond: constvars.FilterCondGreaterOrEqual, Value: from},
			{Name: constvars.FieldBookDate, Cond: constvars.FilterCondLessOrEqual, Value: to},
		},
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]models.Booking, 0, len(rows))
	for _, row := range rows {
		booking, err := mapRow(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

func (c *bookingCmsClient) CreateBooking(ctx context.Context, instanceID string, booking *models.Booking) error {
	fields := map[string]cms_dto.Field{
		constvars.FieldBookDate:      cms_dto.NewTextField(utils.FormatBookDate(booking.BookDate)),
		constvars.FieldBookKey:       cms_dto.NewTextField(booking.BookingKey),
		constvars.FieldBookDuration:  cms_dto.NewNumberField(float64(booking.DurationMinutes)),
		constvars.FieldService:       cms_dto.NewTextField(booking.ServiceID),
		constvars.FieldStaffSchedule: cms_dto.NewTextField(booking.StaffScheduleID),
		constvars.FieldContact:       cms_dto.NewTextField(booking.ContactID),
		constvars.FieldSubmission:    cms_dto.NewTextField(booking.SubmissionID),
	}
	return c.requester.ImportRow(ctx, instanceID, constvars.CollectionBookings, fields)
}

func mapRow(row cms_dto.Row) (*models.Booking, error) {
	bookDateRaw, err := cms_store.TextField(row, constvars.FieldBookDate)
	if err != nil {
		return nil, err
	}
	bookDate, err := utils.ParseBookDate(bookDateRaw)
	if err != nil {
		return nil, exceptions.ErrMalformedRow(err, constvars.CollectionBookings)
	}

	bookingKey, err := cms_store.OptionalTextField(row, constvars.FieldBookKey)
	if err != nil {
		return nil, err
	}
	serviceID, err := cms_store.OptionalTextField(row, constvars.FieldService)
	if err != nil {
		return nil, err
	}
	staffScheduleID, err := cms_store.OptionalTextField(row, constvars.FieldStaffSchedule)
	if err != nil {
		return nil, err
	}
	contactID, err := cms_store.OptionalTextField(row, constvars.FieldContact)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:              row.ID,
		BookDate:        bookDate,
		BookingKey:      bookingKey,
		ServiceID:       serviceID,
		StaffScheduleID: staffScheduleID,
		ContactID:       contactID,
	}

	if field, ok := row.Fields[constvars.FieldBookDuration]; ok {
		duration, err := field.AsNumber()
		if err != nil {
			return nil, exceptions.ErrRowFieldType(err, constvars.FieldBookDuration)
		}
		booking.DurationMinutes = int(duration)
	}
	return booking, nil
}
