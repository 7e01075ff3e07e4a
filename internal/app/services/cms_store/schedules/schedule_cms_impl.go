package schedules

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/cms_store"
	"booking-service/internal/pkg/cms_dto"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"fmt"
)

type scheduleCmsClient struct {
	requester *cms_store.Requester
}

func NewScheduleCmsClient(requester *cms_store.Requester) contracts.ScheduleCmsClient {
	return &scheduleCmsClient{requester: requester}
}

func (c *scheduleCmsClient) FindScheduleByID(ctx context.Context, instanceID, scheduleID string) (*models.Schedule, error) {
	row, err := c.requester.GetRowByID(ctx, instanceID, constvars.CollectionSchedule, scheduleID)
	if err != nil {
		return nil, err
	}
	return mapRow(*row)
}

func mapRow(row cms_dto.Row) (*models.Schedule, error) {
	serviceID, err := cms_store.TextField(row, constvars.FieldService)
	if err != nil {
		return nil, err
	}

	duration, err := cms_store.NumberField(row, constvars.FieldDuration)
	if err != nil {
		return nil, err
	}
	breakMinutes, err := cms_store.NumberField(row, constvars.FieldBreak)
	if err != nil {
		return nil, err
	}

	// Durations are whole minutes; fractions from the store are truncated.
	schedule := &models.Schedule{
		ID:              row.ID,
		ServiceID:       serviceID,
		DurationMinutes: int(duration),
		BreakMinutes:    int(breakMinutes),
	}

	if schedule.DurationMinutes <= 0 || schedule.BreakMinutes < 0 {
		return nil, exceptions.ErrMalformedRow(
			fmt.Errorf("duration %d / break %d out of range", schedule.DurationMinutes, schedule.BreakMinutes),
			constvars.CollectionSchedule,
		)
	}
	return schedule, nil
}
