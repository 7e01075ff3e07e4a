package staff_schedules

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/cms_store"
	"booking-service/internal/pkg/cms_dto"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"
)

type staffScheduleCmsClient struct {
	requester *cms_store.Requester
}

func NewStaffScheduleCmsClient(requester *cms_store.Requester) contracts.StaffScheduleCmsClient {
	return &staffScheduleCmsClient{requester: requester}
}

func (c *staffScheduleCmsClient) FindAllStaffSchedules(ctx context.Context, instanceID string) ([]models.StaffSchedule, error) {
	rows, err := c.requester.QueryRows(ctx, instanceID, constvars.CollectionStaffSchedule, cms_dto.Query{})
	if err != nil {
		return nil, err
	}

	staffSchedules := make([]models.StaffSchedule, 0, len(rows))
	for _, row := range rows {
		staffSchedule, err := mapRow(row)
		if err != nil {
			return nil, err
		}
		staffSchedules = append(staffSchedules, *staffSchedule)
	}
	return staffSchedules, nil
}

func (c *staffScheduleCmsClient) FindStaffScheduleByID(ctx context.Context, instanceID, staffScheduleID string) (*models.StaffSchedule, error) {
	row, err := c.requester.GetRowByID(ctx, instanceID, constvars.CollectionStaffSchedule, staffScheduleID)
	if err != nil {
		return nil, err
	}
	return mapRow(*row)
}

func mapRow(row cms_dto.Row) (*models.StaffSchedule, error) {
	scheduleID, err := cms_store.TextField(row, constvars.FieldSchedule)
	if err != nil {
		return nil, err
	}

	startDay, err := cms_store.TextField(row, constvars.FieldStartDay)
	if err != nil {
		return nil, err
	}
	startDate, err := time.Parse(utils.DateLayout, startDay)
	if err != nil {
		return nil, exceptions.ErrMalformedRow(err, constvars.CollectionStaffSchedule)
	}

	startRaw, err := cms_store.TextField(row, constvars.FieldStart)
	if err != nil {
		return nil, err
	}
	startTime, err := models.ParseTimeOfDay(startRaw)
	if err != nil {
		return nil, exceptions.ErrMalformedRow(err, constvars.CollectionStaffSchedule)
	}

	endRaw, err := cms_store.TextField(row, constvars.FieldEnd)
	if err != nil {
		return nil, err
	}
	endTime, err := models.ParseTimeOfDay(endRaw)
	if err != nil {
		return nil, exceptions.ErrMalformedRow(err, constvars.CollectionStaffSchedule)
	}

	// Overnight windows are unsupported: the end must come after the start on
	// the same calendar day.
	if !startTime.Before(endTime) {
		return nil, exceptions.ErrMalformedRow(
			fmt.Errorf("window end %s is not after start %s", endTime, startTime),
			constvars.CollectionStaffSchedule,
		)
	}

	timeZoneID, err := cms_store.TextField(row, constvars.FieldTimeZone)
	if err != nil {
		return nil, err
	}

	ruleField, ok := row.Fields[constvars.FieldRecurrenceRule]
	if !ok {
		return nil, exceptions.ErrRowFieldMissing(nil, constvars.FieldRecurrenceRule)
	}
	var rule cms_dto.RecurrenceRuleDTO
	if err := ruleField.Decode(&rule); err != nil {
		return nil, exceptions.ErrRowFieldType(err, constvars.FieldRecurrenceRule)
	}

	return &models.StaffSchedule{
		ID:         row.ID,
		ScheduleID: scheduleID,
		StartDate:  startDate,
		StartTime:  startTime,
		EndTime:    endTime,
		TimeZoneID: timeZoneID,
		Recurrence: models.RecurrenceRule{
			Frequency: rule.Frequency,
			Interval:  rule.Interval,
			Days:      rule.Days,
		},
	}, nil
}
