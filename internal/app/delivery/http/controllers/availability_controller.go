package controllers

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) GetAvailableDays(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, constvars.URLParamInstanceID)

	year, month, err := parseYearMonth(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.FindAvailableDays(ctx, instanceID, contracts.FindAvailableDaysInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailableDaysGetSuccess, result)
}

func (ctrl *AvailabilityController) GetAvailableHours(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, constvars.URLParamInstanceID)

	year, month, err := parseYearMonth(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	day, err := parseIntQuery(r, constvars.URLQueryDay)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if day < 1 || day > 31 {
		utils.BuildErrorResponse(ctrl.Log, w,
			exceptions.ErrInvalidQueryParam(fmt.Errorf("day %d out of range", day), constvars.URLQueryDay))
		return
	}

	staffScheduleIDs := splitScheduleIDs(r.URL.Query().Get(constvars.URLQueryScheduleIDs))
	if len(staffScheduleIDs) == 0 {
		utils.BuildErrorResponse(ctrl.Log, w,
			exceptions.ErrInvalidQueryParam(nil, constvars.URLQueryScheduleIDs))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.FindAvailableHours(ctx, instanceID, contracts.FindAvailableHoursInput{
		Year:             year,
		Month:            month,
		Day:              day,
		StaffScheduleIDs: staffScheduleIDs,
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailableHoursGetSuccess, result)
}

func parseYearMonth(r *http.Request) (int, time.Month, error) {
	year, err := parseIntQuery(r, constvars.URLQueryYear)
	if err != nil {
		return 0, 0, err
	}
	month, err := parseIntQuery(r, constvars.URLQueryMonth)
	if err != nil {
		return 0, 0, err
	}
	if month < 1 || month > 12 {
		return 0, 0, exceptions.ErrInvalidQueryParam(fmt.Errorf("month %d out of range", month), constvars.URLQueryMonth)
	}
	return year, time.Month(month), nil
}

func parseIntQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, exceptions.ErrInvalidQueryParam(nil, name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrInvalidQueryParam(err, name)
	}
	return value, nil
}

func splitScheduleIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
