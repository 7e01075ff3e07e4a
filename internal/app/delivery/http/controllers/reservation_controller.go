package controllers

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReservationController struct {
	Log                *zap.Logger
	ReservationUsecase contracts.ReservationUsecase
}

func NewReservationController(logger *zap.Logger, reservationUsecase contracts.ReservationUsecase) *ReservationController {
	return &ReservationController{
		Log:                logger,
		ReservationUsecase: reservationUsecase,
	}
}

func (ctrl *ReservationController) BeginReservation(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, constvars.URLParamInstanceID)

	request := new(requests.BeginReservation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ReservationUsecase.BeginReservation(ctx, instanceID, *request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReservationBeginSuccess, nil)
}

func (ctrl *ReservationController) CommitReservation(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, constvars.URLParamInstanceID)

	request := new(requests.CommitReservation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ReservationUsecase.CommitReservation(ctx, instanceID, *request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReservationCommitSuccess, nil)
}

func (ctrl *ReservationController) AbortReservation(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, constvars.URLParamInstanceID)

	request := new(requests.AbortReservation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ReservationUsecase.AbortReservation(ctx, instanceID, *request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReservationAbortSuccess, nil)
}
