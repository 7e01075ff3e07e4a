package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"fmt"
)

// Every failure path in the core maps to exactly one of four classes:
// validation (400), conflict (409), missing state (404) and upstream (502/500).

// Validation
var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrInvalidQueryParam = func(err error, name string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidQueryParam, name))
	}
	ErrInvalidFrequency = func(err error, frequency string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidFrequency, frequency))
	}
	ErrInvalidTimeZone = func(err error, timeZoneID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidTimeZone, timeZoneID))
	}
	ErrReferentialMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientScheduleMismatch, constvars.ErrDevReferentialMismatch)
	}
	ErrSlotNotGenerated = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientSlotNotAvailable, constvars.ErrDevSlotNotGenerated)
	}
)

// Conflict
var (
	ErrSlotAlreadyBooked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSlotAlreadyBooked, constvars.ErrDevSlotBooked)
	}
	ErrReservationInFlight = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientReservationInFlight, constvars.ErrDevReservationInFlight)
	}
	ErrReservationTokenMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientReservationNotOwned, constvars.ErrDevReservationTokenDiff)
	}
)

// Missing state
var (
	ErrReservationNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientReservationNotFound, constvars.ErrDevReservationNotFound)
	}
	ErrRowFieldMissing = func(err error, fieldName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevRowFieldMissing, fieldName))
	}
	ErrCmsRowNotFound = func(err error, collection, rowID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCmsRowNotFound, rowID, collection))
	}
)

// Upstream
var (
	ErrRowFieldType = func(err error, fieldName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamStore, fmt.Sprintf(constvars.ErrDevRowFieldType, fieldName))
	}
	ErrMalformedRow = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamStore, fmt.Sprintf(constvars.ErrDevMalformedRow, collection))
	}
	ErrCmsQueryRows = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamStore, fmt.Sprintf(constvars.ErrDevCmsQueryRows, collection))
	}
	ErrCmsGetRow = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamStore, fmt.Sprintf(constvars.ErrDevCmsGetRow, collection))
	}
	ErrCmsImportRow = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamStore, fmt.Sprintf(constvars.ErrDevCmsImportRow, collection))
	}
	ErrDecodeResponse = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamStore, fmt.Sprintf(constvars.ErrDevDecodeResponse, collection))
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamStore, constvars.ErrDevSendHTTPRequest)
	}
	ErrRedisLockSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisLockSet)
	}
	ErrRedisLockGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisLockGet)
	}
	ErrRedisLockDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisLockDelete)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
