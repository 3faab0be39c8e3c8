package exceptions

import (
	"fmt"

	"clinic-portal/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, "", constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, "", constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, "", constvars.ErrDevSendHTTPRequest)
	}
	ErrBackendRateLimit = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, "", constvars.ErrDevBackendRateLimitCanceled)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, "", constvars.ErrDevReadResponseBody)
	}
	ErrBackendStatus = func(service string, statusCode int, clientMessage string) *CustomError {
		return BuildNewCustomError(nil, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendStatus, service, statusCode))
	}
	ErrDecodeResponse = func(err error, service string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, "", fmt.Sprintf(constvars.ErrDevDecodeResponse, service))
	}
	ErrEmptyToken = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, "", constvars.ErrDevEmptyToken)
	}
	ErrProfileLookup = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.MsgFetchUserProfileFailed, constvars.ErrDevProfileLookupFailed)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
	ErrSaveInProgress = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSaveInProgress, constvars.ErrDevSaveInProgress)
	}
	ErrPublishEvent = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, "", constvars.ErrDevPublishEvent)
	}
	ErrAppointmentInPast = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.MsgAppointmentInPast, constvars.ErrDevAppointmentInPast)
	}
	ErrPageNotReady = func(page string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, "", fmt.Sprintf(constvars.ErrDevPageNotReady, page))
	}
	ErrRenderTemplate = func(err error, name string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRenderTemplate, name))
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
)
