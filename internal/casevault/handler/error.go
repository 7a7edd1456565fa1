package handler

import (
	"context"
	"errors"
	"net/http"

	"casevault/internal/casevault/model"
	"casevault/internal/casevault/service"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, interface{}) {
	var code string
	var msg string
	var status int

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Unauthorized"
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
		msg = "Permission denied"
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		msg = "Record not found"
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
		msg = "Conflicting state"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	case errors.Is(err, service.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		code = "unavailable"
		msg = "Temporarily unavailable, retry later"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

// validationError shapes request validation failures as 400 bodies.
func validationError(err error) model.ErrorResponse {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return model.ErrorResponse{Error: *detail}
	}
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}
