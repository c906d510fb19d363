package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"social-media-api/internal/service"
)

type ApiError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(msg string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusBadRequest,
		Message:    msg,
	}
}

func NewUnauthorizedError(msg string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusUnauthorized,
		Message:    msg,
	}
}

func NewConflictError(msg string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusConflict,
		Message:    msg,
	}
}

func NewInternalServerError(err error) *ApiError {
	return &ApiError{
		StatusCode: http.StatusInternalServerError,
		Message:    strings.ToLower(http.StatusText(http.StatusInternalServerError)),
		Err:        err,
	}
}

// errorResponse maps a domain error onto its HTTP representation. Unknown
// errors become a 500 with a generic message so no internal detail leaks.
func errorResponse(err error) *ApiError {
	switch {
	case errors.Is(err, service.ErrBlankUsername),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrBlankMessageText),
		errors.Is(err, service.ErrMessageTooLong),
		errors.Is(err, service.ErrPosterNotFound),
		errors.Is(err, service.ErrMessageNotFound):
		return NewBadRequestError(err.Error())
	case errors.Is(err, service.ErrDuplicateUsername):
		return NewConflictError(err.Error())
	case errors.Is(err, service.ErrUnknownAccount),
		errors.Is(err, service.ErrWrongPassword):
		return NewUnauthorizedError(err.Error())
	default:
		return NewInternalServerError(err)
	}
}
