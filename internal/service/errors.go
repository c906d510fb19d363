package service

import "errors"

// Validation and lookup failures surfaced by the domain services. The
// transport layer maps each of these onto an HTTP status; anything else
// coming out of a service is treated as an internal error.
var (
	ErrBlankUsername     = errors.New("username cannot be blank")
	ErrPasswordTooShort  = errors.New("password must be at least 4 characters long")
	ErrDuplicateUsername = errors.New("account with this username already exists")
	ErrUnknownAccount    = errors.New("account with the given username does not exist")
	ErrWrongPassword     = errors.New("incorrect password")
	ErrBlankMessageText  = errors.New("message text cannot be blank")
	ErrMessageTooLong    = errors.New("message text must be under 255 characters")
	ErrPosterNotFound    = errors.New("posting account does not exist")
	ErrMessageNotFound   = errors.New("message not found")
)
