package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
	ErrAccountNotSet    = errors.New("the account query parameter must be set to a valid UUID")
	ErrInvalidMonth     = errors.New("the month query parameter must be a month in YYYY-MM format")
)
