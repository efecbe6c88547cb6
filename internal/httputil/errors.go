package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidQuery     = errors.New("a query parameter is invalid")

	// ErrInvalidMonth is returned for months that are not formatted as YYYY-MM,
	// the format the dashboard uses for its month selector.
	ErrInvalidMonth = errors.New("the month must be formatted as YYYY-MM")
)
