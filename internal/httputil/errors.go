package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidQuery     = errors.New("the query string of your request contains invalid parameters")
	ErrInvalidPath      = errors.New("the request path contains an invalid parameter")
)
