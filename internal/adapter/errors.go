package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected http status")

	// ErrInvalidURL is returned by constructors for unusable endpoints.
	ErrInvalidURL = errors.New("invalid endpoint url")

	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrBlockNotFound is returned when eth_getBlockByNumber returns null.
	ErrBlockNotFound = errors.New("block not found")
)
