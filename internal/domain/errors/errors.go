package errors

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnknownEntity = errors.New("unknown entity type")
	ErrMalformedFile = errors.New("malformed flat file")
	ErrInvalidOrder  = errors.New("invalid purchase order")
)
