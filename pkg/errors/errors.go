package errors

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBadRequest         = errors.New("bad request")
	ErrInternal           = errors.New("internal server error")
	ErrDuplicate          = errors.New("resource already exists")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateVote      = errors.New("vote of this type already cast")
	ErrInsufficientPoints = errors.New("not enough points")
)
