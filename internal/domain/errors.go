package domain

import "errors"

var (
	ErrTemplateNotFound     = errors.New("event template not found")
	ErrInstanceNotFound     = errors.New("event instance not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrPlaceNotFound        = errors.New("place not found")
)

var (
	ErrCapacityExceeded       = errors.New("event capacity exceeded")
	ErrInstanceExists         = errors.New("instance already exists for this date")
	ErrRegistrationNotPending = errors.New("registration is not awaiting review")
	ErrRegistrationFinal      = errors.New("registration is in a terminal status")
)

var (
	ErrValidation = errors.New("validation error")
)
