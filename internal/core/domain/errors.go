package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrJobClosed          = errors.New("job is closed")
)
