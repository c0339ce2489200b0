package models

import "errors"

// Sentinel errors shared between the repositories, services and controllers.
// Controllers translate them to HTTP status codes; anything else is a 500.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("resource already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)
