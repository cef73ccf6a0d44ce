package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrArtistNotFound  = errors.New("artist not found")
	ErrCallerNotFound  = errors.New("caller not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("booking belongs to another artist")
)
