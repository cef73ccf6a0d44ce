package review

import "errors"

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrBookingNotFound  = errors.New("booking not found or unauthorized")
	ErrReviewNotAllowed = errors.New("only completed bookings can be reviewed")
	ErrReviewerNotFound = errors.New("reviewer not found")
)
