package upload

import "errors"

var (
	ErrNoFile          = errors.New("no file provided")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrUserNotFound    = errors.New("user not found")
)
