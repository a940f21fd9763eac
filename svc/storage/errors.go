package storage

import "errors"

var (
	ErrInvalidKey      = errors.New("invalid storage key format")
	ErrOperationFailed = errors.New("storage operation failed")
)
