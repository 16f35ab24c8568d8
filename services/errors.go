package services

import "errors"

// Error kinds, matched by callers with errors.Is. Persistence failures are
// logged and returned; the in-memory state still advances so the client
// stays responsive, but the caller can retry or notify.
var (
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failed")
	ErrNotFound    = errors.New("not found")
)
