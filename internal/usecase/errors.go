package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNotFound              = errors.New("resource not found")
	ErrLineupLocked          = errors.New("lineup locked")
	ErrStorageContention     = errors.New("storage contention")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
