package session

import "errors"

var (
	ErrEmptyPool        = errors.New("level pool is empty")
	ErrMovementDisabled = errors.New("movement is disabled")
)
