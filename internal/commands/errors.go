package commands

import "errors"

// UserError represents an error that should be displayed to the player.
// These are not system failures - just invalid input or a refused move.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// AsUserError reports whether err wraps a UserError and returns it.
func AsUserError(err error) (*UserError, bool) {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr, true
	}
	return nil, false
}
