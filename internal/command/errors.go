package command

import "fmt"

// UserError is a rejected command. It is shown to the player as is, and the
// world has not changed.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error from a format string.
func NewUserError(format string, args ...any) *UserError {
	return &UserError{Message: capitalize(fmt.Sprintf(format, args...))}
}
