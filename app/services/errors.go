package services

import "errors"

// Service errors carry the client-facing message verbatim; anything else
// bubbling out of a service is a store failure and is never shown to the
// client.
var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrEmailTaken         = errors.New("Email address already exists")
	ErrDuplicateUser      = errors.New("Username or email already exists")
	ErrUserNotFound       = errors.New("User not found")
	ErrTaskNotFound       = errors.New("Task not found")
	ErrTaskAccess         = errors.New("Task not found or access denied")
	ErrSelfDelete         = errors.New("You cannot delete your own account")
)

// Client reports whether err is safe to surface as the envelope message.
func Client(err error) bool {
	for _, known := range []error{
		ErrInvalidCredentials, ErrUsernameTaken, ErrEmailTaken,
		ErrDuplicateUser, ErrUserNotFound, ErrTaskNotFound,
		ErrTaskAccess, ErrSelfDelete,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
