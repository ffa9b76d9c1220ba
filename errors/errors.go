package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Connection admission. Reasons wrap ErrAuthRejected.
	ErrAuthRejected        = fmt.Errorf("authentication rejected")
	ErrMissingCredential   = fmt.Errorf("%w: no token provided", ErrAuthRejected)
	ErrInvalidCredential   = fmt.Errorf("%w: invalid token", ErrAuthRejected)
	ErrUnknownIdentity     = fmt.Errorf("%w: user not found", ErrAuthRejected)
	ErrAuthorizationDenied = fmt.Errorf("authorization denied")

	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("invalid password")
	ErrInvalidRequest     = fmt.Errorf("invalid request")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")

	ErrPersistence            = fmt.Errorf("persistence failure")
	ErrUserAlreadyExists      = fmt.Errorf("user already exists")
	ErrUserNotFound           = fmt.Errorf("user not found")
	ErrCandidateAlreadyExists = fmt.Errorf("candidate already exists")
	ErrCandidateNotFound      = fmt.Errorf("candidate not found")
	ErrNoteNotFound           = fmt.Errorf("note not found")
	ErrNotificationNotFound   = fmt.Errorf("notification not found")
	ErrNotificationNotOwned   = fmt.Errorf("%w: notification belongs to another user", ErrAuthorizationDenied)

	ErrSinkClosed  = fmt.Errorf("sink closed")
	ErrSinkTimeout = fmt.Errorf("sink delivery timeout")
)
