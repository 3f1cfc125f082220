// File: services/user/errors.go
package user

import "errors"

var (
	// ErrEmailTaken signals a registration attempt with an email that
	// already has an account.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials signals a failed sign-in. The same error covers
	// an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotInstitutionalEmail signals a registration with a personal email
	// address.
	ErrNotInstitutionalEmail = errors.New("registration requires your institutional email address")

	// ErrUserNotFound signals a lookup for a missing account.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookingNotCancellable signals a cancel attempt on a booking that is
	// not the caller's, already cancelled, or already in the past.
	ErrBookingNotCancellable = errors.New("this booking can no longer be cancelled")
)
