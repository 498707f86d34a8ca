package agency

import "errors"

var (
	// ErrUsernameTaken is returned when a sign-up reuses an existing username.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrPendingApplication is returned when a user with a pending job
	// application applies again.
	ErrPendingApplication = errors.New("a pending application already exists")

	// ErrApplicantUnknown is returned when an approved application names a
	// username with no user account.
	ErrApplicantUnknown = errors.New("applicant has no user account")

	// ErrInsufficientFunds is returned when funding a mission would push the
	// agency budget below zero.
	ErrInsufficientFunds = errors.New("insufficient agency funds")

	// ErrProtectedUser is returned when deleting the built-in admin account.
	ErrProtectedUser = errors.New("user account is protected")

	// ErrMissionNotFunded is returned when launching a mission that is still
	// awaiting funding approval.
	ErrMissionNotFunded = errors.New("mission has not been funded")
)
