package user

import "errors"

var (
	// ErrPhoneTaken means another account already uses the phone number.
	ErrPhoneTaken = errors.New("an account with this phone number already exists")

	// ErrInvalidCredentials covers both unknown phone and wrong password
	// so login failures do not leak which one it was.
	ErrInvalidCredentials = errors.New("invalid phone number or password")

	// ErrAccountDisabled means the account exists but has been
	// deactivated by an admin.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrUserNotFound means no member matches the given ID.
	ErrUserNotFound = errors.New("user not found")
)
