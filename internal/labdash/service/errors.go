package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrNoSession          = errors.New("no_session")
	ErrForbidden          = errors.New("forbidden")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrEmailTaken         = errors.New("email_taken")
	ErrCannotDeleteSelf   = errors.New("cannot_delete_self")

	ErrInvalidName      = errors.New("invalid_full_name")
	ErrInvalidRole      = errors.New("invalid_role")
	ErrInvalidEmail     = errors.New("invalid_email")
	ErrPasswordTooShort = errors.New("password_too_short")
	ErrPasswordTooLong  = errors.New("password_too_long")
	ErrPasswordMismatch = errors.New("password_mismatch")
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
	MaxFullNameLength = 120
)

// IsValidation reports whether err is an input problem the caller can fix.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidName, ErrInvalidRole, ErrInvalidEmail,
		ErrPasswordTooShort, ErrPasswordTooLong, ErrPasswordMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
