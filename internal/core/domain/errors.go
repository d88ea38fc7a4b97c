package domain

import "errors"

// Authentication and token errors.
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveAccount    = errors.New("inactive user account")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// User lifecycle errors.
var (
	ErrUserExists     = errors.New("username already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrSelfDeletion   = errors.New("cannot delete your own user account via this endpoint")
	ErrLastAdmin      = errors.New("cannot delete the last admin user")
	ErrNoFields       = errors.New("no fields provided for update")
	ErrImmutableField = errors.New("field cannot be updated via this endpoint")
)

// Resource errors. ErrEntryNotFound is returned both for records that do not
// exist and for records the caller is not allowed to see, so the two cases
// cannot be told apart from outside.
var (
	ErrEntryNotFound        = errors.New("production entry not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrCategoryNotFound     = errors.New("reference data category not found")
	ErrCategoryExists       = errors.New("reference data category already exists")
	ErrForbidden            = errors.New("access forbidden")
)
