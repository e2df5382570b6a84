package domain

import "errors"

// Login-specific failures. ErrInvalidCredentials is deliberately identical
// for "no such email" and "wrong password" to prevent account enumeration.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrAccountNotActive   = errors.New("account is not active")
)

// Token and access-control failures.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrForbidden       = errors.New("insufficient permissions")
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrNotificationNotFound = errors.New("notification not found")
)
