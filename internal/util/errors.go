package util

import "errors"

var (
	// ErrBadgeNotFound text is part of the public API contract, the GraphQL
	// layer surfaces it verbatim.
	ErrBadgeNotFound = errors.New("Badge not found")

	ErrUserNotFound       = errors.New("user not found")
	ErrLevelNotFound      = errors.New("level not found")
	ErrUserBadgeNotFound  = errors.New("user badge not found")
	ErrUserLevelNotFound  = errors.New("user level not found")
	ErrBadgeAlreadyExists = errors.New("badge name already in use")
	ErrBadgeAlreadyEarned = errors.New("badge already earned by user")
	ErrLevelAlreadyHeld   = errors.New("level already recorded for user")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrPermissionDenied   = errors.New("permission denied")
)
