package service

import "errors"

var (
	ErrNotFound = errors.New("resource not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")

	// ErrRoomNotFound and ErrRoomUnavailable are distinct internally but both
	// surface to callers as the single "Room not available" outcome.
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room not available")
)
