package cache

import (
	"errors"
	"fmt"
)

// key names definition
const (
	SessionKey = "session:%s" // key of a login session, '%s' is the opaque session token
)

func MakeSessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// errors
var (
	ErrSessionNotFound = errors.New("session not found")
)
