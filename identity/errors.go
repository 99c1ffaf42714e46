package identity

import "errors"

var (
	// ErrInvalidAddress indicates an address string is malformed.
	ErrInvalidAddress = errors.New("identity: invalid address")
)
